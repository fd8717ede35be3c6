package editor

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/quill/buffer"
)

// Store loads and saves whole documents.
type Store interface {
	Load(path string) (string, error)
	Save(path, text string) error
}

// ErrNoStore is returned by Save when the View has no Store.
var ErrNoStore = errors.New("no store configured")

// View is the editing state for one document: the buffer, the cursor
// location, the scroll offset and the viewport extent.
//
// The cursor's screen position is kept inside the viewport after every
// command. Out-of-range input is clamped rather than rejected.
type View struct {
	cfg   Config
	store Store
	path  string

	buf    *buffer.Buffer
	loc    buffer.Location
	offset Position
	size   Size

	needsRedraw bool
}

// NewView returns a View over an empty buffer.
func NewView(cfg Config, store Store) *View {
	return &View{
		cfg:         cfg,
		store:       store,
		buf:         buffer.New(""),
		needsRedraw: true,
	}
}

// Load replaces the buffer with the document at path and binds the View to
// it. On error the View is left unchanged.
func (v *View) Load(path string) error {
	if v.store == nil {
		return ErrNoStore
	}
	text, err := v.store.Load(path)
	if err != nil {
		return err
	}
	v.path = path
	v.replaceBuffer(text)
	v.loc = buffer.Location{}
	v.offset = Position{}
	log.Info().Str("path", path).Int("lines", v.buf.Height()).Msg("opened document")
	return nil
}

// Reload re-reads the bound document when the buffer has no unsaved
// changes. It reports whether the buffer was replaced.
func (v *View) Reload() (bool, error) {
	if v.store == nil || v.path == "" || v.buf.Dirty() {
		return false, nil
	}
	text, err := v.store.Load(v.path)
	if err != nil {
		return false, err
	}
	if text == v.buf.Text() {
		return false, nil
	}
	v.replaceBuffer(text)
	v.loc = v.clampLocation(v.loc)
	v.ScrollLocationIntoView()
	log.Debug().Str("path", v.path).Msg("reloaded document")
	return true, nil
}

func (v *View) replaceBuffer(text string) {
	v.buf = buffer.New(text)
	v.needsRedraw = true
}

func (v *View) clampLocation(loc buffer.Location) buffer.Location {
	loc.LineIndex = max(0, min(loc.LineIndex, v.buf.Height()))
	loc.GraphemeIndex = max(0, min(loc.GraphemeIndex, v.buf.LineLen(loc.LineIndex)))
	return loc
}

// Path returns the document path, or "" for an unnamed buffer.
func (v *View) Path() string { return v.path }

// SetPath binds the View to path without loading it, e.g. for a file that
// does not exist yet.
func (v *View) SetPath(path string) { v.path = path }

func (v *View) Buffer() *buffer.Buffer { return v.buf }
func (v *View) Location() buffer.Location { return v.loc }
func (v *View) ScrollOffset() Position { return v.offset }
func (v *View) Size() Size { return v.size }
func (v *View) NeedsRedraw() bool { return v.needsRedraw }

// Resize replaces the viewport extent and forces a full redraw.
func (v *View) Resize(size Size) {
	size.Height = max(size.Height, 0)
	size.Width = max(size.Width, 0)
	v.size = size
	v.ScrollLocationIntoView()
	v.needsRedraw = true
}

// HandleCommand applies one command. Only Save can fail.
func (v *View) HandleCommand(cmd Command) error {
	version := v.buf.Version()

	var err error
	switch c := cmd.(type) {
	case Move:
		v.moveCursor(c.Direction)
	case InsertChar:
		v.insertCharacter(c.Char)
	case Backspace:
		v.backspace()
	case Delete:
		v.buf.DeleteChar(v.loc)
	case Tab:
		v.insertTab()
	case Enter:
		v.insertNewline()
	case Save:
		err = v.save()
	case Resize:
		v.Resize(c.Size)
		return nil
	case Quit:
	default:
		log.Debug().Type("command", cmd).Msg("ignored command")
		return nil
	}

	if v.buf.Version() != version {
		v.needsRedraw = true
	}
	v.ScrollLocationIntoView()
	return err
}

func (v *View) pageSize() int {
	if v.size.Height <= 0 {
		return 0
	}
	return max(v.size.Height-v.cfg.PageOverlap, 1)
}
