package editor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// FileChangedMsg reports that the document changed on disk.
type FileChangedMsg struct{ Path string }

// WatchFile returns a command that waits for the next signal on changes and
// reports it as a FileChangedMsg. A closed channel yields nil.
func WatchFile(changes <-chan struct{}, path string) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return FileChangedMsg{Path: path}
	}
}

// Model is a Bubble Tea program model around a View.
type Model struct {
	cfg  Config
	view *View

	frame   *frameCache
	message string
	width   int
	height  int
}

type frameCache struct {
	rows []string
}

func (f *frameCache) RenderLine(row int, text string) {
	for len(f.rows) <= row {
		f.rows = append(f.rows, "")
	}
	f.rows[row] = text
}

func New(cfg Config, view *View) Model {
	if view == nil {
		view = NewView(cfg, nil)
	}
	return Model{
		cfg:   cfg,
		view:  view,
		frame: &frameCache{},
	}
}

// Editor returns the underlying View.
func (m Model) Editor() *View { return m.view }

// Message returns the text shown at the end of the status line.
func (m Model) Message() string { return m.message }

// SetMessage replaces the status line message.
func (m Model) SetMessage(msg string) Model {
	m.message = msg
	return m
}

func (m Model) Init() tea.Cmd { return m.cfg.Watch }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = max(msg.Width, 0), max(msg.Height, 0)
		size := m.textSize()
		m.frame.rows = m.frame.rows[:min(len(m.frame.rows), size.Height)]
		m.view.Resize(size)
		return m, nil

	case tea.KeyMsg:
		for _, cmd := range m.cfg.KeyMap.Commands(msg) {
			if _, ok := cmd.(Quit); ok {
				return m, tea.Quit
			}
			m = m.handle(cmd)
		}
		return m, nil

	case FileChangedMsg:
		reloaded, err := m.view.Reload()
		switch {
		case err != nil:
			m.message = describeError(err)
		case reloaded:
			m.message = "reloaded from disk"
		}
		return m, m.cfg.Watch
	}
	return m, nil
}

func (m Model) handle(cmd Command) Model {
	err := m.view.HandleCommand(cmd)
	if _, ok := cmd.(Save); !ok {
		return m
	}
	if err != nil {
		m.message = describeError(err)
		return m
	}
	m.message = fmt.Sprintf("wrote %d lines", m.view.Buffer().Height())
	return m
}

func (m Model) textSize() Size {
	h := m.height
	if m.cfg.ShowStatus && h > 0 {
		h--
	}
	return Size{Height: h, Width: m.width}
}

func (m Model) View() string {
	if m.view.Render(m.frame) {
		log.Trace().Int("rows", len(m.frame.rows)).Msg("frame rendered")
	}

	size := m.view.Size()
	cursor := m.view.CursorPosition()
	firstRow := m.view.ScrollOffset().Row
	height := m.view.Buffer().Height()

	out := make([]string, 0, size.Height+1)
	for r := 0; r < size.Height; r++ {
		text := ""
		if r < len(m.frame.rows) {
			text = m.frame.rows[r]
		}
		text = padRow(text, size.Width)

		switch {
		case r == cursor.Row:
			left, cell, right := splitAtColumn(text, cursor.Col)
			text = m.cfg.Style.Text.Render(left) + m.cfg.Style.Cursor.Render(cell) + m.cfg.Style.Text.Render(right)
		case firstRow+r >= height:
			text = m.cfg.Style.EmptyRow.Render(text)
		default:
			text = m.cfg.Style.Text.Render(text)
		}
		out = append(out, text)
	}

	if m.cfg.ShowStatus && m.height > 0 {
		out = append(out, m.statusLine())
	}
	return strings.Join(out, "\n")
}

func padRow(text string, width int) string {
	w := ansi.StringWidth(text)
	switch {
	case w > width:
		return ansi.Truncate(text, width, "")
	case w < width:
		return text + strings.Repeat(" ", width-w)
	default:
		return text
	}
}

// splitAtColumn splits a plain row around the cluster starting at col. A
// missing cluster becomes a single blank cell.
func splitAtColumn(text string, col int) (left, cell, right string) {
	pos := 0
	clusters := grapheme.Split(text)
	for i, c := range clusters {
		if pos >= col {
			return grapheme.Join(clusters[:i]), c, grapheme.Join(clusters[i+1:])
		}
		pos += grapheme.CellWidth(c)
	}
	return text, " ", ""
}
