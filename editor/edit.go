package editor

import "github.com/rs/zerolog/log"

func (v *View) moveCursor(dir Direction) {
	v.loc = NextLocation(v.loc, dir, v.buf, v.pageSize())
}

// insertCharacter advances the cursor only when a new grapheme appeared;
// a combining mark merges into the cluster before the cursor.
func (v *View) insertCharacter(ch rune) {
	before := v.buf.LineLen(v.loc.LineIndex)
	v.buf.InsertChar(ch, v.loc)
	if v.buf.LineLen(v.loc.LineIndex) > before {
		v.moveCursor(Right)
	}
}

func (v *View) backspace() {
	if v.loc.LineIndex == 0 && v.loc.GraphemeIndex == 0 {
		return
	}
	v.moveCursor(Left)
	v.buf.DeleteChar(v.loc)
}

func (v *View) insertTab() {
	for range v.cfg.tabSize() {
		v.insertCharacter(' ')
	}
}

func (v *View) insertNewline() {
	v.buf.InsertNewline(v.loc)
	v.moveCursor(Right)
}

func (v *View) save() error {
	if v.store == nil {
		return ErrNoStore
	}
	if err := v.store.Save(v.path, v.buf.Text()); err != nil {
		log.Error().Err(err).Str("path", v.path).Msg("save failed")
		return err
	}
	v.buf.MarkClean()
	log.Info().Str("path", v.path).Int("lines", v.buf.Height()).Msg("saved document")
	return nil
}
