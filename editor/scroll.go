package editor

import "github.com/iw2rmb/quill/buffer"

// TextLocationToPosition maps loc to document space: the row is the line
// index and the column is the rendered width before the grapheme. Locations
// without a line, such as the append row, map to column 0.
func (v *View) TextLocationToPosition(loc buffer.Location) Position {
	pos := Position{Row: loc.LineIndex}
	if line, ok := v.buf.Line(loc.LineIndex); ok {
		pos.Col = line.WidthUntil(loc.GraphemeIndex)
	}
	return pos
}

// CursorPosition returns the cursor relative to the scroll offset.
func (v *View) CursorPosition() Position {
	pos := v.TextLocationToPosition(v.loc)
	return Position{
		Row: saturatingSub(pos.Row, v.offset.Row),
		Col: saturatingSub(pos.Col, v.offset.Col),
	}
}

// ScrollLocationIntoView adjusts the scroll offset so the cursor is visible.
func (v *View) ScrollLocationIntoView() {
	pos := v.TextLocationToPosition(v.loc)
	v.scrollVertically(pos.Row)
	v.scrollHorizontally(pos.Col)
}

func (v *View) scrollVertically(row int) {
	if off, ok := scrollAxis(v.offset.Row, row, v.size.Height); ok {
		v.offset.Row = off
		v.needsRedraw = true
	}
}

func (v *View) scrollHorizontally(col int) {
	if off, ok := scrollAxis(v.offset.Col, col, v.size.Width); ok {
		v.offset.Col = off
		v.needsRedraw = true
	}
}

// scrollAxis keeps target inside [offset, offset+extent). The offset moves
// only when target leaves that window, and then by the least amount.
func scrollAxis(offset, target, extent int) (int, bool) {
	if extent <= 0 {
		return offset, false
	}
	switch {
	case target < offset:
		return target, true
	case target >= offset+extent:
		return target - extent + 1, true
	default:
		return offset, false
	}
}
