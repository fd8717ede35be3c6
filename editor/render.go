package editor

// Renderer receives one display string per screen row.
type Renderer interface {
	RenderLine(row int, text string)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(row int, text string)

func (f RendererFunc) RenderLine(row int, text string) { f(row, text) }

// Render hands every visible row to r, but only when something changed since
// the last call. It reports whether it rendered.
func (v *View) Render(r Renderer) bool {
	if !v.needsRedraw {
		return false
	}
	for row, text := range v.VisibleRows() {
		r.RenderLine(row, text)
	}
	v.needsRedraw = false
	return true
}

// VisibleRows returns the clipped text of each screen row. Rows below the
// last line hold the empty-row marker.
func (v *View) VisibleRows() []string {
	rows := make([]string, v.size.Height)
	for r := range rows {
		line, ok := v.buf.Line(v.offset.Row + r)
		if !ok {
			rows[r] = v.cfg.emptyRowMarker()
			continue
		}
		rows[r] = line.VisibleGraphemes(v.offset.Col, v.offset.Col+v.size.Width)
	}
	return rows
}
