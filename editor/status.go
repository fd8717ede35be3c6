package editor

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/x/ansi"
)

func (m Model) statusLine() string {
	name := m.view.Path()
	if name == "" {
		name = "[No Name]"
	}
	if m.view.Buffer().Dirty() {
		name += " [+]"
	}
	loc := m.view.Location()

	line := fmt.Sprintf(" %s  %d:%d", name, loc.LineIndex+1, loc.GraphemeIndex+1)
	if m.message != "" {
		line += "  " + m.message
	}
	return m.cfg.Style.Status.Render(padRow(ansi.Truncate(line, m.width, "…"), m.width))
}

func describeError(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "file not found"
	default:
		return err.Error()
	}
}
