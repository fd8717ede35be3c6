package editor

import tea "github.com/charmbracelet/bubbletea"

// Config configures a View and the Model around it.
type Config struct {
	// Editing.
	TabSize     int
	PageOverlap int

	// Rendering.
	EmptyRowMarker string
	ShowStatus     bool
	Style          Style
	KeyMap         KeyMap

	// Watch, when set, blocks until the document changes on disk and
	// returns a FileChangedMsg. See WatchFile.
	Watch tea.Cmd
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		TabSize:        4,
		EmptyRowMarker: "~",
		ShowStatus:     true,
		Style:          DefaultStyle(),
		KeyMap:         DefaultKeyMap(),
	}
}

func (c Config) tabSize() int {
	if c.TabSize <= 0 {
		return 4
	}
	return c.TabSize
}

func (c Config) emptyRowMarker() string {
	if c.EmptyRowMarker == "" {
		return "~"
	}
	return c.EmptyRowMarker
}
