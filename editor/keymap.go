package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Up, Down, Left, Right key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Tab, Enter        key.Binding

	Save, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	}
}

// Commands decodes one key event. Keys without a binding that are not
// printable yield nil.
func (km KeyMap) Commands(msg tea.KeyMsg) []Command {
	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		return textCommands(msg.Runes)
	}

	if cmd, ok := km.binding(msg); ok {
		return []Command{cmd}
	}

	switch {
	case msg.Type == tea.KeySpace:
		return []Command{InsertChar{Char: ' '}}
	case msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0:
		return textCommands(msg.Runes)
	}

	log.Debug().Str("key", msg.String()).Msg("unmapped key")
	return nil
}

func (km KeyMap) binding(msg tea.KeyMsg) (Command, bool) {
	switch {
	case key.Matches(msg, km.Up):
		return Move{Direction: Up}, true
	case key.Matches(msg, km.Down):
		return Move{Direction: Down}, true
	case key.Matches(msg, km.Left):
		return Move{Direction: Left}, true
	case key.Matches(msg, km.Right):
		return Move{Direction: Right}, true
	case key.Matches(msg, km.PageUp):
		return Move{Direction: PageUp}, true
	case key.Matches(msg, km.PageDown):
		return Move{Direction: PageDown}, true
	case key.Matches(msg, km.Home):
		return Move{Direction: Home}, true
	case key.Matches(msg, km.End):
		return Move{Direction: End}, true

	case key.Matches(msg, km.Backspace):
		return Backspace{}, true
	case key.Matches(msg, km.Delete):
		return Delete{}, true
	case key.Matches(msg, km.Tab):
		return Tab{}, true
	case key.Matches(msg, km.Enter):
		return Enter{}, true

	case key.Matches(msg, km.Save):
		return Save{}, true
	case key.Matches(msg, km.Quit):
		return Quit{}, true
	}
	return nil, false
}

// textCommands turns literal text into insertions. "\n" becomes Enter and
// "\r" is dropped, so pasted CRLF text splits lines once.
func textCommands(runes []rune) []Command {
	cmds := make([]Command, 0, len(runes))
	for _, r := range runes {
		switch r {
		case '\r':
		case '\n':
			cmds = append(cmds, Enter{})
		default:
			cmds = append(cmds, InsertChar{Char: r})
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return cmds
}
