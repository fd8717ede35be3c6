package editor

// Direction is a cursor movement.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	PageUp
	PageDown
	Home
	End
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case PageUp:
		return "pgup"
	case PageDown:
		return "pgdown"
	case Home:
		return "home"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Command is one unit of editor input. The set is closed: only the types in
// this file implement it.
type Command interface {
	command()
}

// Move moves the cursor.
type Move struct{ Direction Direction }

// InsertChar inserts Char at the cursor.
type InsertChar struct{ Char rune }

// Backspace deletes the grapheme behind the cursor.
type Backspace struct{}

// Delete deletes the grapheme under the cursor, or joins the next line.
type Delete struct{}

// Tab inserts Config.TabSize spaces.
type Tab struct{}

// Enter splits the line at the cursor.
type Enter struct{}

// Save writes the buffer to its path.
type Save struct{}

// Resize replaces the viewport extent.
type Resize struct{ Size Size }

// Quit ends the session.
type Quit struct{}

func (Move) command()       {}
func (InsertChar) command() {}
func (Backspace) command()  {}
func (Delete) command()     {}
func (Tab) command()        {}
func (Enter) command()      {}
func (Save) command()       {}
func (Resize) command()     {}
func (Quit) command()       {}
