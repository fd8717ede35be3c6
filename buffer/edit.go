package buffer

// InsertChar inserts ch at loc.
//
// At the append row (LineIndex == Height()) a new line holding ch is added.
// Locations below the append row are ignored.
func (b *Buffer) InsertChar(ch rune, loc Location) {
	switch {
	case loc.LineIndex < 0 || loc.LineIndex > len(b.lines):
		return
	case loc.LineIndex == len(b.lines):
		b.lines = append(b.lines, NewLine(string(ch)))
	default:
		b.lines[loc.LineIndex].InsertChar(ch, loc.GraphemeIndex)
	}
	b.touch()
}

// DeleteChar applies delete-key semantics at loc.
//
// At or past the end of a line that has a successor, the next line is joined
// onto it. Inside a line the grapheme at loc is removed. At the end of the
// last line nothing happens.
func (b *Buffer) DeleteChar(loc Location) {
	line, ok := b.Line(loc.LineIndex)
	if !ok {
		return
	}

	if loc.GraphemeIndex >= line.GraphemeCount() && loc.LineIndex+1 < len(b.lines) {
		next := b.lines[loc.LineIndex+1]
		line.Append(next)
		b.lines = append(b.lines[:loc.LineIndex+1], b.lines[loc.LineIndex+2:]...)
		b.touch()
		return
	}

	if loc.GraphemeIndex >= 0 && loc.GraphemeIndex < line.GraphemeCount() {
		line.Delete(loc.GraphemeIndex)
		b.touch()
	}
}

// InsertNewline splits the line at loc and inserts the right-hand part as a
// new line directly below. At the append row an empty line is added.
func (b *Buffer) InsertNewline(loc Location) {
	switch {
	case loc.LineIndex < 0 || loc.LineIndex > len(b.lines):
		return
	case loc.LineIndex == len(b.lines):
		b.lines = append(b.lines, Line{})
	default:
		right := b.lines[loc.LineIndex].Split(loc.GraphemeIndex)
		at := loc.LineIndex + 1
		b.lines = append(b.lines, Line{})
		copy(b.lines[at+1:], b.lines[at:])
		b.lines[at] = right
	}
	b.touch()
}
