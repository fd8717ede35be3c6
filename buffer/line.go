package buffer

import "strings"

// Line is one document row as a sequence of grapheme fragments.
//
// Every mutation re-segments the whole row: inserting or removing a code
// point can merge or split neighbouring clusters, so fragments are never
// patched in place.
type Line struct {
	fragments []Fragment
}

// NewLine segments text into a Line.
func NewLine(text string) Line {
	return Line{fragments: fragmentsFromString(text)}
}

// GraphemeCount returns the number of fragments. Valid grapheme indices
// range over 0..GraphemeCount() inclusive.
func (l *Line) GraphemeCount() int { return len(l.fragments) }

// Fragments returns a copy of the line's fragments.
func (l *Line) Fragments() []Fragment {
	return append([]Fragment(nil), l.fragments...)
}

// String returns the raw line text.
func (l *Line) String() string {
	var sb strings.Builder
	for _, f := range l.fragments {
		sb.WriteString(f.Grapheme)
	}
	return sb.String()
}

// WidthUntil returns the rendered width of the fragments strictly before
// index.
func (l *Line) WidthUntil(index int) int {
	index = clampInt(index, 0, len(l.fragments))
	width := 0
	for _, f := range l.fragments[:index] {
		width += f.Width.Columns()
	}
	return width
}

// Width returns the rendered width of the whole line.
func (l *Line) Width() int { return l.WidthUntil(len(l.fragments)) }

// VisibleGraphemes renders the cells [startCol, endCol).
//
// A fragment that straddles either edge is drawn as ClipGlyph.
func (l *Line) VisibleGraphemes(startCol, endCol int) string {
	if startCol >= endCol {
		return ""
	}

	var sb strings.Builder
	pos := 0
	for _, f := range l.fragments {
		if pos >= endCol {
			break
		}
		fragEnd := pos + f.Width.Columns()
		if fragEnd > startCol {
			if fragEnd > endCol || pos < startCol {
				sb.WriteRune(ClipGlyph)
			} else {
				sb.WriteString(f.Glyph())
			}
		}
		pos = fragEnd
	}
	return sb.String()
}

// InsertChar inserts ch before the fragment at index, or appends it when
// index is at or past the end.
func (l *Line) InsertChar(ch rune, index int) {
	if index < 0 {
		index = 0
	}
	var sb strings.Builder
	inserted := false
	for i, f := range l.fragments {
		if i == index {
			sb.WriteRune(ch)
			inserted = true
		}
		sb.WriteString(f.Grapheme)
	}
	if !inserted {
		sb.WriteRune(ch)
	}
	l.fragments = fragmentsFromString(sb.String())
}

// Delete removes the fragment at index. Out-of-range indices are ignored.
func (l *Line) Delete(index int) {
	if index < 0 || index >= len(l.fragments) {
		return
	}
	var sb strings.Builder
	for i, f := range l.fragments {
		if i != index {
			sb.WriteString(f.Grapheme)
		}
	}
	l.fragments = fragmentsFromString(sb.String())
}

// Append concatenates other onto l.
func (l *Line) Append(other Line) {
	l.fragments = fragmentsFromString(l.String() + other.String())
}

// Split keeps the fragments before index in l and returns the rest as a new
// Line. When index is at or past the end, l is unchanged and the returned
// Line is empty.
func (l *Line) Split(index int) Line {
	if index >= len(l.fragments) {
		return Line{}
	}
	if index < 0 {
		index = 0
	}
	right := append([]Fragment(nil), l.fragments[index:]...)
	l.fragments = l.fragments[:index:index]
	return Line{fragments: right}
}
