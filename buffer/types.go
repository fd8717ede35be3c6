package buffer

// Location points into the document by (line, grapheme).
//
// GraphemeIndex may equal the line's grapheme count (end of line), and
// LineIndex may equal the buffer height (the append row below the last line).
type Location struct {
	LineIndex     int
	GraphemeIndex int
}

// Width is the rendered width class of a fragment.
type Width uint8

const (
	// Half occupies one terminal column.
	Half Width = iota + 1
	// Full occupies two terminal columns.
	Full
)

// Columns returns the number of cells w occupies.
func (w Width) Columns() int {
	if w == Full {
		return 2
	}
	return 1
}

func (w Width) String() string {
	if w == Full {
		return "Full"
	}
	return "Half"
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
