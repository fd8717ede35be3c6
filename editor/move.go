package editor

import "github.com/iw2rmb/quill/buffer"

// LineSource is the part of a buffer movement needs.
type LineSource interface {
	Height() int
	LineLen(index int) int
}

// NextLocation returns the location reached by moving dir from loc.
//
// Movement never fails: at a document edge it is a no-op, and a column
// beyond the target line is snapped to its end. page is the PageUp/PageDown
// displacement.
func NextLocation(loc buffer.Location, dir Direction, lines LineSource, page int) buffer.Location {
	y, x := loc.LineIndex, loc.GraphemeIndex

	switch dir {
	case Up:
		y, x = vertical(y-1, x, lines)
	case Down:
		y, x = vertical(y+1, x, lines)
	case PageUp:
		y, x = vertical(saturatingSub(y, page), x, lines)
	case PageDown:
		y, x = vertical(y+page, x, lines)
	case Left:
		switch {
		case x > 0:
			x--
		case y > 0:
			y--
			x = lines.LineLen(y)
		}
	case Right:
		switch {
		case x < lines.LineLen(y):
			x++
		case y < lines.Height():
			y++
			x = 0
		}
	case Home:
		x = 0
	case End:
		x = lines.LineLen(y)
	}

	return buffer.Location{LineIndex: y, GraphemeIndex: x}
}

// vertical snaps the column to the target line first and only then clamps
// the line to the append row, so overshooting the end lands at column 0.
func vertical(y, x int, lines LineSource) (int, int) {
	y = max(y, 0)
	x = min(x, lines.LineLen(y))
	y = min(y, lines.Height())
	return y, x
}
