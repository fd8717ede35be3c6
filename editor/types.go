package editor

// Position is a screen coordinate in display columns.
type Position struct {
	Row int
	Col int
}

// Size is a viewport extent.
type Size struct {
	Height int
	Width  int
}

func saturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
