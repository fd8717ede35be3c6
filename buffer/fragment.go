package buffer

import "github.com/iw2rmb/quill/internal/grapheme"

// Glyphs drawn in place of clusters that would otherwise render as nothing
// or move the terminal cursor.
const (
	TabGlyph       = '→'
	BlankGlyph     = '␣'
	ControlGlyph   = '▯'
	ZeroWidthGlyph = '·'
	ClipGlyph      = '⋯'
)

// Fragment is one grapheme cluster of a line.
type Fragment struct {
	// Grapheme is the raw cluster text.
	Grapheme string
	// Width is derived once, from Replacement when set.
	Width Width
	// Replacement is drawn instead of Grapheme when non-zero.
	Replacement rune
}

// Glyph returns the text a renderer should draw for f.
func (f Fragment) Glyph() string {
	if f.Replacement != 0 {
		return string(f.Replacement)
	}
	return f.Grapheme
}

func newFragment(cluster string) Fragment {
	if r, ok := replacementFor(cluster); ok {
		return Fragment{Grapheme: cluster, Width: Half, Replacement: r}
	}
	w := Half
	if grapheme.CellWidth(cluster) >= 2 {
		w = Full
	}
	return Fragment{Grapheme: cluster, Width: w}
}

func replacementFor(cluster string) (rune, bool) {
	if cluster == " " {
		return 0, false
	}
	if cluster == "\t" {
		return TabGlyph, true
	}
	width := grapheme.CellWidth(cluster)
	switch {
	case width > 0 && grapheme.IsSpace(cluster):
		return BlankGlyph, true
	case width == 0 && grapheme.IsControl(cluster):
		return ControlGlyph, true
	case width == 0:
		return ZeroWidthGlyph, true
	default:
		return 0, false
	}
}

func fragmentsFromString(text string) []Fragment {
	clusters := grapheme.Split(text)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]Fragment, 0, len(clusters))
	for _, c := range clusters {
		out = append(out, newFragment(c))
	}
	return out
}
