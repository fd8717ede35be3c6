package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	rows map[int]string
	n    int
}

func (r *recordingRenderer) RenderLine(row int, text string) {
	if r.rows == nil {
		r.rows = map[int]string{}
	}
	r.rows[row] = text
	r.n++
}

func TestView_RenderOnlyWhenNeeded(t *testing.T) {
	v, _ := newTestView(t, "ab\ncd", Size{Height: 3, Width: 4})

	r := &recordingRenderer{}
	require.True(t, v.Render(r))
	assert.Equal(t, map[int]string{0: "ab", 1: "cd", 2: "~"}, r.rows)
	assert.Equal(t, 3, r.n)
	assert.False(t, v.NeedsRedraw())

	assert.False(t, v.Render(r), "nothing changed")
	assert.Equal(t, 3, r.n)

	run(t, v, Move{Direction: Right})
	assert.False(t, v.Render(r), "cursor move inside the window")

	run(t, v, InsertChar{Char: 'x'})
	require.True(t, v.Render(r))
	assert.Equal(t, "axb", r.rows[0])

	v.Resize(Size{Height: 1, Width: 2})
	r = &recordingRenderer{}
	require.True(t, v.Render(r))
	assert.Equal(t, map[int]string{0: "xb"}, r.rows, "cursor at column 2 scrolls one column")
}

func TestView_RenderAfterScroll(t *testing.T) {
	v, _ := newTestView(t, "0\n1\n2\n3", Size{Height: 2, Width: 4})
	v.Render(RendererFunc(func(int, string) {}))

	run(t, v, Move{Direction: Down}, Move{Direction: Down})
	require.True(t, v.NeedsRedraw())

	var got []string
	v.Render(RendererFunc(func(row int, text string) { got = append(got, text) }))
	assert.Equal(t, []string{"1", "2"}, got)
}

func TestView_VisibleRowsClipsWideGlyphs(t *testing.T) {
	v, _ := newTestView(t, "a世b\n\tx", Size{Height: 3, Width: 2})

	assert.Equal(t, []string{"a⋯", "→x", "~"}, v.VisibleRows())

	v.cfg.EmptyRowMarker = "·"
	assert.Equal(t, "·", v.VisibleRows()[2])
}
