package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Clusters that never merge with a neighbouring ASCII letter.
var stableRunes = []rune("abcXYZ019 .,;世界テ\t")

func stableText() *rapid.Generator[string] {
	return rapid.StringOf(rapid.SampledFrom(stableRunes))
}

func TestLine_Property_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "text")
		l := NewLine(s)

		var raw string
		for _, f := range l.Fragments() {
			raw += f.Grapheme
		}
		require.Equal(t, s, raw)
		require.Equal(t, s, l.String())
	})
}

func TestLine_Property_InsertThenDeleteIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := stableText().Draw(t, "text")
		l := NewLine(s)
		before := l.Fragments()

		i := rapid.IntRange(0, l.GraphemeCount()).Draw(t, "index")
		c := rapid.SampledFrom([]rune("abcXYZ")).Draw(t, "char")

		l.InsertChar(c, i)
		require.Equal(t, len(before)+1, l.GraphemeCount())
		l.Delete(i)

		require.Equal(t, s, l.String())
		require.Equal(t, before, l.Fragments())
	})
}

func TestLine_Property_WidthUntilMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := NewLine(rapid.String().Draw(t, "text"))
		prev := l.WidthUntil(0)
		require.Equal(t, 0, prev)
		for i := 1; i <= l.GraphemeCount()+1; i++ {
			w := l.WidthUntil(i)
			require.GreaterOrEqual(t, w, prev, "WidthUntil(%d) < WidthUntil(%d)", i, i-1)
			prev = w
		}
	})
}

func TestLine_Property_VisibleGraphemesFitsRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := NewLine(stableText().Draw(t, "text"))
		start := rapid.IntRange(0, 40).Draw(t, "start")
		end := rapid.IntRange(0, 40).Draw(t, "end")

		got := NewLine(l.VisibleGraphemes(start, end))
		span := 0
		if end > start {
			span = end - start
		}
		require.LessOrEqual(t, got.Width(), span)
	})
}

func TestBuffer_Property_TextRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.SliceOf(stableText()).Draw(t, "rows")
		text := strings.Join(rows, "\n")

		// A trailing line break does not open another line.
		want := rows
		if n := len(rows); n > 0 && rows[n-1] == "" {
			want = rows[:n-1]
		}

		b := New(text)
		require.Equal(t, len(want), b.Height())
		require.Equal(t, strings.Join(want, "\n"), b.Text())
	})
}
