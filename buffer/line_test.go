package buffer

import "testing"

func TestNewLine_FragmentsAndReplacements(t *testing.T) {
	l := NewLine("a \tb\x07\u3000e\u0301世\u200b")

	want := []Fragment{
		{Grapheme: "a", Width: Half},
		{Grapheme: " ", Width: Half},
		{Grapheme: "\t", Width: Half, Replacement: TabGlyph},
		{Grapheme: "b", Width: Half},
		{Grapheme: "\x07", Width: Half, Replacement: ControlGlyph},
		{Grapheme: "\u3000", Width: Half, Replacement: BlankGlyph},
		{Grapheme: "e\u0301", Width: Half},
		{Grapheme: "世", Width: Full},
		{Grapheme: "\u200b", Width: Half, Replacement: ZeroWidthGlyph},
	}
	got := l.Fragments()
	if len(got) != len(want) {
		t.Fatalf("fragments=%d, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fragment[%d]=%#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestLine_StringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "abc", "\t\tx", "👨‍👩‍👧‍👦 family", "e\u0301\u0301", "世界"} {
		l := NewLine(s)
		if got := l.String(); got != s {
			t.Fatalf("String()=%q, want %q", got, s)
		}
	}
}

func TestLine_WidthUntil_FullThenHalf(t *testing.T) {
	l := NewLine("世a")
	if got := l.WidthUntil(0); got != 0 {
		t.Fatalf("WidthUntil(0)=%d, want 0", got)
	}
	if got := l.WidthUntil(1); got != 2 {
		t.Fatalf("WidthUntil(1)=%d, want 2", got)
	}
	if got := l.WidthUntil(2); got != 3 {
		t.Fatalf("WidthUntil(2)=%d, want 3", got)
	}
	if got := l.WidthUntil(99); got != 3 {
		t.Fatalf("WidthUntil(99)=%d, want 3", got)
	}
	if got := l.WidthUntil(-1); got != 0 {
		t.Fatalf("WidthUntil(-1)=%d, want 0", got)
	}
	if got := l.Width(); got != 3 {
		t.Fatalf("Width()=%d, want 3", got)
	}
}

func TestLine_VisibleGraphemes(t *testing.T) {
	l := NewLine("abcde")
	if got := l.VisibleGraphemes(1, 3); got != "bc" {
		t.Fatalf("[1,3)=%q, want %q", got, "bc")
	}
	if got := l.VisibleGraphemes(2, 2); got != "" {
		t.Fatalf("[2,2)=%q, want empty", got)
	}
	if got := l.VisibleGraphemes(3, 1); got != "" {
		t.Fatalf("[3,1)=%q, want empty", got)
	}
	if got := l.VisibleGraphemes(0, 99); got != "abcde" {
		t.Fatalf("[0,99)=%q, want %q", got, "abcde")
	}
	if got := l.VisibleGraphemes(5, 10); got != "" {
		t.Fatalf("[5,10)=%q, want empty", got)
	}
}

func TestLine_VisibleGraphemes_ClipsWideFragments(t *testing.T) {
	l := NewLine("a世b")

	// 世 occupies cells 1 and 2.
	if got := l.VisibleGraphemes(0, 2); got != "a⋯" {
		t.Fatalf("[0,2)=%q, want %q", got, "a⋯")
	}
	if got := l.VisibleGraphemes(2, 4); got != "⋯b" {
		t.Fatalf("[2,4)=%q, want %q", got, "⋯b")
	}
	if got := l.VisibleGraphemes(1, 3); got != "世" {
		t.Fatalf("[1,3)=%q, want %q", got, "世")
	}
}

func TestLine_VisibleGraphemes_UsesReplacementGlyphs(t *testing.T) {
	l := NewLine("a\tb")
	if got, want := l.VisibleGraphemes(0, 3), "a→b"; got != want {
		t.Fatalf("visible=%q, want %q", got, want)
	}
}

func TestLine_InsertChar(t *testing.T) {
	l := NewLine("ac")
	l.InsertChar('b', 1)
	if got := l.String(); got != "abc" {
		t.Fatalf("insert mid=%q, want %q", got, "abc")
	}
	l.InsertChar('d', 3)
	if got := l.String(); got != "abcd" {
		t.Fatalf("insert end=%q, want %q", got, "abcd")
	}
	l.InsertChar('z', 99)
	if got := l.String(); got != "abcdz" {
		t.Fatalf("insert past end=%q, want %q", got, "abcdz")
	}
	l.InsertChar('_', -4)
	if got := l.String(); got != "_abcdz" {
		t.Fatalf("insert negative=%q, want %q", got, "_abcdz")
	}
}

func TestLine_InsertChar_MergesCombiningMark(t *testing.T) {
	l := NewLine("ex")
	l.InsertChar('\u0301', 1)

	if got := l.GraphemeCount(); got != 2 {
		t.Fatalf("count=%d, want 2 (combining mark joins the e)", got)
	}
	if got := l.Fragments()[0].Grapheme; got != "e\u0301" {
		t.Fatalf("first=%q, want %q", got, "e\u0301")
	}
}

func TestLine_Delete(t *testing.T) {
	l := NewLine("a世b")
	l.Delete(1)
	if got := l.String(); got != "ab" {
		t.Fatalf("delete=%q, want %q", got, "ab")
	}
	l.Delete(5)
	l.Delete(-1)
	if got := l.String(); got != "ab" {
		t.Fatalf("out-of-range delete changed line to %q", got)
	}
}

func TestLine_Append(t *testing.T) {
	l := NewLine("ab")
	l.Append(NewLine("cd"))
	if got := l.String(); got != "abcd" {
		t.Fatalf("append=%q, want %q", got, "abcd")
	}
	if got := l.GraphemeCount(); got != 4 {
		t.Fatalf("count=%d, want 4", got)
	}
}

func TestLine_Split(t *testing.T) {
	l := NewLine("hello")
	right := l.Split(2)
	if got := l.String(); got != "he" {
		t.Fatalf("left=%q, want %q", got, "he")
	}
	if got := right.String(); got != "llo" {
		t.Fatalf("right=%q, want %q", got, "llo")
	}

	right = l.Split(2)
	if got := right.GraphemeCount(); got != 0 {
		t.Fatalf("split at end returned %q, want empty", right.String())
	}
	if got := l.String(); got != "he" {
		t.Fatalf("split at end changed left to %q", got)
	}

	// The split-off line must not share storage with the left part.
	l = NewLine("abcd")
	right = l.Split(2)
	l.InsertChar('X', 2)
	if got := right.String(); got != "cd" {
		t.Fatalf("right after left edit=%q, want %q", got, "cd")
	}
}
