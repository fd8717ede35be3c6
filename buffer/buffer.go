package buffer

import "strings"

// Buffer is the pure document state: an ordered list of lines.
type Buffer struct {
	lines   []Line
	version uint64
	dirty   bool
}

// New builds a Buffer from source text, one Line per "\n"-terminated row.
//
// A trailing line break does not produce an empty last line, and a "\r"
// before each break is dropped. Empty text yields an empty buffer.
func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

// Text serializes the buffer: line contents joined by "\n".
func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.lines[i].String())
	}
	return sb.String()
}

// Height returns the number of lines.
func (b *Buffer) Height() int { return len(b.lines) }

// Line returns the line at index for read-only use.
func (b *Buffer) Line(index int) (*Line, bool) {
	if index < 0 || index >= len(b.lines) {
		return nil, false
	}
	return &b.lines[index], true
}

// LineLen returns the grapheme count of a line, or 0 when it does not exist.
func (b *Buffer) LineLen(index int) int {
	if l, ok := b.Line(index); ok {
		return l.GraphemeCount()
	}
	return 0
}

// Version increments on every text change.
func (b *Buffer) Version() uint64 { return b.version }

// Dirty reports whether the buffer changed since it was loaded or last
// marked clean.
func (b *Buffer) Dirty() bool { return b.dirty }

// MarkClean clears the dirty flag, typically after a successful save.
func (b *Buffer) MarkClean() { b.dirty = false }

func (b *Buffer) touch() {
	b.version++
	b.dirty = true
}

func splitLines(text string) []Line {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	lines := make([]Line, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, NewLine(strings.TrimSuffix(s, "\r")))
	}
	return lines
}
