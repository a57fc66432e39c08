package workspace

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/syntax"
)

// LineIndex converts between byte offsets and protocol positions, whose
// columns count UTF-16 code units.
type LineIndex struct {
	text   string
	starts []int
}

// NewLineIndex indexes the line starts of text.
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{text: text, starts: starts}
}

// Position returns the line and UTF-16 column of offset. Offsets outside the
// text are clamped.
func (l *LineIndex) Position(offset int) protocol.Position {
	offset = max(0, min(offset, len(l.text)))
	line := sort.Search(len(l.starts), func(i int) bool { return l.starts[i] > offset }) - 1

	character := 0
	for _, r := range l.text[l.starts[line]:offset] {
		character += utf16Len(r)
	}
	return protocol.Position{Line: line, Character: character}
}

// Offset returns the byte offset of pos. A column past the end of its line
// clamps to the line end; a line outside the text reports false.
func (l *LineIndex) Offset(pos protocol.Position) (int, bool) {
	if pos.Line < 0 || pos.Line >= len(l.starts) || pos.Character < 0 {
		return 0, false
	}

	start := l.starts[pos.Line]
	end := len(l.text)
	if pos.Line+1 < len(l.starts) {
		end = l.starts[pos.Line+1] - 1
		if end > start && l.text[end-1] == '\r' {
			end--
		}
	}

	offset, character := start, 0
	for offset < end && character < pos.Character {
		r, size := utf8.DecodeRuneInString(l.text[offset:end])
		character += utf16Len(r)
		offset += size
	}
	return offset, true
}

// Range converts a byte range into a protocol range.
func (l *LineIndex) Range(r syntax.TextRange) protocol.Range {
	return protocol.Range{Start: l.Position(r.Start), End: l.Position(r.End)}
}

func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
