package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/reflow/model"
)

// hyphenBreak matches a word fragment broken across a line boundary:
// a word character, a trailing hyphen, the break whitespace, and the
// continuation's first word character.
var hyphenBreak = regexp.MustCompile(`([\pL\pN])-\s+([\pL\pN])`)

// JoinLines merges consecutive lines of one paragraph into flowing text:
// lines are joined with single spaces, trailing-hyphen line breaks are
// repaired ("algo-" + "rithm" -> "algorithm"), and whitespace runs collapse
// to one space.
func JoinLines(lines []Line) string {
	if len(lines) == 0 {
		return ""
	}

	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = line.Text()
	}

	joined := strings.Join(parts, " ")
	joined = hyphenBreak.ReplaceAllString(joined, "$1$2")
	return strings.Join(strings.Fields(joined), " ")
}

// ParagraphBuilder is the streaming reducer that accumulates the lines of
// the current paragraph between join boundaries.
type ParagraphBuilder struct {
	lines []Line
	start int
}

// NewParagraphBuilder creates an empty paragraph builder
func NewParagraphBuilder() *ParagraphBuilder {
	return &ParagraphBuilder{start: -1}
}

// Add appends a line to the in-progress paragraph
func (b *ParagraphBuilder) Add(line Line) {
	if len(b.lines) == 0 {
		b.start = line.Index
	}
	b.lines = append(b.lines, line)
}

// Empty reports whether the builder holds no lines
func (b *ParagraphBuilder) Empty() bool {
	return len(b.lines) == 0
}

// Lines returns the accumulated lines without flushing
func (b *ParagraphBuilder) Lines() []Line {
	return b.lines
}

// Flush joins the accumulated lines and resets the builder. The returned
// bool is false when nothing was accumulated.
func (b *ParagraphBuilder) Flush() (string, model.LineRange, []Line, bool) {
	if len(b.lines) == 0 {
		return "", model.LineRange{}, nil, false
	}

	text := JoinLines(b.lines)
	rng := model.LineRange{
		Start: b.start,
		End:   b.lines[len(b.lines)-1].Index + 1,
	}
	lines := b.lines

	b.lines = nil
	b.start = -1
	return text, rng, lines, true
}
