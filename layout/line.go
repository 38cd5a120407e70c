package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/reflow/model"
)

// Line is an ordered sequence of tokens sharing one vertical band.
// Invariant: tokens are sorted ascending by X.
type Line struct {
	// Tokens are the line's tokens, left to right
	Tokens []Token

	// Index is the line's position in the page's global line stream,
	// assigned after columns are concatenated
	Index int
}

// Y returns the line's top edge (minimum token Y)
func (l Line) Y() float64 {
	if len(l.Tokens) == 0 {
		return 0
	}
	y := l.Tokens[0].Y
	for _, tok := range l.Tokens[1:] {
		if tok.Y < y {
			y = tok.Y
		}
	}
	return y
}

// Bottom returns the line's bottom edge (maximum token bottom)
func (l Line) Bottom() float64 {
	if len(l.Tokens) == 0 {
		return 0
	}
	bottom := l.Tokens[0].Bottom()
	for _, tok := range l.Tokens[1:] {
		if tok.Bottom() > bottom {
			bottom = tok.Bottom()
		}
	}
	return bottom
}

// Height returns the maximum token height on the line
func (l Line) Height() float64 {
	var h float64
	for _, tok := range l.Tokens {
		if tok.Height > h {
			h = tok.Height
		}
	}
	return h
}

// BBox returns the union of the line's token boxes
func (l Line) BBox() model.BBox {
	if len(l.Tokens) == 0 {
		return model.BBox{}
	}

	box := tokenBBox(l.Tokens[0])
	for _, tok := range l.Tokens[1:] {
		box = box.Union(tokenBBox(tok))
	}
	return box
}

func tokenBBox(tok Token) model.BBox {
	return model.NewBBox(tok.X, tok.Y, tok.Width, tok.Height)
}

// Text returns the line's tokens joined with single spaces
func (l Line) Text() string {
	parts := make([]string, len(l.Tokens))
	for i, tok := range l.Tokens {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}

// WordCount returns the number of whitespace-separated words on the line
func (l Line) WordCount() int {
	return len(strings.Fields(l.Text()))
}

// MaxGap returns the largest horizontal gap between consecutive tokens
func (l Line) MaxGap() float64 {
	var max float64
	for i := 1; i < len(l.Tokens); i++ {
		gap := l.Tokens[i].X - l.Tokens[i-1].Right()
		if gap > max {
			max = gap
		}
	}
	return max
}

// Cells groups the line's tokens into table cells, splitting wherever the
// horizontal gap between consecutive tokens exceeds the threshold. Tokens
// within a cell are joined with single spaces.
func (l Line) Cells(gapThreshold float64) []string {
	if len(l.Tokens) == 0 {
		return nil
	}

	var cells []string
	var cell []string

	cell = append(cell, l.Tokens[0].Text)
	for i := 1; i < len(l.Tokens); i++ {
		gap := l.Tokens[i].X - l.Tokens[i-1].Right()
		if gap > gapThreshold {
			cells = append(cells, strings.Join(cell, " "))
			cell = cell[:0]
		}
		cell = append(cell, l.Tokens[i].Text)
	}

	return append(cells, strings.Join(cell, " "))
}

// LineBuilder is the streaming reducer that accumulates a current line.
// Add returns the just-closed line when a token starts a new one; Flush
// closes out the final accumulator.
type LineBuilder struct {
	config  Config
	current []Token
	anchorY float64
}

// NewLineBuilder creates a line builder
func NewLineBuilder(config Config) *LineBuilder {
	return &LineBuilder{config: config}
}

// Add feeds one token to the reducer. The returned bool is true when the
// token closed the previous line, which is returned with its tokens
// re-sorted ascending by X.
func (b *LineBuilder) Add(tok Token) (Line, bool) {
	if len(b.current) == 0 {
		b.current = []Token{tok}
		b.anchorY = tok.Y
		return Line{}, false
	}

	dy := tok.Y - b.anchorY
	if dy < 0 {
		dy = -dy
	}

	// A forced break on the previous token also ends the line.
	forced := b.current[len(b.current)-1].ExplicitBreak

	if !forced && dy <= b.config.lineToleranceFor(tok.Height) {
		b.current = append(b.current, tok)
		return Line{}, false
	}

	closed := b.close()
	b.current = []Token{tok}
	b.anchorY = tok.Y
	return closed, true
}

// Flush closes and returns the in-progress line, if any
func (b *LineBuilder) Flush() (Line, bool) {
	if len(b.current) == 0 {
		return Line{}, false
	}
	closed := b.close()
	b.current = nil
	return closed, true
}

// close freezes the accumulator into a Line. Tokens are re-sorted by X:
// intra-column sort order can drift during accumulation, and the Line
// invariant requires ascending X.
func (b *LineBuilder) close() Line {
	tokens := make([]Token, len(b.current))
	copy(tokens, b.current)
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].X < tokens[j].X
	})
	return Line{Tokens: tokens}
}

// LineAssembler buckets a column's tokens into lines by vertical proximity
type LineAssembler struct {
	config Config
}

// NewLineAssembler creates an assembler with default configuration
func NewLineAssembler() *LineAssembler {
	return &LineAssembler{config: DefaultConfig()}
}

// NewLineAssemblerWithConfig creates an assembler with custom configuration
func NewLineAssemblerWithConfig(config Config) *LineAssembler {
	return &LineAssembler{config: config}
}

// Assemble sorts the column's tokens by (Y, X) and streams them through a
// LineBuilder. Lines come back sorted top to bottom; indices are assigned
// later, once columns are concatenated.
func (a *LineAssembler) Assemble(tokens []Token) []Line {
	if len(tokens) == 0 {
		return nil
	}

	sorted := make([]Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	builder := NewLineBuilder(a.config)
	var lines []Line

	for _, tok := range sorted {
		if closed, ok := builder.Add(tok); ok {
			lines = append(lines, closed)
		}
	}
	if closed, ok := builder.Flush(); ok {
		lines = append(lines, closed)
	}

	return lines
}
