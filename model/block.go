package model

import "strings"

// BlockType classifies a reconstructed block of page content
type BlockType int

const (
	Paragraph BlockType = iota
	Heading
	TableRow
	FigurePlaceholder
)

// String returns a string representation of the block type
func (t BlockType) String() string {
	switch t {
	case Heading:
		return "heading"
	case TableRow:
		return "table-row"
	case FigurePlaceholder:
		return "figure-placeholder"
	default:
		return "paragraph"
	}
}

// LineRange identifies the half-open range [Start, End) of line indices,
// in the page's assembled line stream, that a block was built from.
type LineRange struct {
	Start int
	End   int
}

// Len returns the number of lines covered by the range
func (r LineRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Block represents a typed, merged unit of output text
type Block struct {
	// Type is the block classification
	Type BlockType

	// Text is the assembled text content. Table rows are rendered as a
	// delimiter-joined cell sequence ("| cell | cell |"); all other types
	// carry space-joined prose.
	Text string

	// SourceLines is the range of line indices this block was built from
	SourceLines LineRange
}

// IsHeading returns true if this block is a heading
func (b Block) IsHeading() bool {
	return b.Type == Heading
}

// IsTableRow returns true if this block is a table row
func (b Block) IsTableRow() bool {
	return b.Type == TableRow
}

// IsPlaceholder returns true if this block stands in for visual content
func (b Block) IsPlaceholder() bool {
	return b.Type == FigurePlaceholder
}

// WordCount returns an approximate word count for the block
func (b Block) WordCount() int {
	if b.Text == "" {
		return 0
	}
	return len(strings.Fields(b.Text))
}

// VisualSignal carries the page-level drawing-operator booleans. It says
// only that the page painted an image or constructed vector paths; it does
// not locate them. Missing operator data degrades to the zero value.
type VisualSignal struct {
	// HasImagePaint is true if any image-paint operator was seen
	HasImagePaint bool

	// HasVectorPath is true if any path construction or stroke operator was seen
	HasVectorPath bool
}

// Any returns true if either signal is set
func (v VisualSignal) Any() bool {
	return v.HasImagePaint || v.HasVectorPath
}

// PageResult is the ordered block sequence reconstructed for one page.
// It is immutable once produced; callers consume it without mutation.
type PageResult struct {
	// Number is the 1-based page number
	Number int

	// Blocks are the reconstructed blocks in reading order
	Blocks []Block

	// Width and Height are the page dimensions at 1.0 scale
	Width  float64
	Height float64

	// Signal is the visual signal the classifier consumed
	Signal VisualSignal
}

// IsEmpty returns true if the page produced no blocks
func (p *PageResult) IsEmpty() bool {
	return p == nil || len(p.Blocks) == 0
}

// BlockCount returns the number of blocks on the page
func (p *PageResult) BlockCount() int {
	if p == nil {
		return 0
	}
	return len(p.Blocks)
}

// BlocksByType returns the blocks with the given type, in reading order
func (p *PageResult) BlocksByType(t BlockType) []Block {
	if p == nil {
		return nil
	}

	var result []Block
	for _, b := range p.Blocks {
		if b.Type == t {
			result = append(result, b)
		}
	}
	return result
}

// Headings returns all heading blocks on the page
func (p *PageResult) Headings() []Block {
	return p.BlocksByType(Heading)
}

// TableRows returns all table-row blocks on the page
func (p *PageResult) TableRows() []Block {
	return p.BlocksByType(TableRow)
}

// Text returns the page's blocks joined with blank lines. Placeholder
// insertion can produce doubled blank-line markers at block seams; runs of
// three or more newlines are repaired to a single blank line.
func (p *PageResult) Text() string {
	if p == nil || len(p.Blocks) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, b := range p.Blocks {
		sb.WriteString(b.Text)
		if i < len(p.Blocks)-1 {
			sb.WriteString("\n\n")
		}
	}

	return collapseBlankRuns(sb.String())
}

// collapseBlankRuns reduces runs of 3+ newlines to a paragraph break
func collapseBlankRuns(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
