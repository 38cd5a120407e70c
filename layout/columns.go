package layout

// Band edges for the column occupancy histogram. Tokens whose centers fall
// between the two edges count as "center" mass and vote for neither side.
const (
	leftBandFraction  = 0.45
	rightBandFraction = 0.55
	columnSplit       = 0.5
)

// Column is an ordered group of tokens forming one reading-order stream on
// a multi-column page.
type Column struct {
	// Index is the column's reading-order position (0 = leftmost)
	Index int

	// Tokens assigned to this column
	Tokens []Token
}

// ColumnSegmenter classifies a page as single- or dual-column using a
// horizontal occupancy histogram and partitions tokens accordingly.
type ColumnSegmenter struct {
	config Config
}

// NewColumnSegmenter creates a segmenter with default configuration
func NewColumnSegmenter() *ColumnSegmenter {
	return &ColumnSegmenter{config: DefaultConfig()}
}

// NewColumnSegmenterWithConfig creates a segmenter with custom configuration
func NewColumnSegmenterWithConfig(config Config) *ColumnSegmenter {
	return &ColumnSegmenter{config: config}
}

// Segment partitions tokens into one or two columns. Ambiguous pages
// (heavy center mass, unbalanced sides) fall back to a single column, which
// biases toward preserving reading order over splitting it. The union of
// the returned columns' tokens is exactly the input set; no token appears
// in two columns.
func (s *ColumnSegmenter) Segment(tokens []Token, pageWidth float64) []Column {
	if len(tokens) == 0 {
		return nil
	}

	if !s.IsTwoColumn(tokens, pageWidth) {
		return []Column{{Index: 0, Tokens: tokens}}
	}

	// Stable partition at the page midline.
	var left, right []Token
	for _, tok := range tokens {
		if AssignColumn(tok, pageWidth) == 0 {
			left = append(left, tok)
		} else {
			right = append(right, tok)
		}
	}

	return []Column{
		{Index: 0, Tokens: left},
		{Index: 1, Tokens: right},
	}
}

// IsTwoColumn reports whether the page qualifies as dual-column: both the
// left and right band counts must exceed the balance fraction of all
// tokens. The two-sided threshold avoids false positives on pages with a
// few centered captions.
func (s *ColumnSegmenter) IsTwoColumn(tokens []Token, pageWidth float64) bool {
	if s.config.ForceSingleColumn {
		return false
	}
	if len(tokens) == 0 || pageWidth <= 0 {
		return false
	}

	leftEdge := leftBandFraction * pageWidth
	rightEdge := rightBandFraction * pageWidth

	var left, right int
	for _, tok := range tokens {
		cx := tok.CenterX()
		switch {
		case cx < leftEdge:
			left++
		case cx > rightEdge:
			right++
		}
	}

	minimum := int(s.config.ColumnBalanceFraction * float64(len(tokens)))
	return left > minimum && right > minimum
}

// AssignColumn is the pure partition function for a declared two-column
// page: 0 for tokens whose center is left of the page midline, 1 otherwise.
func AssignColumn(tok Token, pageWidth float64) int {
	if tok.CenterX() < columnSplit*pageWidth {
		return 0
	}
	return 1
}
