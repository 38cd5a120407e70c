package layout

import "sort"

// Coalescer merges adjacent, tightly-spaced fragments into word- or
// phrase-level tokens. Rendering engines frequently emit one run per glyph
// or syllable; without coalescing, the word-boundary and table-gap
// heuristics downstream misfire.
type Coalescer struct {
	config Config
}

// NewCoalescer creates a coalescer with default configuration
func NewCoalescer() *Coalescer {
	return &Coalescer{config: DefaultConfig()}
}

// NewCoalescerWithConfig creates a coalescer with custom configuration
func NewCoalescerWithConfig(config Config) *Coalescer {
	return &Coalescer{config: config}
}

// Coalesce sorts tokens by (Y, X) with a same-line tolerance of half the
// token height, then merges each token into the running accumulator while
// it stays on the same line and within the horizontal adjacency gap. The
// accumulator is the only token mutated in place; it is frozen as soon as
// a boundary is detected.
func (c *Coalescer) Coalesce(tokens []Token) []Token {
	if len(tokens) == 0 {
		return nil
	}

	sorted := make([]Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sameLine(sorted[i], sorted[j]) {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	result := make([]Token, 0, len(sorted))
	cur := sorted[0]

	for _, tok := range sorted[1:] {
		if c.mergeable(cur, tok) {
			cur.Text += tok.Text
			if tok.Right() > cur.Right() {
				// Extend width to cover the gap.
				cur.Width = tok.Right() - cur.X
			}
			if tok.Height > cur.Height {
				cur.Height = tok.Height
			}
			cur.ExplicitBreak = cur.ExplicitBreak || tok.ExplicitBreak
			continue
		}

		result = append(result, cur)
		cur = tok
	}

	return append(result, cur)
}

// mergeable reports whether next belongs to the same word or phrase as the
// accumulator: same line and horizontally adjacent within the gap factor.
func (c *Coalescer) mergeable(cur, next Token) bool {
	if !sameLine(cur, next) {
		return false
	}

	height := cur.Height
	if height <= 0 {
		height = defaultLineHeight
	}

	gap := next.X - cur.Right()
	return gap < height*c.config.CoalesceGapFactor
}

// sameLine tests |deltaY| < height/2 against the taller of the two tokens
func sameLine(a, b Token) bool {
	height := a.Height
	if b.Height > height {
		height = b.Height
	}
	if height <= 0 {
		height = defaultLineHeight
	}

	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dy < height/2
}
