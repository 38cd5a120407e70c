package layout

import (
	"strings"

	"github.com/tsawler/reflow/source"
)

// Token is a positioned unit of text in page-local coordinates: origin
// top-left, Y increasing down the page. Invariants: Width >= 0 and Text is
// non-empty after trimming.
type Token struct {
	// Text is the token's text content
	Text string

	// X and Y are the token's top-left position in page-local space
	X float64
	Y float64

	// Width and Height are the token's extents
	Width  float64
	Height float64

	// ExplicitBreak is true if the rendering engine forced a break after
	// this token
	ExplicitBreak bool
}

// Right returns the token's right edge
func (t Token) Right() float64 {
	return t.X + t.Width
}

// Bottom returns the token's bottom edge
func (t Token) Bottom() float64 {
	return t.Y + t.Height
}

// CenterX returns the token's horizontal center
func (t Token) CenterX() float64 {
	return t.X + t.Width/2
}

// Normalizer converts raw rendering-engine runs into page-local tokens.
// It flips the native bottom-left-origin Y once at ingestion, trims text,
// discards empty runs, and drops the header and footer bands.
type Normalizer struct {
	config Config
}

// NewNormalizer creates a normalizer with default configuration
func NewNormalizer() *Normalizer {
	return &Normalizer{config: DefaultConfig()}
}

// NewNormalizerWithConfig creates a normalizer with custom configuration
func NewNormalizerWithConfig(config Config) *Normalizer {
	return &Normalizer{config: config}
}

// Normalize converts and filters raw runs. An all-filtered result is an
// empty slice, never an error.
func (n *Normalizer) Normalize(runs []source.RawRun, vp source.Viewport) []Token {
	if len(runs) == 0 {
		return nil
	}

	headerBand := n.config.HeaderFraction * vp.Height
	footerBand := n.config.FooterFraction * vp.Height

	tokens := make([]Token, 0, len(runs))
	for _, run := range runs {
		text := strings.TrimSpace(run.Text)
		if text == "" {
			continue
		}

		width := run.Width
		if width < 0 {
			width = 0
		}

		// Flip into top-left-origin space.
		y := vp.Height - run.Y

		if y < headerBand || y > footerBand {
			continue
		}

		tokens = append(tokens, Token{
			Text:          text,
			X:             run.X,
			Y:             y,
			Width:         width,
			Height:        run.Height,
			ExplicitBreak: run.ExplicitBreak,
		})
	}

	return tokens
}
