package layout

// defaultLineHeight stands in for the nominal line height when a line
// carries no usable height information.
const defaultLineHeight = 12.0

// Config consolidates every threshold the reconstruction pipeline uses.
// One Config value is passed into the pipeline rather than scattering
// per-function constants.
type Config struct {
	// HeaderFraction is the top band of the page, as a fraction of page
	// height, assumed to contain headers and discarded (default: 0.05)
	HeaderFraction float64

	// FooterFraction is the start of the bottom band, as a fraction of page
	// height; tokens below it are assumed footers and discarded
	// (default: 0.94)
	FooterFraction float64

	// LineTolerance is the minimum Y-distance, in layout units, for a token
	// to start a new line (default: 3.0)
	LineTolerance float64

	// LineToleranceFactor scales token height into a Y tolerance; the
	// effective tolerance is the larger of LineTolerance and
	// height * LineToleranceFactor (default: 0.5)
	LineToleranceFactor float64

	// CoalesceGapFactor scales the accumulator's height into the maximum
	// horizontal gap across which adjacent fragments are merged
	// (default: 0.5)
	CoalesceGapFactor float64

	// ParagraphGapMultiplier scales line height into the vertical gap that
	// separates paragraphs (default: 1.5)
	ParagraphGapMultiplier float64

	// VisualGapMultiplier scales line height into the vertical gap that,
	// together with a true visual signal, produces a figure placeholder
	// (default: 4.0)
	VisualGapMultiplier float64

	// TableGapThreshold is the minimum intra-line horizontal gap, in layout
	// units, for a line to classify as a table row (default: 20.0)
	TableGapThreshold float64

	// TableMinTokens is the token count a line must exceed before table
	// detection applies (default: 2)
	TableMinTokens int

	// ColumnBalanceFraction is the fraction of tokens that must sit in each
	// of the left and right bands before two columns are declared
	// (default: 0.30)
	ColumnBalanceFraction float64

	// ForceSingleColumn disables two-column detection entirely; every page
	// is linearized as one column (default: false)
	ForceSingleColumn bool

	// HeadingHeightRatio is the ratio of line height to the page median
	// height above which a short, isolated line classifies as a heading
	// (default: 1.2)
	HeadingHeightRatio float64

	// HeadingMaxWords is the maximum word count for a heading line
	// (default: 8)
	HeadingMaxWords int
}

// DefaultConfig returns the consolidated default thresholds
func DefaultConfig() Config {
	return Config{
		HeaderFraction:         0.05,
		FooterFraction:         0.94,
		LineTolerance:          3.0,
		LineToleranceFactor:    0.5,
		CoalesceGapFactor:      0.5,
		ParagraphGapMultiplier: 1.5,
		VisualGapMultiplier:    4.0,
		TableGapThreshold:      20.0,
		TableMinTokens:         2,
		ColumnBalanceFraction:  0.30,
		HeadingHeightRatio:     1.2,
		HeadingMaxWords:        8,
	}
}

// lineToleranceFor returns the effective Y tolerance for a token height
func (c Config) lineToleranceFor(height float64) float64 {
	t := height * c.LineToleranceFactor
	if t < c.LineTolerance {
		return c.LineTolerance
	}
	return t
}
