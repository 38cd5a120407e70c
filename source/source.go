// Package source defines the contract between the layout reconstruction
// engine and the page-rendering engine that supplies positioned text,
// viewport metadata, and drawing-operator summaries. The rendering engine
// itself is an external collaborator; this package only fixes the shape of
// the data it must deliver, plus an in-memory implementation for tests and
// pre-extracted input.
package source

import "context"

// RawRun is a positioned text run as delivered by the rendering engine,
// in the engine's native bottom-left-origin coordinate space. Runs are
// frequently per-glyph or per-syllable; the layout coalescer reassembles
// them into words.
type RawRun struct {
	// Text is the run's text content, possibly a single glyph
	Text string

	// X and Y position the run in the native bottom-left-origin space
	X float64
	Y float64

	// Width and Height are the run's advance width and nominal height
	Width  float64
	Height float64

	// ExplicitBreak is true if the engine marked a forced break after this run
	ExplicitBreak bool
}

// Viewport holds page dimensions at a fixed 1.0 scale, used purely for
// coordinate normalization.
type Viewport struct {
	Width  float64
	Height float64
}

// OperatorSummary lists the drawing-operator codes seen on a page, in
// stream order. Only presence matters to the layout engine; it never
// attempts to localize the operators.
type OperatorSummary struct {
	Operators []string
}

// PageSource supplies one page's worth of rendering-engine data. The three
// calls are the pipeline's only suspension points; each takes a context so
// callers can bound them.
type PageSource interface {
	// PositionedText returns the page's raw text runs in native coordinates
	PositionedText(ctx context.Context) ([]RawRun, error)

	// Viewport returns the page dimensions at 1.0 scale
	Viewport(ctx context.Context) (Viewport, error)

	// DrawingOperators returns the page's operator summary. A nil summary
	// is valid and degrades the visual signal to all-false, not an error.
	DrawingOperators(ctx context.Context) (*OperatorSummary, error)
}

// DocumentSource supplies pages by index. Implementations wrap a rendering
// engine, a pre-extracted dump, or a parsed hOCR document.
type DocumentSource interface {
	// PageCount returns the number of pages in the document
	PageCount(ctx context.Context) (int, error)

	// Page returns the source for the 0-based page index
	Page(ctx context.Context, index int) (PageSource, error)
}
