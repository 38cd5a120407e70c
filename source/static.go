package source

import (
	"context"
	"fmt"
)

// StaticPage is an in-memory PageSource. It is the canonical test fixture
// and the backing store for adapters that parse a whole document up front.
type StaticPage struct {
	// Runs are the page's positioned text runs in native coordinates
	Runs []RawRun

	// Size is the page viewport at 1.0 scale
	Size Viewport

	// Operators are the page's drawing-operator codes, if known
	Operators []string
}

// PositionedText returns the page's runs
func (p *StaticPage) PositionedText(_ context.Context) ([]RawRun, error) {
	return p.Runs, nil
}

// Viewport returns the page dimensions
func (p *StaticPage) Viewport(_ context.Context) (Viewport, error) {
	return p.Size, nil
}

// DrawingOperators returns the operator summary, or nil if none was recorded
func (p *StaticPage) DrawingOperators(_ context.Context) (*OperatorSummary, error) {
	if len(p.Operators) == 0 {
		return nil, nil
	}
	return &OperatorSummary{Operators: p.Operators}, nil
}

// StaticDocument is an in-memory DocumentSource backed by StaticPages.
type StaticDocument struct {
	Pages []*StaticPage
}

// NewStaticDocument creates a document source from pre-built pages
func NewStaticDocument(pages ...*StaticPage) *StaticDocument {
	return &StaticDocument{Pages: pages}
}

// PageCount returns the number of pages
func (d *StaticDocument) PageCount(_ context.Context) (int, error) {
	return len(d.Pages), nil
}

// Page returns the page at the given 0-based index
func (d *StaticDocument) Page(_ context.Context, index int) (PageSource, error) {
	if index < 0 || index >= len(d.Pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.Pages))
	}
	return d.Pages[index], nil
}
