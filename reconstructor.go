package reflow

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/reflow/layout"
	"github.com/tsawler/reflow/model"
	"github.com/tsawler/reflow/source"
)

// Reconstructor provides a fluent interface for turning a rendered
// document's positional text into ordered, typed blocks.
// Each configuration method returns a new Reconstructor instance, making
// it safe for concurrent use and allowing method chaining.
type Reconstructor struct {
	source  source.DocumentSource
	options ReconstructOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Reconstructor with a deep copy of
// options. This ensures immutability, each chain method returns a new
// instance.
func (r *Reconstructor) clone() *Reconstructor {
	return &Reconstructor{
		source:  r.source,
		options: r.options.clone(),
		err:     r.err,
	}
}

// ============================================================================
// Configuration Methods (return new Reconstructor instance)
// ============================================================================

// MaxPages limits reconstruction to the first n pages of the document.
// Longer documents are truncated and a warning is recorded. The default
// limit is DefaultMaxPages.
//
// Example:
//
//	pages, warnings, err := reflow.From(src).MaxPages(5).Pages(ctx)
func (r *Reconstructor) MaxPages(n int) *Reconstructor {
	newRec := r.clone()
	if n < 1 {
		newRec.err = fmt.Errorf("max pages must be at least 1, got %d", n)
		return newRec
	}
	newRec.options.maxPages = n
	return newRec
}

// Parallel processes up to n pages concurrently. Page order in the result
// is unaffected. Values below 2 leave processing sequential.
//
// Example:
//
//	pages, warnings, err := reflow.From(src).Parallel(4).Pages(ctx)
func (r *Reconstructor) Parallel(n int) *Reconstructor {
	newRec := r.clone()
	if n < 1 {
		n = 1
	}
	newRec.options.parallelism = n
	return newRec
}

// WithConfig replaces the layout engine configuration used for every page.
//
// Example:
//
//	cfg := layout.DefaultConfig()
//	cfg.TableGapThreshold = 30
//	pages, _, err := reflow.From(src).WithConfig(cfg).Pages(ctx)
func (r *Reconstructor) WithConfig(cfg layout.Config) *Reconstructor {
	newRec := r.clone()
	newRec.options.config = cfg
	return newRec
}

// PageMarkers controls whether Text output separates pages with a
// "--- Page N ---" marker line. Markers are on by default.
func (r *Reconstructor) PageMarkers(enabled bool) *Reconstructor {
	newRec := r.clone()
	newRec.options.pageMarkers = enabled
	return newRec
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the total number of pages the source reports, before
// any MaxPages truncation.
func (r *Reconstructor) PageCount(ctx context.Context) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.source.PageCount(ctx)
}

// Pages reconstructs the configured pages and returns one result per page,
// in document order.
//
// Returns the page results, any warnings encountered during processing,
// and an error if a page source failed. Warnings indicate non-fatal issues
// (e.g. a page with no drawing operator summary) where reconstruction
// succeeded but results may be imperfect.
//
// Example:
//
//	pages, warnings, err := reflow.From(src).Pages(ctx)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", reflow.FormatWarnings(warnings))
//	}
func (r *Reconstructor) Pages(ctx context.Context) ([]model.PageResult, []Warning, error) {
	if r.err != nil {
		return nil, nil, r.err
	}

	total, err := r.source.PageCount(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("counting pages: %w", err)
	}
	if total == 0 {
		return nil, nil, nil
	}

	count := total
	var warnings []Warning
	if count > r.options.maxPages {
		count = r.options.maxPages
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("document has %d pages; processing first %d", total, count),
		})
	}

	results := make([]model.PageResult, count)
	pageWarnings := make([][]Warning, count)
	engine := layout.NewEngineWithConfig(r.options.config)

	if r.options.parallelism > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.options.parallelism)
		for i := 0; i < count; i++ {
			i := i
			g.Go(func() error {
				result, ws, err := r.reconstructPage(gctx, engine, i)
				if err != nil {
					return err
				}
				results[i] = result
				pageWarnings[i] = ws
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	} else {
		for i := 0; i < count; i++ {
			result, ws, err := r.reconstructPage(ctx, engine, i)
			if err != nil {
				return nil, nil, err
			}
			results[i] = result
			pageWarnings[i] = ws
		}
	}

	for _, ws := range pageWarnings {
		warnings = append(warnings, ws...)
	}

	return results, warnings, nil
}

// Text reconstructs the configured pages and returns their text joined in
// document order. Pages are separated by "--- Page N ---" marker lines
// unless PageMarkers(false) was set, in which case a blank line separates
// them.
//
// Example:
//
//	text, warnings, err := reflow.From(src).Text(ctx)
func (r *Reconstructor) Text(ctx context.Context) (string, []Warning, error) {
	pages, warnings, err := r.Pages(ctx)
	if err != nil {
		return "", warnings, err
	}

	var sb strings.Builder
	for i, page := range pages {
		if r.options.pageMarkers {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			fmt.Fprintf(&sb, "--- Page %d ---", page.Number)
			if text := page.Text(); text != "" {
				sb.WriteString("\n")
				sb.WriteString(text)
			}
			continue
		}

		text := page.Text()
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}

	return sb.String(), warnings, nil
}

// reconstructPage pulls one page's inputs from the source and runs the
// layout engine over them.
func (r *Reconstructor) reconstructPage(ctx context.Context, engine *layout.Engine, index int) (model.PageResult, []Warning, error) {
	page, err := r.source.Page(ctx, index)
	if err != nil {
		return model.PageResult{}, nil, fmt.Errorf("page %d: %w", index+1, err)
	}

	runs, err := page.PositionedText(ctx)
	if err != nil {
		return model.PageResult{}, nil, fmt.Errorf("page %d: positioned text: %w", index+1, err)
	}

	viewport, err := page.Viewport(ctx)
	if err != nil {
		return model.PageResult{}, nil, fmt.Errorf("page %d: viewport: %w", index+1, err)
	}

	summary, err := page.DrawingOperators(ctx)
	if err != nil {
		return model.PageResult{}, nil, fmt.Errorf("page %d: drawing operators: %w", index+1, err)
	}

	var warnings []Warning
	if summary == nil {
		warnings = append(warnings, Warning{
			Page:    index + 1,
			Message: "no drawing operator summary; visual regions will not be detected",
		})
	}

	result := engine.Reconstruct(runs, viewport, summary)
	result.Number = index + 1
	return *result, warnings, nil
}
