// Package reflow reconstructs the reading layout of rendered pages. Given
// the unordered positional text a rendering engine reports for each page,
// it rebuilds lines, paragraphs, headings, table rows, and figure
// placeholders in reading order.
//
// Basic usage:
//
//	text, warnings, err := reflow.From(src).Text(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", reflow.FormatWarnings(warnings))
//	}
//
// With options:
//
//	pages, _, err := reflow.From(src).
//	    MaxPages(5).
//	    Parallel(4).
//	    Pages(ctx)
//
// For advanced use cases, the lower-level layout package is also available.
package reflow

import (
	"github.com/tsawler/reflow/source"
)

// From creates a Reconstructor over a document source for fluent
// configuration. Sources are read lazily; nothing is pulled from the
// source until a terminal operation like Pages or Text runs.
//
// Example:
//
//	pages, warnings, err := reflow.From(src).Pages(ctx)
func From(src source.DocumentSource) *Reconstructor {
	return &Reconstructor{
		source:  src,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := reflow.Must(reflow.From(src).PageCount(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text() or Pages() and panics
// if the error is non-nil. It discards warnings and returns just the value.
// It is intended for use in scripts or tests where error handling would be
// cumbersome.
//
// Example:
//
//	text := reflow.MustText(reflow.From(src).Text(ctx))
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
