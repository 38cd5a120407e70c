package reflow

import (
	"github.com/tsawler/reflow/layout"
)

// DefaultMaxPages is the page cap applied when no explicit limit is set.
// Pages beyond the cap are skipped and a warning is recorded.
const DefaultMaxPages = 20

// ReconstructOptions holds configuration for document reconstruction.
type ReconstructOptions struct {
	// Page limiting
	maxPages int

	// Concurrency (1 means sequential)
	parallelism int

	// Layout engine tuning
	config layout.Config

	// Output formatting
	pageMarkers bool
}

// defaultOptions returns the default reconstruction options.
func defaultOptions() ReconstructOptions {
	return ReconstructOptions{
		maxPages:    DefaultMaxPages,
		parallelism: 1,
		config:      layout.DefaultConfig(),
		pageMarkers: true,
	}
}

// clone creates a copy of ReconstructOptions.
func (o ReconstructOptions) clone() ReconstructOptions {
	return ReconstructOptions{
		maxPages:    o.maxPages,
		parallelism: o.parallelism,
		config:      o.config,
		pageMarkers: o.pageMarkers,
	}
}
