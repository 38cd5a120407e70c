// Package layout reconstructs human reading order from a page's unordered,
// positional text runs. The pipeline runs strictly top to bottom, once per
// page:
//
//	normalize -> coalesce -> segment columns -> assemble lines ->
//	visual signal -> classify blocks -> join paragraphs
//
// Columns are processed independently and concatenated, left column first.
// The engine is a pure, synchronous transformation over one page's tokens:
// it holds no shared mutable state, never returns an error, and resolves
// malformed or sparse input to safe defaults (empty result, single column,
// paragraph classification). Independent pages may therefore be
// reconstructed concurrently by the caller without coordination.
package layout
