package layout

import (
	"github.com/tsawler/reflow/model"
	"github.com/tsawler/reflow/source"
)

// Engine runs the full reconstruction pipeline for one page. It is pure
// and synchronous: every entity it creates lives only for the duration of
// one Reconstruct call, so a single Engine may be shared across goroutines
// reconstructing independent pages.
type Engine struct {
	config     Config
	normalizer *Normalizer
	coalescer  *Coalescer
	segmenter  *ColumnSegmenter
	assembler  *LineAssembler
	classifier *BlockClassifier
}

// NewEngine creates an engine with default configuration
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultConfig())
}

// NewEngineWithConfig creates an engine with custom configuration
func NewEngineWithConfig(config Config) *Engine {
	return &Engine{
		config:     config,
		normalizer: NewNormalizerWithConfig(config),
		coalescer:  NewCoalescerWithConfig(config),
		segmenter:  NewColumnSegmenterWithConfig(config),
		assembler:  NewLineAssemblerWithConfig(config),
		classifier: NewBlockClassifierWithConfig(config),
	}
}

// Config returns the engine's configuration
func (e *Engine) Config() Config {
	return e.config
}

// Reconstruct turns one page's raw runs into an ordered, typed block
// sequence. It never returns an error: empty input, a missing operator
// summary, an ambiguous column split, and ambiguous table detection all
// resolve to safe defaults.
func (e *Engine) Reconstruct(runs []source.RawRun, vp source.Viewport, summary *source.OperatorSummary) *model.PageResult {
	result := &model.PageResult{
		Width:  vp.Width,
		Height: vp.Height,
		Signal: DetectVisualSignal(summary),
	}

	tokens := e.normalizer.Normalize(runs, vp)
	if len(tokens) == 0 {
		return result
	}

	tokens = e.coalescer.Coalesce(tokens)

	// Columns are linearized and classified independently: the left
	// column's blocks all precede the right column's, and no paragraph
	// joins across the column seam. Line indices are global across the
	// concatenated stream.
	columnLines := make([][]Line, 0, 2)
	next := 0
	for _, col := range e.segmenter.Segment(tokens, vp.Width) {
		lines := e.assembler.Assemble(col.Tokens)
		for i := range lines {
			lines[i].Index = next
			next++
		}
		columnLines = append(columnLines, lines)
	}

	for _, lines := range columnLines {
		result.Blocks = append(result.Blocks, e.classifier.Classify(lines, result.Signal)...)
	}
	return result
}
