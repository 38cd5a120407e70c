package layout

import (
	"github.com/tsawler/reflow/model"
	"github.com/tsawler/reflow/source"
)

// imagePaintOperators are the operator codes that paint raster content.
// "Do" also paints form XObjects; the over-fire is tolerated because the
// signal only gates placeholder emission.
var imagePaintOperators = map[string]bool{
	"Do": true,
	"BI": true,
	"ID": true,
	"EI": true,
}

// pathOperators are the path construction and painting operator codes
var pathOperators = map[string]bool{
	"m": true, "l": true, "c": true, "v": true, "y": true,
	"re": true, "h": true,
	"S": true, "s": true,
	"f": true, "F": true, "f*": true,
	"B": true, "B*": true, "b": true, "b*": true,
	"n": true,
}

// DetectVisualSignal derives the page-level visual booleans from a
// drawing-operator summary. A nil summary degrades to the zero signal.
// The signal never localizes regions; it only gates whether a large
// vertical gap is labeled as visual content.
func DetectVisualSignal(summary *source.OperatorSummary) model.VisualSignal {
	var signal model.VisualSignal
	if summary == nil {
		return signal
	}

	for _, op := range summary.Operators {
		if imagePaintOperators[op] {
			signal.HasImagePaint = true
		}
		if pathOperators[op] {
			signal.HasVectorPath = true
		}
		if signal.HasImagePaint && signal.HasVectorPath {
			break
		}
	}

	return signal
}
