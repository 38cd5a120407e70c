package layout

import (
	"testing"

	"github.com/tsawler/reflow/source"
)

func TestDetectVisualSignal_NilSummary(t *testing.T) {
	signal := DetectVisualSignal(nil)

	if signal.Any() {
		t.Error("missing operator summary must degrade to all-false")
	}
}

func TestDetectVisualSignal(t *testing.T) {
	tests := []struct {
		name      string
		operators []string
		wantImage bool
		wantPath  bool
	}{
		{
			name:      "text only",
			operators: []string{"BT", "Tf", "Tj", "ET"},
			wantImage: false,
			wantPath:  false,
		},
		{
			name:      "image paint",
			operators: []string{"q", "cm", "Do", "Q"},
			wantImage: true,
			wantPath:  false,
		},
		{
			name:      "inline image",
			operators: []string{"BI", "ID", "EI"},
			wantImage: true,
			wantPath:  false,
		},
		{
			name:      "vector paths",
			operators: []string{"m", "l", "S"},
			wantImage: false,
			wantPath:  true,
		},
		{
			name:      "table rulings",
			operators: []string{"re", "f"},
			wantImage: false,
			wantPath:  true,
		},
		{
			name:      "mixed",
			operators: []string{"Do", "re", "S"},
			wantImage: true,
			wantPath:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := DetectVisualSignal(&source.OperatorSummary{Operators: tt.operators})

			if signal.HasImagePaint != tt.wantImage {
				t.Errorf("HasImagePaint = %v, want %v", signal.HasImagePaint, tt.wantImage)
			}
			if signal.HasVectorPath != tt.wantPath {
				t.Errorf("HasVectorPath = %v, want %v", signal.HasVectorPath, tt.wantPath)
			}
		})
	}
}
