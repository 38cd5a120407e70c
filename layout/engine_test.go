package layout

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/reflow/source"
)

var testViewport = source.Viewport{Width: 600, Height: 800}

// nativeRun places a run so that it lands at the given page-local Y after
// the normalizer's flip.
func nativeRun(x, pageLocalY, width, height float64, text string) source.RawRun {
	return makeRun(x, testViewport.Height-pageLocalY, width, height, text)
}

func TestEngine_EmptyInput(t *testing.T) {
	e := NewEngine()

	result := e.Reconstruct(nil, testViewport, nil)

	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if !result.IsEmpty() {
		t.Errorf("expected empty page result, got %d blocks", result.BlockCount())
	}
}

func TestEngine_Idempotence(t *testing.T) {
	e := NewEngine()

	runs := []source.RawRun{
		nativeRun(50, 100, 100, 12, "A first line of body text"),
		nativeRun(50, 120, 100, 12, "and a second line"),
		nativeRun(50, 160, 100, 12, "A new paragraph"),
	}
	summary := &source.OperatorSummary{Operators: []string{"re", "f"}}

	first := e.Reconstruct(runs, testViewport, summary)
	second := e.Reconstruct(runs, testViewport, summary)

	if !reflect.DeepEqual(first.Blocks, second.Blocks) {
		t.Error("reconstructing the same runs twice must yield identical blocks")
	}
}

func TestEngine_TwoColumnReadingOrder(t *testing.T) {
	e := NewEngine()

	// Balanced synthetic two-column page: every left token's center is
	// left of the midline, every right token's center right of it, both
	// sides over the 30% threshold.
	var runs []source.RawRun
	for i := 0; i < 10; i++ {
		y := float64(100 + 20*i)
		runs = append(runs, nativeRun(50, y, 100, 12, fmt.Sprintf("L%d", i)))
		runs = append(runs, nativeRun(350, y, 100, 12, fmt.Sprintf("R%d", i)))
	}

	result := e.Reconstruct(runs, testViewport, nil)
	text := result.Text()

	lastLeft := strings.LastIndex(text, "L9")
	firstRight := strings.Index(text, "R0")
	if lastLeft == -1 || firstRight == -1 {
		t.Fatalf("missing column content in %q", text)
	}
	if lastLeft > firstRight {
		t.Errorf("left column must be fully linearized before the right column: %q", text)
	}
}

func TestEngine_ColumnSeamDoesNotJoinParagraphs(t *testing.T) {
	e := NewEngine()

	var runs []source.RawRun
	for i := 0; i < 10; i++ {
		y := float64(100 + 20*i)
		runs = append(runs, nativeRun(50, y, 100, 12, "left"))
		runs = append(runs, nativeRun(350, y, 100, 12, "right"))
	}

	result := e.Reconstruct(runs, testViewport, nil)

	if result.BlockCount() < 2 {
		t.Fatalf("expected at least one block per column, got %d", result.BlockCount())
	}
	for _, b := range result.Blocks {
		if strings.Contains(b.Text, "left") && strings.Contains(b.Text, "right") {
			t.Errorf("block joins across the column seam: %q", b.Text)
		}
	}
}

func TestEngine_HeaderFooterExclusion(t *testing.T) {
	e := NewEngine()

	runs := []source.RawRun{
		nativeRun(50, 16, 100, 12, "running header"),  // y' = 0.02 * height
		nativeRun(50, 400, 100, 12, "body text kept"), // y' = 0.5 * height
		nativeRun(50, 784, 100, 12, "page number"),    // y' = 0.98 * height
	}

	text := e.Reconstruct(runs, testViewport, nil).Text()

	if strings.Contains(text, "running header") {
		t.Error("header band token must be excluded")
	}
	if strings.Contains(text, "page number") {
		t.Error("footer band token must be excluded")
	}
	if !strings.Contains(text, "body text kept") {
		t.Error("body token must be retained")
	}
}

func TestEngine_HyphenationRepair(t *testing.T) {
	e := NewEngine()

	runs := []source.RawRun{
		nativeRun(50, 100, 50, 12, "algo-"),
		nativeRun(50, 114, 50, 12, "rithm"),
	}

	text := e.Reconstruct(runs, testViewport, nil).Text()

	if text != "algorithm" {
		t.Errorf("expected %q, got %q", "algorithm", text)
	}
}

func TestEngine_TableRowEndToEnd(t *testing.T) {
	e := NewEngine()

	runs := []source.RawRun{
		nativeRun(0, 100, 10, 10, "a"),
		nativeRun(100, 100, 10, 10, "b"),
		nativeRun(250, 100, 10, 10, "c"),
	}

	result := e.Reconstruct(runs, testViewport, nil)

	if result.BlockCount() != 1 {
		t.Fatalf("expected 1 block, got %d", result.BlockCount())
	}
	if got := result.Blocks[0].Text; got != "| a | b | c |" {
		t.Errorf("expected %q, got %q", "| a | b | c |", got)
	}
}

func TestEngine_GlyphRunsBecomeWords(t *testing.T) {
	e := NewEngine()

	// The rendering engine split "Go" into per-glyph runs.
	runs := []source.RawRun{
		nativeRun(50, 100, 7, 12, "G"),
		nativeRun(57.2, 100, 7, 12, "o"),
	}

	text := e.Reconstruct(runs, testViewport, nil).Text()

	if text != "Go" {
		t.Errorf("expected coalesced %q, got %q", "Go", text)
	}
}

func TestEngine_SignalRecordedOnResult(t *testing.T) {
	e := NewEngine()

	runs := []source.RawRun{nativeRun(50, 100, 100, 12, "text")}
	summary := &source.OperatorSummary{Operators: []string{"Do"}}

	result := e.Reconstruct(runs, testViewport, summary)

	if !result.Signal.HasImagePaint {
		t.Error("expected image-paint signal on the result")
	}
	if result.Signal.HasVectorPath {
		t.Error("unexpected vector-path signal")
	}
}
