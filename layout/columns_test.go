package layout

import "testing"

// twoColumnTokens builds a balanced dual-column token set on a 600-wide page:
// left centers < 270 (0.45 * 600), right centers > 330 (0.55 * 600).
func twoColumnTokens() []Token {
	var tokens []Token
	for i := 0; i < 10; i++ {
		tokens = append(tokens, makeToken(50, float64(100+20*i), 100, 12, "left"))
		tokens = append(tokens, makeToken(350, float64(100+20*i), 100, 12, "right"))
	}
	return tokens
}

func TestColumnSegmenter_EmptyInput(t *testing.T) {
	s := NewColumnSegmenter()

	if got := s.Segment(nil, 600); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestColumnSegmenter_DetectsTwoColumns(t *testing.T) {
	s := NewColumnSegmenter()
	tokens := twoColumnTokens()

	if !s.IsTwoColumn(tokens, 600) {
		t.Fatal("expected two-column classification")
	}

	cols := s.Segment(tokens, 600)
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}
	if len(cols[0].Tokens) != 10 || len(cols[1].Tokens) != 10 {
		t.Errorf("expected 10 tokens per column, got %d and %d",
			len(cols[0].Tokens), len(cols[1].Tokens))
	}

	for _, tok := range cols[0].Tokens {
		if tok.CenterX() >= 300 {
			t.Errorf("left column token with center %f past the midline", tok.CenterX())
		}
	}
	for _, tok := range cols[1].Tokens {
		if tok.CenterX() < 300 {
			t.Errorf("right column token with center %f before the midline", tok.CenterX())
		}
	}
}

func TestColumnSegmenter_CenteredMassFallsBackToSingleColumn(t *testing.T) {
	s := NewColumnSegmenter()

	// Heavy center mass: titles and captions centered on the page.
	var tokens []Token
	for i := 0; i < 10; i++ {
		tokens = append(tokens, makeToken(250, float64(100+20*i), 100, 12, "centered"))
	}

	if s.IsTwoColumn(tokens, 600) {
		t.Error("centered content must not classify as two columns")
	}

	cols := s.Segment(tokens, 600)
	if len(cols) != 1 {
		t.Fatalf("expected 1 column, got %d", len(cols))
	}
	if len(cols[0].Tokens) != len(tokens) {
		t.Errorf("single column must hold every token, got %d of %d",
			len(cols[0].Tokens), len(tokens))
	}
}

func TestColumnSegmenter_UnbalancedSidesFallBackToSingleColumn(t *testing.T) {
	s := NewColumnSegmenter()

	// One caption on the right cannot outweigh a full left column.
	var tokens []Token
	for i := 0; i < 10; i++ {
		tokens = append(tokens, makeToken(50, float64(100+20*i), 100, 12, "left"))
	}
	tokens = append(tokens, makeToken(400, 100, 80, 12, "caption"))

	if s.IsTwoColumn(tokens, 600) {
		t.Error("unbalanced page must not classify as two columns")
	}
}

func TestColumnSegmenter_PartitionInvariant(t *testing.T) {
	s := NewColumnSegmenter()
	tokens := twoColumnTokens()

	cols := s.Segment(tokens, 600)

	// The union of all columns' token sets equals the input, and no token
	// belongs to two columns.
	total := 0
	for _, col := range cols {
		total += len(col.Tokens)
		for _, tok := range col.Tokens {
			if AssignColumn(tok, 600) != col.Index {
				t.Errorf("token at cx=%f assigned to column %d", tok.CenterX(), col.Index)
			}
		}
	}
	if total != len(tokens) {
		t.Errorf("partition covers %d tokens, input has %d", total, len(tokens))
	}
}

func TestColumnSegmenter_ForceSingleColumn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ForceSingleColumn = true
	s := NewColumnSegmenterWithConfig(cfg)
	tokens := twoColumnTokens()

	if s.IsTwoColumn(tokens, 600) {
		t.Error("forced single column must never classify as two columns")
	}

	cols := s.Segment(tokens, 600)
	if len(cols) != 1 {
		t.Fatalf("expected 1 column, got %d", len(cols))
	}
	if len(cols[0].Tokens) != len(tokens) {
		t.Errorf("single column must hold every token, got %d of %d",
			len(cols[0].Tokens), len(tokens))
	}
}

func TestAssignColumn(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want int
	}{
		{"left of midline", makeToken(0, 0, 100, 12, "x"), 0},
		{"right of midline", makeToken(400, 0, 100, 12, "x"), 1},
		{"center exactly on midline", makeToken(250, 0, 100, 12, "x"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssignColumn(tt.tok, 600); got != tt.want {
				t.Errorf("AssignColumn = %d, want %d", got, tt.want)
			}
		})
	}
}
