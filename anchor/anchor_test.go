package anchor

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Hello World", "helloworld"},
		{"strips punctuation", "a-b, c.d; e!f?", "abcdef"},
		{"strips whitespace", "  spaced \t out \n text ", "spacedouttext"},
		{"keeps digits", "Section 3.1 (2024)", "section312024"},
		{"keeps CJK", "図3: 結果の概要", "図3結果の概要"},
		{"folds full-width forms", "ＡＢＣ１２３", "abc123"},
		{"empty", "", ""},
		{"only punctuation", "---???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	long := "The quick brown fox jumps over the lazy dog, again and again and again."

	// Default length caps the anchor at 40 normalized characters.
	key := Key(long, 0)
	if got := len([]rune(key)); got != DefaultLength {
		t.Errorf("expected %d runes, got %d", DefaultLength, got)
	}

	// Short fragments normalize whole.
	if got := Key("Hi there!", 30); got != "hithere" {
		t.Errorf("expected %q, got %q", "hithere", got)
	}

	// Explicit lengths within the 30-50 contract window are honored.
	if got := len([]rune(Key(long, 30))); got != 30 {
		t.Errorf("expected 30 runes, got %d", got)
	}
}

func TestFind(t *testing.T) {
	page := "Results\n\nThe algo-rithm converges in 3.1 seconds, as shown above."

	tests := []struct {
		name     string
		fragment string
		found    bool
	}{
		{"exact words", "The algorithm converges", true},
		{"differs in punctuation and case", "the ALGORITHM, converges!", true},
		{"missing text", "completely unrelated content", false},
		{"empty fragment", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(page, tt.fragment, DefaultLength); got != tt.found {
				t.Errorf("Match(%q) = %v, want %v", tt.fragment, got, tt.found)
			}
		})
	}
}

func TestFind_ReturnsNormalizedOffset(t *testing.T) {
	page := "Intro. Body starts here."

	got := Find(page, "Body starts", 30)

	// Normalize(page) = "introbodystartshere"; "bodystarts" begins at 5.
	if got != 5 {
		t.Errorf("expected offset 5, got %d", got)
	}
}
