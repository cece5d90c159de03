package parser

import "testing"

func TestClassify_FastPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Grammar
	}{
		{"1SP=200", GrammarTypeTable},
		{"5DPT=100", GrammarTypeTable},
		{"15cp=300", GrammarTypeTable},
		{"1SP/2SP/3SP=150", GrammarTypeTable},
		{"38x700", GrammarMultiplication},
		{"38*700", GrammarMultiplication},
		{"38×700", GrammarMultiplication},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, _, conf := Classify(tt.input)
			if got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.input, got, tt.want)
			}
			if conf != 1 {
				t.Errorf("Classify(%q) confidence = %v, want 1 (unambiguous)", tt.input, conf)
			}
		})
	}
}

func TestClassify_ScoredGrammars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Grammar
	}{
		{"447=100", GrammarDirect},
		{"5=25000", GrammarDirect},
		{"128/129/120=100", GrammarPana},
		{"128+129+120=100", GrammarPana},
		{"123-234-567-589=500", GrammarPana},
		{"1 2 3=300", GrammarTime},
		{"1*2*3*4=5000", GrammarTime},
		{"0 1 3 5=900", GrammarTime},
		{"22-24-26-28-30=100", GrammarJodi},
		{"22:24:26:28:30=100", GrammarJodi},
		{"22|24|26|28|30=100", GrammarJodi},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, _, conf := Classify(tt.input)
			if got != tt.want {
				t.Errorf("Classify(%q) = %s (conf %.2f), want %s", tt.input, got, conf, tt.want)
			}
			if conf <= 0 || conf > 1 {
				t.Errorf("Classify(%q) confidence = %v, want in (0,1]", tt.input, conf)
			}
		})
	}
}

func TestClassify_SlashJodiPenalized(t *testing.T) {
	t.Parallel()

	// Slashes are pana-primary; a long slash-joined 2-digit run must not
	// classify as jodi even though the digit lengths fit.
	got, _, _ := Classify("50/52/58/56/59=500")
	if got == GrammarJodi {
		t.Errorf("Classify slash run = JODI, want non-jodi grammar")
	}
}

func TestClassify_SeparatorsReported(t *testing.T) {
	t.Parallel()

	_, seps, _ := Classify("128/129/120=100")
	if len(seps) == 0 || seps[0] != "/" {
		t.Errorf("separators = %v, want leading /", seps)
	}

	_, seps, _ = Classify("22-24-26-28-30=100")
	if len(seps) == 0 || seps[0] != "-" {
		t.Errorf("separators = %v, want leading -", seps)
	}
}

func TestClassify_NoDigits(t *testing.T) {
	t.Parallel()

	got, seps, conf := Classify("hello world")
	if conf != 0 {
		t.Errorf("confidence = %v, want 0", conf)
	}
	if len(seps) != 0 {
		t.Errorf("separators = %v, want none", seps)
	}
	_ = got // ties on all-zero scores go to enumeration order
}
