// Package parser turns free-form wager lines into typed entries. It is pure:
// text in, entries out. No database dependencies.
//
// Lines use any of ~10 interchangeable separators; grammar is decided by a
// combination of separator set, token digit-length, and token count, never by
// a single pattern. Type-table and multiplication notations are unambiguous
// and bypass scoring entirely.
package parser

// Grammar is a candidate interpretation of a wager line.
type Grammar string

const (
	GrammarDirect         Grammar = "DIRECT"
	GrammarPana           Grammar = "PANA"
	GrammarTime           Grammar = "TIME"
	GrammarJodi           Grammar = "JODI"
	GrammarMultiplication Grammar = "MULTIPLICATION"
	GrammarTypeTable      Grammar = "TYPE_TABLE"
)

func (g Grammar) String() string { return string(g) }

func (g Grammar) IsValid() bool {
	switch g {
	case GrammarDirect, GrammarPana, GrammarTime, GrammarJodi,
		GrammarMultiplication, GrammarTypeTable:
		return true
	}
	return false
}

// separatorSpec defines the separator sets and token shape of one grammar.
// Secondary separators score lower than primary ones. A character may appear
// in several grammars' lists; scoring disambiguates, not set membership.
type separatorSpec struct {
	primary   []string
	secondary []string
	lengths   []int // allowed token digit-lengths
	minTokens int   // minimum digit-run count, value included
}

var separatorSpecs = map[Grammar]separatorSpec{
	GrammarDirect: {
		primary:   []string{"="},
		lengths:   []int{1, 2, 3},
		minTokens: 2,
	},
	GrammarPana: {
		primary:   []string{"/", "+", ",", "*", " "},
		secondary: []string{"★", "✱", "-", "|", ":"},
		lengths:   []int{3},
		minTokens: 2,
	},
	GrammarTime: {
		primary:   []string{" ", ",", "-"},
		secondary: []string{"|", ":", "+", "/"},
		lengths:   []int{1, 2},
		minTokens: 1,
	},
	GrammarJodi: {
		primary:   []string{"-", ":", "|"},
		secondary: []string{" ", ",", "+", "/"},
		lengths:   []int{2},
		minTokens: 2,
	},
	GrammarMultiplication: {
		primary:   []string{"x", "*", "×", "X"},
		secondary: []string{"⋅", "·"},
		lengths:   []int{2},
		minTokens: 2,
	},
}

// scoredGrammars is the scoring order; ties go to the earliest entry.
var scoredGrammars = []Grammar{
	GrammarDirect, GrammarPana, GrammarTime, GrammarJodi, GrammarMultiplication,
}

func (s separatorSpec) lengthAllowed(n int) bool {
	for _, l := range s.lengths {
		if l == n {
			return true
		}
	}
	return false
}
