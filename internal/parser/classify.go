package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	digitRunRe = regexp.MustCompile(`\d+`)

	// Unambiguous notations, checked before scoring.
	typeTableRe      = regexp.MustCompile(`(?i)(\d+)(DPT|SP|DP|CP)`)
	multiplicationRe = regexp.MustCompile(`(?i)^\s*(\d{2})[x*×X⋅·](\d+)\s*$`)

	// NUMS sep NUMS ... = VALUE with non-numeric separators between runs.
	multiAssignRe = regexp.MustCompile(`^\s*\d+([^\d=]+\d+)+\s*=\s*\d+\s*$`)
	// Simple N=V assignment.
	directAssignRe = regexp.MustCompile(`^\s*\d{1,3}\s*=\s*\d+\s*$`)
)

// Classify scores line against every known grammar and returns the winner,
// the separators that matched it, and a confidence in [0,1]. Type-table and
// multiplication notations short-circuit with full confidence; every other
// line goes through separator/length/count scoring.
func Classify(line string) (Grammar, []string, float64) {
	if typeTableRe.MatchString(line) {
		return GrammarTypeTable, nil, 1
	}
	if m := multiplicationRe.FindStringSubmatch(line); m != nil {
		sep := multiplicationSeparator(line)
		return GrammarMultiplication, []string{sep}, 1
	}

	best := GrammarDirect
	bestScore := -1.0
	var bestSeps []string
	for _, g := range scoredGrammars {
		score, seps := scoreGrammar(line, g)
		if score > bestScore {
			best, bestScore, bestSeps = g, score, seps
		}
	}
	return best, bestSeps, clamp01(bestScore)
}

func multiplicationSeparator(line string) string {
	for _, sep := range []string{"x", "*", "×", "X", "⋅", "·"} {
		if strings.Contains(line, sep) {
			return sep
		}
	}
	return ""
}

// scoreGrammar rates how well line matches one grammar. Weights: 0.4 for
// token-length fit, 0.3/0.1 for first primary/secondary separator found,
// 0.2 for meeting the minimum token count, plus contextual adjustments for
// multi-number and direct assignment shapes.
func scoreGrammar(line string, g Grammar) (float64, []string) {
	spec := separatorSpecs[g]
	numbers := digitRunRe.FindAllString(line, -1)
	if len(numbers) == 0 {
		return 0, nil
	}

	score := 0.0

	if multiAssignRe.MatchString(line) {
		score += multiAssignAdjustment(line, g, numbers)
	}

	isDirect := directAssignRe.MatchString(line)
	if isDirect && len(numbers) == 2 {
		switch g {
		case GrammarPana, GrammarJodi:
			score -= 0.5
		case GrammarMultiplication:
			if !strings.ContainsAny(line, "x*×X") {
				score -= 0.3
			}
		}
	}

	matched := 0
	for _, n := range numbers {
		if spec.lengthAllowed(len(n)) {
			matched++
		}
	}
	if matched > 0 {
		score += float64(matched) / float64(len(numbers)) * 0.4
	}

	var found []string
	for i, sep := range append(append([]string{}, spec.primary...), spec.secondary...) {
		if strings.Contains(line, sep) {
			found = append(found, sep)
			if i < len(spec.primary) {
				score += 0.3
			} else {
				score += 0.1
			}
			break // only the first separator counts
		}
	}

	if len(numbers) >= spec.minTokens {
		score += 0.2
	}

	switch g {
	case GrammarDirect:
		if len(numbers) == 2 && isDirect {
			score += 0.3
		} else if len(numbers) != 2 {
			score -= 0.5
		}
	case GrammarMultiplication:
		if len(numbers) == 2 {
			score += 0.1
		}
	case GrammarPana:
		if countLen(numbers, 3) >= 2 {
			score += 0.1
		}
	case GrammarTime:
		if countLen(numbers, 1) > 0 {
			score += 0.1
		}
	case GrammarJodi:
		if countLen(numbers, 2) >= 2 {
			score += 0.1
		}
	}

	return score, found
}

// multiAssignAdjustment applies grammar-specific boosts and penalties for
// the NUMS sep NUMS = VALUE shape. The last digit run is the value and is
// excluded from token counts.
func multiAssignAdjustment(line string, g Grammar, numbers []string) float64 {
	tokens := numbers[:len(numbers)-1]
	n := float64(len(tokens))
	if n == 0 {
		return 0
	}

	switch g {
	case GrammarPana:
		if c := countLen(tokens, 3); c > 0 {
			return 0.3 * float64(c) / n
		}

	case GrammarTime:
		if c := countLen(tokens, 1); c > 0 {
			return 0.4 * float64(c) / n
		}
		if c := countLen(tokens, 2); c > 0 {
			// Short runs of 2-digit tokens are more often time columns than
			// jodi pairs, and 10-19 look like column numbers.
			smallBoost := 0.0
			if len(numbers) <= 3 {
				smallBoost = 0.3
			}
			teens := 0
			for _, tok := range tokens {
				if len(tok) == 2 {
					if v, err := strconv.Atoi(tok); err == nil && v >= 10 && v <= 19 {
						teens++
					}
				}
			}
			if teens > 0 {
				return (0.3 + smallBoost) * float64(teens) / n
			}
			return (0.2 + smallBoost) * float64(c) / n
		}

	case GrammarJodi:
		c := countLen(tokens, 2)
		hasJodiSep := strings.ContainsAny(line, "-:|")
		hasNonJodiSep := strings.ContainsAny(line, "/+,*")
		if c > 0 && hasJodiSep && !hasNonJodiSep {
			if len(numbers) <= 3 {
				return 0.2 * float64(c) / n
			}
			return 0.4 * float64(c) / n
		}
		if hasNonJodiSep {
			return -0.5
		}
	}
	return 0
}

func countLen(tokens []string, length int) int {
	c := 0
	for _, tok := range tokens {
		if len(tok) == length {
			c++
		}
	}
	return c
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
