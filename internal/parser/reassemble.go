package parser

import (
	"strings"
	"unicode"
)

// Reassemble merges physical lines that belong to one logical entry: users
// often press Enter before typing the value, so "5DP" followed by "=100" or
// "100" is one entry. The transform is pure and never fails; lines it cannot
// merge are passed through for the extractor to reject.
//
// A continuation line is a definite value only when it carries a currency
// marker or internal comma grouping of 4+ digits. Bare short numbers are
// tentatively treated as more tokens; if end of input arrives with no "="
// found, the last such pending token is reinterpreted as the value. Blank
// lines between fragments are preserved positionally.
func Reassemble(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	i := 0
	for i < len(lines) {
		raw := lines[i]
		cur := strings.TrimSpace(raw)

		if cur == "" {
			out = append(out, "")
			i++
			continue
		}
		if strings.Contains(cur, "=") || multiplicationRe.MatchString(cur) {
			out = append(out, cur)
			i++
			continue
		}

		// Line has no "=": combine with following lines until a value shows up.
		combined := cur
		trailingSep := hasTrailingSpace(raw, cur)

		next := i + 1
		emptySkipped := 0
		pendingValue := ""
		merged := false

		for next < len(lines) {
			nraw := lines[next]
			nline := strings.TrimSpace(nraw)

			if nline == "" {
				emptySkipped++
				next++
				continue
			}

			if strings.HasPrefix(nline, "=") {
				combined += nline
				merged = true
			} else if isPureValue(nline) {
				combined += "=" + nline
				merged = true
			}
			if merged {
				out = append(out, combined)
				for range emptySkipped {
					out = append(out, "")
				}
				i = next + 1
				break
			}

			// More tokens. Remember it in case input ends without a value.
			if couldBeValue(nline) {
				pendingValue = nline
			} else {
				pendingValue = ""
			}

			if trailingSep {
				combined += " "
			}
			combined += nline
			trailingSep = hasTrailingSpace(nraw, nline)
			emptySkipped = 0
			next++
		}

		if !merged {
			if pendingValue != "" {
				combined = combined[:len(combined)-len(pendingValue)] + "=" + pendingValue
			}
			out = append(out, combined)
			i = next
		}
	}

	return strings.Join(out, "\n")
}

// hasTrailingSpace reports whether raw ends in whitespace that acts as a
// separator (raw trimmed only on the right equals the stripped line).
func hasTrailingSpace(raw, stripped string) bool {
	rstripped := strings.TrimRightFunc(raw, unicode.IsSpace)
	return rstripped != raw && rstripped == stripped
}

// isPureValue reports whether text is unambiguously a standalone value:
// a currency marker, or internal comma grouping over a 4+ digit number.
// Short bare numbers stay ambiguous and return false.
func isPureValue(text string) bool {
	if strings.Contains(strings.ToUpper(text), "RS") || strings.Contains(text, "₹") {
		return true
	}
	if strings.HasSuffix(strings.TrimRightFunc(text, unicode.IsSpace), ",") {
		return false
	}
	if strings.Contains(text, ",") && !strings.HasPrefix(text, ",") && !strings.HasSuffix(text, ",") {
		cleaned := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
		if isAllDigits(cleaned) && len(cleaned) >= 4 {
			return true
		}
	}
	cleaned := stripValueMarkers(text)
	return isAllDigits(cleaned) && len(cleaned) > 3
}

// couldBeValue is the permissive variant used for end-of-input
// reinterpretation: any bare number qualifies, separators disqualify.
func couldBeValue(text string) bool {
	if strings.ContainsAny(text, "/-*+:|") {
		return false
	}
	if strings.HasSuffix(strings.TrimRightFunc(text, unicode.IsSpace), ",") {
		return false
	}
	cleaned := stripValueMarkers(text)
	return isAllDigits(cleaned)
}

func stripValueMarkers(text string) string {
	cleaned := strings.ToUpper(text)
	cleaned = strings.ReplaceAll(cleaned, "RS", "")
	cleaned = strings.ReplaceAll(cleaned, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	return strings.ReplaceAll(strings.TrimSpace(cleaned), " ", "")
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
