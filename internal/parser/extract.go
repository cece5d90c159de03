package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// NumberKind classifies a token by its digit-string length.
type NumberKind string

const (
	NumberTime NumberKind = "TIME" // 1 digit, 0-9
	NumberJodi NumberKind = "JODI" // 2 digits, 00-99
	NumberPana NumberKind = "PANA" // 3 digits, 000-999
)

func (k NumberKind) String() string { return string(k) }

// NumberEntry is one classified wager number with its value. Token keeps the
// original digit string: "05" is jodi 5, not time 5, and only the string
// length can tell them apart.
type NumberEntry struct {
	Token  string
	Number int
	Kind   NumberKind
	Value  int64
}

// TypeTableEntry assigns a value to one column of a pana type table.
type TypeTableEntry struct {
	Column int
	Table  domain.TypeTableKind
	Value  int64
}

// FamilyEntry assigns a value to every pana number in the reference's
// family group.
type FamilyEntry struct {
	Reference int
	Value     int64
}

// MultiplicationEntry is the NNxV notation: both digits of Number get the
// value as time columns and the full two-digit number gets it as a jodi.
type MultiplicationEntry struct {
	Number int
	Value  int64
}

var (
	familyRe   = regexp.MustCompile(`(?i)^(\d{3})(family)$`)
	tokenRe    = regexp.MustCompile(`^(\d+)`)
	splitRe    = regexp.MustCompile(`[*/\-,\s|:+]+`)
	digitSeqRe = regexp.MustCompile(`\d+`)
)

// lineEntries is the outcome of extracting one logical line.
type lineEntries struct {
	numbers []NumberEntry
	types   []TypeTableEntry
	family  *FamilyEntry
	multi   *MultiplicationEntry
}

// extractLine parses a single logical line into typed entries. Errors carry
// an ErrorCode and are bound to a line number by the caller.
func extractLine(line string) (lineEntries, error) {
	var out lineEntries

	if m := multiplicationRe.FindStringSubmatch(line); m != nil {
		return extractMultiplication(m)
	}

	line = strings.ReplaceAll(line, "==", "=")

	if !strings.Contains(line, "=") {
		return out, codeErrorf(CodeMissingAssignment, "missing value assignment (=)")
	}

	tokenRegion, valueRegion, _ := strings.Cut(line, "=")
	tokenRegion = strings.TrimSpace(tokenRegion)
	valueRegion = strings.TrimSpace(valueRegion)

	if tokenRegion == "" {
		return out, codeErrorf(CodeEmptyTokenRegion, "no numbers before =")
	}
	if valueRegion == "" {
		return out, codeErrorf(CodeEmptyValueRegion, "no value after =")
	}

	value, err := extractValue(valueRegion)
	if err != nil {
		return out, err
	}

	if fam, ok, err := extractFamily(tokenRegion, value); err != nil {
		return out, err
	} else if ok {
		out.family = &fam
		return out, nil
	}

	if types, err := extractTypeTables(tokenRegion, value); err != nil {
		return out, err
	} else if len(types) > 0 {
		out.types = types
		return out, nil
	}

	tokens := extractTokens(tokenRegion)
	if len(tokens) == 0 {
		return out, codeErrorf(CodeNoValidNumbers, "no valid numbers found")
	}

	for _, tok := range tokens {
		kind, n, err := classifyToken(tok)
		if err != nil {
			return out, err
		}
		out.numbers = append(out.numbers, NumberEntry{
			Token:  tok,
			Number: n,
			Kind:   kind,
			Value:  value,
		})
	}
	return out, nil
}

func extractMultiplication(m []string) (lineEntries, error) {
	n, _ := strconv.Atoi(m[1])
	value, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return lineEntries{}, codeErrorf(CodeInvalidValue, "value out of range: %s", m[2])
	}
	if value <= 0 {
		return lineEntries{}, codeErrorf(CodeInvalidValue, "value must be positive, got: %d", value)
	}
	return lineEntries{multi: &MultiplicationEntry{Number: n, Value: value}}, nil
}

// extractValue pulls the integer value out of the region right of "=".
// Currency markers (RS, ₹) and thousands commas are stripped first; the
// first remaining digit run wins.
func extractValue(region string) (int64, error) {
	cleaned := strings.ToUpper(region)
	cleaned = strings.ReplaceAll(cleaned, "RS", "")
	cleaned = strings.ReplaceAll(cleaned, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	if strings.HasPrefix(cleaned, "-") {
		return 0, codeErrorf(CodeInvalidValue, "negative value not allowed: %s", cleaned)
	}
	m := digitSeqRe.FindString(cleaned)
	if m == "" {
		return 0, codeErrorf(CodeInvalidValue, "no numeric value found in: %s", region)
	}
	v, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, codeErrorf(CodeInvalidValue, "value out of range: %s", m)
	}
	return v, nil
}

func extractFamily(region string, value int64) (FamilyEntry, bool, error) {
	m := familyRe.FindStringSubmatch(strings.TrimSpace(region))
	if m == nil {
		return FamilyEntry{}, false, nil
	}
	ref, _ := strconv.Atoi(m[1])
	if ref < 100 || ref > 999 {
		return FamilyEntry{}, false, codeErrorf(CodeInvalidNumberRange,
			"family reference must be 100-999, got: %d", ref)
	}
	return FamilyEntry{Reference: ref, Value: value}, true, nil
}

// extractTypeTables matches every NUMBER+TABLE fragment (1SP, 5DPT, 15CP...)
// in the region. Non-matching residue is ignored; the first column outside
// its table's range fails the line.
func extractTypeTables(region string, value int64) ([]TypeTableEntry, error) {
	matches := typeTableRe.FindAllStringSubmatch(region, -1)
	if matches == nil {
		return nil, nil
	}

	entries := make([]TypeTableEntry, 0, len(matches))
	for _, m := range matches {
		col, _ := strconv.Atoi(m[1])
		table := domain.TypeTableKind(strings.ToUpper(m[2]))
		if !table.ColumnInRange(col) {
			return nil, codeErrorf(CodeInvalidColumnRange,
				"%s column out of range: %d", table, col)
		}
		entries = append(entries, TypeTableEntry{Column: col, Table: table, Value: value})
	}
	return entries, nil
}

// extractTokens splits the token region on every recognized separator and
// keeps the leading digit run of each fragment as a string, preserving
// leading zeros.
func extractTokens(region string) []string {
	parts := splitRe.Split(region, -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if m := tokenRe.FindStringSubmatch(part); m != nil {
			tokens = append(tokens, m[1])
		}
	}
	return tokens
}

// classifyToken maps a digit string to its kind by string length, so "05"
// stays jodi and "005" stays pana.
func classifyToken(tok string) (NumberKind, int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return "", 0, codeErrorf(CodeInvalidValue, "not a number: %s", tok)
	}
	switch len(tok) {
	case 1:
		return NumberTime, n, nil
	case 2:
		return NumberJodi, n, nil
	case 3:
		return NumberPana, n, nil
	}
	return "", 0, codeErrorf(CodeInvalidNumberLength,
		"invalid number length: %s (must be 1, 2, or 3 digits)", tok)
}
