package parser

import "strings"

// ParseResult holds every entry and error produced by one Parse call.
// Entries from good lines survive even when sibling lines fail.
type ParseResult struct {
	Entries       []NumberEntry
	TypeEntries   []TypeTableEntry
	FamilyEntries []FamilyEntry
	MultiEntries  []MultiplicationEntry
	Errors        []*LineError
	Stats         Stats
}

// Stats holds parse counters for logging.
type Stats struct {
	TotalLines  int
	ParsedLines int
	FailedLines int
}

// OK reports whether every line parsed cleanly.
func (r ParseResult) OK() bool { return len(r.Errors) == 0 }

// EntryCount is the number of typed entries across all kinds.
func (r ParseResult) EntryCount() int {
	return len(r.Entries) + len(r.TypeEntries) + len(r.FamilyEntries) + len(r.MultiEntries)
}

// ErrorStrings renders every line error, original input included.
func (r ParseResult) ErrorStrings() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.Error()
	}
	return out
}

// Parse converts free-form wager text into typed entries. Lines are first
// reassembled (values typed on the following line are merged up), then each
// logical line is extracted independently; a bad line is recorded in Errors
// and does not stop its siblings. Only structurally empty input returns an
// error.
func Parse(text string) (ParseResult, error) {
	var result ParseResult

	if strings.TrimSpace(text) == "" {
		return result, ErrEmptyInput
	}

	text = Reassemble(text)
	lines := strings.Split(strings.TrimSpace(text), "\n")

	for i, line := range lines {
		lineNum := i + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result.Stats.TotalLines++

		extracted, err := extractLine(line)
		if err != nil {
			result.Stats.FailedLines++
			if coded, ok := err.(*codedError); ok {
				result.Errors = append(result.Errors,
					newLineError(lineNum, coded.code, line, "%s", coded.msg))
			} else {
				result.Errors = append(result.Errors,
					newLineError(lineNum, CodeInvalidValue, line, "%s", err.Error()))
			}
			continue
		}

		result.Stats.ParsedLines++
		result.Entries = append(result.Entries, extracted.numbers...)
		result.TypeEntries = append(result.TypeEntries, extracted.types...)
		if extracted.family != nil {
			result.FamilyEntries = append(result.FamilyEntries, *extracted.family)
		}
		if extracted.multi != nil {
			result.MultiEntries = append(result.MultiEntries, *extracted.multi)
		}
	}

	return result, nil
}
