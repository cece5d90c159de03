package parser

import (
	"fmt"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Validation limits for multi-number jodi entries.
const (
	DefaultMaxJodiNumbers = 100
	DefaultMaxEntryValue  = 100000
)

// JodiValidator checks multi-number jodi entries against configured limits.
// Pure; every violation is reported, not just the first.
type JodiValidator struct {
	MaxNumbers int
	MaxValue   int64
}

// NewJodiValidator returns a validator with the given limits; zero or
// negative limits fall back to the defaults.
func NewJodiValidator(maxNumbers int, maxValue int64) *JodiValidator {
	if maxNumbers <= 0 {
		maxNumbers = DefaultMaxJodiNumbers
	}
	if maxValue <= 0 {
		maxValue = DefaultMaxEntryValue
	}
	return &JodiValidator{MaxNumbers: maxNumbers, MaxValue: maxValue}
}

// Validate checks one multi-number jodi entry. It returns nil or a
// *domain.ValidationError listing every violation.
func (v *JodiValidator) Validate(numbers []int, value int64) error {
	var errs []domain.FieldError

	if len(numbers) == 0 {
		errs = append(errs, domain.FieldError{Field: "numbers", Message: "at least one number required"})
	}
	if len(numbers) > v.MaxNumbers {
		errs = append(errs, domain.FieldError{
			Field:   "numbers",
			Message: fmt.Sprintf("too many numbers: %d (max %d)", len(numbers), v.MaxNumbers),
		})
	}
	if value <= 0 {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be positive"})
	} else if value > v.MaxValue {
		errs = append(errs, domain.FieldError{
			Field:   "value",
			Message: fmt.Sprintf("value too large: %d (max %d)", value, v.MaxValue),
		})
	}

	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < 0 || n > 99 {
			errs = append(errs, domain.FieldError{
				Field:   "numbers",
				Message: fmt.Sprintf("jodi number out of range: %d (must be 0-99)", n),
			})
		}
		if seen[n] {
			errs = append(errs, domain.FieldError{
				Field:   "numbers",
				Message: fmt.Sprintf("duplicate jodi number: %d", n),
			})
		}
		seen[n] = true
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ValidateTypeTableEntry re-checks a type-table entry's column range. The
// extractor already enforces it; this runs standalone for entries built by
// other paths.
func ValidateTypeTableEntry(e TypeTableEntry) error {
	var errs []domain.FieldError

	if !e.Table.IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "table",
			Message: fmt.Sprintf("unknown table kind: %s", e.Table),
		})
	} else if !e.Table.ColumnInRange(e.Column) {
		errs = append(errs, domain.FieldError{
			Field:   "column",
			Message: fmt.Sprintf("%s column out of range: %d", e.Table, e.Column),
		})
	}
	if e.Value <= 0 {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
