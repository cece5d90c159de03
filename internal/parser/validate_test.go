package parser

import (
	"errors"
	"testing"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

func TestJodiValidator_Validate(t *testing.T) {
	t.Parallel()

	v := NewJodiValidator(0, 0) // defaults

	tests := []struct {
		name    string
		numbers []int
		value   int64
		wantErr bool
	}{
		{"valid pair", []int{22, 24}, 100, false},
		{"valid with zero", []int{0, 99}, 100, false},
		{"single number", []int{5}, 100, false},
		{"empty", nil, 100, true},
		{"out of range high", []int{22, 100}, 100, true},
		{"out of range negative", []int{-1, 22}, 100, true},
		{"duplicate", []int{22, 24, 22}, 100, true},
		{"zero value", []int{22, 24}, 0, true},
		{"negative value", []int{22, 24}, -5, true},
		{"value too large", []int{22, 24}, 100001, true},
		{"value at limit", []int{22, 24}, 100000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.numbers, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%v, %d) error = %v, wantErr %v", tt.numbers, tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrValidation) {
				t.Errorf("error not wrapped in ErrValidation: %v", err)
			}
		})
	}
}

func TestJodiValidator_ReportsAllViolations(t *testing.T) {
	t.Parallel()

	v := NewJodiValidator(3, 1000)
	err := v.Validate([]int{22, 22, 101, 33}, 5000)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	// too many numbers + duplicate + out of range + value too large
	if len(verr.Errors) != 4 {
		t.Errorf("got %d violations, want 4: %v", len(verr.Errors), verr.Errors)
	}
}

func TestJodiValidator_CustomLimits(t *testing.T) {
	t.Parallel()

	v := NewJodiValidator(2, 500)
	if err := v.Validate([]int{1, 2, 3}, 100); err == nil {
		t.Error("expected error for 3 numbers with max 2")
	}
	if err := v.Validate([]int{1, 2}, 501); err == nil {
		t.Error("expected error for value over custom limit")
	}
	if err := v.Validate([]int{1, 2}, 500); err != nil {
		t.Errorf("unexpected error at limit: %v", err)
	}
}

func TestValidateTypeTableEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entry   TypeTableEntry
		wantErr bool
	}{
		{"sp valid", TypeTableEntry{1, domain.TypeTableSP, 100}, false},
		{"dpt valid", TypeTableEntry{10, domain.TypeTableDPT, 100}, false},
		{"cp zero", TypeTableEntry{0, domain.TypeTableCP, 100}, false},
		{"sp column over", TypeTableEntry{11, domain.TypeTableSP, 100}, true},
		{"cp column gap", TypeTableEntry{10, domain.TypeTableCP, 100}, true},
		{"unknown table", TypeTableEntry{1, domain.TypeTableKind("XP"), 100}, true},
		{"zero value", TypeTableEntry{1, domain.TypeTableSP, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateTypeTableEntry(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTypeTableEntry(%+v) error = %v, wantErr %v", tt.entry, err, tt.wantErr)
			}
		})
	}
}
