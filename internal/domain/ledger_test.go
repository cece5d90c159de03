package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func validRecord() LedgerRecord {
	return LedgerRecord{
		CustomerID:   uuid.New(),
		CustomerName: "Ravi",
		EntryDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Market:       MarketTO,
		Number:       128,
		Value:        100,
		Kind:         EntryKindPana,
		SourceLine:   "128/129/120=100",
	}
}

func TestLedgerRecord_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*LedgerRecord)
		wantErr bool
	}{
		{"valid pana", func(r *LedgerRecord) {}, false},
		{"valid time zero", func(r *LedgerRecord) { r.Kind = EntryKindTimeDirect; r.Number = 0 }, false},
		{"valid jodi", func(r *LedgerRecord) { r.Kind = EntryKindJodi; r.Number = 99 }, false},
		{"time out of range", func(r *LedgerRecord) { r.Kind = EntryKindTimeDirect; r.Number = 10 }, true},
		{"jodi out of range", func(r *LedgerRecord) { r.Kind = EntryKindJodi; r.Number = 100 }, true},
		{"pana out of range", func(r *LedgerRecord) { r.Number = 1000 }, true},
		{"negative number", func(r *LedgerRecord) { r.Number = -1 }, true},
		{"zero value", func(r *LedgerRecord) { r.Value = 0 }, true},
		{"negative value", func(r *LedgerRecord) { r.Value = -50 }, true},
		{"unknown kind", func(r *LedgerRecord) { r.Kind = EntryKind("WAT") }, true},
		{"unknown market", func(r *LedgerRecord) { r.Market = Market("Z.Z") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := validRecord()
			tt.mutate(&r)
			err := r.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("Validate() error not wrapped in ErrValidation: %v", err)
			}
		})
	}
}

func TestLedgerRecord_Validate_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	r := validRecord()
	r.Value = 0
	r.Market = Market("??")
	r.Kind = EntryKind("??")

	err := r.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Errors) < 3 {
		t.Errorf("expected at least 3 field errors, got %d: %v", len(verr.Errors), verr.Errors)
	}
}
