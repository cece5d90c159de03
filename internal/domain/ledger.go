package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerRecord is one elemental wager row: a single number carrying a value
// for a customer on a market and date. The ledger is the source of truth;
// every rollup is derived from it.
//
// CustomerName is a denormalized copy of the customer's name at write time.
// Renaming a customer rewrites it in place (see the customer service).
type LedgerRecord struct {
	ID           int64
	CustomerID   uuid.UUID
	CustomerName string
	EntryDate    time.Time
	Market       Market
	Number       int
	Value        int64
	Kind         EntryKind
	SourceLine   string
	CreatedAt    time.Time
}

// Validate checks the record's number range against its kind and its value
// positivity. It returns every violation at once.
func (r LedgerRecord) Validate() error {
	var errs []FieldError

	if !r.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "unknown entry kind"})
	}
	if !r.Market.IsValid() {
		errs = append(errs, FieldError{Field: "market", Message: "unknown market"})
	}
	if r.Value <= 0 {
		errs = append(errs, FieldError{Field: "value", Message: "must be positive"})
	}

	lo, hi := 0, 999
	switch r.Kind {
	case EntryKindTimeDirect, EntryKindTimeMulti:
		hi = 9
	case EntryKindJodi:
		hi = 99
	}
	if r.Number < lo || r.Number > hi {
		errs = append(errs, FieldError{Field: "number", Message: "out of range for kind"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// LedgerUpdate carries the mutable fields of a ledger record. Nil fields are
// left untouched.
type LedgerUpdate struct {
	EntryDate *time.Time
	Market    *Market
	Number    *int
	Value     *int64
	Kind      *EntryKind
}

// LedgerFilter narrows ledger listings. Zero-valued fields are ignored.
type LedgerFilter struct {
	CustomerID *uuid.UUID
	Market     *Market
	EntryDate  *time.Time
	Kind       *EntryKind
}

// Customer is a named account the ledger tracks wagers for.
type Customer struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
