package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// ListInput narrows and pages a ledger listing. Zero-valued fields are
// ignored; sort and paging fall back to the repository defaults.
type ListInput struct {
	CustomerID *uuid.UUID
	Market     *domain.Market
	EntryDate  *time.Time
	Kind       *domain.EntryKind

	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Market != nil && !i.Market.IsValid() {
		errs = append(errs, domain.FieldError{Field: "market", Message: "unknown market"})
	}
	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown entry kind"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateInput holds the parameters for inserting a single manual ledger
// record outside the text intake path.
type CreateInput struct {
	CustomerID uuid.UUID
	EntryDate  time.Time
	Market     domain.Market
	Number     int
	Value      int64
	Kind       domain.EntryKind
	SourceLine string
}

// Validate checks all fields and collects all errors. Kind-dependent number
// ranges are checked by the assembled record.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	if i.EntryDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "entry_date", Message: "required"})
	}
	if !i.Market.IsValid() {
		errs = append(errs, domain.FieldError{Field: "market", Message: "unknown market"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown entry kind"})
	}
	if i.Value <= 0 {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) record(customerName string) domain.LedgerRecord {
	source := i.SourceLine
	if source == "" {
		source = fmt.Sprintf("%d=%d", i.Number, i.Value)
	}
	return domain.LedgerRecord{
		CustomerID:   i.CustomerID,
		CustomerName: customerName,
		EntryDate:    i.EntryDate,
		Market:       i.Market,
		Number:       i.Number,
		Value:        i.Value,
		Kind:         i.Kind,
		SourceLine:   source,
	}
}

// UpdateInput holds the parameters for updating a ledger record. Nil fields
// are left untouched.
type UpdateInput struct {
	RecordID  int64
	EntryDate *time.Time
	Market    *domain.Market
	Number    *int
	Value     *int64
	Kind      *domain.EntryKind
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.RecordID <= 0 {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	if i.EntryDate == nil && i.Market == nil && i.Number == nil && i.Value == nil && i.Kind == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Market != nil && !i.Market.IsValid() {
		errs = append(errs, domain.FieldError{Field: "market", Message: "unknown market"})
	}
	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown entry kind"})
	}
	if i.Value != nil && *i.Value <= 0 {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) update() domain.LedgerUpdate {
	return domain.LedgerUpdate{
		EntryDate: i.EntryDate,
		Market:    i.Market,
		Number:    i.Number,
		Value:     i.Value,
		Kind:      i.Kind,
	}
}

// DeleteInput holds the parameters for deleting a ledger record.
type DeleteInput struct {
	RecordID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	if i.RecordID <= 0 {
		return domain.NewValidationError("record_id", "required")
	}
	return nil
}
