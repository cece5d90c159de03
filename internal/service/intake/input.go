package intake

import (
	"strings"
	"time"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// SubmitInput holds one wager submission: free-form text for a customer on
// a market and date.
type SubmitInput struct {
	CustomerName string
	Market       domain.Market
	EntryDate    time.Time
	Text         string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.CustomerName) == "" {
		errs = append(errs, domain.FieldError{Field: "customer_name", Message: "required"})
	}
	if !i.Market.IsValid() {
		errs = append(errs, domain.FieldError{Field: "market", Message: "unknown market"})
	}
	if i.EntryDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "entry_date", Message: "required"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitResult reports what one submission produced. LineErrors and
// ExpandErrors carry the failures of surviving-line parsing; they are not
// fatal as long as at least one record was written.
type SubmitResult struct {
	Customer   domain.Customer
	Inserted   int
	GrandTotal int64

	PanaTotal   int64
	TypeTotal   int64
	TimeTotal   int64
	MultiTotal  int64
	JodiTotal   int64
	FamilyTotal int64

	LineErrors   []string
	ExpandErrors []string
}

// Clean reports whether every line parsed and expanded.
func (r SubmitResult) Clean() bool {
	return len(r.LineErrors) == 0 && len(r.ExpandErrors) == 0
}
