package customer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// CreateInput holds the parameters for creating a customer.
type CreateInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	if errs := nameErrors(i.Name); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameInput holds the parameters for renaming a customer.
type RenameInput struct {
	CustomerID uuid.UUID
	NewName    string
}

// Validate checks all fields and collects all errors.
func (i RenameInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	errs = append(errs, nameErrors(i.NewName)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteInput holds the parameters for deleting a customer.
type DeleteInput struct {
	CustomerID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	if i.CustomerID == uuid.Nil {
		return domain.NewValidationError("customer_id", "required")
	}
	return nil
}

func nameErrors(name string) []domain.FieldError {
	var errs []domain.FieldError

	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	return errs
}
