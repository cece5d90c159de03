package customer

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Get returns a customer by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Customer, error) {
	if id == uuid.Nil {
		return domain.Customer{}, domain.NewValidationError("customer_id", "required")
	}
	return s.customers.GetByID(ctx, id)
}

// GetByName returns a customer by exact name.
func (s *Service) GetByName(ctx context.Context, name string) (domain.Customer, error) {
	if errs := nameErrors(name); len(errs) > 0 {
		return domain.Customer{}, &domain.ValidationError{Errors: errs}
	}
	return s.customers.GetByName(ctx, strings.TrimSpace(name))
}
