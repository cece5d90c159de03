package customer

import (
	"context"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// List returns all customers ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}
