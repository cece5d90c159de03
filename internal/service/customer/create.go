package customer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Create registers a new customer. The name must be unique across all
// customers.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Customer, error) {
	if err := input.Validate(); err != nil {
		return domain.Customer{}, err
	}

	name := strings.TrimSpace(input.Name)

	created, err := s.customers.Create(ctx, name)
	if err != nil {
		return domain.Customer{}, err
	}

	s.log.InfoContext(ctx, "customer created",
		slog.String("customer_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}
