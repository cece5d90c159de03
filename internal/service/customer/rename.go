package customer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Rename changes a customer's name and rewrites every denormalized copy of
// it (ledger rows, time table, summary) in one transaction.
func (s *Service) Rename(ctx context.Context, input RenameInput) (domain.Customer, error) {
	if err := input.Validate(); err != nil {
		return domain.Customer{}, err
	}

	newName := strings.TrimSpace(input.NewName)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.customers.Rename(txCtx, input.CustomerID, newName); err != nil {
			return fmt.Errorf("rename customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Customer{}, err
	}

	renamed, err := s.customers.GetByID(ctx, input.CustomerID)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("get renamed customer: %w", err)
	}

	s.log.InfoContext(ctx, "customer renamed",
		slog.String("customer_id", input.CustomerID.String()),
		slog.String("name", newName),
	)

	return renamed, nil
}
