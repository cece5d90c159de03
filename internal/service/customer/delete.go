package customer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Delete removes a customer. Customers with ledger records cannot be
// deleted; their history must stay attributable.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.records.CountByCustomer(txCtx, input.CustomerID)
		if err != nil {
			return fmt.Errorf("count ledger records: %w", err)
		}
		if count > 0 {
			return domain.NewValidationError("customer_id",
				fmt.Sprintf("customer has %d ledger records", count))
		}

		if err := s.customers.Delete(txCtx, input.CustomerID); err != nil {
			return fmt.Errorf("delete customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "customer deleted",
		slog.String("customer_id", input.CustomerID.String()),
	)

	return nil
}
