package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Create inserts one manual ledger record and recomputes its context's
// rollup slices in the same transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.LedgerRecord, error) {
	if err := input.Validate(); err != nil {
		return domain.LedgerRecord{}, err
	}

	var created domain.LedgerRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		customer, err := s.customers.GetByID(txCtx, input.CustomerID)
		if err != nil {
			return fmt.Errorf("get customer: %w", err)
		}

		rec := input.record(customer.Name)
		if err := rec.Validate(); err != nil {
			return err
		}

		created, err = s.records.Create(txCtx, rec)
		if err != nil {
			return fmt.Errorf("create ledger record: %w", err)
		}

		return s.recomputeContext(txCtx, created.CustomerID, created.Market, created.EntryDate)
	})
	if err != nil {
		return domain.LedgerRecord{}, err
	}

	s.log.InfoContext(ctx, "ledger record created",
		slog.Int64("record_id", created.ID),
		slog.String("customer_id", created.CustomerID.String()),
		slog.String("market", created.Market.String()),
	)

	return created, nil
}
