package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Update mutates a ledger record and recomputes the rollup slices of both
// the record's old context and, when market or date moved, its new one.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.LedgerRecord, error) {
	if err := input.Validate(); err != nil {
		return domain.LedgerRecord{}, err
	}

	var updated domain.LedgerRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.records.GetByID(txCtx, input.RecordID)
		if err != nil {
			return fmt.Errorf("get ledger record: %w", err)
		}

		updated, err = s.records.Update(txCtx, input.RecordID, input.update())
		if err != nil {
			return fmt.Errorf("update ledger record: %w", err)
		}
		// The number range depends on the kind, so the combined result is
		// checked after the update is applied.
		if err := updated.Validate(); err != nil {
			return err
		}

		if err := s.recomputeContext(txCtx, old.CustomerID, old.Market, old.EntryDate); err != nil {
			return err
		}
		if !sameContext(old, updated) {
			if err := s.recomputeContext(txCtx, updated.CustomerID, updated.Market, updated.EntryDate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.LedgerRecord{}, err
	}

	s.log.InfoContext(ctx, "ledger record updated",
		slog.Int64("record_id", updated.ID),
		slog.String("customer_id", updated.CustomerID.String()),
		slog.String("market", updated.Market.String()),
	)

	return updated, nil
}
