package ledger

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes a ledger record and recomputes the rollup slices its
// context fed.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.records.GetByID(txCtx, input.RecordID)
		if err != nil {
			return fmt.Errorf("get ledger record: %w", err)
		}

		if err := s.records.Delete(txCtx, input.RecordID); err != nil {
			return fmt.Errorf("delete ledger record: %w", err)
		}

		return s.recomputeContext(txCtx, old.CustomerID, old.Market, old.EntryDate)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "ledger record deleted",
		slog.Int64("record_id", input.RecordID),
	)

	return nil
}
