package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// recomputeContext rebuilds every rollup slice a (customer, market, date)
// context feeds. Must run inside the transaction of the mutation that
// invalidated the slices.
func (s *Service) recomputeContext(ctx context.Context, customerID uuid.UUID, market domain.Market, date time.Time) error {
	if err := s.rollups.RecomputePana(ctx, market, date); err != nil {
		return fmt.Errorf("recompute pana: %w", err)
	}
	if err := s.rollups.RecomputeJodi(ctx, market, date); err != nil {
		return fmt.Errorf("recompute jodi: %w", err)
	}
	if err := s.rollups.RecomputeTime(ctx, customerID, market, date); err != nil {
		return fmt.Errorf("recompute time: %w", err)
	}
	if err := s.rollups.RecomputeSummary(ctx, customerID, date); err != nil {
		return fmt.Errorf("recompute summary: %w", err)
	}
	return nil
}

func sameContext(a, b domain.LedgerRecord) bool {
	return a.CustomerID == b.CustomerID &&
		a.Market == b.Market &&
		a.EntryDate.Equal(b.EntryDate)
}
