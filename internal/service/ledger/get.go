package ledger

import (
	"context"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Get returns a single ledger record by id.
func (s *Service) Get(ctx context.Context, id int64) (domain.LedgerRecord, error) {
	if id <= 0 {
		return domain.LedgerRecord{}, domain.NewValidationError("record_id", "required")
	}
	return s.records.GetByID(ctx, id)
}
