package ledger

import (
	"context"

	ledgerpg "github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres/ledger"
	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// List returns ledger records matching the input's filters.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.LedgerRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := ledgerpg.Filter{
		LedgerFilter: domain.LedgerFilter{
			CustomerID: input.CustomerID,
			Market:     input.Market,
			EntryDate:  input.EntryDate,
			Kind:       input.Kind,
		},
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}

	return s.records.List(ctx, filter)
}
