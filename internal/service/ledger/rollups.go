package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// PanaTable returns the materialized pana slice for a market and date.
func (s *Service) PanaTable(ctx context.Context, market domain.Market, date time.Time) ([]domain.PanaRollupRow, error) {
	if !market.IsValid() {
		return nil, domain.NewValidationError("market", "unknown market")
	}
	return s.rollups.PanaRows(ctx, market, date)
}

// JodiTable returns the materialized jodi slice for a market and date.
func (s *Service) JodiTable(ctx context.Context, market domain.Market, date time.Time) ([]domain.JodiRollupRow, error) {
	if !market.IsValid() {
		return nil, domain.NewValidationError("market", "unknown market")
	}
	return s.rollups.JodiRows(ctx, market, date)
}

// TimeTable returns every customer's time columns for a market and date.
func (s *Service) TimeTable(ctx context.Context, market domain.Market, date time.Time) ([]domain.TimeRollupRow, error) {
	if !market.IsValid() {
		return nil, domain.NewValidationError("market", "unknown market")
	}
	return s.rollups.TimeRows(ctx, market, date)
}

// Summary returns every customer's per-market totals for a date.
func (s *Service) Summary(ctx context.Context, date time.Time) ([]domain.SummaryRow, error) {
	return s.rollups.SummaryRows(ctx, date)
}

// CustomerSummary returns one customer's per-market totals for a date.
func (s *Service) CustomerSummary(ctx context.Context, customerID uuid.UUID, date time.Time) (domain.SummaryRow, error) {
	if customerID == uuid.Nil {
		return domain.SummaryRow{}, domain.NewValidationError("customer_id", "required")
	}
	return s.rollups.CustomerSummary(ctx, customerID, date)
}

// JodiTotals returns a customer's per-number jodi sums for a market and
// date. The answer comes straight from the ledger, not from jodi_table,
// because that rollup aggregates across all customers.
func (s *Service) JodiTotals(ctx context.Context, customerID uuid.UUID, market domain.Market, date time.Time) (map[int]int64, error) {
	if customerID == uuid.Nil {
		return nil, domain.NewValidationError("customer_id", "required")
	}
	if !market.IsValid() {
		return nil, domain.NewValidationError("market", "unknown market")
	}
	return s.records.JodiTotals(ctx, customerID, market, date)
}
