package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	ledgerpg "github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres/ledger"
	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

type ledgerRepo interface {
	Create(ctx context.Context, rec domain.LedgerRecord) (domain.LedgerRecord, error)
	GetByID(ctx context.Context, id int64) (domain.LedgerRecord, error)
	Update(ctx context.Context, id int64, upd domain.LedgerUpdate) (domain.LedgerRecord, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ledgerpg.Filter) ([]domain.LedgerRecord, error)
	JodiTotals(ctx context.Context, customerID uuid.UUID, market domain.Market, date time.Time) (map[int]int64, error)
}

type customerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error)
}

type rollupRepo interface {
	RecomputePana(ctx context.Context, market domain.Market, date time.Time) error
	RecomputeJodi(ctx context.Context, market domain.Market, date time.Time) error
	RecomputeTime(ctx context.Context, customerID uuid.UUID, market domain.Market, date time.Time) error
	RecomputeSummary(ctx context.Context, customerID uuid.UUID, date time.Time) error

	PanaRows(ctx context.Context, market domain.Market, date time.Time) ([]domain.PanaRollupRow, error)
	JodiRows(ctx context.Context, market domain.Market, date time.Time) ([]domain.JodiRollupRow, error)
	TimeRows(ctx context.Context, market domain.Market, date time.Time) ([]domain.TimeRollupRow, error)
	SummaryRows(ctx context.Context, date time.Time) ([]domain.SummaryRow, error)
	CustomerSummary(ctx context.Context, customerID uuid.UUID, date time.Time) (domain.SummaryRow, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides ledger queries and mutations. Every mutation recomputes
// the rollup slices it touches in the same transaction, so the materialized
// tables never disagree with the ledger.
type Service struct {
	records   ledgerRepo
	customers customerRepo
	rollups   rollupRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Ledger service.
func NewService(
	log *slog.Logger,
	records ledgerRepo,
	customers customerRepo,
	rollups rollupRepo,
	tx txManager,
) *Service {
	return &Service{
		records:   records,
		customers: customers,
		rollups:   rollups,
		tx:        tx,
		log:       log.With("service", "ledger"),
	}
}
