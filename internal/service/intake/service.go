// Package intake turns raw wager text into persisted ledger records with
// their rollup slices up to date.
package intake

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SohamSachinDhore/bet-v2/internal/calc"
	"github.com/SohamSachinDhore/bet-v2/internal/domain"
	"github.com/SohamSachinDhore/bet-v2/internal/parser"
)

type customerRepo interface {
	GetByName(ctx context.Context, name string) (domain.Customer, error)
	Create(ctx context.Context, name string) (domain.Customer, error)
}

type ledgerRepo interface {
	BulkInsert(ctx context.Context, records []domain.LedgerRecord) (int, error)
}

type rollupRepo interface {
	RecomputePana(ctx context.Context, market domain.Market, date time.Time) error
	RecomputeJodi(ctx context.Context, market domain.Market, date time.Time) error
	RecomputeTime(ctx context.Context, customerID uuid.UUID, market domain.Market, date time.Time) error
	RecomputeSummary(ctx context.Context, customerID uuid.UUID, date time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service orchestrates parse, expand, insert and recompute for one wager
// submission.
type Service struct {
	customers  customerRepo
	records    ledgerRepo
	rollups    rollupRepo
	tx         txManager
	engine     *calc.Engine
	validator  *parser.JodiValidator
	autoCreate bool
	log        *slog.Logger
}

// NewService creates a new Intake service. With autoCreate set, submissions
// for unknown customer names register the customer on the fly.
func NewService(
	log *slog.Logger,
	customers customerRepo,
	records ledgerRepo,
	rollups rollupRepo,
	tx txManager,
	engine *calc.Engine,
	validator *parser.JodiValidator,
	autoCreate bool,
) *Service {
	return &Service{
		customers:  customers,
		records:    records,
		rollups:    rollups,
		tx:         tx,
		engine:     engine,
		validator:  validator,
		autoCreate: autoCreate,
		log:        log.With("service", "intake"),
	}
}
