package customer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

type customerRepo interface {
	Create(ctx context.Context, name string) (domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error)
	GetByName(ctx context.Context, name string) (domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Rename(ctx context.Context, id uuid.UUID, newName string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ledgerRepo interface {
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MaxNameLength bounds customer names.
const MaxNameLength = 100

// Service provides customer management operations.
type Service struct {
	customers customerRepo
	records   ledgerRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Customer service.
func NewService(
	log *slog.Logger,
	customers customerRepo,
	records ledgerRepo,
	tx txManager,
) *Service {
	return &Service{
		customers: customers,
		records:   records,
		tx:        tx,
		log:       log.With("service", "customer"),
	}
}
