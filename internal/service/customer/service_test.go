package customer

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type customerRepoMock struct {
	CreateFunc    func(ctx context.Context, name string) (domain.Customer, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (domain.Customer, error)
	GetByNameFunc func(ctx context.Context, name string) (domain.Customer, error)
	ListFunc      func(ctx context.Context) ([]domain.Customer, error)
	RenameFunc    func(ctx context.Context, id uuid.UUID, newName string) error
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
}

func (m *customerRepoMock) Create(ctx context.Context, name string) (domain.Customer, error) {
	return m.CreateFunc(ctx, name)
}

func (m *customerRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *customerRepoMock) GetByName(ctx context.Context, name string) (domain.Customer, error) {
	return m.GetByNameFunc(ctx, name)
}

func (m *customerRepoMock) List(ctx context.Context) ([]domain.Customer, error) {
	return m.ListFunc(ctx)
}

func (m *customerRepoMock) Rename(ctx context.Context, id uuid.UUID, newName string) error {
	return m.RenameFunc(ctx, id, newName)
}

func (m *customerRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type ledgerRepoMock struct {
	CountByCustomerFunc func(ctx context.Context, customerID uuid.UUID) (int64, error)
}

func (m *ledgerRepoMock) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return m.CountByCustomerFunc(ctx, customerID)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	// Default: pass-through (no real transaction).
	return fn(ctx)
}

func newTestService(customers *customerRepoMock, records *ledgerRepoMock) *Service {
	return NewService(slog.Default(), customers, records, &txManagerMock{})
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestService_Create(t *testing.T) {
	t.Parallel()

	want := domain.Customer{ID: uuid.New(), Name: "Ravi"}
	repo := &customerRepoMock{
		CreateFunc: func(_ context.Context, name string) (domain.Customer, error) {
			assert.Equal(t, "Ravi", name)
			return want, nil
		},
	}

	got, err := newTestService(repo, nil).Create(context.Background(), CreateInput{Name: "  Ravi  "})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_Create_EmptyName(t *testing.T) {
	t.Parallel()

	repo := &customerRepoMock{
		CreateFunc: func(_ context.Context, _ string) (domain.Customer, error) {
			t.Fatal("repo must not be called for invalid input")
			return domain.Customer{}, nil
		},
	}

	_, err := newTestService(repo, nil).Create(context.Background(), CreateInput{Name: "   "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Create_DuplicateName(t *testing.T) {
	t.Parallel()

	repo := &customerRepoMock{
		CreateFunc: func(_ context.Context, _ string) (domain.Customer, error) {
			return domain.Customer{}, domain.ErrAlreadyExists
		},
	}

	_, err := newTestService(repo, nil).Create(context.Background(), CreateInput{Name: "Ravi"})

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

// ---------------------------------------------------------------------------
// Get / List
// ---------------------------------------------------------------------------

func TestService_Get_NilID(t *testing.T) {
	t.Parallel()

	_, err := newTestService(&customerRepoMock{}, nil).Get(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_GetByName_Empty(t *testing.T) {
	t.Parallel()

	_, err := newTestService(&customerRepoMock{}, nil).GetByName(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_List(t *testing.T) {
	t.Parallel()

	want := []domain.Customer{{ID: uuid.New(), Name: "Anil"}, {ID: uuid.New(), Name: "Ravi"}}
	repo := &customerRepoMock{
		ListFunc: func(_ context.Context) ([]domain.Customer, error) { return want, nil },
	}

	got, err := newTestService(repo, nil).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ---------------------------------------------------------------------------
// Rename
// ---------------------------------------------------------------------------

func TestService_Rename(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	renameCalled := false
	repo := &customerRepoMock{
		RenameFunc: func(_ context.Context, gotID uuid.UUID, newName string) error {
			renameCalled = true
			assert.Equal(t, id, gotID)
			assert.Equal(t, "Suresh", newName)
			return nil
		},
		GetByIDFunc: func(_ context.Context, gotID uuid.UUID) (domain.Customer, error) {
			return domain.Customer{ID: gotID, Name: "Suresh"}, nil
		},
	}

	got, err := newTestService(repo, nil).Rename(context.Background(), RenameInput{
		CustomerID: id,
		NewName:    " Suresh ",
	})

	require.NoError(t, err)
	assert.True(t, renameCalled)
	assert.Equal(t, "Suresh", got.Name)
}

func TestService_Rename_NotFound(t *testing.T) {
	t.Parallel()

	repo := &customerRepoMock{
		RenameFunc: func(_ context.Context, _ uuid.UUID, _ string) error {
			return domain.ErrNotFound
		},
	}

	_, err := newTestService(repo, nil).Rename(context.Background(), RenameInput{
		CustomerID: uuid.New(),
		NewName:    "Suresh",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Rename_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := newTestService(&customerRepoMock{}, nil).Rename(context.Background(), RenameInput{
		CustomerID: uuid.Nil,
		NewName:    "",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestService_Delete(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	deleteCalled := false
	repo := &customerRepoMock{
		DeleteFunc: func(_ context.Context, gotID uuid.UUID) error {
			deleteCalled = true
			assert.Equal(t, id, gotID)
			return nil
		},
	}
	records := &ledgerRepoMock{
		CountByCustomerFunc: func(_ context.Context, _ uuid.UUID) (int64, error) { return 0, nil },
	}

	err := newTestService(repo, records).Delete(context.Background(), DeleteInput{CustomerID: id})

	require.NoError(t, err)
	assert.True(t, deleteCalled)
}

func TestService_Delete_HasLedgerRecords(t *testing.T) {
	t.Parallel()

	repo := &customerRepoMock{
		DeleteFunc: func(_ context.Context, _ uuid.UUID) error {
			t.Fatal("delete must not be called for a customer with records")
			return nil
		},
	}
	records := &ledgerRepoMock{
		CountByCustomerFunc: func(_ context.Context, _ uuid.UUID) (int64, error) { return 7, nil },
	}

	err := newTestService(repo, records).Delete(context.Background(), DeleteInput{CustomerID: uuid.New()})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Delete_NilID(t *testing.T) {
	t.Parallel()

	err := newTestService(&customerRepoMock{}, nil).Delete(context.Background(), DeleteInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
