package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres/ledger"
	"github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres/testhelper"
	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*ledger.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return ledger.New(pool), pool
}

func sampleRecord(c domain.Customer) domain.LedgerRecord {
	return domain.LedgerRecord{
		CustomerID:   c.ID,
		CustomerName: c.Name,
		EntryDate:    testhelper.Date(2025, 3, 1),
		Market:       domain.MarketTO,
		Number:       128,
		Value:        100,
		Kind:         domain.EntryKindPana,
		SourceLine:   "128=100",
	}
}

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	c := testhelper.SeedCustomer(t, pool)

	created, err := repo.Create(ctx, sampleRecord(c))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected non-zero ledger ID")
	}
	if created.CustomerID != c.ID || created.CustomerName != c.Name {
		t.Errorf("customer fields mismatch: %+v", created)
	}
	if created.Kind != domain.EntryKindPana || created.Number != 128 || created.Value != 100 {
		t.Errorf("record fields mismatch: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt should not be zero")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.ID != created.ID || got.SourceLine != "128=100" {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, created)
	}
}

func TestRepo_Create_UnknownCustomer(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	rec := sampleRecord(domain.Customer{ID: uuid.New(), Name: "ghost"})
	_, err := repo.Create(context.Background(), rec)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown customer FK, got: %v", err)
	}
}

func TestRepo_BulkInsert(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	c := testhelper.SeedCustomer(t, pool)

	records := make([]domain.LedgerRecord, 0, 5)
	for i, number := range []int{128, 129, 120, 130, 140} {
		rec := sampleRecord(c)
		rec.Number = number
		rec.Value = int64(100 * (i + 1))
		records = append(records, rec)
	}

	inserted, err := repo.BulkInsert(ctx, records)
	if err != nil {
		t.Fatalf("BulkInsert: unexpected error: %v", err)
	}
	if inserted != 5 {
		t.Errorf("inserted = %d, want 5", inserted)
	}

	var count int
	err = pool.QueryRow(ctx, `SELECT count(*) FROM ledger WHERE customer_id = $1`, c.ID).Scan(&count)
	if err != nil {
		t.Fatalf("count ledger rows: %v", err)
	}
	if count != 5 {
		t.Errorf("ledger rows = %d, want 5", count)
	}
}

func TestRepo_BulkInsert_Empty(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	inserted, err := repo.BulkInsert(context.Background(), nil)
	if err != nil {
		t.Fatalf("BulkInsert(nil): unexpected error: %v", err)
	}
	if inserted != 0 {
		t.Errorf("inserted = %d, want 0", inserted)
	}
}

func TestRepo_Update_PartialFields(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	c := testhelper.SeedCustomer(t, pool)

	created, err := repo.Create(ctx, sampleRecord(c))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	newValue := int64(750)
	updated, err := repo.Update(ctx, created.ID, domain.LedgerUpdate{Value: &newValue})
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	if updated.Value != 750 {
		t.Errorf("Value = %d, want 750", updated.Value)
	}
	// Untouched fields survive.
	if updated.Number != created.Number || updated.Market != created.Market || updated.Kind != created.Kind {
		t.Errorf("untouched fields changed: got %+v, want %+v", updated, created)
	}
}

func TestRepo_Update_NoFields(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	c := testhelper.SeedCustomer(t, pool)

	created, err := repo.Create(ctx, sampleRecord(c))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.Update(ctx, created.ID, domain.LedgerUpdate{})
	if err != nil {
		t.Fatalf("Update with zero fields: unexpected error: %v", err)
	}
	if got.ID != created.ID || got.Value != created.Value {
		t.Errorf("zero-field update changed the row: got %+v, want %+v", got, created)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	v := int64(10)
	_, err := repo.Update(context.Background(), 999999999, domain.LedgerUpdate{Value: &v})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	c := testhelper.SeedCustomer(t, pool)

	created, err := repo.Create(ctx, sampleRecord(c))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	_, err = repo.GetByID(ctx, created.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for double delete, got: %v", err)
	}
}

func TestRepo_List_Filters(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	c := testhelper.SeedCustomer(t, pool)
	other := testhelper.SeedCustomer(t, pool)
	date := testhelper.Date(2025, 3, 2)

	testhelper.SeedLedgerRecord(t, pool, c, domain.MarketTO, date, 128, 100, domain.EntryKindPana)
	testhelper.SeedLedgerRecord(t, pool, c, domain.MarketTO, date, 12, 200, domain.EntryKindJodi)
	testhelper.SeedLedgerRecord(t, pool, c, domain.MarketMK, date, 129, 300, domain.EntryKindPana)
	testhelper.SeedLedgerRecord(t, pool, other, domain.MarketTO, date, 130, 400, domain.EntryKindPana)

	market := domain.MarketTO
	kind := domain.EntryKindPana
	records, err := repo.List(ctx, ledger.Filter{
		LedgerFilter: domain.LedgerFilter{
			CustomerID: &c.ID,
			Market:     &market,
			Kind:       &kind,
		},
	})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1: %+v", len(records), records)
	}
	if records[0].Number != 128 {
		t.Errorf("Number = %d, want 128", records[0].Number)
	}
}

func TestRepo_List_SortAndLimit(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	c := testhelper.SeedCustomer(t, pool)
	date := testhelper.Date(2025, 3, 3)
	for _, number := range []int{300, 100, 200} {
		testhelper.SeedLedgerRecord(t, pool, c, domain.MarketKO, date, number, 50, domain.EntryKindPana)
	}

	records, err := repo.List(ctx, ledger.Filter{
		LedgerFilter: domain.LedgerFilter{CustomerID: &c.ID},
		SortBy:       "number",
		SortOrder:    "ASC",
		Limit:        2,
	})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Number != 100 || records[1].Number != 200 {
		t.Errorf("numbers = [%d %d], want [100 200]", records[0].Number, records[1].Number)
	}
}

func TestRepo_JodiTotals(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	c := testhelper.SeedCustomer(t, pool)
	date := testhelper.Date(2025, 3, 4)

	testhelper.SeedLedgerRecord(t, pool, c, domain.MarketTO, date, 22, 100, domain.EntryKindJodi)
	testhelper.SeedLedgerRecord(t, pool, c, domain.MarketTO, date, 22, 150, domain.EntryKindJodi)
	testhelper.SeedLedgerRecord(t, pool, c, domain.MarketTO, date, 45, 200, domain.EntryKindJodi)
	// Other kinds and markets stay out.
	testhelper.SeedLedgerRecord(t, pool, c, domain.MarketTO, date, 2, 999, domain.EntryKindTimeMulti)
	testhelper.SeedLedgerRecord(t, pool, c, domain.MarketMK, date, 22, 999, domain.EntryKindJodi)

	totals, err := repo.JodiTotals(ctx, c.ID, domain.MarketTO, date)
	if err != nil {
		t.Fatalf("JodiTotals: unexpected error: %v", err)
	}

	if len(totals) != 2 {
		t.Fatalf("got %d jodi numbers, want 2: %v", len(totals), totals)
	}
	if totals[22] != 250 {
		t.Errorf("totals[22] = %d, want 250", totals[22])
	}
	if totals[45] != 200 {
		t.Errorf("totals[45] = %d, want 200", totals[45])
	}
}

func TestRepo_CountByCustomer(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	a := testhelper.SeedCustomer(t, pool)
	b := testhelper.SeedCustomer(t, pool)
	date := testhelper.Date(2025, 3, 5)

	testhelper.SeedLedgerRecord(t, pool, a, domain.MarketTO, date, 128, 100, domain.EntryKindPana)
	testhelper.SeedLedgerRecord(t, pool, a, domain.MarketMK, date, 22, 50, domain.EntryKindJodi)

	n, err := repo.CountByCustomer(ctx, a.ID)
	if err != nil {
		t.Fatalf("CountByCustomer: unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}

	n, err = repo.CountByCustomer(ctx, b.ID)
	if err != nil {
		t.Fatalf("CountByCustomer: unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0 for customer without records", n)
	}
}
