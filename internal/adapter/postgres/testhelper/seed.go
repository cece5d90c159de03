package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Date returns a fixed UTC date usable as an entry_date in tests.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedCustomer creates a customer with a unique name.
// Returns a filled domain.Customer.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) domain.Customer {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Customer{
		ID:        uuid.New(),
		Name:      "Customer " + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO customers (id, name, created_at) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer insert: %v", err)
	}

	return c
}

// SeedLedgerRecord inserts one ledger record for the customer and returns it
// with the generated ID filled in.
func SeedLedgerRecord(t *testing.T, pool *pgxpool.Pool, c domain.Customer, market domain.Market, date time.Time, number int, value int64, kind domain.EntryKind) domain.LedgerRecord {
	t.Helper()
	ctx := context.Background()

	rec := domain.LedgerRecord{
		CustomerID:   c.ID,
		CustomerName: c.Name,
		EntryDate:    date,
		Market:       market,
		Number:       number,
		Value:        value,
		Kind:         kind,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO ledger (customer_id, customer_name, entry_date, market, number, value, kind, source_line)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		rec.CustomerID, rec.CustomerName, rec.EntryDate, string(rec.Market),
		rec.Number, rec.Value, string(rec.Kind), rec.SourceLine,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLedgerRecord insert: %v", err)
	}

	return rec
}

// SeedTypeColumn inserts one column of a type table.
func SeedTypeColumn(t *testing.T, pool *pgxpool.Pool, table string, column int, numbers []int) {
	t.Helper()
	ctx := context.Background()

	for _, n := range numbers {
		_, err := pool.Exec(ctx,
			`INSERT INTO `+table+` (column_number, number) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			column, n,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedTypeColumn insert %s col %d: %v", table, column, err)
		}
	}
}
