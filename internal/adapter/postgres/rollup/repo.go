// Package rollup implements the materialized rollup tables using PostgreSQL.
//
// Every rollup is recomputed from the ledger with delete-then-reinsert
// inside the caller's transaction: the old rows for the affected context are
// dropped and the aggregate is re-derived in one INSERT ... SELECT. This
// keeps the tables a pure function of the ledger regardless of which
// mutation triggered the recompute.
package rollup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres"
	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Repo recomputes and reads the rollup tables.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new rollup repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Recompute SQL
// ---------------------------------------------------------------------------

const deletePanaSQL = `
DELETE FROM pana_table WHERE market = $1 AND entry_date = $2`

const insertPanaSQL = `
INSERT INTO pana_table (market, entry_date, number, value)
SELECT market, entry_date, number, SUM(value)
FROM ledger
WHERE market = $1 AND entry_date = $2 AND kind IN ('PANA', 'TYPE', 'DIRECT')
GROUP BY market, entry_date, number
HAVING SUM(value) > 0`

const deleteJodiSQL = `
DELETE FROM jodi_table WHERE market = $1 AND entry_date = $2`

const insertJodiSQL = `
INSERT INTO jodi_table (market, entry_date, number, value)
SELECT market, entry_date, number, SUM(value)
FROM ledger
WHERE market = $1 AND entry_date = $2 AND kind = 'JODI'
GROUP BY market, entry_date, number
HAVING SUM(value) > 0`

const deleteTimeSQL = `
DELETE FROM time_table WHERE customer_id = $1 AND market = $2 AND entry_date = $3`

const insertTimeSQL = `
INSERT INTO time_table (customer_id, customer_name, market, entry_date,
    col_0, col_1, col_2, col_3, col_4, col_5, col_6, col_7, col_8, col_9, total)
SELECT customer_id, MAX(customer_name), market, entry_date,
    COALESCE(SUM(value) FILTER (WHERE number = 0), 0),
    COALESCE(SUM(value) FILTER (WHERE number = 1), 0),
    COALESCE(SUM(value) FILTER (WHERE number = 2), 0),
    COALESCE(SUM(value) FILTER (WHERE number = 3), 0),
    COALESCE(SUM(value) FILTER (WHERE number = 4), 0),
    COALESCE(SUM(value) FILTER (WHERE number = 5), 0),
    COALESCE(SUM(value) FILTER (WHERE number = 6), 0),
    COALESCE(SUM(value) FILTER (WHERE number = 7), 0),
    COALESCE(SUM(value) FILTER (WHERE number = 8), 0),
    COALESCE(SUM(value) FILTER (WHERE number = 9), 0),
    SUM(value)
FROM ledger
WHERE customer_id = $1 AND market = $2 AND entry_date = $3
  AND kind IN ('TIME_DIRECT', 'TIME_MULTI')
GROUP BY customer_id, market, entry_date
HAVING SUM(value) > 0`

const deleteSummarySQL = `
DELETE FROM customer_summary WHERE customer_id = $1 AND entry_date = $2`

const insertSummarySQL = `
INSERT INTO customer_summary (customer_id, customer_name, entry_date,
    to_total, tk_total, mo_total, mk_total, ko_total,
    kk_total, nmo_total, nmk_total, bo_total, bk_total, grand_total)
SELECT customer_id, MAX(customer_name), entry_date,
    COALESCE(SUM(value) FILTER (WHERE market = 'T.O'), 0),
    COALESCE(SUM(value) FILTER (WHERE market = 'T.K'), 0),
    COALESCE(SUM(value) FILTER (WHERE market = 'M.O'), 0),
    COALESCE(SUM(value) FILTER (WHERE market = 'M.K'), 0),
    COALESCE(SUM(value) FILTER (WHERE market = 'K.O'), 0),
    COALESCE(SUM(value) FILTER (WHERE market = 'K.K'), 0),
    COALESCE(SUM(value) FILTER (WHERE market = 'NMO'), 0),
    COALESCE(SUM(value) FILTER (WHERE market = 'NMK'), 0),
    COALESCE(SUM(value) FILTER (WHERE market = 'B.O'), 0),
    COALESCE(SUM(value) FILTER (WHERE market = 'B.K'), 0),
    SUM(value)
FROM ledger
WHERE customer_id = $1 AND entry_date = $2
GROUP BY customer_id, entry_date
HAVING SUM(value) > 0`

// ---------------------------------------------------------------------------
// Recompute operations
// ---------------------------------------------------------------------------

// RecomputePana rebuilds the pana rollup for one market and date from the
// ledger's PANA, TYPE, and DIRECT rows.
func (r *Repo) RecomputePana(ctx context.Context, market domain.Market, date time.Time) error {
	return r.recompute(ctx, "pana", deletePanaSQL, insertPanaSQL, string(market), date)
}

// RecomputeJodi rebuilds the jodi rollup for one market and date.
func (r *Repo) RecomputeJodi(ctx context.Context, market domain.Market, date time.Time) error {
	return r.recompute(ctx, "jodi", deleteJodiSQL, insertJodiSQL, string(market), date)
}

// RecomputeTime rebuilds a customer's time row for one market and date from
// the ledger's TIME_DIRECT and TIME_MULTI rows.
func (r *Repo) RecomputeTime(ctx context.Context, customerID uuid.UUID, market domain.Market, date time.Time) error {
	return r.recompute(ctx, "time", deleteTimeSQL, insertTimeSQL, customerID, string(market), date)
}

// RecomputeSummary rebuilds a customer's per-market summary row for one date
// from every ledger row of that customer and date.
func (r *Repo) RecomputeSummary(ctx context.Context, customerID uuid.UUID, date time.Time) error {
	return r.recompute(ctx, "summary", deleteSummarySQL, insertSummarySQL, customerID, date)
}

func (r *Repo) recompute(ctx context.Context, name, deleteSQL, insertSQL string, args ...any) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteSQL, args...); err != nil {
		return fmt.Errorf("recompute %s rollup: delete: %w", name, err)
	}
	if _, err := querier.Exec(ctx, insertSQL, args...); err != nil {
		return fmt.Errorf("recompute %s rollup: insert: %w", name, err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Readers
// ---------------------------------------------------------------------------

const panaRowsSQL = `
SELECT number, value FROM pana_table
WHERE market = $1 AND entry_date = $2
ORDER BY number`

const jodiRowsSQL = `
SELECT number, value FROM jodi_table
WHERE market = $1 AND entry_date = $2
ORDER BY number`

const timeRowsSQL = `
SELECT customer_id, customer_name,
    col_0, col_1, col_2, col_3, col_4, col_5, col_6, col_7, col_8, col_9, total
FROM time_table
WHERE market = $1 AND entry_date = $2
ORDER BY customer_name`

const summaryRowsSQL = `
SELECT customer_id, customer_name,
    to_total, tk_total, mo_total, mk_total, ko_total,
    kk_total, nmo_total, nmk_total, bo_total, bk_total, grand_total
FROM customer_summary
WHERE entry_date = $1
ORDER BY customer_name`

// PanaRows returns the pana rollup for one market and date.
func (r *Repo) PanaRows(ctx context.Context, market domain.Market, date time.Time) ([]domain.PanaRollupRow, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, panaRowsSQL, string(market), date)
	if err != nil {
		return nil, fmt.Errorf("pana rollup rows: %w", err)
	}
	defer rows.Close()

	var out []domain.PanaRollupRow
	for rows.Next() {
		row := domain.PanaRollupRow{Market: market, EntryDate: date}
		if err := rows.Scan(&row.Number, &row.Value); err != nil {
			return nil, fmt.Errorf("scan pana rollup row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pana rollup rows: %w", err)
	}

	if out == nil {
		out = []domain.PanaRollupRow{}
	}

	return out, nil
}

// JodiRows returns the jodi rollup for one market and date.
func (r *Repo) JodiRows(ctx context.Context, market domain.Market, date time.Time) ([]domain.JodiRollupRow, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, jodiRowsSQL, string(market), date)
	if err != nil {
		return nil, fmt.Errorf("jodi rollup rows: %w", err)
	}
	defer rows.Close()

	var out []domain.JodiRollupRow
	for rows.Next() {
		row := domain.JodiRollupRow{Market: market, EntryDate: date}
		if err := rows.Scan(&row.Number, &row.Value); err != nil {
			return nil, fmt.Errorf("scan jodi rollup row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jodi rollup rows: %w", err)
	}

	if out == nil {
		out = []domain.JodiRollupRow{}
	}

	return out, nil
}

// TimeRows returns every customer's time row for one market and date.
func (r *Repo) TimeRows(ctx context.Context, market domain.Market, date time.Time) ([]domain.TimeRollupRow, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, timeRowsSQL, string(market), date)
	if err != nil {
		return nil, fmt.Errorf("time rollup rows: %w", err)
	}
	defer rows.Close()

	var out []domain.TimeRollupRow
	for rows.Next() {
		row := domain.TimeRollupRow{Market: market, EntryDate: date}
		if err := rows.Scan(&row.CustomerID, &row.CustomerName,
			&row.Columns[0], &row.Columns[1], &row.Columns[2], &row.Columns[3], &row.Columns[4],
			&row.Columns[5], &row.Columns[6], &row.Columns[7], &row.Columns[8], &row.Columns[9],
			&row.Total); err != nil {
			return nil, fmt.Errorf("scan time rollup row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time rollup rows: %w", err)
	}

	if out == nil {
		out = []domain.TimeRollupRow{}
	}

	return out, nil
}

// SummaryRows returns every customer's summary row for one date.
func (r *Repo) SummaryRows(ctx context.Context, date time.Time) ([]domain.SummaryRow, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, summaryRowsSQL, date)
	if err != nil {
		return nil, fmt.Errorf("summary rows: %w", err)
	}
	defer rows.Close()

	var out []domain.SummaryRow
	for rows.Next() {
		row, err := scanSummaryRow(rows, date)
		if err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary rows: %w", err)
	}

	if out == nil {
		out = []domain.SummaryRow{}
	}

	return out, nil
}

const customerSummarySQL = `
SELECT customer_id, customer_name,
    to_total, tk_total, mo_total, mk_total, ko_total,
    kk_total, nmo_total, nmk_total, bo_total, bk_total, grand_total
FROM customer_summary
WHERE customer_id = $1 AND entry_date = $2`

// CustomerSummary returns one customer's summary row for a date.
// Returns domain.ErrNotFound when the customer has no rows on that date.
func (r *Repo) CustomerSummary(ctx context.Context, customerID uuid.UUID, date time.Time) (domain.SummaryRow, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, customerSummarySQL, customerID, date)
	if err != nil {
		return domain.SummaryRow{}, fmt.Errorf("customer summary: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.SummaryRow{}, fmt.Errorf("customer summary: %w", err)
		}
		return domain.SummaryRow{}, postgres.MapError(pgx.ErrNoRows, "customer_summary", customerID)
	}

	row, err := scanSummaryRow(rows, date)
	if err != nil {
		return domain.SummaryRow{}, fmt.Errorf("scan customer summary: %w", err)
	}

	return row, nil
}

func scanSummaryRow(rows pgx.Rows, date time.Time) (domain.SummaryRow, error) {
	row := domain.SummaryRow{EntryDate: date, Totals: map[domain.Market]int64{}}

	totals := make([]int64, len(domain.AllMarkets))
	dest := []any{&row.CustomerID, &row.CustomerName}
	for i := range totals {
		dest = append(dest, &totals[i])
	}
	dest = append(dest, &row.GrandTotal)

	if err := rows.Scan(dest...); err != nil {
		return domain.SummaryRow{}, err
	}

	for i, m := range domain.AllMarkets {
		if totals[i] != 0 {
			row.Totals[m] = totals[i]
		}
	}

	return row, nil
}
