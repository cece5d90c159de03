// Package ledger implements the LedgerRecord repository using PostgreSQL.
// Fixed queries use raw SQL; listing and partial updates build their SQL
// with squirrel.
package ledger

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres"
	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ledger repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const recordColumns = `id, customer_id, customer_name, entry_date, market, number, value, kind, source_line, created_at`

const insertSQL = `
INSERT INTO ledger (customer_id, customer_name, entry_date, market, number, value, kind, source_line)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + recordColumns

const getByIDSQL = `
SELECT ` + recordColumns + ` FROM ledger WHERE id = $1`

const deleteSQL = `
DELETE FROM ledger WHERE id = $1`

const countByCustomerSQL = `
SELECT COUNT(*) FROM ledger WHERE customer_id = $1`

const jodiTotalsSQL = `
SELECT number, SUM(value)
FROM ledger
WHERE customer_id = $1 AND market = $2 AND entry_date = $3 AND kind = 'JODI'
GROUP BY number
ORDER BY number`

// Create inserts a single ledger record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rec domain.LedgerRecord) (domain.LedgerRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, insertSQL,
		rec.CustomerID, rec.CustomerName, rec.EntryDate, string(rec.Market),
		rec.Number, rec.Value, string(rec.Kind), rec.SourceLine,
	)

	out, err := scanRecordRow(row)
	if err != nil {
		return domain.LedgerRecord{}, postgres.MapError(err, "ledger_record", rec.Number)
	}

	return out, nil
}

// BulkInsert inserts records using pgx.Batch and returns the inserted count.
// The batch rides the transaction from ctx when one is present.
func (r *Repo) BulkInsert(ctx context.Context, records []domain.LedgerRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(
			`INSERT INTO ledger (customer_id, customer_name, entry_date, market, number, value, kind, source_line)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			rec.CustomerID, rec.CustomerName, rec.EntryDate, string(rec.Market),
			rec.Number, rec.Value, string(rec.Kind), rec.SourceLine,
		)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch insert ledger: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// GetByID returns a ledger record by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.LedgerRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanRecordRow(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.LedgerRecord{}, postgres.MapError(err, "ledger_record", id)
	}

	return out, nil
}

// Update applies the non-nil fields of upd to a record and returns the
// updated row. Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) Update(ctx context.Context, id int64, upd domain.LedgerUpdate) (domain.LedgerRecord, error) {
	b := builder.Update("ledger").Where(sq.Eq{"id": id}).Suffix("RETURNING " + recordColumns)

	changed := false
	if upd.EntryDate != nil {
		b = b.Set("entry_date", *upd.EntryDate)
		changed = true
	}
	if upd.Market != nil {
		b = b.Set("market", string(*upd.Market))
		changed = true
	}
	if upd.Number != nil {
		b = b.Set("number", *upd.Number)
		changed = true
	}
	if upd.Value != nil {
		b = b.Set("value", *upd.Value)
		changed = true
	}
	if upd.Kind != nil {
		b = b.Set("kind", string(*upd.Kind))
		changed = true
	}

	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return domain.LedgerRecord{}, fmt.Errorf("build update: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	out, err := scanRecordRow(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.LedgerRecord{}, postgres.MapError(err, "ledger_record", id)
	}

	return out, nil
}

// Delete removes a ledger record by ID.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "ledger_record", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger_record %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// List returns ledger records matching the filter.
func (r *Repo) List(ctx context.Context, filter Filter) ([]domain.LedgerRecord, error) {
	b := filter.apply(builder.Select(recordColumns).From("ledger"))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}

	return records, nil
}

// CountByCustomer returns how many ledger rows reference a customer.
func (r *Repo) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int64
	if err := querier.QueryRow(ctx, countByCustomerSQL, customerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count ledger records: %w", err)
	}

	return count, nil
}

// JodiTotals returns a customer's per-number jodi sums for a market and date,
// read straight from the ledger rather than the market-wide jodi rollup.
func (r *Repo) JodiTotals(ctx context.Context, customerID uuid.UUID, market domain.Market, date time.Time) (map[int]int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, jodiTotalsSQL, customerID, string(market), date)
	if err != nil {
		return nil, fmt.Errorf("jodi totals: %w", err)
	}
	defer rows.Close()

	totals := map[int]int64{}
	for rows.Next() {
		var number int
		var value int64
		if err := rows.Scan(&number, &value); err != nil {
			return nil, fmt.Errorf("scan jodi total: %w", err)
		}
		totals[number] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jodi totals: %w", err)
	}

	return totals, nil
}

// scanRecords scans multiple rows into a domain.LedgerRecord slice.
func scanRecords(rows pgx.Rows) ([]domain.LedgerRecord, error) {
	var records []domain.LedgerRecord
	for rows.Next() {
		rec, err := scanRecordRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if records == nil {
		records = []domain.LedgerRecord{}
	}

	return records, nil
}

// scanRecordRow scans one ledger row in recordColumns order.
func scanRecordRow(row pgx.Row) (domain.LedgerRecord, error) {
	var (
		rec    domain.LedgerRecord
		market string
		kind   string
	)

	if err := row.Scan(&rec.ID, &rec.CustomerID, &rec.CustomerName, &rec.EntryDate,
		&market, &rec.Number, &rec.Value, &kind, &rec.SourceLine, &rec.CreatedAt); err != nil {
		return domain.LedgerRecord{}, err
	}

	rec.Market = domain.Market(market)
	rec.Kind = domain.EntryKind(kind)
	return rec, nil
}
