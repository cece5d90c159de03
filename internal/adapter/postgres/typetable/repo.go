// Package typetable loads and seeds the SP/DP/CP column tables.
package typetable

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres"
	"github.com/SohamSachinDhore/bet-v2/internal/lookup"
)

// Repo reads and writes the type tables backing column expansion.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new type-table repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Load reads all three tables into an in-memory lookup. Empty tables load
// as empty maps; expansion against them degrades to unknown-table errors
// per column rather than failing the load.
func (r *Repo) Load(ctx context.Context) (*lookup.TypeTables, error) {
	sp, err := r.loadOne(ctx, "type_table_sp")
	if err != nil {
		return nil, err
	}
	dp, err := r.loadOne(ctx, "type_table_dp")
	if err != nil {
		return nil, err
	}
	cp, err := r.loadOne(ctx, "type_table_cp")
	if err != nil {
		return nil, err
	}

	return lookup.NewTypeTables(sp, dp, cp), nil
}

func (r *Repo) loadOne(ctx context.Context, table string) (map[int][]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx,
		fmt.Sprintf(`SELECT column_number, number FROM %s ORDER BY column_number, number`, table))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	out := map[int][]int{}
	for rows.Next() {
		var col, number int
		if err := rows.Scan(&col, &number); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		out[col] = append(out[col], number)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}

	return out, nil
}

// Seed inserts the given column tables, skipping rows that already exist.
// All three tables are written in one transaction, so a failed seed leaves
// nothing behind. Returns the number of newly inserted rows.
func (r *Repo) Seed(ctx context.Context, sp, dp, cp map[int][]int) (int, error) {
	var total int
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, t := range []struct {
			table   string
			columns map[int][]int
		}{
			{"type_table_sp", sp},
			{"type_table_dp", dp},
			{"type_table_cp", cp},
		} {
			n, err := seedOne(ctx, tx, t.table, t.columns)
			if err != nil {
				return err
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

func seedOne(ctx context.Context, tx pgx.Tx, table string, columns map[int][]int) (int, error) {
	if len(columns) == 0 {
		return 0, nil
	}

	insertSQL := fmt.Sprintf(
		`INSERT INTO %s (column_number, number) VALUES ($1, $2) ON CONFLICT DO NOTHING`, table)

	batch := &pgx.Batch{}
	for col, numbers := range columns {
		for _, n := range numbers {
			batch.Queue(insertSQL, col, n)
		}
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("seed %s: %w", table, err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
