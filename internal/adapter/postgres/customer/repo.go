// Package customer implements the Customer repository using PostgreSQL.
package customer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres"
	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new customer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO customers (id, name, created_at)
VALUES ($1, $2, $3)
RETURNING id, name, created_at`

const getByIDSQL = `
SELECT id, name, created_at FROM customers WHERE id = $1`

const getByNameSQL = `
SELECT id, name, created_at FROM customers WHERE name = $1`

const listSQL = `
SELECT id, name, created_at FROM customers ORDER BY name`

const renameSQL = `
UPDATE customers SET name = $2 WHERE id = $1`

const deleteSQL = `
DELETE FROM customers WHERE id = $1`

// Denormalized customer_name columns are kept in step with the customers row.
const renameLedgerSQL = `
UPDATE ledger SET customer_name = $2 WHERE customer_id = $1`

const renameTimeTableSQL = `
UPDATE time_table SET customer_name = $2 WHERE customer_id = $1`

const renameSummarySQL = `
UPDATE customer_summary SET customer_name = $2 WHERE customer_id = $1`

// Create inserts a new customer. A duplicate name results in
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name string) (domain.Customer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	var c domain.Customer
	err := querier.QueryRow(ctx, createSQL, id, name, now).
		Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return domain.Customer{}, postgres.MapError(err, "customer", name)
	}

	return c, nil
}

// GetByID returns a customer by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Customer
	err := querier.QueryRow(ctx, getByIDSQL, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return domain.Customer{}, postgres.MapError(err, "customer", id)
	}

	return c, nil
}

// GetByName returns a customer by exact name.
func (r *Repo) GetByName(ctx context.Context, name string) (domain.Customer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Customer
	err := querier.QueryRow(ctx, getByNameSQL, name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return domain.Customer{}, postgres.MapError(err, "customer", name)
	}

	return c, nil
}

// List returns all customers ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Customer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	if customers == nil {
		customers = []domain.Customer{}
	}

	return customers, nil
}

// Rename updates a customer's name and cascades it into every table that
// denormalizes the name. Callers must run it inside a transaction so the
// tables cannot drift. A taken name results in domain.ErrAlreadyExists,
// a missing customer in domain.ErrNotFound.
func (r *Repo) Rename(ctx context.Context, id uuid.UUID, newName string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, renameSQL, id, newName)
	if err != nil {
		return postgres.MapError(err, "customer", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}

	for _, sql := range []string{renameLedgerSQL, renameTimeTableSQL, renameSummarySQL} {
		if _, err := querier.Exec(ctx, sql, id, newName); err != nil {
			return postgres.MapError(err, "customer", id)
		}
	}

	return nil
}

// Delete removes a customer. Referencing ledger rows make the delete fail
// with a foreign key violation; the service layer guards against that
// before calling.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "customer", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
