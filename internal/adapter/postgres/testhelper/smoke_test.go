package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	c := SeedCustomer(t, pool)

	// Verify customer exists in DB via SELECT.
	var name string
	err := pool.QueryRow(
		context.Background(),
		`SELECT name FROM customers WHERE id = $1`,
		c.ID,
	).Scan(&name)
	if err != nil {
		t.Fatalf("expected customer in DB, got error: %v", err)
	}

	if name != c.Name {
		t.Fatalf("expected name %q, got %q", c.Name, name)
	}
}
