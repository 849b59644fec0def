package sqlite

import (
	"context"
	"database/sql"
	"testing"
)

// newTestDB opens an in-memory database with the full schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if err := NewUserRepository(db).Init(ctx); err != nil {
		t.Fatalf("init users: %v", err)
	}
	if err := NewStateRepository(db).Init(ctx); err != nil {
		t.Fatalf("init states: %v", err)
	}
	if err := NewVisitRepository(db).Init(ctx); err != nil {
		t.Fatalf("init visits: %v", err)
	}
	return db
}
