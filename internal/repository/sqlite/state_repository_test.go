package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/Fahiz07/Travel-Tracker/internal/repository"
)

func TestStateCodeByName(t *testing.T) {
	r := NewStateRepository(newTestDB(t))

	tests := []struct {
		name string
		want string
	}{
		{"Texas", "TX"},
		{"texas", "TX"},
		{"TEXAS", "TX"},
		{"tExAs", "TX"},
		{"California", "CA"},
		{"new hampshire", "NH"},
	}
	for _, tt := range tests {
		got, err := r.CodeByName(context.Background(), tt.name)
		if err != nil {
			t.Errorf("CodeByName(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CodeByName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStateCodeByName_NotFound(t *testing.T) {
	r := NewStateRepository(newTestDB(t))

	_, err := r.CodeByName(context.Background(), "Atlantis")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("CodeByName() error = %v, want ErrNotFound", err)
	}
}

func TestStateInitIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	r := NewStateRepository(db)

	// newTestDB already ran Init once; a second run must not duplicate rows.
	if err := r.Init(context.Background()); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM states`).Scan(&count); err != nil {
		t.Fatalf("count states: %v", err)
	}
	if count != 50 {
		t.Errorf("states count = %d, want 50", count)
	}
}
