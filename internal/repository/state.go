package repository

import "context"

// StateRepository exposes lookups against the states reference table.
type StateRepository interface {
	Init(ctx context.Context) error
	// CodeByName resolves a state name to its code, case-insensitively.
	// Returns ErrNotFound when no state matches.
	CodeByName(ctx context.Context, name string) (string, error)
}

// VisitRepository defines persistence operations for visited states.
type VisitRepository interface {
	Init(ctx context.Context) error
	ListCodesByUser(ctx context.Context, userID int64) ([]string, error)
	Has(ctx context.Context, stateCode string, userID int64) (bool, error)
	// Add inserts one visit. Returns ErrDuplicate when the pair already
	// exists; the composite primary key closes the check-then-insert race.
	Add(ctx context.Context, stateCode string, userID int64) error
}
