package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Fahiz07/Travel-Tracker/internal/repository"
)

// The composite primary key makes a duplicate visit a constraint violation
// instead of relying on a racy check-then-insert.
const createVisitedStatesTable = `
CREATE TABLE IF NOT EXISTS visited_states (
	state_code TEXT NOT NULL REFERENCES states(state_code),
	user_id INTEGER NOT NULL REFERENCES users(id),
	PRIMARY KEY (state_code, user_id)
);
`

type VisitRepository struct {
	db *sql.DB
}

func NewVisitRepository(db *sql.DB) repository.VisitRepository {
	return &VisitRepository{db: db}
}

func (r *VisitRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createVisitedStatesTable); err != nil {
		return fmt.Errorf("create visited_states table: %w", err)
	}
	return nil
}

func (r *VisitRepository) ListCodesByUser(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT state_code
FROM visited_states
JOIN users ON users.id = user_id
WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list visited states: %w", err)
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan state code: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate visited states: %w", err)
	}
	return codes, nil
}

func (r *VisitRepository) Has(ctx context.Context, stateCode string, userID int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
SELECT 1
FROM visited_states
WHERE state_code = ? AND user_id = ?`,
		stateCode, userID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check visited: %w", err)
	}
	return true, nil
}

func (r *VisitRepository) Add(ctx context.Context, stateCode string, userID int64) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO visited_states (state_code, user_id)
VALUES (?, ?)`,
		stateCode, userID,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return fmt.Errorf("visit %s/%d: %w", stateCode, userID, repository.ErrDuplicate)
		}
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}
