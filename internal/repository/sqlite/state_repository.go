package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Fahiz07/Travel-Tracker/internal/repository"
)

const createStatesTable = `
CREATE TABLE IF NOT EXISTS states (
	state_code TEXT PRIMARY KEY,
	state_name TEXT NOT NULL
);
`

// usStates is the reference data seeded on Init. The table is read-only to
// the application after that.
var usStates = [][2]string{
	{"AL", "Alabama"}, {"AK", "Alaska"}, {"AZ", "Arizona"}, {"AR", "Arkansas"},
	{"CA", "California"}, {"CO", "Colorado"}, {"CT", "Connecticut"}, {"DE", "Delaware"},
	{"FL", "Florida"}, {"GA", "Georgia"}, {"HI", "Hawaii"}, {"ID", "Idaho"},
	{"IL", "Illinois"}, {"IN", "Indiana"}, {"IA", "Iowa"}, {"KS", "Kansas"},
	{"KY", "Kentucky"}, {"LA", "Louisiana"}, {"ME", "Maine"}, {"MD", "Maryland"},
	{"MA", "Massachusetts"}, {"MI", "Michigan"}, {"MN", "Minnesota"}, {"MS", "Mississippi"},
	{"MO", "Missouri"}, {"MT", "Montana"}, {"NE", "Nebraska"}, {"NV", "Nevada"},
	{"NH", "New Hampshire"}, {"NJ", "New Jersey"}, {"NM", "New Mexico"}, {"NY", "New York"},
	{"NC", "North Carolina"}, {"ND", "North Dakota"}, {"OH", "Ohio"}, {"OK", "Oklahoma"},
	{"OR", "Oregon"}, {"PA", "Pennsylvania"}, {"RI", "Rhode Island"}, {"SC", "South Carolina"},
	{"SD", "South Dakota"}, {"TN", "Tennessee"}, {"TX", "Texas"}, {"UT", "Utah"},
	{"VT", "Vermont"}, {"VA", "Virginia"}, {"WA", "Washington"}, {"WV", "West Virginia"},
	{"WI", "Wisconsin"}, {"WY", "Wyoming"},
}

type StateRepository struct {
	db *sql.DB
}

func NewStateRepository(db *sql.DB) repository.StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createStatesTable); err != nil {
		return fmt.Errorf("create states table: %w", err)
	}
	for _, s := range usStates {
		if _, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO states (state_code, state_name)
VALUES (?, ?)`,
			s[0], s[1],
		); err != nil {
			return fmt.Errorf("seed state %s: %w", s[0], err)
		}
	}
	return nil
}

func (r *StateRepository) CodeByName(ctx context.Context, name string) (string, error) {
	var code string
	err := r.db.QueryRowContext(ctx, `
SELECT state_code
FROM states
WHERE LOWER(state_name) = LOWER(?)`,
		name,
	).Scan(&code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("state %q: %w", name, repository.ErrNotFound)
		}
		return "", fmt.Errorf("find state code: %w", err)
	}
	return code, nil
}
