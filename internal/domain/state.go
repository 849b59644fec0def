package domain

// State is read-only reference data: a two letter USPS code and the full name.
type State struct {
	Code string
	Name string
}

// Visit records that a user has been to a state. At most one row exists per
// (state, user) pair.
type Visit struct {
	StateCode string
	UserID    int64
}
