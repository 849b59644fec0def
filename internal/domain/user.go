package domain

// User is a tracked member of the travel map. Color fills that member's
// visited states when the map renders.
type User struct {
	ID    int64
	Name  string
	Color string
}
