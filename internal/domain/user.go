package domain

// User represents a registered account. Users are created once and never
// mutated or deleted.
type User struct {
	ID       int64
	Username string
}
