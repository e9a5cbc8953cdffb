package domain

// Rating represents a single rating submission. Ratings are append-only;
// the same user may rate the same movie more than once.
type Rating struct {
	ID      int64
	UserID  int64
	MovieID int64
	Value   float64
}

// UserRating is the (movie, value) projection returned when listing a
// user's ratings.
type UserRating struct {
	MovieID int64
	Value   float64
}
