package domain

// Movie represents a catalog entry. The identifier is assigned by the
// external catalog provider and reused as the local primary key, so repeated
// ingestion of the same record maps onto the same row. ReleaseDate is kept
// as the provider's opaque date string.
type Movie struct {
	ID          int64
	Title       string
	ReleaseDate string
	Overview    string
}
