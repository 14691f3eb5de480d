package model

const EmptyTitle string = ""

// Candidate is a catalog title eligible to be swiped and scored for a room.
type Candidate struct {
	ID          int64
	Title       string
	Overview    string
	PosterLink  string
	GenreIDs    []int
	VoteAverage float64
	VoteCount   int
	Popularity  float64
	ReleaseDate string // YYYY-MM-DD, may be empty
	Runtime     int
}

// ScoreBreakdown keeps every scoring component so rankings stay explainable.
type ScoreBreakdown struct {
	Watchlist  float64
	Quality    float64
	Recency    float64
	UserRating float64
	Penalties  float64
	Total      float64
}

type RankedCandidate struct {
	Candidate Candidate
	Score     ScoreBreakdown
}

// CatalogQuery is the discover request sent to the external catalog provider.
type CatalogQuery struct {
	GenreID   int
	MediaType MediaType
	Page      int
	Filters   Filters
}
