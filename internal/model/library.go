package model

type LibraryStatus string

const (
	StatusWatched   LibraryStatus = "watched"
	StatusWatchlist LibraryStatus = "watchlist"
)

// LibrarySignals are per-candidate aggregates over a room's member set,
// keyed by the title's external catalog id.
type LibrarySignals struct {
	WatchlistCounts map[int64]int
	WatchedCounts   map[int64]int
	AverageRatings  map[int64]float64
}
