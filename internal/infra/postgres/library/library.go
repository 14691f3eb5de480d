package infra_postgres_library

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
)

// Driver reads the synced external-library facts in aggregate. The core
// never writes this table; the OAuth sync service owns it.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type countDTO struct {
	ExternalID int64 `db:"external_id"`
	Count      int   `db:"count"`
}

type ratingDTO struct {
	ExternalID int64   `db:"external_id"`
	AvgRating  float64 `db:"avg_rating"`
}

func (d *Driver) WatchlistCounts(ctx context.Context, memberIDs []uuid.UUID, mediaType model.MediaType, externalIDs []int64) (map[int64]int, error) {
	return d.statusCounts(ctx, memberIDs, mediaType, externalIDs, model.StatusWatchlist)
}

func (d *Driver) WatchedCounts(ctx context.Context, memberIDs []uuid.UUID, mediaType model.MediaType, externalIDs []int64) (map[int64]int, error) {
	return d.statusCounts(ctx, memberIDs, mediaType, externalIDs, model.StatusWatched)
}

func (d *Driver) statusCounts(ctx context.Context, memberIDs []uuid.UUID, mediaType model.MediaType, externalIDs []int64, status model.LibraryStatus) (map[int64]int, error) {
	var dtos []countDTO

	query := `
		SELECT external_id, COUNT(DISTINCT user_id) AS count
		FROM library_entries
		WHERE user_id = ANY($1)
		  AND media_type = $2
		  AND external_id = ANY($3)
		  AND status = $4
		GROUP BY external_id
	`

	err := d.db.SelectContext(ctx, &dtos, query,
		pq.Array(memberIDs), string(mediaType), pq.Array(externalIDs), string(status))
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int, len(dtos))
	for _, dto := range dtos {
		counts[dto.ExternalID] = dto.Count
	}

	return counts, nil
}

// AverageRatings averages only over members who actually rated the title.
func (d *Driver) AverageRatings(ctx context.Context, memberIDs []uuid.UUID, mediaType model.MediaType, externalIDs []int64) (map[int64]float64, error) {
	var dtos []ratingDTO

	query := `
		SELECT external_id, AVG(rating) AS avg_rating
		FROM library_entries
		WHERE user_id = ANY($1)
		  AND media_type = $2
		  AND external_id = ANY($3)
		  AND rating IS NOT NULL
		GROUP BY external_id
	`

	err := d.db.SelectContext(ctx, &dtos, query,
		pq.Array(memberIDs), string(mediaType), pq.Array(externalIDs))
	if err != nil {
		return nil, err
	}

	ratings := make(map[int64]float64, len(dtos))
	for _, dto := range dtos {
		ratings[dto.ExternalID] = dto.AvgRating
	}

	return ratings, nil
}
