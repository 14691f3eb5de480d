package usecase_match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
)

var (
	ErrFailedToCountLikes  = errors.New("failed to count likes")
	ErrFailedToStoreMatch  = errors.New("failed to store match")
	ErrFailedToDeleteMatch = errors.New("failed to delete match")
	ErrFailedToLoadMatches = errors.New("failed to load matches")
)

//go:generate mockery --name=SwipeCounter --output=../../../mocks/match --filename=swipe_counter.go
type SwipeCounter interface {
	CountLikes(ctx context.Context, roomID uuid.UUID, movieID int64) (int, error)
}

//go:generate mockery --name=MatchRepository --output=../../../mocks/match --filename=repository.go
type MatchRepository interface {
	// Create inserts the match unless one already exists for (room, movie).
	// It returns the row that ended up in the store and whether this call
	// actually inserted it.
	Create(ctx context.Context, match model.Match) (model.Match, bool, error)
	Delete(ctx context.Context, roomID uuid.UUID, movieID int64) (bool, error)
	ByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Match, error)
}

//go:generate mockery --name=Notifier --output=../../../mocks/match --filename=notifier.go
type Notifier interface {
	EmitMatchCreated(roomID uuid.UUID, match model.MatchWithVotes, movie *model.Candidate)
	EmitMatchDeleted(roomID uuid.UUID, movieID int64)
}

//go:generate mockery --name=RoomReader --output=../../../mocks/match --filename=room_reader.go
type RoomReader interface {
	MediaType(ctx context.Context, roomID uuid.UUID) (model.MediaType, error)
}

//go:generate mockery --name=Catalog --output=../../../mocks/match --filename=catalog.go
type Catalog interface {
	Details(ctx context.Context, mediaType model.MediaType, movieID int64) (model.Candidate, error)
}

// Detector derives match existence from live like counts. A (room, movie)
// pair is either Matched or not; both transitions are idempotent so
// concurrent callers can race freely.
type Detector struct {
	swipes   SwipeCounter
	matches  MatchRepository
	rooms    RoomReader
	catalog  Catalog
	notifier Notifier

	threshold int
	logger    *slog.Logger
}

type DetectorOption func(*Detector)

func WithLogger(logger *slog.Logger) DetectorOption {
	return func(d *Detector) {
		d.logger = logger
	}
}

func New(
	swipes SwipeCounter,
	matches MatchRepository,
	rooms RoomReader,
	catalog Catalog,
	notifier Notifier,
	threshold int,
	opts ...DetectorOption,
) *Detector {
	if threshold <= 0 {
		threshold = 2 /* default */
	}
	d := &Detector{
		swipes:    swipes,
		matches:   matches,
		rooms:     rooms,
		catalog:   catalog,
		notifier:  notifier,
		threshold: threshold,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Detector) Threshold() int {
	return d.threshold
}

// Evaluate counts current likes for the pair and creates the match once the
// threshold is reached. The storage uniqueness constraint makes creation a
// create-or-no-op; only the caller that actually inserted the row broadcasts.
func (d *Detector) Evaluate(ctx context.Context, roomID uuid.UUID, movieID int64) (*model.MatchWithVotes, error) {
	count, err := d.swipes.CountLikes(ctx, roomID, movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToCountLikes, err)
	}

	if count < d.threshold {
		return nil, nil
	}

	match, created, err := d.matches.Create(ctx, model.Match{
		ID:        uuid.New(),
		RoomID:    roomID,
		MovieID:   movieID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToStoreMatch, err)
	}

	result := model.MatchWithVotes{Match: match, VoteCount: count}

	if created {
		d.notifier.EmitMatchCreated(roomID, result, d.movieDetails(ctx, roomID, movieID))
	}

	return &result, nil
}

// DeleteMatch removes the match row if present. No-op when the pair never
// matched; the broadcast fires only on an actual deletion.
func (d *Detector) DeleteMatch(ctx context.Context, roomID uuid.UUID, movieID int64) error {
	deleted, err := d.matches.Delete(ctx, roomID, movieID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDeleteMatch, err)
	}

	if deleted {
		d.notifier.EmitMatchDeleted(roomID, movieID)
	}

	return nil
}

// Matches returns the room's matches with vote counts recomputed from live
// swipe rows.
func (d *Detector) Matches(ctx context.Context, roomID uuid.UUID) ([]model.MatchWithVotes, error) {
	matches, err := d.matches.ByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadMatches, err)
	}

	result := make([]model.MatchWithVotes, 0, len(matches))
	for _, m := range matches {
		count, err := d.swipes.CountLikes(ctx, roomID, m.MovieID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToCountLikes, err)
		}
		result = append(result, model.MatchWithVotes{Match: m, VoteCount: count})
	}

	return result, nil
}

// movieDetails is best-effort metadata for the matchCreated broadcast.
func (d *Detector) movieDetails(ctx context.Context, roomID uuid.UUID, movieID int64) *model.Candidate {
	mediaType, err := d.rooms.MediaType(ctx, roomID)
	if err != nil {
		d.logger.Warn("failed to resolve room media type", "room_id", roomID, "error", err)
		return nil
	}

	movie, err := d.catalog.Details(ctx, mediaType, movieID)
	if err != nil {
		d.logger.Warn("failed to fetch movie details", "movie_id", movieID, "error", err)
		return nil
	}

	return &movie
}
