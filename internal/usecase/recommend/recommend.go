package usecase_recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
)

var (
	ErrFailedToFetchCandidates = errors.New("failed to fetch candidates")
	ErrInvalidPage             = errors.New("page must be positive")
)

//go:generate mockery --name=Catalog --output=../../../mocks/recommend --filename=catalog.go
type Catalog interface {
	Discover(ctx context.Context, query model.CatalogQuery) ([]model.Candidate, error)
}

//go:generate mockery --name=LibraryRepository --output=../../../mocks/recommend --filename=library.go
type LibraryRepository interface {
	WatchlistCounts(ctx context.Context, memberIDs []uuid.UUID, mediaType model.MediaType, externalIDs []int64) (map[int64]int, error)
	WatchedCounts(ctx context.Context, memberIDs []uuid.UUID, mediaType model.MediaType, externalIDs []int64) (map[int64]int, error)
	AverageRatings(ctx context.Context, memberIDs []uuid.UUID, mediaType model.MediaType, externalIDs []int64) (map[int64]float64, error)
}

//go:generate mockery --name=Cache --output=../../../mocks/recommend --filename=cache.go
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Engine produces a cached, scored, ranked candidate list per room page.
// The cache is a pure optimization: when it is unreachable the engine
// recomputes and returns the page anyway.
type Engine struct {
	catalog Catalog
	library LibraryRepository
	cache   Cache

	ttl      time.Duration
	maxPages int
	logger   *slog.Logger

	now func() time.Time
}

type EngineOption func(*Engine)

func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock pins scoring time in tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

func New(
	catalog Catalog,
	library LibraryRepository,
	cache Cache,
	ttl time.Duration,
	maxPages int,
	opts ...EngineOption,
) *Engine {
	if maxPages <= 0 {
		maxPages = 20 /* default invalidation range */
	}
	e := &Engine{
		catalog:  catalog,
		library:  library,
		cache:    cache,
		ttl:      ttl,
		maxPages: maxPages,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Get returns the ranked page for a room, serving from cache when possible.
// Concurrent misses for the same key may recompute redundantly; the last
// writer wins and both callers get a correct page.
func (e *Engine) Get(ctx context.Context, room model.RoomContext, page int) ([]model.RankedCandidate, error) {
	if page <= 0 {
		return nil, ErrInvalidPage
	}

	key := PageKey(room.RoomID, page)
	if raw, ok, err := e.cache.Get(ctx, key); err != nil {
		e.logger.Warn("recommendation cache read failed", "key", key, "error", err)
	} else if ok {
		var ranked []model.RankedCandidate
		if err := json.Unmarshal(raw, &ranked); err == nil {
			return ranked, nil
		}
		e.logger.Warn("recommendation cache entry corrupted", "key", key)
	}

	candidates, err := e.catalog.Discover(ctx, model.CatalogQuery{
		GenreID:   room.Filters.GenreID,
		MediaType: room.MediaType,
		Page:      page,
		Filters:   room.Filters,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToFetchCandidates, err)
	}

	ranked := e.rank(ctx, room, candidates)

	if raw, err := json.Marshal(ranked); err == nil {
		if err := e.cache.Set(ctx, key, raw, e.ttl); err != nil {
			e.logger.Warn("recommendation cache write failed", "key", key, "error", err)
		}
	}

	return ranked, nil
}

// InvalidateRoom drops every cached page for the room. Called after any swipe
// write in the room and after a member's external library sync completes.
func (e *Engine) InvalidateRoom(ctx context.Context, roomID uuid.UUID) error {
	keys := make([]string, 0, e.maxPages)
	for page := 1; page <= e.maxPages; page++ {
		keys = append(keys, PageKey(roomID, page))
	}
	return e.cache.Del(ctx, keys...)
}

func PageKey(roomID uuid.UUID, page int) string {
	return fmt.Sprintf("room:%s:recommendations:page:%d", roomID, page)
}

// rank fetches the library signals concurrently and scores each candidate.
// A failed signal fetch degrades that component to zero instead of failing
// the page.
func (e *Engine) rank(ctx context.Context, room model.RoomContext, candidates []model.Candidate) []model.RankedCandidate {
	ids := make([]int64, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}

	var (
		wg  sync.WaitGroup
		sig model.LibrarySignals
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if sig.WatchlistCounts, err = e.library.WatchlistCounts(ctx, room.MemberIDs, room.MediaType, ids); err != nil {
			e.logger.Warn("watchlist counts unavailable", "room_id", room.RoomID, "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if sig.WatchedCounts, err = e.library.WatchedCounts(ctx, room.MemberIDs, room.MediaType, ids); err != nil {
			e.logger.Warn("watched counts unavailable", "room_id", room.RoomID, "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if sig.AverageRatings, err = e.library.AverageRatings(ctx, room.MemberIDs, room.MediaType, ids); err != nil {
			e.logger.Warn("average ratings unavailable", "room_id", room.RoomID, "error", err)
		}
	}()
	wg.Wait()

	now := e.now()
	ranked := make([]model.RankedCandidate, len(candidates))
	for i, c := range candidates {
		avg, hasRating := sig.AverageRatings[c.ID]
		ranked[i] = model.RankedCandidate{
			Candidate: c,
			Score: score(c, signals{
				memberCount:    len(room.MemberIDs),
				watchlistCount: sig.WatchlistCounts[c.ID],
				watchedCount:   sig.WatchedCounts[c.ID],
				avgRating:      avg,
				hasRating:      hasRating,
			}, now),
		}
	}

	// Ties keep catalog order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.Total > ranked[j].Score.Total
	})

	return ranked
}
