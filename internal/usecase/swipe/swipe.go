package usecase_swipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrNotMember          = errors.New("user is not a room member")
	ErrFailedToSaveSwipe  = errors.New("failed to save swipe")
	ErrFailedToLoadSwipes = errors.New("failed to load swipes")
	ErrInternal           = errors.New("internal error")
)

// QuotaExceededError carries the quota payload the client renders.
type QuotaExceededError struct {
	Limit   int
	Current int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("swipe quota exceeded: %d/%d", e.Current, e.Limit)
}

//go:generate mockery --name=SwipeRepository --output=../../../mocks/swipe --filename=repository.go
type SwipeRepository interface {
	// Upsert creates or updates the row on (user_id, room_id, movie_id).
	Upsert(ctx context.Context, swipe model.Swipe) (model.Swipe, error)
	// Delete removes the row and returns it, or nil if none existed.
	Delete(ctx context.Context, userID, roomID uuid.UUID, movieID int64) (*model.Swipe, error)
	Exists(ctx context.Context, userID, roomID uuid.UUID, movieID int64) (bool, error)
	CountByUser(ctx context.Context, userID, roomID uuid.UUID) (int, error)
	CountLikes(ctx context.Context, roomID uuid.UUID, movieID int64) (int, error)
	ListByUser(ctx context.Context, userID, roomID uuid.UUID) ([]model.Swipe, error)
}

//go:generate mockery --name=RoomRepository --output=../../../mocks/swipe --filename=room_repository.go
type RoomRepository interface {
	Exists(ctx context.Context, roomID uuid.UUID) (bool, error)
	IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
}

//go:generate mockery --name=QuotaService --output=../../../mocks/swipe --filename=quota.go
type QuotaService interface {
	CheckLimit(ctx context.Context, userID uuid.UUID, kind string, current int) (model.QuotaDecision, error)
}

//go:generate mockery --name=Cache --output=../../../mocks/swipe --filename=cache.go
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

//go:generate mockery --name=RecommendationInvalidator --output=../../../mocks/swipe --filename=recommendation_invalidator.go
type RecommendationInvalidator interface {
	InvalidateRoom(ctx context.Context, roomID uuid.UUID) error
}

//go:generate mockery --name=MatchEvaluator --output=../../../mocks/swipe --filename=match_evaluator.go
type MatchEvaluator interface {
	Evaluate(ctx context.Context, roomID uuid.UUID, movieID int64) (*model.MatchWithVotes, error)
	DeleteMatch(ctx context.Context, roomID uuid.UUID, movieID int64) error
	Threshold() int
}

const (
	quotaKindSwipes   = "swipes"
	swipeListCacheTTL = 5 * time.Minute
)

// Ledger records votes. The write itself is the only hard failure; every
// post-commit effect (cache invalidation, match re-evaluation) is best-effort.
type Ledger struct {
	swipes          SwipeRepository
	rooms           RoomRepository
	quota           QuotaService
	cache           Cache
	recommendations RecommendationInvalidator
	matches         MatchEvaluator

	logger *slog.Logger
}

type LedgerOption func(*Ledger)

func WithLogger(logger *slog.Logger) LedgerOption {
	return func(l *Ledger) {
		l.logger = logger
	}
}

func New(
	swipes SwipeRepository,
	rooms RoomRepository,
	quota QuotaService,
	cache Cache,
	recommendations RecommendationInvalidator,
	matches MatchEvaluator,
	opts ...LedgerOption,
) *Ledger {
	l := &Ledger{
		swipes:          swipes,
		rooms:           rooms,
		quota:           quota,
		cache:           cache,
		recommendations: recommendations,
		matches:         matches,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Upsert records the user's vote on a title. Quota applies only to a brand
// new (user, room, movie) triple; re-voting an already swiped title just
// flips the value.
func (l *Ledger) Upsert(ctx context.Context, userID, roomID uuid.UUID, movieID int64, value bool) (model.Swipe, error) {
	isMember, err := l.rooms.IsMember(ctx, roomID, userID)
	if err != nil {
		return model.Swipe{}, errors.Join(ErrInternal, err)
	}
	if !isMember {
		return model.Swipe{}, ErrNotMember
	}

	exists, err := l.swipes.Exists(ctx, userID, roomID, movieID)
	if err != nil {
		return model.Swipe{}, errors.Join(ErrInternal, err)
	}

	if !exists {
		current, err := l.swipes.CountByUser(ctx, userID, roomID)
		if err != nil {
			return model.Swipe{}, errors.Join(ErrInternal, err)
		}
		decision, err := l.quota.CheckLimit(ctx, userID, quotaKindSwipes, current)
		if err != nil {
			return model.Swipe{}, errors.Join(ErrInternal, err)
		}
		if !decision.Allowed {
			return model.Swipe{}, &QuotaExceededError{Limit: decision.Limit, Current: current}
		}
	}

	swipe, err := l.swipes.Upsert(ctx, model.Swipe{
		ID:      uuid.New(),
		UserID:  userID,
		RoomID:  roomID,
		MovieID: movieID,
		Value:   value,
	})
	if err != nil {
		return model.Swipe{}, fmt.Errorf("%w: %w", ErrFailedToSaveSwipe, err)
	}

	effects := []sideEffect{
		{"invalidate swipe list cache", func(ctx context.Context) error {
			return l.cache.Del(ctx, SwipeListKey(userID, roomID))
		}},
		{"invalidate recommendation cache", func(ctx context.Context) error {
			return l.recommendations.InvalidateRoom(ctx, roomID)
		}},
	}
	if value {
		effects = append(effects, sideEffect{"evaluate match", func(ctx context.Context) error {
			_, err := l.matches.Evaluate(ctx, roomID, movieID)
			return err
		}})
	}
	l.runSideEffects(ctx, effects)

	return swipe, nil
}

// Delete undoes a vote. A missing swipe is not an error; the caller learns
// nothing was deleted.
func (l *Ledger) Delete(ctx context.Context, userID, roomID uuid.UUID, movieID int64) (bool, error) {
	roomExists, err := l.rooms.Exists(ctx, roomID)
	if err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	if !roomExists {
		return false, ErrRoomNotFound
	}

	deleted, err := l.swipes.Delete(ctx, userID, roomID, movieID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrFailedToSaveSwipe, err)
	}
	if deleted == nil {
		return false, nil
	}

	effects := []sideEffect{
		{"invalidate swipe list cache", func(ctx context.Context) error {
			return l.cache.Del(ctx, SwipeListKey(userID, roomID))
		}},
		{"invalidate recommendation cache", func(ctx context.Context) error {
			return l.recommendations.InvalidateRoom(ctx, roomID)
		}},
	}
	if deleted.Value {
		effects = append(effects, sideEffect{"re-evaluate match", func(ctx context.Context) error {
			count, err := l.swipes.CountLikes(ctx, roomID, movieID)
			if err != nil {
				return err
			}
			if count < l.matches.Threshold() {
				return l.matches.DeleteMatch(ctx, roomID, movieID)
			}
			return nil
		}})
	}
	l.runSideEffects(ctx, effects)

	return true, nil
}

// Swipes returns the user's swipes in a room, through the per-user cache.
func (l *Ledger) Swipes(ctx context.Context, userID, roomID uuid.UUID) ([]model.Swipe, error) {
	key := SwipeListKey(userID, roomID)

	if raw, ok, err := l.cache.Get(ctx, key); err != nil {
		l.logger.Warn("swipe list cache read failed", "key", key, "error", err)
	} else if ok {
		var swipes []model.Swipe
		if err := json.Unmarshal(raw, &swipes); err == nil {
			return swipes, nil
		}
		l.logger.Warn("swipe list cache entry corrupted", "key", key)
	}

	swipes, err := l.swipes.ListByUser(ctx, userID, roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadSwipes, err)
	}

	if raw, err := json.Marshal(swipes); err == nil {
		if err := l.cache.Set(ctx, key, raw, swipeListCacheTTL); err != nil {
			l.logger.Warn("swipe list cache write failed", "key", key, "error", err)
		}
	}

	return swipes, nil
}

func SwipeListKey(userID, roomID uuid.UUID) string {
	return fmt.Sprintf("user:%s:room:%s:swipes", userID, roomID)
}

type sideEffect struct {
	name string
	fn   func(ctx context.Context) error
}

// runSideEffects executes post-commit tasks in order. The vote is already
// durable at this point, so a failure here is logged and swallowed.
func (l *Ledger) runSideEffects(ctx context.Context, effects []sideEffect) {
	for _, effect := range effects {
		if err := effect.fn(ctx); err != nil {
			l.logger.Error("post-commit side effect failed", "effect", effect.name, "error", err)
		}
	}
}
