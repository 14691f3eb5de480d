package usecase_swipe

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
	mocks "github.com/Ewen02/swipe-movie-sub000/mocks/swipe"
)

type UsecaseSwipeUnitSuite struct {
	suite.Suite
}

// resources are rebuilt per subtest so expectations and not-called
// assertions never leak between cases.
type resources struct {
	swipes  *mocks.SwipeRepository
	rooms   *mocks.RoomRepository
	quota   *mocks.QuotaService
	cache   *mocks.Cache
	recs    *mocks.RecommendationInvalidator
	matches *mocks.MatchEvaluator
	ledger  *Ledger
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	r := &resources{
		swipes:  mocks.NewSwipeRepository(t),
		rooms:   mocks.NewRoomRepository(t),
		quota:   mocks.NewQuotaService(t),
		cache:   mocks.NewCache(t),
		recs:    mocks.NewRecommendationInvalidator(t),
		matches: mocks.NewMatchEvaluator(t),
		ctx:     context.Background(),
	}
	r.ledger = New(r.swipes, r.rooms, r.quota, r.cache, r.recs, r.matches)
	return r
}

/*
'Object Mother' pattern example
aka cooks specific objects.
*/
func validUserID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

func validRoomID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

func validMovieID() int64 {
	return int64(603)
}

func validSwipe(value bool) model.Swipe {
	return model.Swipe{
		ID:      uuid.New(),
		UserID:  validUserID(),
		RoomID:  validRoomID(),
		MovieID: validMovieID(),
		Value:   value,
	}
}

func validSwipes(n int) []model.Swipe {
	swipes := make([]model.Swipe, n)
	for i := 0; i < n; i++ {
		swipes[i] = validSwipe(i%2 == 0)
		swipes[i].MovieID = int64(100 + i)
	}
	return swipes
}

func (r *resources) expectSideEffectInvalidation() {
	key := SwipeListKey(validUserID(), validRoomID())
	r.cache.On("Del", r.ctx, key).Return(nil).Once()
	r.recs.On("InvalidateRoom", r.ctx, validRoomID()).Return(nil).Once()
}

func (s *UsecaseSwipeUnitSuite) TestUpsert(t provider.T) {
	t.Run("Should reject a non-member", func(t provider.T) {
		r := initResources(t)

		r.rooms.On("IsMember", r.ctx, validRoomID(), validUserID()).
			Return(false, nil).Once()

		_, err := r.ledger.Upsert(r.ctx, validUserID(), validRoomID(), validMovieID(), true)

		assert.ErrorIs(t, err, ErrNotMember)
	})

	t.Run("Should carry quota payload when limit is reached", func(t provider.T) {
		r := initResources(t)

		r.rooms.On("IsMember", r.ctx, validRoomID(), validUserID()).
			Return(true, nil).Once()
		r.swipes.On("Exists", r.ctx, validUserID(), validRoomID(), validMovieID()).
			Return(false, nil).Once()
		r.swipes.On("CountByUser", r.ctx, validUserID(), validRoomID()).
			Return(100, nil).Once()
		r.quota.On("CheckLimit", r.ctx, validUserID(), "swipes", 100).
			Return(model.QuotaDecision{Allowed: false, Limit: 100}, nil).Once()

		_, err := r.ledger.Upsert(r.ctx, validUserID(), validRoomID(), validMovieID(), true)

		var quotaErr *QuotaExceededError
		assert.ErrorAs(t, err, &quotaErr)
		assert.Equal(t, 100, quotaErr.Limit)
		assert.Equal(t, 100, quotaErr.Current)
	})

	t.Run("Should skip quota check when the swipe already exists", func(t provider.T) {
		r := initResources(t)

		r.rooms.On("IsMember", r.ctx, validRoomID(), validUserID()).
			Return(true, nil).Once()
		r.swipes.On("Exists", r.ctx, validUserID(), validRoomID(), validMovieID()).
			Return(true, nil).Once()
		r.swipes.On("Upsert", r.ctx, mock.MatchedBy(func(sw model.Swipe) bool {
			return sw.UserID == validUserID() && sw.MovieID == validMovieID() && !sw.Value
		})).Return(validSwipe(false), nil).Once()
		r.expectSideEffectInvalidation()

		_, err := r.ledger.Upsert(r.ctx, validUserID(), validRoomID(), validMovieID(), false)

		assert.NoError(t, err)
		r.quota.AssertNotCalled(t, "CheckLimit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should evaluate a match after a like", func(t provider.T) {
		r := initResources(t)

		r.rooms.On("IsMember", r.ctx, validRoomID(), validUserID()).
			Return(true, nil).Once()
		r.swipes.On("Exists", r.ctx, validUserID(), validRoomID(), validMovieID()).
			Return(false, nil).Once()
		r.swipes.On("CountByUser", r.ctx, validUserID(), validRoomID()).
			Return(3, nil).Once()
		r.quota.On("CheckLimit", r.ctx, validUserID(), "swipes", 3).
			Return(model.QuotaDecision{Allowed: true, Limit: 100}, nil).Once()
		r.swipes.On("Upsert", r.ctx, mock.AnythingOfType("model.Swipe")).
			Return(validSwipe(true), nil).Once()
		r.expectSideEffectInvalidation()
		r.matches.On("Evaluate", r.ctx, validRoomID(), validMovieID()).
			Return(nil, nil).Once()

		swipe, err := r.ledger.Upsert(r.ctx, validUserID(), validRoomID(), validMovieID(), true)

		assert.NoError(t, err)
		assert.True(t, swipe.Value)
	})

	t.Run("Should not evaluate a match after a dislike", func(t provider.T) {
		r := initResources(t)

		r.rooms.On("IsMember", r.ctx, validRoomID(), validUserID()).
			Return(true, nil).Once()
		r.swipes.On("Exists", r.ctx, validUserID(), validRoomID(), validMovieID()).
			Return(true, nil).Once()
		r.swipes.On("Upsert", r.ctx, mock.AnythingOfType("model.Swipe")).
			Return(validSwipe(false), nil).Once()
		r.expectSideEffectInvalidation()

		_, err := r.ledger.Upsert(r.ctx, validUserID(), validRoomID(), validMovieID(), false)

		assert.NoError(t, err)
		r.matches.AssertNotCalled(t, "Evaluate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should succeed even when side effects fail", func(t provider.T) {
		r := initResources(t)

		r.rooms.On("IsMember", r.ctx, validRoomID(), validUserID()).
			Return(true, nil).Once()
		r.swipes.On("Exists", r.ctx, validUserID(), validRoomID(), validMovieID()).
			Return(true, nil).Once()
		r.swipes.On("Upsert", r.ctx, mock.AnythingOfType("model.Swipe")).
			Return(validSwipe(true), nil).Once()
		r.cache.On("Del", r.ctx, SwipeListKey(validUserID(), validRoomID())).
			Return(errors.New("redis down")).Once()
		r.recs.On("InvalidateRoom", r.ctx, validRoomID()).
			Return(errors.New("redis down")).Once()
		r.matches.On("Evaluate", r.ctx, validRoomID(), validMovieID()).
			Return(nil, errors.New("db down")).Once()

		_, err := r.ledger.Upsert(r.ctx, validUserID(), validRoomID(), validMovieID(), true)

		assert.NoError(t, err)
	})

	t.Run("Should return error when repository fails", func(t provider.T) {
		r := initResources(t)

		r.rooms.On("IsMember", r.ctx, validRoomID(), validUserID()).
			Return(true, nil).Once()
		r.swipes.On("Exists", r.ctx, validUserID(), validRoomID(), validMovieID()).
			Return(true, nil).Once()
		r.swipes.On("Upsert", r.ctx, mock.AnythingOfType("model.Swipe")).
			Return(model.Swipe{}, errors.New("pq: connection refused")).Once()

		_, err := r.ledger.Upsert(r.ctx, validUserID(), validRoomID(), validMovieID(), true)

		assert.ErrorIs(t, err, ErrFailedToSaveSwipe)
	})
}

func (s *UsecaseSwipeUnitSuite) TestDelete(t provider.T) {
	t.Run("Should report unknown room", func(t provider.T) {
		r := initResources(t)

		r.rooms.On("Exists", r.ctx, validRoomID()).Return(false, nil).Once()

		_, err := r.ledger.Delete(r.ctx, validUserID(), validRoomID(), validMovieID())

		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("Should report nothing deleted for a missing swipe", func(t provider.T) {
		r := initResources(t)

		r.rooms.On("Exists", r.ctx, validRoomID()).Return(true, nil).Once()
		r.swipes.On("Delete", r.ctx, validUserID(), validRoomID(), validMovieID()).
			Return(nil, nil).Once()

		deleted, err := r.ledger.Delete(r.ctx, validUserID(), validRoomID(), validMovieID())

		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Should tear down the match when likes fall below threshold", func(t provider.T) {
		r := initResources(t)
		removed := validSwipe(true)

		r.rooms.On("Exists", r.ctx, validRoomID()).Return(true, nil).Once()
		r.swipes.On("Delete", r.ctx, validUserID(), validRoomID(), validMovieID()).
			Return(&removed, nil).Once()
		r.expectSideEffectInvalidation()
		r.swipes.On("CountLikes", r.ctx, validRoomID(), validMovieID()).
			Return(1, nil).Once()
		r.matches.On("Threshold").Return(2).Once()
		r.matches.On("DeleteMatch", r.ctx, validRoomID(), validMovieID()).
			Return(nil).Once()

		deleted, err := r.ledger.Delete(r.ctx, validUserID(), validRoomID(), validMovieID())

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Should keep the match when likes stay at threshold", func(t provider.T) {
		r := initResources(t)
		removed := validSwipe(true)

		r.rooms.On("Exists", r.ctx, validRoomID()).Return(true, nil).Once()
		r.swipes.On("Delete", r.ctx, validUserID(), validRoomID(), validMovieID()).
			Return(&removed, nil).Once()
		r.expectSideEffectInvalidation()
		r.swipes.On("CountLikes", r.ctx, validRoomID(), validMovieID()).
			Return(2, nil).Once()
		r.matches.On("Threshold").Return(2).Once()

		deleted, err := r.ledger.Delete(r.ctx, validUserID(), validRoomID(), validMovieID())

		assert.NoError(t, err)
		assert.True(t, deleted)
		r.matches.AssertNotCalled(t, "DeleteMatch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should not touch matches when a dislike is removed", func(t provider.T) {
		r := initResources(t)
		removed := validSwipe(false)

		r.rooms.On("Exists", r.ctx, validRoomID()).Return(true, nil).Once()
		r.swipes.On("Delete", r.ctx, validUserID(), validRoomID(), validMovieID()).
			Return(&removed, nil).Once()
		r.expectSideEffectInvalidation()

		deleted, err := r.ledger.Delete(r.ctx, validUserID(), validRoomID(), validMovieID())

		assert.NoError(t, err)
		assert.True(t, deleted)
		r.swipes.AssertNotCalled(t, "CountLikes", mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *UsecaseSwipeUnitSuite) TestSwipes(t provider.T) {
	t.Run("Should serve from cache on hit", func(t provider.T) {
		r := initResources(t)
		expected := validSwipes(3)
		raw, err := json.Marshal(expected)
		assert.NoError(t, err)

		r.cache.On("Get", r.ctx, SwipeListKey(validUserID(), validRoomID())).
			Return(raw, true, nil).Once()

		actual, err := r.ledger.Swipes(r.ctx, validUserID(), validRoomID())

		assert.NoError(t, err)
		assert.Len(t, actual, len(expected))
		r.swipes.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should fall back to repository and repopulate cache", func(t provider.T) {
		r := initResources(t)
		expected := validSwipes(2)
		key := SwipeListKey(validUserID(), validRoomID())

		r.cache.On("Get", r.ctx, key).Return(nil, false, nil).Once()
		r.swipes.On("ListByUser", r.ctx, validUserID(), validRoomID()).
			Return(expected, nil).Once()
		r.cache.On("Set", r.ctx, key, mock.AnythingOfType("[]uint8"), 5*time.Minute).
			Return(nil).Once()

		actual, err := r.ledger.Swipes(r.ctx, validUserID(), validRoomID())

		assert.NoError(t, err)
		assert.ElementsMatch(t, expected, actual)
	})

	t.Run("Should survive a corrupted cache entry", func(t provider.T) {
		r := initResources(t)
		expected := validSwipes(1)
		key := SwipeListKey(validUserID(), validRoomID())

		r.cache.On("Get", r.ctx, key).Return([]byte("{not json"), true, nil).Once()
		r.swipes.On("ListByUser", r.ctx, validUserID(), validRoomID()).
			Return(expected, nil).Once()
		r.cache.On("Set", r.ctx, key, mock.AnythingOfType("[]uint8"), 5*time.Minute).
			Return(nil).Once()

		actual, err := r.ledger.Swipes(r.ctx, validUserID(), validRoomID())

		assert.NoError(t, err)
		assert.ElementsMatch(t, expected, actual)
	})

	t.Run("Should return error when repository fails", func(t provider.T) {
		r := initResources(t)
		key := SwipeListKey(validUserID(), validRoomID())

		r.cache.On("Get", r.ctx, key).Return(nil, false, nil).Once()
		r.swipes.On("ListByUser", r.ctx, validUserID(), validRoomID()).
			Return(nil, errors.New("pq: connection refused")).Once()

		swipes, err := r.ledger.Swipes(r.ctx, validUserID(), validRoomID())

		assert.ErrorIs(t, err, ErrFailedToLoadSwipes)
		assert.Nil(t, swipes)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSwipeUnitSuite))
}
