package infra_postgres_swipe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
)

type SwipeInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db     *sqlx.DB
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	driver := New(sqlxDB)

	return &resources{
		db:     sqlxDB,
		mock:   mock,
		driver: driver,
		ctx:    context.Background(),
	}
}

func validUserID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

func validRoomID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

func validMovieID() int64 {
	return int64(603)
}

func modelSwipe(id uuid.UUID, value bool) model.Swipe {
	return model.Swipe{
		ID:      id,
		UserID:  validUserID(),
		RoomID:  validRoomID(),
		MovieID: validMovieID(),
		Value:   value,
	}
}

func swipeColumns() []string {
	return []string{"id", "user_id", "room_id", "movie_id", "value", "created_at", "updated_at"}
}

func validSwipeRow(value bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(swipeColumns()).
		AddRow(uuid.New(), validUserID(), validRoomID(), validMovieID(), value, now, now)
}

func (s *SwipeInfraUnitSuite) TestUpsert(t provider.T) {
	t.Run("Should insert or update on conflict and return the row", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()

		r.mock.ExpectQuery("INSERT INTO swipes").
			WithArgs(id, validUserID(), validRoomID(), validMovieID(), true).
			WillReturnRows(validSwipeRow(true))

		swipe, err := r.driver.Upsert(r.ctx, modelSwipe(id, true))

		assert.NoError(t, err)
		assert.True(t, swipe.Value)
		assert.Equal(t, validMovieID(), swipe.MovieID)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should return error when the insert fails", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()

		r.mock.ExpectQuery("INSERT INTO swipes").
			WithArgs(id, validUserID(), validRoomID(), validMovieID(), false).
			WillReturnError(errors.New("pq: connection refused"))

		_, err := r.driver.Upsert(r.ctx, modelSwipe(id, false))

		assert.Error(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (s *SwipeInfraUnitSuite) TestDelete(t provider.T) {
	t.Run("Should return the deleted row", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery("DELETE FROM swipes").
			WithArgs(validUserID(), validRoomID(), validMovieID()).
			WillReturnRows(validSwipeRow(true))

		swipe, err := r.driver.Delete(r.ctx, validUserID(), validRoomID(), validMovieID())

		assert.NoError(t, err)
		assert.NotNil(t, swipe)
		assert.True(t, swipe.Value)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should return nil for a missing row", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery("DELETE FROM swipes").
			WithArgs(validUserID(), validRoomID(), validMovieID()).
			WillReturnRows(sqlmock.NewRows(swipeColumns()))

		swipe, err := r.driver.Delete(r.ctx, validUserID(), validRoomID(), validMovieID())

		assert.NoError(t, err)
		assert.Nil(t, swipe)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should return error when the query fails", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery("DELETE FROM swipes").
			WithArgs(validUserID(), validRoomID(), validMovieID()).
			WillReturnError(errors.New("pq: connection refused"))

		swipe, err := r.driver.Delete(r.ctx, validUserID(), validRoomID(), validMovieID())

		assert.Error(t, err)
		assert.Nil(t, swipe)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (s *SwipeInfraUnitSuite) TestExists(t provider.T) {
	t.Run("Should report an existing triple", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery("SELECT EXISTS").
			WithArgs(validUserID(), validRoomID(), validMovieID()).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := r.driver.Exists(r.ctx, validUserID(), validRoomID(), validMovieID())

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (s *SwipeInfraUnitSuite) TestCounters(t provider.T) {
	t.Run("Should count a user's swipes in a room", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery("SELECT COUNT").
			WithArgs(validUserID(), validRoomID()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		count, err := r.driver.CountByUser(r.ctx, validUserID(), validRoomID())

		assert.NoError(t, err)
		assert.Equal(t, 42, count)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should count only positive swipes for a movie", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery("SELECT COUNT").
			WithArgs(validRoomID(), validMovieID()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		count, err := r.driver.CountLikes(r.ctx, validRoomID(), validMovieID())

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (s *SwipeInfraUnitSuite) TestListByUser(t provider.T) {
	t.Run("Should map rows to models", func(t provider.T) {
		r := initResources(t)
		now := time.Now()
		rows := sqlmock.NewRows(swipeColumns()).
			AddRow(uuid.New(), validUserID(), validRoomID(), int64(603), true, now, now).
			AddRow(uuid.New(), validUserID(), validRoomID(), int64(604), false, now, now)

		r.mock.ExpectQuery("SELECT id, user_id, room_id, movie_id").
			WithArgs(validUserID(), validRoomID()).
			WillReturnRows(rows)

		swipes, err := r.driver.ListByUser(r.ctx, validUserID(), validRoomID())

		assert.NoError(t, err)
		assert.Len(t, swipes, 2)
		assert.True(t, swipes[0].Value)
		assert.False(t, swipes[1].Value)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should return empty slice for no rows", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery("SELECT id, user_id, room_id, movie_id").
			WithArgs(validUserID(), validRoomID()).
			WillReturnRows(sqlmock.NewRows(swipeColumns()))

		swipes, err := r.driver.ListByUser(r.ctx, validUserID(), validRoomID())

		assert.NoError(t, err)
		assert.Empty(t, swipes)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(SwipeInfraUnitSuite))
}
