package infra_quota

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/Ewen02/swipe-movie-sub000/internal/config"
)

type QuotaInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db      *sqlx.DB
	mock    sqlmock.Sqlmock
	service *Service
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	service := New(sqlxDB, config.Quota{
		FreeSwipesPerRoom:    100,
		PremiumSwipesPerRoom: -1,
	})

	return &resources{
		db:      sqlxDB,
		mock:    mock,
		service: service,
		ctx:     context.Background(),
	}
}

func validUserID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

func userColumns() []string {
	return []string{"id", "login", "plan"}
}

func expectPlanQuery(r *resources, plan string) {
	r.mock.ExpectQuery("SELECT id, login, plan FROM users").
		WithArgs(validUserID()).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(validUserID(), "user", plan))
}

func (s *QuotaInfraUnitSuite) TestCheckLimit(t provider.T) {
	t.Run("Should allow a free user under the limit", func(t provider.T) {
		r := initResources(t)
		expectPlanQuery(r, "free")

		decision, err := r.service.CheckLimit(r.ctx, validUserID(), KindSwipes, 99)

		assert.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, 100, decision.Limit)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should reject a free user at the limit", func(t provider.T) {
		r := initResources(t)
		expectPlanQuery(r, "free")

		decision, err := r.service.CheckLimit(r.ctx, validUserID(), KindSwipes, 100)

		assert.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, 100, decision.Limit)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should treat a negative premium limit as unlimited", func(t provider.T) {
		r := initResources(t)
		expectPlanQuery(r, "premium")

		decision, err := r.service.CheckLimit(r.ctx, validUserID(), KindSwipes, 100000)

		assert.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, -1, decision.Limit)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should fall back to the free plan for an unknown user", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery("SELECT id, login, plan FROM users").
			WithArgs(validUserID()).
			WillReturnError(sql.ErrNoRows)

		decision, err := r.service.CheckLimit(r.ctx, validUserID(), KindSwipes, 0)

		assert.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, 100, decision.Limit)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should not limit unknown kinds", func(t provider.T) {
		r := initResources(t)

		decision, err := r.service.CheckLimit(r.ctx, validUserID(), "rooms", 100000)

		assert.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should return error when the lookup fails", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery("SELECT id, login, plan FROM users").
			WithArgs(validUserID()).
			WillReturnError(errors.New("pq: connection refused"))

		_, err := r.service.CheckLimit(r.ctx, validUserID(), KindSwipes, 0)

		assert.Error(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(QuotaInfraUnitSuite))
}
