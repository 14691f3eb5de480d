package infra_quota

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Ewen02/swipe-movie-sub000/internal/config"
	"github.com/Ewen02/swipe-movie-sub000/internal/model"
)

const KindSwipes = "swipes"

// Service resolves a user's plan and answers per-room quota checks. A limit
// below zero means unlimited. Unknown users fall back to the free plan.
type Service struct {
	db  *sqlx.DB
	cfg config.Quota
}

func New(db *sqlx.DB, cfg config.Quota) *Service {
	return &Service{db: db, cfg: cfg}
}

type userDTO struct {
	ID    uuid.UUID `db:"id"`
	Login string    `db:"login"`
	Plan  string    `db:"plan"`
}

func (dto userDTO) toModel() model.User {
	return model.User{
		ID:    dto.ID,
		Login: dto.Login,
		Plan:  model.Plan(dto.Plan),
	}
}

func (s *Service) CheckLimit(ctx context.Context, userID uuid.UUID, kind string, current int) (model.QuotaDecision, error) {
	if kind != KindSwipes {
		return model.QuotaDecision{Allowed: true, Limit: -1}, nil
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return model.QuotaDecision{}, err
	}

	limit := s.cfg.FreeSwipesPerRoom
	if user.Plan == model.PlanPremium {
		limit = s.cfg.PremiumSwipesPerRoom
	}

	return model.QuotaDecision{
		Allowed: limit < 0 || current < limit,
		Limit:   limit,
	}, nil
}

func (s *Service) user(ctx context.Context, userID uuid.UUID) (model.User, error) {
	var dto userDTO

	query := `SELECT id, login, plan FROM users WHERE id = $1`

	err := s.db.GetContext(ctx, &dto, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{ID: userID, Plan: model.PlanFree}, nil
		}
		return model.User{}, err
	}

	return dto.toModel(), nil
}
