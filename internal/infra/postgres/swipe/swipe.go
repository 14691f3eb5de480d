package infra_postgres_swipe

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type swipeDTO struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	RoomID    uuid.UUID `db:"room_id"`
	MovieID   int64     `db:"movie_id"`
	Value     bool      `db:"value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (dto swipeDTO) toModel() model.Swipe {
	return model.Swipe{
		ID:        dto.ID,
		UserID:    dto.UserID,
		RoomID:    dto.RoomID,
		MovieID:   dto.MovieID,
		Value:     dto.Value,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

// Upsert relies on the (user_id, room_id, movie_id) unique constraint:
// concurrent writers for the same triple serialize and the last value wins.
func (d *Driver) Upsert(ctx context.Context, swipe model.Swipe) (model.Swipe, error) {
	var dto swipeDTO

	query := `
		INSERT INTO swipes (id, user_id, room_id, movie_id, value)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, room_id, movie_id)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		RETURNING id, user_id, room_id, movie_id, value, created_at, updated_at
	`

	err := d.db.GetContext(ctx, &dto, query,
		swipe.ID, swipe.UserID, swipe.RoomID, swipe.MovieID, swipe.Value)
	if err != nil {
		return model.Swipe{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) Delete(ctx context.Context, userID, roomID uuid.UUID, movieID int64) (*model.Swipe, error) {
	var dto swipeDTO

	query := `
		DELETE FROM swipes
		WHERE user_id = $1 AND room_id = $2 AND movie_id = $3
		RETURNING id, user_id, room_id, movie_id, value, created_at, updated_at
	`

	err := d.db.GetContext(ctx, &dto, query, userID, roomID, movieID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	swipe := dto.toModel()
	return &swipe, nil
}

func (d *Driver) Exists(ctx context.Context, userID, roomID uuid.UUID, movieID int64) (bool, error) {
	var exists bool

	query := `
		SELECT EXISTS (
			SELECT 1 FROM swipes
			WHERE user_id = $1 AND room_id = $2 AND movie_id = $3
		)
	`

	err := d.db.GetContext(ctx, &exists, query, userID, roomID, movieID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (d *Driver) CountByUser(ctx context.Context, userID, roomID uuid.UUID) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM swipes WHERE user_id = $1 AND room_id = $2`

	err := d.db.GetContext(ctx, &count, query, userID, roomID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (d *Driver) CountLikes(ctx context.Context, roomID uuid.UUID, movieID int64) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM swipes WHERE room_id = $1 AND movie_id = $2 AND value = true`

	err := d.db.GetContext(ctx, &count, query, roomID, movieID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (d *Driver) ListByUser(ctx context.Context, userID, roomID uuid.UUID) ([]model.Swipe, error) {
	var dtos []swipeDTO

	query := `
		SELECT id, user_id, room_id, movie_id, value, created_at, updated_at
		FROM swipes
		WHERE user_id = $1 AND room_id = $2
		ORDER BY created_at
	`

	err := d.db.SelectContext(ctx, &dtos, query, userID, roomID)
	if err != nil {
		return nil, err
	}

	swipes := make([]model.Swipe, 0, len(dtos))
	for _, dto := range dtos {
		swipes = append(swipes, dto.toModel())
	}

	return swipes, nil
}
