package infra_postgres_match

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

type matchDTO struct {
	ID        uuid.UUID `db:"id"`
	RoomID    uuid.UUID `db:"room_id"`
	MovieID   int64     `db:"movie_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (dto matchDTO) toModel() model.Match {
	return model.Match{
		ID:        dto.ID,
		RoomID:    dto.RoomID,
		MovieID:   dto.MovieID,
		CreatedAt: dto.CreatedAt,
	}
}

// Create is a create-or-no-op on the (room_id, movie_id) unique constraint.
// Losers of a concurrent race read back the winner's row.
func (d *Driver) Create(ctx context.Context, match model.Match) (model.Match, bool, error) {
	var dto matchDTO

	insert := `
		INSERT INTO matches (id, room_id, movie_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (room_id, movie_id) DO NOTHING
		RETURNING id, room_id, movie_id, created_at
	`

	err := d.db.GetContext(ctx, &dto, insert, match.ID, match.RoomID, match.MovieID, match.CreatedAt)
	if err == nil {
		return dto.toModel(), true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Match{}, false, err
	}

	// Conflict: the row already exists, fetch it.
	query := `
		SELECT id, room_id, movie_id, created_at
		FROM matches
		WHERE room_id = $1 AND movie_id = $2
	`

	if err := d.db.GetContext(ctx, &dto, query, match.RoomID, match.MovieID); err != nil {
		return model.Match{}, false, err
	}

	return dto.toModel(), false, nil
}

func (d *Driver) Delete(ctx context.Context, roomID uuid.UUID, movieID int64) (bool, error) {
	query := `DELETE FROM matches WHERE room_id = $1 AND movie_id = $2`

	result, err := d.db.ExecContext(ctx, query, roomID, movieID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (d *Driver) ByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Match, error) {
	var dtos []matchDTO

	query := `
		SELECT id, room_id, movie_id, created_at
		FROM matches
		WHERE room_id = $1
		ORDER BY created_at DESC
	`

	err := d.db.SelectContext(ctx, &dtos, query, roomID)
	if err != nil {
		return nil, err
	}

	matches := make([]model.Match, 0, len(dtos))
	for _, dto := range dtos {
		matches = append(matches, dto.toModel())
	}

	return matches, nil
}
