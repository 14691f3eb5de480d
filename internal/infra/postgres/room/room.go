package infra_postgres_room

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
	usecase_room "github.com/Ewen02/swipe-movie-sub000/internal/usecase/room"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type roomDTO struct {
	ID          uuid.UUID     `db:"id"`
	Code        string        `db:"code"`
	Capacity    int           `db:"capacity"`
	MediaType   string        `db:"media_type"`
	GenreID     int           `db:"genre_id"`
	RatingFloor float64       `db:"rating_floor"`
	YearFrom    int           `db:"year_from"`
	YearTo      int           `db:"year_to"`
	RuntimeMin  int           `db:"runtime_min"`
	RuntimeMax  int           `db:"runtime_max"`
	Providers   pq.Int64Array `db:"providers"`
	Region      string        `db:"region"`
	Language    string        `db:"language"`
}

func (dto roomDTO) toModel() model.Room {
	providers := make([]int, 0, len(dto.Providers))
	for _, p := range dto.Providers {
		providers = append(providers, int(p))
	}

	return model.Room{
		ID:        dto.ID,
		Code:      dto.Code,
		Capacity:  dto.Capacity,
		MediaType: model.MediaType(dto.MediaType),
		Filters: model.Filters{
			GenreID:     dto.GenreID,
			RatingFloor: dto.RatingFloor,
			YearFrom:    dto.YearFrom,
			YearTo:      dto.YearTo,
			RuntimeMin:  dto.RuntimeMin,
			RuntimeMax:  dto.RuntimeMax,
			Providers:   providers,
			Region:      dto.Region,
			Language:    dto.Language,
		},
	}
}

func (d *Driver) ByID(ctx context.Context, roomID uuid.UUID) (model.Room, error) {
	var dto roomDTO

	query := `
		SELECT id, code, capacity, media_type, genre_id, rating_floor,
		       year_from, year_to, runtime_min, runtime_max, providers,
		       region, language
		FROM rooms
		WHERE id = $1
	`

	err := d.db.GetContext(ctx, &dto, query, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Room{}, usecase_room.ErrResourceNotFound
		}
		return model.Room{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) MemberIDs(ctx context.Context, roomID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	query := `SELECT user_id FROM room_members WHERE room_id = $1 ORDER BY joined_at`

	err := d.db.SelectContext(ctx, &ids, query, roomID)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (d *Driver) IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	var isMember bool

	query := `
		SELECT EXISTS (
			SELECT 1 FROM room_members
			WHERE room_id = $1 AND user_id = $2
		)
	`

	err := d.db.GetContext(ctx, &isMember, query, roomID, userID)
	if err != nil {
		return false, err
	}

	return isMember, nil
}

func (d *Driver) Exists(ctx context.Context, roomID uuid.UUID) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1)`

	err := d.db.GetContext(ctx, &exists, query, roomID)
	if err != nil {
		return false, err
	}

	return exists, nil
}
