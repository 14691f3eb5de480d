package usecase_room

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
)

var (
	ErrResourceNotFound = errors.New("no such resource")
	ErrInternal         = errors.New("internal error")
)

// Room lifecycle (create/join/configure) lives in the room-management
// service; this usecase is the read-only surface the core consults.
//
//go:generate mockery --name=RoomRepository --output=../../../mocks/room --filename=repository.go
type RoomRepository interface {
	ByID(ctx context.Context, roomID uuid.UUID) (model.Room, error)
	MemberIDs(ctx context.Context, roomID uuid.UUID) ([]uuid.UUID, error)
	IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
	Exists(ctx context.Context, roomID uuid.UUID) (bool, error)
}

type Usecase struct {
	rooms RoomRepository
}

func New(rooms RoomRepository) *Usecase {
	return &Usecase{rooms: rooms}
}

func (u *Usecase) Get(ctx context.Context, roomID uuid.UUID) (model.Room, error) {
	room, err := u.rooms.ByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Room{}, ErrResourceNotFound
		}
		return model.Room{}, errors.Join(ErrInternal, err)
	}
	return room, nil
}

// Context assembles the snapshot the recommendation engine scores against.
func (u *Usecase) Context(ctx context.Context, roomID uuid.UUID) (model.RoomContext, error) {
	room, err := u.Get(ctx, roomID)
	if err != nil {
		return model.RoomContext{}, err
	}

	members, err := u.rooms.MemberIDs(ctx, roomID)
	if err != nil {
		return model.RoomContext{}, errors.Join(ErrInternal, err)
	}

	return model.RoomContext{
		RoomID:    room.ID,
		MemberIDs: members,
		MediaType: room.MediaType,
		Filters:   room.Filters,
	}, nil
}

func (u *Usecase) MediaType(ctx context.Context, roomID uuid.UUID) (model.MediaType, error) {
	room, err := u.Get(ctx, roomID)
	if err != nil {
		return "", err
	}
	return room.MediaType, nil
}

func (u *Usecase) IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	isMember, err := u.rooms.IsMember(ctx, roomID, userID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return false, ErrResourceNotFound
		}
		return false, errors.Join(ErrInternal, err)
	}
	return isMember, nil
}

func (u *Usecase) Exists(ctx context.Context, roomID uuid.UUID) (bool, error) {
	exists, err := u.rooms.Exists(ctx, roomID)
	if err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	return exists, nil
}
