package model

import (
	"time"

	"github.com/google/uuid"
)

// Swipe is a user's current vote on a title within a room. There is at most
// one row per (user, room, movie); re-swiping updates Value in place.
type Swipe struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RoomID    uuid.UUID
	MovieID   int64
	Value     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
