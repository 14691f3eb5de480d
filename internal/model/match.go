package model

import (
	"time"

	"github.com/google/uuid"
)

// Match marks a title that reached the room's like threshold. Unique per
// (room, movie); its vote count is always derived from live swipe rows.
type Match struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	MovieID   int64
	CreatedAt time.Time
}

type MatchWithVotes struct {
	Match
	VoteCount int
}
