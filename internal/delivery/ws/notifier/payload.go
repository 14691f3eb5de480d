package ws_notifier

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
)

type roomAckPayload struct {
	RoomID    string `json:"roomId"`
	Timestamp int64  `json:"timestamp"`
}

type pongPayload struct {
	Timestamp int64 `json:"timestamp"`
}

type userPayload struct {
	ID string `json:"id"`
}

type matchPayload struct {
	ID        string    `json:"id"`
	MovieID   int64     `json:"movieId"`
	RoomID    string    `json:"roomId"`
	VoteCount int       `json:"voteCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type moviePayload struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterLink  string  `json:"posterLink,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	VoteAverage float64 `json:"voteAverage"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
}

type matchCreatedPayload struct {
	RoomID string        `json:"roomId"`
	Match  matchPayload  `json:"match"`
	Movie  *moviePayload `json:"movie,omitempty"`
}

type matchDeletedPayload struct {
	RoomID    string `json:"roomId"`
	MovieID   int64  `json:"movieId"`
	Timestamp int64  `json:"timestamp"`
}

type userJoinedPayload struct {
	RoomID    string      `json:"roomId"`
	User      userPayload `json:"user"`
	Timestamp int64       `json:"timestamp"`
}

type userLeftPayload struct {
	RoomID    string `json:"roomId"`
	UserID    string `json:"userId"`
	Timestamp int64  `json:"timestamp"`
}

func newMatchCreatedPayload(roomID uuid.UUID, match model.MatchWithVotes, movie *model.Candidate) matchCreatedPayload {
	p := matchCreatedPayload{
		RoomID: roomID.String(),
		Match: matchPayload{
			ID:        match.ID.String(),
			MovieID:   match.MovieID,
			RoomID:    match.RoomID.String(),
			VoteCount: match.VoteCount,
			CreatedAt: match.CreatedAt,
		},
	}
	if movie != nil {
		p.Movie = &moviePayload{
			ID:          movie.ID,
			Title:       movie.Title,
			PosterLink:  movie.PosterLink,
			Overview:    movie.Overview,
			VoteAverage: movie.VoteAverage,
			ReleaseDate: movie.ReleaseDate,
		}
	}
	return p
}
