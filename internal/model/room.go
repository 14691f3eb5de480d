package model

import "github.com/google/uuid"

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeShow  MediaType = "tv"
)

// Filters narrow the candidate feed for a room. Zero values mean "no filter".
type Filters struct {
	GenreID     int
	RatingFloor float64
	YearFrom    int
	YearTo      int
	RuntimeMin  int
	RuntimeMax  int
	Providers   []int
	Region      string
	Language    string
}

type Room struct {
	ID        uuid.UUID
	Code      string
	Capacity  int
	MediaType MediaType
	Filters   Filters
}

// RoomContext is the read-only room snapshot the recommendation engine works
// with: identity, member set and the filter configuration.
type RoomContext struct {
	RoomID    uuid.UUID
	MemberIDs []uuid.UUID
	MediaType MediaType
	Filters   Filters
}
