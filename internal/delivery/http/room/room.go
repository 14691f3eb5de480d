package http_room

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	http_common "github.com/Ewen02/swipe-movie-sub000/internal/delivery/http/common"
	"github.com/Ewen02/swipe-movie-sub000/internal/model"
	usecase_match "github.com/Ewen02/swipe-movie-sub000/internal/usecase/match"
	usecase_room "github.com/Ewen02/swipe-movie-sub000/internal/usecase/room"
)

// Room lifecycle is owned by the room-management service; this controller
// only exposes the read surface the swipe clients need.
type Controller struct {
	rooms   *usecase_room.Usecase
	matches *usecase_match.Detector

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(rooms *usecase_room.Usecase, matches *usecase_match.Detector, opts ...ControllerOption) *Controller {
	c := &Controller{
		rooms:   rooms,
		matches: matches,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("rooms/:room_id")
	rooms.GET("", c.get)
	rooms.GET("/matches", c.listMatches)
}

// FiltersDTO
type FiltersDTO struct {
	GenreID     int     `json:"genre_id,omitempty"`
	RatingFloor float64 `json:"rating_floor,omitempty"`
	YearFrom    int     `json:"year_from,omitempty"`
	YearTo      int     `json:"year_to,omitempty"`
	RuntimeMin  int     `json:"runtime_min,omitempty"`
	RuntimeMax  int     `json:"runtime_max,omitempty"`
	Providers   []int   `json:"providers,omitempty"`
	Region      string  `json:"region,omitempty"`
	Language    string  `json:"language,omitempty"`
}

// RoomResponseDTO
type RoomResponseDTO struct {
	ID        string     `json:"id"`
	Code      string     `json:"code" example:"483921"`
	Capacity  int        `json:"capacity" example:"8"`
	MediaType string     `json:"media_type" example:"movie"`
	Filters   FiltersDTO `json:"filters"`
	MemberIDs []string   `json:"member_ids"`
}

// MatchResponseDTO
type MatchResponseDTO struct {
	ID        string    `json:"id"`
	MovieID   int64     `json:"movie_id" example:"550"`
	RoomID    string    `json:"room_id"`
	VoteCount int       `json:"vote_count" example:"2"`
	CreatedAt time.Time `json:"created_at"`
}

// @Summary Room snapshot
// @Tags Room operations
// @Produce json
// @Param room_id path string true "Room identifier"
// @Success 200 {object} RoomResponseDTO
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /rooms/{room_id} [get]
func (c *Controller) get(ctx *gin.Context) {
	roomID, ok := http_common.PathUUID(ctx, "room_id")
	if !ok {
		return
	}

	room, err := c.rooms.Context(ctx.Request.Context(), roomID)
	if err != nil {
		c.replyError(ctx, err)
		return
	}

	snapshot, err := c.rooms.Get(ctx.Request.Context(), roomID)
	if err != nil {
		c.replyError(ctx, err)
		return
	}

	members := make([]string, 0, len(room.MemberIDs))
	for _, id := range room.MemberIDs {
		members = append(members, id.String())
	}

	ctx.JSON(http.StatusOK, RoomResponseDTO{
		ID:        snapshot.ID.String(),
		Code:      snapshot.Code,
		Capacity:  snapshot.Capacity,
		MediaType: string(snapshot.MediaType),
		Filters: FiltersDTO{
			GenreID:     snapshot.Filters.GenreID,
			RatingFloor: snapshot.Filters.RatingFloor,
			YearFrom:    snapshot.Filters.YearFrom,
			YearTo:      snapshot.Filters.YearTo,
			RuntimeMin:  snapshot.Filters.RuntimeMin,
			RuntimeMax:  snapshot.Filters.RuntimeMax,
			Providers:   snapshot.Filters.Providers,
			Region:      snapshot.Filters.Region,
			Language:    snapshot.Filters.Language,
		},
		MemberIDs: members,
	})
}

// @Summary Current matches with live vote counts
// @Tags Room operations
// @Produce json
// @Param room_id path string true "Room identifier"
// @Success 200 {array} MatchResponseDTO
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /rooms/{room_id}/matches [get]
func (c *Controller) listMatches(ctx *gin.Context) {
	roomID, ok := http_common.PathUUID(ctx, "room_id")
	if !ok {
		return
	}

	exists, err := c.rooms.Exists(ctx.Request.Context(), roomID)
	if err != nil {
		c.replyError(ctx, err)
		return
	}
	if !exists {
		c.replyError(ctx, usecase_room.ErrResourceNotFound)
		return
	}

	matches, err := c.matches.Matches(ctx.Request.Context(), roomID)
	if err != nil {
		c.replyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, convertFromMatches(matches))
}

func convertFromMatches(matches []model.MatchWithVotes) []MatchResponseDTO {
	response := make([]MatchResponseDTO, 0, len(matches))
	for _, m := range matches {
		response = append(response, MatchResponseDTO{
			ID:        m.ID.String(),
			MovieID:   m.MovieID,
			RoomID:    m.RoomID.String(),
			VoteCount: m.VoteCount,
			CreatedAt: m.CreatedAt,
		})
	}
	return response
}

func (c *Controller) replyError(ctx *gin.Context, err error) {
	if errors.Is(err, usecase_room.ErrResourceNotFound) {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Error: "room not found",
			Code:  http.StatusNotFound,
		})
		return
	}
	c.logger.Error("room request failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
		Error: "internal error",
		Code:  http.StatusInternalServerError,
	})
}
