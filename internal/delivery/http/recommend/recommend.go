package http_recommend

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	http_common "github.com/Ewen02/swipe-movie-sub000/internal/delivery/http/common"
	"github.com/Ewen02/swipe-movie-sub000/internal/model"
	usecase_recommend "github.com/Ewen02/swipe-movie-sub000/internal/usecase/recommend"
	usecase_room "github.com/Ewen02/swipe-movie-sub000/internal/usecase/room"
)

type Controller struct {
	engine *usecase_recommend.Engine
	rooms  *usecase_room.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(engine *usecase_recommend.Engine, rooms *usecase_room.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		engine: engine,
		rooms:  rooms,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("rooms/:room_id/recommendations", c.recommendations)
}

// ScoreDTO
type ScoreDTO struct {
	Watchlist  float64 `json:"watchlist"`
	Quality    float64 `json:"quality"`
	Recency    float64 `json:"recency"`
	UserRating float64 `json:"user_rating"`
	Penalties  float64 `json:"penalties"`
	Total      float64 `json:"total" example:"197.4"`
}

// RankedCandidateDTO
type RankedCandidateDTO struct {
	ID          int64    `json:"id" example:"550"`
	Title       string   `json:"title" example:"Fight Club"`
	Overview    string   `json:"overview,omitempty"`
	PosterLink  string   `json:"poster_link,omitempty"`
	GenreIDs    []int    `json:"genre_ids,omitempty"`
	VoteAverage float64  `json:"vote_average" example:"8.4"`
	VoteCount   int      `json:"vote_count" example:"27000"`
	Popularity  float64  `json:"popularity"`
	ReleaseDate string   `json:"release_date,omitempty" example:"1999-10-15"`
	Score       ScoreDTO `json:"score"`
}

func convertFromRanked(ranked []model.RankedCandidate) []RankedCandidateDTO {
	response := make([]RankedCandidateDTO, 0, len(ranked))
	for _, rc := range ranked {
		response = append(response, RankedCandidateDTO{
			ID:          rc.Candidate.ID,
			Title:       rc.Candidate.Title,
			Overview:    rc.Candidate.Overview,
			PosterLink:  rc.Candidate.PosterLink,
			GenreIDs:    rc.Candidate.GenreIDs,
			VoteAverage: rc.Candidate.VoteAverage,
			VoteCount:   rc.Candidate.VoteCount,
			Popularity:  rc.Candidate.Popularity,
			ReleaseDate: rc.Candidate.ReleaseDate,
			Score: ScoreDTO{
				Watchlist:  rc.Score.Watchlist,
				Quality:    rc.Score.Quality,
				Recency:    rc.Score.Recency,
				UserRating: rc.Score.UserRating,
				Penalties:  rc.Score.Penalties,
				Total:      rc.Score.Total,
			},
		})
	}
	return response
}

// @Summary Ranked unseen candidates for a room
// @Description Returns the cached scored candidate page for the room
// @Tags Recommendation operations
// @Produce json
// @Param room_id path string true "Room identifier"
// @Param page query int false "Page number" default(1)
// @Success 200 {array} RankedCandidateDTO
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /rooms/{room_id}/recommendations [get]
func (c *Controller) recommendations(ctx *gin.Context) {
	roomID, ok := http_common.PathUUID(ctx, "room_id")
	if !ok {
		return
	}

	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "invalid page",
			Code:  http.StatusBadRequest,
		})
		return
	}

	room, err := c.rooms.Context(ctx.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "room not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		c.logger.Error("failed to load room context", "room_id", roomID, "error", err)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "internal error",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ranked, err := c.engine.Get(ctx.Request.Context(), room, page)
	if err != nil {
		c.logger.Error("recommendation fetch failed", "room_id", roomID, "page", page, "error", err)
		ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{
			Error: "catalog unavailable",
			Code:  http.StatusBadGateway,
		})
		return
	}

	ctx.JSON(http.StatusOK, convertFromRanked(ranked))
}
