package http_swipe

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	http_common "github.com/Ewen02/swipe-movie-sub000/internal/delivery/http/common"
	"github.com/Ewen02/swipe-movie-sub000/internal/model"
	usecase_swipe "github.com/Ewen02/swipe-movie-sub000/internal/usecase/swipe"
)

type Controller struct {
	ledger *usecase_swipe.Ledger

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(ledger *usecase_swipe.Ledger, opts ...ControllerOption) *Controller {
	c := &Controller{
		ledger: ledger,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	swipes := router.Group("rooms/:room_id/swipes")
	swipes.PUT("", c.upsert)
	swipes.DELETE("/:movie_id", c.delete)
	swipes.GET("", c.list)
}

// SwipeRequestDTO
type SwipeRequestDTO struct {
	MovieID int64 `json:"movie_id" binding:"required" example:"550"`
	Value   *bool `json:"value" binding:"required" example:"true"`
}

// SwipeResponseDTO
type SwipeResponseDTO struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID    string    `json:"user_id"`
	RoomID    string    `json:"room_id"`
	MovieID   int64     `json:"movie_id" example:"550"`
	Value     bool      `json:"value" example:"true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeleteSwipeResponseDTO
type DeleteSwipeResponseDTO struct {
	Deleted bool `json:"deleted" example:"true"`
}

func convertFromSwipe(swipe model.Swipe) SwipeResponseDTO {
	return SwipeResponseDTO{
		ID:        swipe.ID.String(),
		UserID:    swipe.UserID.String(),
		RoomID:    swipe.RoomID.String(),
		MovieID:   swipe.MovieID,
		Value:     swipe.Value,
		CreatedAt: swipe.CreatedAt,
		UpdatedAt: swipe.UpdatedAt,
	}
}

// @Summary Record a vote on a title
// @Description Creates or updates the caller's swipe for the movie in this room
// @Tags Swipe operations
// @Accept json
// @Produce json
// @Param room_id path string true "Room identifier"
// @Param request body SwipeRequestDTO true "Vote"
// @Success 200 {object} SwipeResponseDTO
// @Failure 403 {object} http_common.QuotaErrorResponse "Non-member or quota exceeded"
// @Router /rooms/{room_id}/swipes [put]
func (c *Controller) upsert(ctx *gin.Context) {
	userID, ok := http_common.UserID(ctx)
	if !ok {
		return
	}
	roomID, ok := http_common.PathUUID(ctx, "room_id")
	if !ok {
		return
	}

	var req SwipeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: err.Error(),
			Code:  http.StatusBadRequest,
		})
		return
	}

	swipe, err := c.ledger.Upsert(ctx.Request.Context(), userID, roomID, req.MovieID, *req.Value)
	if err != nil {
		c.replyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, convertFromSwipe(swipe))
}

// @Summary Undo a vote
// @Tags Swipe operations
// @Produce json
// @Param room_id path string true "Room identifier"
// @Param movie_id path int true "Movie identifier"
// @Success 200 {object} DeleteSwipeResponseDTO
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /rooms/{room_id}/swipes/{movie_id} [delete]
func (c *Controller) delete(ctx *gin.Context) {
	userID, ok := http_common.UserID(ctx)
	if !ok {
		return
	}
	roomID, ok := http_common.PathUUID(ctx, "room_id")
	if !ok {
		return
	}
	movieID, err := strconv.ParseInt(ctx.Param("movie_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "invalid movie_id",
			Code:  http.StatusBadRequest,
		})
		return
	}

	deleted, err := c.ledger.Delete(ctx.Request.Context(), userID, roomID, movieID)
	if err != nil {
		c.replyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, DeleteSwipeResponseDTO{Deleted: deleted})
}

// @Summary List the caller's swipes in a room
// @Tags Swipe operations
// @Produce json
// @Param room_id path string true "Room identifier"
// @Success 200 {array} SwipeResponseDTO
// @Router /rooms/{room_id}/swipes [get]
func (c *Controller) list(ctx *gin.Context) {
	userID, ok := http_common.UserID(ctx)
	if !ok {
		return
	}
	roomID, ok := http_common.PathUUID(ctx, "room_id")
	if !ok {
		return
	}

	swipes, err := c.ledger.Swipes(ctx.Request.Context(), userID, roomID)
	if err != nil {
		c.replyError(ctx, err)
		return
	}

	response := make([]SwipeResponseDTO, 0, len(swipes))
	for _, swipe := range swipes {
		response = append(response, convertFromSwipe(swipe))
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *Controller) replyError(ctx *gin.Context, err error) {
	var quotaErr *usecase_swipe.QuotaExceededError
	switch {
	case errors.As(err, &quotaErr):
		ctx.JSON(http.StatusForbidden, http_common.QuotaErrorResponse{
			Error:   "swipe quota exceeded",
			Limit:   quotaErr.Limit,
			Current: quotaErr.Current,
		})
	case errors.Is(err, usecase_swipe.ErrNotMember):
		ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
			Error: "not a room member",
			Code:  http.StatusForbidden,
		})
	case errors.Is(err, usecase_swipe.ErrRoomNotFound):
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Error: "room not found",
			Code:  http.StatusNotFound,
		})
	default:
		c.logger.Error("swipe request failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "internal error",
			Code:  http.StatusInternalServerError,
		})
	}
}
