package ws_notifier

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Controller struct {
	hub      *Hub
	upgrader websocket.Upgrader

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithControllerLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func NewController(hub *Hub, opts ...ControllerOption) *Controller {
	c := &Controller{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // ! Restrict on NGINX setup
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws", c.serve)
}

func (c *Controller) serve(ctx *gin.Context) {
	rawUserID := ctx.GetHeader("X-User-ID")
	if rawUserID == "" {
		rawUserID = ctx.Query("user_id")
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	client := NewClient(c.hub, conn, userID)
	c.hub.register <- client

	go c.hub.StartClientWriting(client)
	c.hub.StartClientReading(client)
}
