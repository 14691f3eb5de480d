package ws_notifier

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
)

const (
	EventJoinRoom     = "joinRoom"
	EventRoomJoined   = "roomJoined"
	EventLeaveRoom    = "leaveRoom"
	EventRoomLeft     = "roomLeft"
	EventPing         = "ping"
	EventPong         = "pong"
	EventMatchCreated = "matchCreated"
	EventMatchDeleted = "matchDeleted"
	EventUserJoined   = "userJoined"
	EventUserLeft     = "userLeft"
)

const statsInterval = 5 * time.Minute

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type roomEvent struct {
	roomID uuid.UUID
	event  Event
}

// Hub is the realtime notifier: an in-memory registry of connections and
// their room subscriptions, rebuilt from scratch on every reconnect. A single
// Run goroutine drains the broadcast channel, so emits within one room keep
// their order; delivery itself is fire-and-forget.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	rooms   map[uuid.UUID]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan roomEvent

	logger *slog.Logger
}

type HubOption func(*Hub)

func WithLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		clients:    make(map[*Client]bool),
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomEvent, 64),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hub) Run() {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case re := <-h.broadcast:
			h.broadcastToRoom(re.roomID, re.event)

		case <-ticker.C:
			h.logStats()
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info("client registered",
		"connection_id", client.id,
		"user_id", client.userID)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	subscribed := make([]uuid.UUID, 0, len(client.roomIDs))
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		for roomID := range client.roomIDs {
			subscribed = append(subscribed, roomID)
			h.detach(client, roomID)
		}
	}
	h.mu.Unlock()

	h.logger.Info("client unregistered",
		"connection_id", client.id,
		"user_id", client.userID)

	// Delivered directly: this runs on the Run goroutine, which is the only
	// reader of h.broadcast — enqueueing here can block forever once the
	// buffer fills.
	for _, roomID := range subscribed {
		h.broadcastToRoom(roomID, Event{
			Type: EventUserLeft,
			Payload: userLeftPayload{
				RoomID:    roomID.String(),
				UserID:    client.userID.String(),
				Timestamp: now(),
			},
		})
	}
}

// Join subscribes the connection to a room channel, acks to the caller and
// announces the user to the room.
func (h *Hub) Join(client *Client, roomID uuid.UUID) {
	h.mu.Lock()
	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
	client.roomIDs[roomID] = true
	h.mu.Unlock()

	client.deliver(Event{Type: EventRoomJoined, Payload: roomAckPayload{
		RoomID:    roomID.String(),
		Timestamp: now(),
	}})

	h.EmitUserJoined(roomID, userPayload{ID: client.userID.String()})
}

// Leave unsubscribes the connection, acks to the caller and announces the
// departure to whoever is still in the room.
func (h *Hub) Leave(client *Client, roomID uuid.UUID) {
	h.mu.Lock()
	h.detach(client, roomID)
	delete(client.roomIDs, roomID)
	h.mu.Unlock()

	client.deliver(Event{Type: EventRoomLeft, Payload: roomAckPayload{
		RoomID:    roomID.String(),
		Timestamp: now(),
	}})

	h.EmitUserLeft(roomID, client.userID)
}

// Ping answers the liveness echo on the same connection.
func (h *Hub) Ping(client *Client) {
	client.deliver(Event{Type: EventPong, Payload: pongPayload{Timestamp: now()}})
}

func (h *Hub) EmitMatchCreated(roomID uuid.UUID, match model.MatchWithVotes, movie *model.Candidate) {
	h.broadcast <- roomEvent{roomID: roomID, event: Event{
		Type:    EventMatchCreated,
		Payload: newMatchCreatedPayload(roomID, match, movie),
	}}
}

func (h *Hub) EmitMatchDeleted(roomID uuid.UUID, movieID int64) {
	h.broadcast <- roomEvent{roomID: roomID, event: Event{
		Type: EventMatchDeleted,
		Payload: matchDeletedPayload{
			RoomID:    roomID.String(),
			MovieID:   movieID,
			Timestamp: now(),
		},
	}}
}

func (h *Hub) EmitUserJoined(roomID uuid.UUID, user userPayload) {
	h.broadcast <- roomEvent{roomID: roomID, event: Event{
		Type: EventUserJoined,
		Payload: userJoinedPayload{
			RoomID:    roomID.String(),
			User:      user,
			Timestamp: now(),
		},
	}}
}

func (h *Hub) EmitUserLeft(roomID uuid.UUID, userID uuid.UUID) {
	h.broadcast <- roomEvent{roomID: roomID, event: Event{
		Type: EventUserLeft,
		Payload: userLeftPayload{
			RoomID:    roomID.String(),
			UserID:    userID.String(),
			Timestamp: now(),
		},
	}}
}

// detach requires h.mu held.
func (h *Hub) detach(client *Client, roomID uuid.UUID) {
	if roomClients, ok := h.rooms[roomID]; ok {
		delete(roomClients, client)
		if len(roomClients) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

func (h *Hub) broadcastToRoom(roomID uuid.UUID, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if roomClients, ok := h.rooms[roomID]; ok {
		for client := range roomClients {
			client.trySend(event)
		}
	}
}

// logStats is purely diagnostic; nothing here may propagate.
func (h *Hub) logStats() {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("connection stats logging failed", "panic", r)
		}
	}()

	h.mu.RLock()
	connections := len(h.clients)
	rooms := len(h.rooms)
	h.mu.RUnlock()

	h.logger.Info("realtime connections",
		"connections", connections,
		"active_rooms", rooms)
}

func now() int64 {
	return time.Now().UnixMilli()
}
