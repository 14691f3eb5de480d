package ws_notifier

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is one websocket connection's registry entry: identity, the rooms
// it joined and when it connected. Nothing survives a reconnect.
type Client struct {
	id          uuid.UUID
	userID      uuid.UUID
	hub         *Hub
	conn        *websocket.Conn
	send        chan Event
	roomIDs     map[uuid.UUID]bool
	connectedAt time.Time
}

func NewClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID) *Client {
	return &Client{
		id:          uuid.New(),
		userID:      userID,
		hub:         hub,
		conn:        conn,
		send:        make(chan Event, 32),
		roomIDs:     make(map[uuid.UUID]bool),
		connectedAt: time.Now(),
	}
}

// trySend never blocks; a slow consumer just loses the event.
func (c *Client) trySend(event Event) {
	select {
	case c.send <- event:
	default:
	}
}

// deliver sends to a single connection, skipping it when already
// unregistered.
func (c *Client) deliver(event Event) {
	c.hub.mu.RLock()
	defer c.hub.mu.RUnlock()

	if _, ok := c.hub.clients[c]; !ok {
		return
	}
	c.trySend(event)
}

type inboundEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		var envelope inboundEnvelope
		if err := client.conn.ReadJSON(&envelope); err != nil {
			return
		}
		h.dispatch(client, envelope)
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.conn.Close()

	for event := range client.send {
		if err := client.conn.WriteJSON(event); err != nil {
			return
		}
	}
}

func (h *Hub) dispatch(client *Client, envelope inboundEnvelope) {
	switch envelope.Type {
	case EventJoinRoom:
		if roomID, ok := h.roomIDFromPayload(envelope.Payload); ok {
			h.Join(client, roomID)
		}
	case EventLeaveRoom:
		if roomID, ok := h.roomIDFromPayload(envelope.Payload); ok {
			h.Leave(client, roomID)
		}
	case EventPing:
		h.Ping(client)
	default:
		h.logger.Warn("unknown client event", "type", envelope.Type)
	}
}

func (h *Hub) roomIDFromPayload(payload json.RawMessage) (uuid.UUID, bool) {
	var raw string
	if err := json.Unmarshal(payload, &raw); err != nil {
		h.logger.Warn("malformed room payload", "error", err)
		return uuid.Nil, false
	}
	roomID, err := uuid.Parse(raw)
	if err != nil {
		h.logger.Warn("malformed room id", "room_id", raw)
		return uuid.Nil, false
	}
	return roomID, true
}
