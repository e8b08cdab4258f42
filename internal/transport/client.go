package transport

import (
	"encoding/json"
	"sync"

	"auction-arena/utils"

	"github.com/gorilla/websocket"
)

// Client is one websocket connection with its authenticated identity
// attached at handshake time. Writes go through a buffered send channel so
// a slow consumer never blocks a broadcast.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	once     sync.Once
	identity Identity
}

// Close shuts the connection down exactly once.
func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// Reply sends an event to this client only.
func (c *Client) Reply(event string, payload any) {
	data, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		utils.Error("ws: encode reply", map[string]any{"event": event, "error": err.Error()})
		return
	}
	c.enqueue(data)
}

// enqueue drops the message when the client's buffer is full rather than
// blocking the sender.
func (c *Client) enqueue(data []byte) {
	defer func() {
		// send on a channel closed by a concurrent disconnect is dropped
		_ = recover()
	}()
	select {
	case c.send <- data:
	default:
		utils.Warn("ws: send buffer full, dropping message", map[string]any{
			"team_id": c.identity.TeamID,
			"admin":   c.identity.Admin,
		})
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				utils.Info("ws: client disconnected", map[string]any{"team_id": c.identity.TeamID})
			} else {
				utils.Warn("ws: read error", map[string]any{"team_id": c.identity.TeamID, "error": err.Error()})
			}
			return
		}

		var frame commandFrame
		if err := json.Unmarshal(message, &frame); err != nil {
			utils.Warn("ws: invalid message", map[string]any{"team_id": c.identity.TeamID, "error": err.Error()})
			continue
		}
		c.hub.dispatch(c, frame)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			utils.Warn("ws: write error", map[string]any{"team_id": c.identity.TeamID, "error": err.Error()})
			return
		}
	}
}
