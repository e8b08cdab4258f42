package transport

import (
	"encoding/json"
	"net/http"
	"sync"

	"auction-arena/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Audience selects which connections receive a broadcast.
type Audience string

const (
	AudienceParticipants Audience = "participants"
	AudienceAdmins       Audience = "admins"
	AudienceAll          Audience = "all"
)

// Event is the wire envelope for everything the server pushes.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// commandFrame is the wire shape of an inbound command.
type commandFrame struct {
	Action string         `json:"action"`
	Data   map[string]any `json:"data"`
}

// Identity is the authenticated principal attached to a connection.
type Identity struct {
	TeamID string
	Admin  bool
}

// Authenticator validates a handshake token exactly once, before the
// connection joins the hub.
type Authenticator interface {
	Authenticate(token string) (Identity, error)
}

// Command is an inbound message together with the sender's identity and a
// way to answer the sender directly.
type Command struct {
	Action   string
	Identity Identity
	Data     map[string]any
	Reply    func(event string, payload any)
}

// Handler processes one inbound command.
type Handler func(cmd Command)

// Hub tracks connected clients and routes broadcasts and commands.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*Client]bool
	handlers map[string]Handler
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients:  make(map[*Client]bool),
		handlers: make(map[string]Handler),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// OnCommand registers the handler for an inbound action.
func (h *Hub) OnCommand(action string, fn Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[action] = fn
}

// HandleWS upgrades a gin request to a websocket connection. The token
// query parameter is validated once; unauthenticated connections are
// rejected before the upgrade.
func (h *Hub) HandleWS(c *gin.Context, auth Authenticator) {
	identity, err := auth.Authenticate(c.Query("token"))
	if err != nil {
		utils.Warn("ws: handshake rejected", map[string]any{"error": err.Error()})
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("ws: upgrade error", map[string]any{"error": err.Error()})
		return
	}

	client := &Client{
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, 32),
		identity: identity,
	}

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	go client.writePump()
	go client.readPump()

	utils.Info("ws: client connected", map[string]any{
		"team_id": identity.TeamID,
		"admin":   identity.Admin,
	})
}

// Broadcast sends an event to every connection in the audience. Admin
// connections always receive participant broadcasts as well.
func (h *Hub) Broadcast(audience Audience, event string, payload any) {
	data, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		utils.Error("ws: encode broadcast", map[string]any{"event": event, "error": err.Error()})
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		switch audience {
		case AudienceAdmins:
			if !client.identity.Admin {
				continue
			}
		case AudienceParticipants:
			if client.identity.TeamID == "" && !client.identity.Admin {
				continue
			}
		}
		client.enqueue(data)
	}
}

// SendToTeam sends an event to every connection of one team.
func (h *Hub) SendToTeam(teamID, event string, payload any) {
	data, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		utils.Error("ws: encode message", map[string]any{"event": event, "error": err.Error()})
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if client.identity.TeamID == teamID {
			client.enqueue(data)
		}
	}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.Close()
}

func (h *Hub) dispatch(c *Client, frame commandFrame) {
	h.mu.RLock()
	handler, ok := h.handlers[frame.Action]
	h.mu.RUnlock()

	if !ok {
		utils.Warn("ws: unknown action", map[string]any{"action": frame.Action, "team_id": c.identity.TeamID})
		c.Reply("error", gin.H{"reason": "unknown action"})
		return
	}

	handler(Command{
		Action:   frame.Action,
		Identity: c.identity,
		Data:     frame.Data,
		Reply:    c.Reply,
	})
}
