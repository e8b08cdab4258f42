package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// addClient registers a connectionless client so routing can be exercised
// without a live websocket: Broadcast and Reply only touch the send channel.
func addClient(h *Hub, identity Identity, buffer int) *Client {
	c := &Client{
		hub:      h,
		send:     make(chan []byte, buffer),
		identity: identity,
	}
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	return c
}

// drainEvents decodes everything currently buffered for a client.
func drainEvents(t *testing.T, c *Client) []Event {
	t.Helper()
	var events []Event
	for {
		select {
		case data := <-c.send:
			var ev Event
			require.NoError(t, json.Unmarshal(data, &ev))
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestHub_BroadcastAudienceRouting(t *testing.T) {
	hub := NewHub()
	team := addClient(hub, Identity{TeamID: "t1"}, 8)
	admin := addClient(hub, Identity{Admin: true}, 8)
	anon := addClient(hub, Identity{}, 8)

	hub.Broadcast(AudienceAdmins, "bid_placed", map[string]any{"asset_id": "a1"})
	hub.Broadcast(AudienceParticipants, "auction_started", nil)
	hub.Broadcast(AudienceAll, "tick", map[string]any{"seconds_remaining": 30})

	teamEvents := drainEvents(t, team)
	require.Len(t, teamEvents, 2)
	require.Equal(t, "auction_started", teamEvents[0].Event)
	require.Equal(t, "tick", teamEvents[1].Event)

	// admins see their own channel plus every participant broadcast
	adminEvents := drainEvents(t, admin)
	require.Len(t, adminEvents, 3)
	require.Equal(t, "bid_placed", adminEvents[0].Event)

	// an unauthenticated identity only receives audience-all traffic
	anonEvents := drainEvents(t, anon)
	require.Len(t, anonEvents, 1)
	require.Equal(t, "tick", anonEvents[0].Event)
}

func TestHub_SendToTeamTargetsEveryTeamConnection(t *testing.T) {
	hub := NewHub()
	first := addClient(hub, Identity{TeamID: "t1"}, 8)
	second := addClient(hub, Identity{TeamID: "t1"}, 8)
	other := addClient(hub, Identity{TeamID: "t2"}, 8)

	hub.SendToTeam("t1", "bid_accepted", map[string]any{"asset_id": "a1"})

	require.Len(t, drainEvents(t, first), 1)
	require.Len(t, drainEvents(t, second), 1)
	require.Empty(t, drainEvents(t, other))
}

func TestHub_DispatchRoutesCommandToHandler(t *testing.T) {
	hub := NewHub()
	client := addClient(hub, Identity{TeamID: "t1"}, 8)

	var got Command
	hub.OnCommand("place_bid", func(cmd Command) { got = cmd })

	hub.dispatch(client, commandFrame{
		Action: "place_bid",
		Data:   map[string]any{"asset_id": "a1", "amount": float64(200)},
	})

	require.Equal(t, "place_bid", got.Action)
	require.Equal(t, "t1", got.Identity.TeamID)
	require.Equal(t, "a1", got.Data["asset_id"])
	require.NotNil(t, got.Reply)
	require.Empty(t, drainEvents(t, client))
}

func TestHub_DispatchUnknownActionReplies(t *testing.T) {
	hub := NewHub()
	client := addClient(hub, Identity{TeamID: "t1"}, 8)

	hub.dispatch(client, commandFrame{Action: "no_such_action"})

	events := drainEvents(t, client)
	require.Len(t, events, 1)
	require.Equal(t, "error", events[0].Event)
}

// A slow consumer must never block a broadcast: once the buffer is full
// further messages are dropped.
func TestClient_EnqueueDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	client := addClient(hub, Identity{TeamID: "t1"}, 1)

	hub.Broadcast(AudienceAll, "tick", map[string]any{"n": 1})
	hub.Broadcast(AudienceAll, "tick", map[string]any{"n": 2})
	hub.Broadcast(AudienceAll, "tick", map[string]any{"n": 3})

	events := drainEvents(t, client)
	require.Len(t, events, 1)
}

// A broadcast racing a disconnect may hit a closed send channel; the
// enqueue must swallow it instead of panicking the hub.
func TestClient_EnqueueAfterCloseDoesNotPanic(t *testing.T) {
	hub := NewHub()
	client := addClient(hub, Identity{TeamID: "t1"}, 1)

	client.once.Do(func() { close(client.send) })

	require.NotPanics(t, func() {
		hub.Broadcast(AudienceAll, "tick", nil)
	})
}
