package auction

import (
	"math"

	"auction-arena/internal/transport"
	"auction-arena/utils"
)

// RegisterCommands binds the inbound websocket actions to the lifecycle.
// Bid commands are scoped to the authenticated team; control commands
// require the admin role carried by the connection's identity.
func (s *AuctionService) RegisterCommands(hub *transport.Hub) {
	hub.OnCommand("place_bid", s.handlePlaceBid)
	hub.OnCommand("start_auction", s.handleStartAuction)
	hub.OnCommand("stop_auction", s.handleStopAuction)
}

func (s *AuctionService) handlePlaceBid(cmd transport.Command) {
	if cmd.Identity.TeamID == "" {
		cmd.Reply("bid_rejected", map[string]any{"reason": "not a team connection"})
		return
	}
	assetID, _ := cmd.Data["asset_id"].(string)
	amount, ok := cmd.Data["amount"].(float64)
	if assetID == "" || !ok {
		cmd.Reply("bid_rejected", map[string]any{"reason": "missing asset_id or amount"})
		return
	}
	if amount != math.Trunc(amount) {
		cmd.Reply("bid_rejected", map[string]any{"reason": "amount must be a whole number"})
		return
	}
	// acceptance and rejection events are sent by SubmitBid itself
	if err := s.SubmitBid(assetID, cmd.Identity.TeamID, int(amount)); err != nil {
		utils.Info("bid rejected", map[string]any{
			"asset_id": assetID,
			"team_id":  cmd.Identity.TeamID,
			"error":    err.Error(),
		})
	}
}

func (s *AuctionService) handleStartAuction(cmd transport.Command) {
	if !cmd.Identity.Admin {
		cmd.Reply("error", map[string]any{"reason": "admin only"})
		return
	}
	if _, err := s.Start(); err != nil {
		cmd.Reply("error", map[string]any{"reason": err.Error()})
	}
}

func (s *AuctionService) handleStopAuction(cmd transport.Command) {
	if !cmd.Identity.Admin {
		cmd.Reply("error", map[string]any{"reason": "admin only"})
		return
	}
	if err := s.ForceStop(); err != nil {
		cmd.Reply("error", map[string]any{"reason": err.Error()})
	}
}
