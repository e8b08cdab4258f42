package handler

import (
	"fmt"
	"net/http"
	"time"

	auction "auction-arena/internal/auctionService"
	model "auction-arena/internal/models"
	"auction-arena/services/auction/helpers"
	"auction-arena/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	Start() (time.Time, error)
	ForceStop() error
	Reset() error
	SetDuration(seconds int) error
	Status() auction.Status
	History() []model.HistoryEntry
	BidsFor(assetID string) (map[string]int, error)

	Assets() []model.Asset
	Teams() []model.Team
	AddAsset(name, category string, minBid, quantity int) (model.Asset, error)
	UpdateAsset(assetID, name, category string, minBid, quantity int) (model.Asset, error)
	DeleteAsset(assetID string) error
	AddTeam(name, login, accessCode string, startingBudget int) (model.Team, error)
	UpdateTeam(teamID, name, login, accessCode string, startingBudget int) (model.Team, error)
	DeleteTeam(teamID string) error
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// StartHandler handles POST /admin/auction/start
func (h *AuctionHandler) StartHandler(c *gin.Context) {
	endTime, err := h.service.Start()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("StartHandler: failed to start auction", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"end_time": endTime.UTC().Format(time.RFC3339)}, "auction started")
	helpers.LogSuccess("StartHandler", "auction started", map[string]any{
		"end_time": endTime.UTC().Format(time.RFC3339),
	})
}

// StopHandler handles POST /admin/auction/stop
func (h *AuctionHandler) StopHandler(c *gin.Context) {
	if err := h.service.ForceStop(); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("StopHandler: failed to stop auction", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction stopped and resolved")
	helpers.LogSuccess("StopHandler", "auction stopped and resolved", nil)
}

// ResetHandler handles POST /admin/auction/reset
func (h *AuctionHandler) ResetHandler(c *gin.Context) {
	if err := h.service.Reset(); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ResetHandler: failed to reset auction", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction reset")
	helpers.LogSuccess("ResetHandler", "auction reset", nil)
}

// SetDurationHandler handles PUT /admin/auction/duration
func (h *AuctionHandler) SetDurationHandler(c *gin.Context) {
	var req helpers.DurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetDurationHandler", err)
		return
	}

	if err := h.service.SetDuration(req.Seconds); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SetDurationHandler: failed to set duration", map[string]any{
			"seconds": req.Seconds,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"seconds": req.Seconds}, "duration updated")
	helpers.LogSuccess("SetDurationHandler", "duration updated", map[string]any{"seconds": req.Seconds})
}

// StatusHandler handles GET /admin/auction/status
func (h *AuctionHandler) StatusHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.Status(), "auction status")
}

// HistoryHandler handles GET /admin/history
func (h *AuctionHandler) HistoryHandler(c *gin.Context) {
	entries := h.service.History()
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	utils.JSONResponse(c, http.StatusOK, entries, "history retrieved successfully")
}

// BidsForAssetHandler handles GET /admin/assets/:asset_id/bids
func (h *AuctionHandler) BidsForAssetHandler(c *gin.Context) {
	assetID := c.Param("asset_id")
	bids, err := h.service.BidsFor(assetID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BidsForAssetHandler: error retrieving bids", map[string]any{"asset_id": assetID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}
