package handler

import (
	"fmt"
	"net/http"

	model "auction-arena/internal/models"
	"auction-arena/services/auction/helpers"
	"auction-arena/utils"

	"github.com/gin-gonic/gin"
)

// ListAssetsHandler handles GET /admin/assets
func (h *AuctionHandler) ListAssetsHandler(c *gin.Context) {
	assets := h.service.Assets()
	if assets == nil {
		assets = []model.Asset{}
	}
	utils.JSONResponse(c, http.StatusOK, assets, "assets retrieved successfully")
}

// AddAssetHandler handles POST /admin/assets
func (h *AuctionHandler) AddAssetHandler(c *gin.Context) {
	var req helpers.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddAssetHandler", err)
		return
	}

	asset, err := h.service.AddAsset(req.Name, req.Category, req.MinBid, req.Quantity)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddAssetHandler: failed to add asset", map[string]any{"name": req.Name, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, asset, "asset created successfully")
	helpers.LogSuccess("AddAssetHandler", "asset created successfully", map[string]any{
		"asset_id": asset.AssetID,
		"name":     asset.Name,
	})
}

// UpdateAssetHandler handles PUT /admin/assets/:asset_id
func (h *AuctionHandler) UpdateAssetHandler(c *gin.Context) {
	assetID := c.Param("asset_id")
	var req helpers.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAssetHandler", err)
		return
	}

	asset, err := h.service.UpdateAsset(assetID, req.Name, req.Category, req.MinBid, req.Quantity)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateAssetHandler: failed to update asset", map[string]any{"asset_id": assetID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, asset, "asset updated successfully")
	helpers.LogSuccess("UpdateAssetHandler", "asset updated successfully", map[string]any{"asset_id": assetID})
}

// DeleteAssetHandler handles DELETE /admin/assets/:asset_id
func (h *AuctionHandler) DeleteAssetHandler(c *gin.Context) {
	assetID := c.Param("asset_id")
	if err := h.service.DeleteAsset(assetID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteAssetHandler: failed to delete asset", map[string]any{"asset_id": assetID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "asset deleted successfully")
	helpers.LogSuccess("DeleteAssetHandler", "asset deleted successfully", map[string]any{"asset_id": assetID})
}

// ListTeamsHandler handles GET /admin/teams
func (h *AuctionHandler) ListTeamsHandler(c *gin.Context) {
	teams := h.service.Teams()
	if teams == nil {
		teams = []model.Team{}
	}
	utils.JSONResponse(c, http.StatusOK, teams, "teams retrieved successfully")
}

// AddTeamHandler handles POST /admin/teams
func (h *AuctionHandler) AddTeamHandler(c *gin.Context) {
	var req helpers.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddTeamHandler", err)
		return
	}

	team, err := h.service.AddTeam(req.Name, req.Login, req.AccessCode, req.StartingBudget)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddTeamHandler: failed to add team", map[string]any{"name": req.Name, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, team, "team created successfully")
	helpers.LogSuccess("AddTeamHandler", "team created successfully", map[string]any{
		"team_id": team.TeamID,
		"name":    team.Name,
	})
}

// UpdateTeamHandler handles PUT /admin/teams/:team_id
func (h *AuctionHandler) UpdateTeamHandler(c *gin.Context) {
	teamID := c.Param("team_id")
	var req helpers.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateTeamHandler", err)
		return
	}

	team, err := h.service.UpdateTeam(teamID, req.Name, req.Login, req.AccessCode, req.StartingBudget)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateTeamHandler: failed to update team", map[string]any{"team_id": teamID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, team, "team updated successfully")
	helpers.LogSuccess("UpdateTeamHandler", "team updated successfully", map[string]any{"team_id": teamID})
}

// DeleteTeamHandler handles DELETE /admin/teams/:team_id
func (h *AuctionHandler) DeleteTeamHandler(c *gin.Context) {
	teamID := c.Param("team_id")
	if err := h.service.DeleteTeam(teamID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteTeamHandler: failed to delete team", map[string]any{"team_id": teamID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "team deleted successfully")
	helpers.LogSuccess("DeleteTeamHandler", "team deleted successfully", map[string]any{"team_id": teamID})
}
