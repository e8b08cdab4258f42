package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-arena/internal/auctionerrors"
	auction "auction-arena/internal/auctionService"
	model "auction-arena/internal/models"
	"auction-arena/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(h *AuctionHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/auction/status", h.StatusHandler)
	router.POST("/admin/auction/start", h.StartHandler)
	router.POST("/admin/auction/stop", h.StopHandler)
	router.POST("/admin/auction/reset", h.ResetHandler)
	router.PUT("/admin/auction/duration", h.SetDurationHandler)
	router.GET("/admin/history", h.HistoryHandler)
	router.POST("/admin/assets", h.AddAssetHandler)
	router.DELETE("/admin/assets/:asset_id", h.DeleteAssetHandler)
	router.POST("/admin/teams", h.AddTeamHandler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Test StartHandler
func TestStartHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	endTime := time.Now().Add(2 * time.Minute).UTC()

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockService.EXPECT().Start().Return(endTime, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "already_running",
			mockSetup: func() {
				mockService.EXPECT().Start().Return(time.Time{}, fmt.Errorf("service: %w", auctionerrors.ErrAlreadyRunning))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "needs_reset",
			mockSetup: func() {
				mockService.EXPECT().Start().Return(time.Time{}, fmt.Errorf("service: %w", auctionerrors.ErrNeedsReset))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := doJSON(t, router, http.MethodPost, "/admin/auction/start", nil)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test StopHandler
func TestStopHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockService.EXPECT().ForceStop().Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "already_stopped",
			mockSetup: func() {
				mockService.EXPECT().ForceStop().Return(fmt.Errorf("service: %w", auctionerrors.ErrAlreadyStopped))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := doJSON(t, router, http.MethodPost, "/admin/auction/stop", nil)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test SetDurationHandler
func TestSetDurationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: helpers.DurationRequest{Seconds: 120},
			mockSetup: func() {
				mockService.EXPECT().SetDuration(120).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing_seconds",
			requestBody:    map[string]any{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "rejected_while_running",
			requestBody: helpers.DurationRequest{Seconds: 60},
			mockSetup: func() {
				mockService.EXPECT().SetDuration(60).Return(fmt.Errorf("service: %w", auctionerrors.ErrRunningLocked))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := doJSON(t, router, http.MethodPut, "/admin/auction/duration", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test AddAssetHandler
func TestAddAssetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: helpers.AssetRequest{Name: "Stadium", Category: "infra", MinBid: 100, Quantity: 2},
			mockSetup: func() {
				mockService.EXPECT().
					AddAsset("Stadium", "infra", 100, 2).
					Return(model.Asset{AssetID: "a1", Name: "Stadium", MinBid: 100, Quantity: 2}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing_name",
			requestBody:    map[string]any{"min_bid": 100, "quantity": 1},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero_quantity",
			requestBody:    map[string]any{"name": "X", "min_bid": 100, "quantity": 0},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "locked_while_running",
			requestBody: helpers.AssetRequest{Name: "Stadium", MinBid: 100, Quantity: 1},
			mockSetup: func() {
				mockService.EXPECT().
					AddAsset("Stadium", "", 100, 1).
					Return(model.Asset{}, fmt.Errorf("service: %w", auctionerrors.ErrRunningLocked))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := doJSON(t, router, http.MethodPost, "/admin/assets", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test DeleteAssetHandler
func TestDeleteAssetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	mockService.EXPECT().DeleteAsset("a1").Return(nil)
	w := doJSON(t, router, http.MethodDelete, "/admin/assets/a1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	mockService.EXPECT().DeleteAsset("missing").Return(fmt.Errorf("service: %w", auctionerrors.ErrAssetNotFound))
	w = doJSON(t, router, http.MethodDelete, "/admin/assets/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// Test StatusHandler and HistoryHandler
func TestStatusAndHistoryHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	mockService.EXPECT().Status().Return(auction.Status{Running: true, SecondsRemaining: 42, DurationSec: 120})
	w := doJSON(t, router, http.MethodGet, "/admin/auction/status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var statusResp struct {
		Data auction.Status `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &statusResp))
	require.True(t, statusResp.Data.Running)
	require.Equal(t, 42, statusResp.Data.SecondsRemaining)

	// empty history serializes as [], not null
	mockService.EXPECT().History().Return(nil)
	w = doJSON(t, router, http.MethodGet, "/admin/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"data":[]`)
}

// Test AddTeamHandler
func TestAddTeamHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	mockService.EXPECT().
		AddTeam("Alpha", "alpha", "alpha-code", 500000).
		Return(model.Team{TeamID: "t1", Name: "Alpha", Budget: 500000, StartingBudget: 500000}, nil)

	w := doJSON(t, router, http.MethodPost, "/admin/teams", helpers.TeamRequest{
		Name:           "Alpha",
		Login:          "alpha",
		AccessCode:     "alpha-code",
		StartingBudget: 500000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data model.Team `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "t1", resp.Data.TeamID)
	require.Equal(t, 500000, resp.Data.Budget)
}
