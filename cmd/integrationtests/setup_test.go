package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-arena/internal/auctionService"
	"auction-arena/internal/history"
	"auction-arena/internal/ledger"
	model "auction-arena/internal/models"
	"auction-arena/internal/repository"
	"auction-arena/internal/server"
	"auction-arena/internal/transport"

	"github.com/gin-gonic/gin"
)

const testAdminToken = "integration-admin-token"

// SetupTestServer wires a full in-memory stack: real store, ledger,
// history, transport hub and auction service behind the production router.
func SetupTestServer(t *testing.T) (*gin.Engine, *auction.AuctionService, *repository.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewStore()
	bidLedger := ledger.New()
	recorder := history.NewRecorder()
	hub := transport.NewHub()

	svc := auction.NewAuctionService(store, bidLedger, recorder, hub, nil, time.Hour)
	svc.RegisterCommands(hub)

	auth := server.NewTokenAuthenticator(store, testAdminToken)
	router := server.SetupRouter(svc, hub, auth, testAdminToken)
	return router, svc, store
}

// SeedCatalog adds assets and teams directly to the store.
func SeedCatalog(t *testing.T, store *repository.Store, assets []model.Asset, teams []model.Team) {
	t.Helper()
	for _, a := range assets {
		if err := store.AddAsset(a); err != nil {
			t.Fatalf("failed to seed asset %s: %v", a.AssetID, err)
		}
	}
	for _, tm := range teams {
		if err := store.AddTeam(tm); err != nil {
			t.Fatalf("failed to seed team %s: %v", tm.TeamID, err)
		}
	}
}

// ExecuteAdminRequest executes an HTTP request carrying the admin token and
// parses the JSON response envelope.
func ExecuteAdminRequest(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Token", testAdminToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
