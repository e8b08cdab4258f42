package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	auction "auction-arena/internal/auctionService"
	"auction-arena/internal/history"
	"auction-arena/internal/ledger"
	model "auction-arena/internal/models"
	"auction-arena/internal/repository"
	"auction-arena/internal/server"
	"auction-arena/internal/transport"
	"auction-arena/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file found, reading environment variables", nil)
	}

	store := repository.NewStore()
	bidLedger := ledger.New()
	recorder := history.NewRecorder()
	hub := transport.NewHub()
	persist := repository.NewFilePersister(dataFile())

	svc := auction.NewAuctionService(store, bidLedger, recorder, hub, persist, defaultDuration())

	if snap, err := persist.Load(); err != nil {
		utils.Error("failed to load state, starting with defaults", map[string]any{"error": err.Error()})
		seedCatalog(store)
	} else if snap != nil {
		svc.RestoreSnapshot(*snap)
		utils.Info("state restored", map[string]any{
			"assets": len(snap.Assets),
			"teams":  len(snap.Teams),
		})
	} else {
		seedCatalog(store)
	}

	svc.RegisterCommands(hub)

	auth := server.NewTokenAuthenticator(store, adminToken())
	router := server.SetupRouter(svc, hub, auth, adminToken())

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedCatalog adds a demo catalog so a fresh server is playable
func seedCatalog(store *repository.Store) {
	assets := []model.Asset{
		{AssetID: "asset1", Name: "Riverside Stadium", Category: "infrastructure", MinBid: 100000, Quantity: 1},
		{AssetID: "asset2", Name: "Broadcast Rights North", Category: "media", MinBid: 50000, Quantity: 2},
		{AssetID: "asset3", Name: "Training Ground Lease", Category: "infrastructure", MinBid: 25000, Quantity: 3},
	}
	for _, a := range assets {
		if err := store.AddAsset(a); err != nil {
			utils.Warn("seed asset skipped", map[string]any{"asset_id": a.AssetID, "error": err.Error()})
		}
	}

	teams := []model.Team{
		{TeamID: "team1", Name: "Northern Lights", Login: "north", AccessCode: "north-code", StartingBudget: 500000},
		{TeamID: "team2", Name: "Southern Cross", Login: "south", AccessCode: "south-code", StartingBudget: 500000},
	}
	for _, t := range teams {
		if err := store.AddTeam(t); err != nil {
			utils.Warn("seed team skipped", map[string]any{"team_id": t.TeamID, "error": err.Error()})
		}
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// adminToken returns the admin token from env or a development default
func adminToken() string {
	if t := os.Getenv("ADMIN_TOKEN"); t != "" {
		return t
	}
	return "dev-admin-token"
}

// dataFile returns the snapshot path from env or a local default
func dataFile() string {
	if f := os.Getenv("DATA_FILE"); f != "" {
		return f
	}
	return "data/auction.json"
}

// defaultDuration returns the auction duration from env or 300 seconds
func defaultDuration() time.Duration {
	if raw := os.Getenv("AUCTION_DURATION_SEC"); raw != "" {
		if sec, err := strconv.Atoi(raw); err == nil && sec > 0 {
			return time.Duration(sec) * time.Second
		}
	}
	return 300 * time.Second
}
