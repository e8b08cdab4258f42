package server

import (
	auction "auction-arena/internal/auctionService"
	"auction-arena/internal/transport"
	handler "auction-arena/services/auction/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc *auction.AuctionService, hub *transport.Hub, auth transport.Authenticator, adminToken string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(cors.Default())

	auctionHandler := handler.NewAuctionHandler(svc)

	router.GET("/health", HealthHandler)

	// websocket handshake: token resolves to a team or the admin role
	router.GET("/ws", func(c *gin.Context) {
		hub.HandleWS(c, auth)
	})

	admin := router.Group("/admin", AdminAuthMiddleware(adminToken))
	{
		admin.GET("/auction/status", auctionHandler.StatusHandler)
		admin.POST("/auction/start", auctionHandler.StartHandler)
		admin.POST("/auction/stop", auctionHandler.StopHandler)
		admin.POST("/auction/reset", auctionHandler.ResetHandler)
		admin.PUT("/auction/duration", auctionHandler.SetDurationHandler)
		admin.GET("/history", auctionHandler.HistoryHandler)

		admin.GET("/assets", auctionHandler.ListAssetsHandler)
		admin.POST("/assets", auctionHandler.AddAssetHandler)
		admin.PUT("/assets/:asset_id", auctionHandler.UpdateAssetHandler)
		admin.DELETE("/assets/:asset_id", auctionHandler.DeleteAssetHandler)
		admin.GET("/assets/:asset_id/bids", auctionHandler.BidsForAssetHandler)

		admin.GET("/teams", auctionHandler.ListTeamsHandler)
		admin.POST("/teams", auctionHandler.AddTeamHandler)
		admin.PUT("/teams/:team_id", auctionHandler.UpdateTeamHandler)
		admin.DELETE("/teams/:team_id", auctionHandler.DeleteTeamHandler)
	}

	return router
}
