package server

import (
	"calcutta-auction/internal/broadcast"
	"calcutta-auction/internal/engine"
	handler "calcutta-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionEngine *engine.AuctionEngine, hub *broadcast.Hub, baseURL string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionEngine, baseURL)

	events := router.Group("/events")
	{
		events.POST("", auctionHandler.CreateEventHandler)
		events.GET("/:event_id/state", auctionHandler.GetStateHandler)
		events.POST("/:event_id/teams", auctionHandler.ImportTeamsHandler)
		events.POST("/:event_id/randomize", auctionHandler.RandomizeOrderHandler)
		events.POST("/:event_id/undo", auctionHandler.UndoLastHandler)
		events.GET("/:event_id/projection", auctionHandler.GetProjectionHandler)
		events.POST("/:event_id/payouts", auctionHandler.ComputePayoutsHandler)
		events.GET("/:event_id/summary", auctionHandler.GetSummaryHandler)
		events.GET("/:event_id/recap", auctionHandler.GetRecapHandler)
		events.GET("/:event_id/player-links", auctionHandler.GetPlayerLinksHandler)
		events.GET("/:event_id/player-validate", auctionHandler.ValidatePlayerHandler)

		events.POST("/:event_id/lots/:lot_id/open", auctionHandler.OpenLotHandler)
		events.POST("/:event_id/lots/:lot_id/bid", auctionHandler.PlaceBidHandler)
		events.POST("/:event_id/lots/:lot_id/accept", auctionHandler.AcceptBidHandler)
		events.POST("/:event_id/lots/:lot_id/pause", auctionHandler.TogglePauseHandler)

		events.GET("/:event_id/ws", func(c *gin.Context) {
			hub.Subscribe(c.Param("event_id"), c.Writer, c.Request)
		})
	}

	return router
}
