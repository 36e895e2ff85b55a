package server

import (
	handler "agrimarket/services/market/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles the portal services the router exposes
type Services struct {
	Auth    handler.AuthServiceInterface
	Catalog handler.CatalogServiceInterface
	Farm    handler.FarmServiceInterface
	Auction handler.AuctionServiceInterface
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svcs Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	authHandler := handler.NewAuthHandler(svcs.Auth)
	catalogHandler := handler.NewCatalogHandler(svcs.Catalog)
	farmHandler := handler.NewFarmHandler(svcs.Farm)
	auctionHandler := handler.NewAuctionHandler(svcs.Auction)

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.LoginHandler)
	}

	router.GET("/products", catalogHandler.ListProductsHandler)

	cart := router.Group("/cart/:user_id")
	{
		cart.GET("", catalogHandler.GetCartHandler)
		cart.POST("/items", catalogHandler.AddCartItemHandler)
		cart.PATCH("/items/:product_id", catalogHandler.UpdateCartItemHandler)
		cart.DELETE("/items/:product_id", catalogHandler.RemoveCartItemHandler)
		cart.POST("/checkout", catalogHandler.CheckoutHandler)
	}

	farmer := router.Group("/farmer")
	{
		farmer.GET("/crops", farmHandler.ListCropsHandler)
		farmer.POST("/crops", farmHandler.AddCropHandler)
		farmer.POST("/waste", farmHandler.AddWasteHandler)
	}

	industry := router.Group("/industry")
	{
		industry.GET("/waste-products", farmHandler.ListWasteProductsHandler)
		industry.GET("/auctions", auctionHandler.ListAuctionsHandler)
	}

	sessions := router.Group("/sessions")
	{
		sessions.POST("", auctionHandler.OpenSessionHandler)
		sessions.GET("/:session_id", auctionHandler.GetSessionHandler)
		sessions.POST("/:session_id/bids", auctionHandler.PlaceBidHandler)
		sessions.GET("/:session_id/bids", auctionHandler.ListBidsHandler)
		sessions.GET("/:session_id/bids/top", auctionHandler.TopBiddersHandler)
		sessions.GET("/:session_id/series", auctionHandler.SeriesHandler)
		sessions.GET("/:session_id/summary", auctionHandler.SummaryHandler)
		sessions.POST("/:session_id/close", auctionHandler.CloseSessionHandler)
	}

	return router
}
