package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/plats-network/sponsor-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes; all ledger operations act on behalf of the
	// authenticated account
	v1 := router.Group("/api/v1", middleware.Auth(authCfg))
	{
		// Event lifecycle
		v1.POST("/events", handler.CreateEvent)
		v1.GET("/events", handler.ListEvents)
		v1.GET("/events/:id", handler.GetEvent)
		v1.POST("/events/:id/finish", handler.FinishEvent)
		v1.POST("/events/:id/cancel", handler.CancelEvent)

		// Sponsorship ledger
		v1.GET("/events/:id/sponsors", handler.ListEventSponsors)
		v1.POST("/events/:id/sponse", handler.Sponse)
		v1.POST("/events/:id/topup", handler.TopUp)
		v1.GET("/sponsors/me/sponsorships", handler.ListSponsorships)

		// Claim settlement
		v1.POST("/events/:id/claim", handler.Claim)
		v1.GET("/events/:id/transfers", handler.ListEventTransfers)

		// Client event index
		v1.GET("/clients/:account/events", handler.ListClientEvents)

		// Token-mirror accounts
		v1.POST("/accounts/register", handler.RegisterAccount)
		v1.GET("/accounts/:account/balance", handler.GetBalance)
		v1.GET("/token/supply", handler.GetTotalSupply)
		v1.POST("/token/transfer", handler.TransferToken)
	}

	// Administration endpoints (requires API key authentication only)
	admin := router.Group("/api/v1/admin", middleware.APIKeyAuth(authCfg))
	{
		admin.POST("/storage/activate", handler.ActivateTokenStorage)
	}
}
