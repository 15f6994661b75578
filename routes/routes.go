package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ratecraft/handlers"
	"ratecraft/middleware"
	"ratecraft/utils"
)

// RegisterPricingRoutes sets up the endpoints of the pricing engine.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.POST("/quote", hb.QuoteHandler)
		api.POST("/comparison", hb.ComparisonHandler)
		api.POST("/recommendation", hb.RecommendationHandler)
		api.POST("/flash-deal", hb.FlashDealHandler)
		api.GET("/freeze-cost", hb.FreezeCostHandler)
	}
}

// RegisterFreezeRoutes sets up price-freeze issuance and lookup.
func RegisterFreezeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/freezes")
	{
		api.POST("", hb.CreateFreezeHandler)
		api.GET("/:id", hb.GetFreezeHandler)
	}
}

// RegisterPartnerRoutes sets up analytics and quote-audit endpoints.
// Everything here requires a partner token.
func RegisterPartnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.PartnerAuthMiddleware())
	{
		api.POST("/analytics/performance", hb.PerformanceHandler)
		api.GET("/quotes/recent", hb.ListRecentQuotesHandler)
		api.GET("/quotes/:id", hb.GetQuoteRecordHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPricingRoutes(r, hb)
	RegisterFreezeRoutes(r, hb)
	RegisterPartnerRoutes(r, hb)
	RegisterHealthRoute(r)
}
