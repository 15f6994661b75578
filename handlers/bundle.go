package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Pricing endpoints.
	QuoteHandler          gin.HandlerFunc
	ComparisonHandler     gin.HandlerFunc
	RecommendationHandler gin.HandlerFunc
	FlashDealHandler      gin.HandlerFunc
	FreezeCostHandler     gin.HandlerFunc

	// Price-freeze endpoints.
	CreateFreezeHandler gin.HandlerFunc
	GetFreezeHandler    gin.HandlerFunc

	// Partner endpoints (token protected).
	PerformanceHandler      gin.HandlerFunc
	GetQuoteRecordHandler   gin.HandlerFunc
	ListRecentQuotesHandler gin.HandlerFunc
}
