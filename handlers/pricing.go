package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"ratecraft/cron"
	"ratecraft/models"
	"ratecraft/services/pricing"
)

// PricingHandler serves the quote pipeline and the revenue utilities
// around it.
type PricingHandler struct {
	Service pricing.PricingService
	Queue   *asynq.Client
	Logger  *zap.Logger
}

// NewPricingHandler constructs a PricingHandler. Queue may be nil, in which
// case served quotes are not audited.
func NewPricingHandler(svc pricing.PricingService, queue *asynq.Client, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{Service: svc, Queue: queue, Logger: logger}
}

// quoteInput mirrors models.PricingRequest with the occupancy and inventory
// fields as pointers, so an absent field can take a default instead of
// reading as zero.
type quoteInput struct {
	BasePrice          float64   `json:"basePrice"`
	CheckInDate        time.Time `json:"checkInDate"`
	CheckOutDate       time.Time `json:"checkOutDate"`
	OccupancyRate      *float64  `json:"occupancyRate"`
	AvailableInventory *int      `json:"availableInventory"`
	TotalInventory     *int      `json:"totalInventory"`
	PropertyType       string    `json:"propertyType"`
	GroupSize          int       `json:"groupSize"`
	UserTier           string    `json:"userTier"`
}

func (in quoteInput) toRequest() models.PricingRequest {
	req := models.PricingRequest{
		BasePrice:          in.BasePrice,
		CheckInDate:        in.CheckInDate,
		CheckOutDate:       in.CheckOutDate,
		OccupancyRate:      0.6,
		AvailableInventory: 10,
		TotalInventory:     20,
		PropertyType:       in.PropertyType,
		GroupSize:          in.GroupSize,
		UserTier:           in.UserTier,
	}
	if in.OccupancyRate != nil {
		req.OccupancyRate = *in.OccupancyRate
	}
	if in.AvailableInventory != nil {
		req.AvailableInventory = *in.AvailableInventory
	}
	if in.TotalInventory != nil {
		req.TotalInventory = *in.TotalInventory
	}
	return req
}

// QuoteHandler computes a dynamic price breakdown for one bookable unit.
func (h *PricingHandler) QuoteHandler(c *gin.Context) {
	var input quoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	req := input.toRequest()
	breakdown, err := h.Service.CalculateDynamicPrice(req, time.Now())
	if err != nil {
		respondPricingError(c, err)
		return
	}

	h.enqueueQuoteRecord(req, breakdown)

	c.JSON(http.StatusOK, gin.H{"success": true, "quote": breakdown})
}

// enqueueQuoteRecord hands the served quote to the audit worker. Quoting
// must never fail on audit problems, so errors only log.
func (h *PricingHandler) enqueueQuoteRecord(req models.PricingRequest, breakdown *models.PricingBreakdown) {
	if h.Queue == nil {
		return
	}
	record := models.QuoteRecord{
		ID:        uuid.New().String(),
		Request:   req,
		Breakdown: *breakdown,
		CreatedAt: time.Now(),
	}
	task, err := cron.NewQuoteRecordTask(record)
	if err != nil {
		h.Logger.Warn("failed to build quote audit task", zap.Error(err))
		return
	}
	if _, err := h.Queue.Enqueue(task); err != nil {
		h.Logger.Warn("failed to enqueue quote audit task", zap.Error(err))
	}
}

// ComparisonHandler positions a price against competitor prices.
func (h *PricingHandler) ComparisonHandler(c *gin.Context) {
	var input models.ComparisonRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	comparison, err := h.Service.GetPricingComparison(input)
	if err != nil {
		respondPricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "comparison": comparison})
}

// forecastInput mirrors models.ForecastRequest with pointer fields, so an
// absent field can take its default instead of reading as zero. An absent
// daysUntilBooking otherwise lands in the last-minute band.
type forecastInput struct {
	BasePrice           float64  `json:"basePrice"`
	HistoricalOccupancy *float64 `json:"historicalOccupancy"`
	UpcomingOccupancy   *float64 `json:"upcomingOccupancy"`
	DaysUntilBooking    *int     `json:"daysUntilBooking"`
}

func (in forecastInput) toRequest() models.ForecastRequest {
	req := models.ForecastRequest{
		BasePrice:           in.BasePrice,
		HistoricalOccupancy: 0.6,
		UpcomingOccupancy:   0.7,
		DaysUntilBooking:    14,
	}
	if in.HistoricalOccupancy != nil {
		req.HistoricalOccupancy = *in.HistoricalOccupancy
	}
	if in.UpcomingOccupancy != nil {
		req.UpcomingOccupancy = *in.UpcomingOccupancy
	}
	if in.DaysUntilBooking != nil {
		req.DaysUntilBooking = *in.DaysUntilBooking
	}
	return req
}

// RecommendationHandler forecasts a recommended price from occupancy trends.
func (h *PricingHandler) RecommendationHandler(c *gin.Context) {
	var input forecastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	recommendation, err := h.Service.GetRecommendedPrice(input.toRequest())
	if err != nil {
		respondPricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "recommendation": recommendation})
}

// FlashDealHandler sizes a clearance discount for unsold inventory.
func (h *PricingHandler) FlashDealHandler(c *gin.Context) {
	var input models.FlashDealRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	deal, err := h.Service.CalculateFlashDeal(input)
	if err != nil {
		respondPricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "flashDeal": deal})
}

// FreezeCostHandler quotes the cost of a price freeze for a tier.
// Query params: price (required), tier (defaults to bronze).
func (h *PricingHandler) FreezeCostHandler(c *gin.Context) {
	price, err := strconv.ParseFloat(c.Query("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "price must be a number"})
		return
	}
	tier := c.DefaultQuery("tier", models.TierBronze)

	cost := h.Service.GetPriceFreezeCost(price, tier)
	c.JSON(http.StatusOK, gin.H{"success": true, "freezeCost": cost})
}

// PerformanceHandler reports revenue performance of optimized pricing.
func (h *PricingHandler) PerformanceHandler(c *gin.Context) {
	var input models.PerformanceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	report := h.Service.AnalyzePricingPerformance(input)
	c.JSON(http.StatusOK, gin.H{"success": true, "performance": report})
}

// respondPricingError maps engine failures onto the wire: known pricing
// errors are client errors, anything else is a 500.
func respondPricingError(c *gin.Context, err error) {
	var perr *pricing.PricingError
	if errors.As(err, &perr) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": perr.Message, "code": perr.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
}
