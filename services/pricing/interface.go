package pricing

import (
	"time"

	"ratecraft/models"
)

// PricingService defines the dynamic quote pipeline and the auxiliary
// revenue utilities around it. Every method is deterministic: identical
// inputs (including now, where taken) produce identical outputs, so calls
// may run concurrently without coordination.
type PricingService interface {
	CalculateDynamicPrice(req models.PricingRequest, now time.Time) (*models.PricingBreakdown, error)
	GetPricingComparison(req models.ComparisonRequest) (*models.PricingComparison, error)
	GetRecommendedPrice(req models.ForecastRequest) (*models.PriceRecommendation, error)
	CalculateFlashDeal(req models.FlashDealRequest) (*models.FlashDeal, error)
	GetPriceFreezeCost(currentPrice float64, userTier string) *models.PriceFreezeQuote
	AnalyzePricingPerformance(req models.PerformanceRequest) *models.PricingPerformance
}

// DefaultPricingService implements PricingService. It carries no state;
// all tuning lives in the package's static tables.
type DefaultPricingService struct{}
