package pricing

import (
	"fmt"
	"math"

	"ratecraft/models"
)

// GetPricingComparison positions our price against a set of competitor
// prices for the same inventory.
func (s *DefaultPricingService) GetPricingComparison(req models.ComparisonRequest) (*models.PricingComparison, error) {
	if req.OurPrice == 0 || len(req.CompetitorPrices) == 0 {
		return nil, ErrInvalidComparisonInput
	}

	sum := 0.0
	minPrice := req.CompetitorPrices[0]
	maxPrice := req.CompetitorPrices[0]
	for _, p := range req.CompetitorPrices {
		sum += p
		if p < minPrice {
			minPrice = p
		}
		if p > maxPrice {
			maxPrice = p
		}
	}
	avg := sum / float64(len(req.CompetitorPrices))

	priceDiff := req.OurPrice - avg
	percentDiff := priceDiff / avg * 100

	// Competitive means at or below market, but not more than R5000 under
	// it. The floor is an absolute amount, not a percentage.
	isCompetitive := priceDiff <= 0 && priceDiff >= -5000

	var recommendation string
	switch {
	case isCompetitive:
		recommendation = "Competitive pricing"
	case percentDiff > 0:
		recommendation = fmt.Sprintf("%.1f%% above market - consider reducing price", math.Abs(percentDiff))
	default:
		recommendation = fmt.Sprintf("%.1f%% below market - strong value proposition", math.Abs(percentDiff))
	}

	return &models.PricingComparison{
		OurPrice:           req.OurPrice,
		AvgCompetitorPrice: math.Round(avg),
		MinCompetitorPrice: minPrice,
		MaxCompetitorPrice: maxPrice,
		PriceDiffFromAvg:   math.Round(priceDiff),
		PercentDiffFromAvg: round1(percentDiff),
		IsCompetitive:      isCompetitive,
		Recommendation:     recommendation,
	}, nil
}
