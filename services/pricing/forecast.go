package pricing

import (
	"fmt"
	"math"

	"ratecraft/models"
)

// GetRecommendedPrice forecasts a price from the occupancy trend, then
// stacks a booking-window adjustment on top. Each step that fires appends
// its rationale.
func (s *DefaultPricingService) GetRecommendedPrice(req models.ForecastRequest) (*models.PriceRecommendation, error) {
	if req.BasePrice <= 0 {
		return nil, ErrInvalidBasePrice
	}

	recommended := req.BasePrice
	rationale := []string{}

	trend := req.UpcomingOccupancy - req.HistoricalOccupancy
	switch {
	case trend > 0.2:
		recommended *= 1.25
		rationale = append(rationale, fmt.Sprintf("High occupancy trend (+%.0f%%): increase by 25%%", trend*100))
	case trend > 0.1:
		recommended *= 1.1
		rationale = append(rationale, fmt.Sprintf("Moderate occupancy trend (+%.0f%%): increase by 10%%", trend*100))
	case trend < -0.2:
		recommended *= 0.9
		rationale = append(rationale, fmt.Sprintf("Low occupancy trend (%.0f%%): decrease by 10%%", trend*100))
	}

	if req.DaysUntilBooking < 7 {
		recommended *= 1.2
		rationale = append(rationale, "Last-minute booking: add 20% premium")
	} else if req.DaysUntilBooking > 60 {
		recommended *= 0.85
		rationale = append(rationale, "Far in advance: reduce by 15% (early bird)")
	}

	// Confidence has a ceiling but no floor: a collapsing trend reads as
	// negative confidence.
	confidence := math.Min(95, 60+trend*100)

	return &models.PriceRecommendation{
		BasePrice:        req.BasePrice,
		RecommendedPrice: math.Round(recommended/priceRoundingUnit) * priceRoundingUnit,
		PriceChange:      math.Round(recommended - req.BasePrice),
		PercentChange:    round1((recommended - req.BasePrice) / req.BasePrice * 100),
		Rationale:        rationale,
		Confidence:       confidence,
	}, nil
}
