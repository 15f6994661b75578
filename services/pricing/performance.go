package pricing

import (
	"fmt"
	"math"

	"ratecraft/models"
)

// AnalyzePricingPerformance compares realized revenue at base vs optimized
// pricing over a period and projects it onto a 30-day month.
func (s *DefaultPricingService) AnalyzePricingPerformance(req models.PerformanceRequest) *models.PricingPerformance {
	period := req.PeriodDays
	if period <= 0 {
		period = 30
	}

	baseRevenue := float64(req.BookingsAtBasePrice) * req.BasePrice
	optimizedRevenue := float64(req.BookingsAtOptimizedPrice) * req.OptimizedPrice
	revenueIncrease := optimizedRevenue - baseRevenue

	percentIncrease := 0.0
	if baseRevenue != 0 {
		percentIncrease = revenueIncrease / baseRevenue * 100
	}

	avgBookingsPerDay := float64(req.BookingsAtOptimizedPrice+req.BookingsAtBasePrice) / 2 / float64(period)
	projectedMonthly := optimizedRevenue * (30 / float64(period))

	roi := 0.0
	if req.BasePrice != 0 {
		roi = revenueIncrease / req.BasePrice * 100
	}

	recommendation := "Consider adjusting pricing strategy"
	if revenueIncrease > 0 {
		recommendation = fmt.Sprintf("Dynamic pricing working! +R%.0f revenue over %d days", math.Round(revenueIncrease), period)
	}

	return &models.PricingPerformance{
		BaseRevenue:             math.Round(baseRevenue),
		OptimizedRevenue:        math.Round(optimizedRevenue),
		RevenueIncrease:         math.Round(revenueIncrease),
		PercentIncrease:         round1(percentIncrease),
		AvgBookingsPerDay:       round1(avgBookingsPerDay),
		ProjectedMonthlyRevenue: math.Round(projectedMonthly),
		ROI:                     round1(roi),
		Recommendation:          recommendation,
	}
}
