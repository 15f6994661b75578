package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ratecraft/models"
)

func TestAnalyzePricingPerformanceRevenueGain(t *testing.T) {
	svc := &DefaultPricingService{}

	perf := svc.AnalyzePricingPerformance(models.PerformanceRequest{
		BookingsAtBasePrice:      100,
		BookingsAtOptimizedPrice: 120,
		BasePrice:                1000,
		OptimizedPrice:           1200,
		PeriodDays:               30,
	})

	assert.Equal(t, 100000.0, perf.BaseRevenue)
	assert.Equal(t, 144000.0, perf.OptimizedRevenue)
	assert.Equal(t, 44000.0, perf.RevenueIncrease)
	assert.InDelta(t, 44.0, perf.PercentIncrease, 1e-9)
	assert.InDelta(t, 3.7, perf.AvgBookingsPerDay, 1e-9)
	assert.Equal(t, 144000.0, perf.ProjectedMonthlyRevenue)
	assert.InDelta(t, 4400.0, perf.ROI, 1e-9)
	assert.Equal(t, "Dynamic pricing working! +R44000 revenue over 30 days", perf.Recommendation)
}

func TestAnalyzePricingPerformanceDecline(t *testing.T) {
	svc := &DefaultPricingService{}

	perf := svc.AnalyzePricingPerformance(models.PerformanceRequest{
		BookingsAtBasePrice:      100,
		BookingsAtOptimizedPrice: 50,
		BasePrice:                1000,
		OptimizedPrice:           1000,
		PeriodDays:               30,
	})

	assert.Equal(t, -50000.0, perf.RevenueIncrease)
	assert.InDelta(t, -50.0, perf.PercentIncrease, 1e-9)
	assert.Equal(t, "Consider adjusting pricing strategy", perf.Recommendation)
}

func TestAnalyzePricingPerformanceZeroBaseRevenue(t *testing.T) {
	svc := &DefaultPricingService{}

	// No bookings at base price means percent increase is undefined;
	// report zero instead of dividing by zero.
	perf := svc.AnalyzePricingPerformance(models.PerformanceRequest{
		BookingsAtBasePrice:      0,
		BookingsAtOptimizedPrice: 10,
		BasePrice:                1000,
		OptimizedPrice:           500,
	})

	assert.Equal(t, 0.0, perf.BaseRevenue)
	assert.Equal(t, 5000.0, perf.RevenueIncrease)
	assert.Equal(t, 0.0, perf.PercentIncrease)
	assert.InDelta(t, 0.2, perf.AvgBookingsPerDay, 1e-9)
	assert.Equal(t, "Dynamic pricing working! +R5000 revenue over 30 days", perf.Recommendation)
}

func TestAnalyzePricingPerformanceZeroBasePrice(t *testing.T) {
	svc := &DefaultPricingService{}

	perf := svc.AnalyzePricingPerformance(models.PerformanceRequest{
		BookingsAtBasePrice:      0,
		BookingsAtOptimizedPrice: 10,
		BasePrice:                0,
		OptimizedPrice:           500,
	})

	assert.Equal(t, 0.0, perf.ROI)
}

func TestAnalyzePricingPerformanceShortPeriodProjection(t *testing.T) {
	svc := &DefaultPricingService{}

	perf := svc.AnalyzePricingPerformance(models.PerformanceRequest{
		BookingsAtBasePrice:      10,
		BookingsAtOptimizedPrice: 12,
		BasePrice:                1000,
		OptimizedPrice:           1100,
		PeriodDays:               15,
	})

	// 15 observed days project onto a 30-day month.
	assert.Equal(t, 13200.0, perf.OptimizedRevenue)
	assert.Equal(t, 26400.0, perf.ProjectedMonthlyRevenue)
}
