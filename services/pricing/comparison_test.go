package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratecraft/models"
)

func TestGetPricingComparisonCompetitive(t *testing.T) {
	svc := &DefaultPricingService{}

	cmp, err := svc.GetPricingComparison(models.ComparisonRequest{
		OurPrice:         9000,
		CompetitorPrices: []float64{10000, 10500, 9500},
	})
	require.NoError(t, err)

	assert.Equal(t, 9000.0, cmp.OurPrice)
	assert.Equal(t, 10000.0, cmp.AvgCompetitorPrice)
	assert.Equal(t, 9500.0, cmp.MinCompetitorPrice)
	assert.Equal(t, 10500.0, cmp.MaxCompetitorPrice)
	assert.Equal(t, -1000.0, cmp.PriceDiffFromAvg)
	assert.InDelta(t, -10.0, cmp.PercentDiffFromAvg, 1e-9)
	assert.True(t, cmp.IsCompetitive)
	assert.Equal(t, "Competitive pricing", cmp.Recommendation)
}

func TestGetPricingComparisonAboveMarket(t *testing.T) {
	svc := &DefaultPricingService{}

	cmp, err := svc.GetPricingComparison(models.ComparisonRequest{
		OurPrice:         11500,
		CompetitorPrices: []float64{10000},
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, cmp.PriceDiffFromAvg)
	assert.InDelta(t, 15.0, cmp.PercentDiffFromAvg, 1e-9)
	assert.False(t, cmp.IsCompetitive)
	assert.Equal(t, "15.0% above market - consider reducing price", cmp.Recommendation)
}

func TestGetPricingComparisonFarBelowMarket(t *testing.T) {
	svc := &DefaultPricingService{}

	// More than R5000 under the average is no longer "competitive".
	cmp, err := svc.GetPricingComparison(models.ComparisonRequest{
		OurPrice:         4000,
		CompetitorPrices: []float64{10000, 10000},
	})
	require.NoError(t, err)

	assert.Equal(t, -6000.0, cmp.PriceDiffFromAvg)
	assert.False(t, cmp.IsCompetitive)
	assert.Equal(t, "60.0% below market - strong value proposition", cmp.Recommendation)
}

func TestGetPricingComparisonCompetitiveFloorBoundary(t *testing.T) {
	svc := &DefaultPricingService{}

	// Exactly R5000 under market still counts as competitive.
	cmp, err := svc.GetPricingComparison(models.ComparisonRequest{
		OurPrice:         5000,
		CompetitorPrices: []float64{10000},
	})
	require.NoError(t, err)
	assert.True(t, cmp.IsCompetitive)
}

func TestGetPricingComparisonInvalidInput(t *testing.T) {
	svc := &DefaultPricingService{}

	_, err := svc.GetPricingComparison(models.ComparisonRequest{OurPrice: 0, CompetitorPrices: []float64{100}})
	assert.ErrorIs(t, err, ErrInvalidComparisonInput)

	_, err = svc.GetPricingComparison(models.ComparisonRequest{OurPrice: 100})
	assert.ErrorIs(t, err, ErrInvalidComparisonInput)
}
