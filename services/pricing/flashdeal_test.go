package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratecraft/models"
)

func TestCalculateFlashDealHeavyClearance(t *testing.T) {
	svc := &DefaultPricingService{}

	// 12 of 20 is 60% of inventory, the steepest band.
	deal, err := svc.CalculateFlashDeal(models.FlashDealRequest{
		BasePrice:       1000,
		InventoryToMove: 12,
		TotalInventory:  20,
	})
	require.NoError(t, err)

	assert.Equal(t, 25.0, deal.DiscountPercent)
	assert.Equal(t, 750.0, deal.FlashPrice)
	assert.Equal(t, 250.0, deal.SavingsPerUnit)
	assert.Equal(t, "Flash Sale! 25% off - only 12 left!", deal.UrgencyMessage)
	assert.Equal(t, 90.0, deal.ExpectedConversion)
}

func TestCalculateFlashDealDiscountBands(t *testing.T) {
	svc := &DefaultPricingService{}

	cases := []struct {
		name     string
		toMove   int
		total    int
		discount float64
	}{
		{"just over half", 11, 20, 25},
		{"exactly half", 10, 20, 20},
		{"over thirty percent", 7, 20, 20},
		{"over twenty percent", 5, 20, 15},
		{"small clearance floor", 2, 20, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deal, err := svc.CalculateFlashDeal(models.FlashDealRequest{
				BasePrice:       1000,
				InventoryToMove: tc.toMove,
				TotalInventory:  tc.total,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.discount, deal.DiscountPercent)
		})
	}
}

func TestCalculateFlashDealCallerCap(t *testing.T) {
	svc := &DefaultPricingService{}

	maxDiscount := 20.0
	deal, err := svc.CalculateFlashDeal(models.FlashDealRequest{
		BasePrice:          1000,
		InventoryToMove:    12,
		TotalInventory:     20,
		MaxDiscountPercent: &maxDiscount,
	})
	require.NoError(t, err)

	assert.Equal(t, 20.0, deal.DiscountPercent)
	assert.Equal(t, 800.0, deal.FlashPrice)
	assert.Equal(t, 90.0, deal.ExpectedConversion)
}

func TestCalculateFlashDealExplicitZeroCap(t *testing.T) {
	svc := &DefaultPricingService{}

	// A zero cap is a caller choice, not an absent field: it pins the
	// discount to zero rather than falling back to the default cap of 30.
	maxDiscount := 0.0
	deal, err := svc.CalculateFlashDeal(models.FlashDealRequest{
		BasePrice:          1000,
		InventoryToMove:    12,
		TotalInventory:     20,
		MaxDiscountPercent: &maxDiscount,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, deal.DiscountPercent)
	assert.Equal(t, 1000.0, deal.FlashPrice)
	assert.Equal(t, 0.0, deal.SavingsPerUnit)
	assert.Equal(t, 50.0, deal.ExpectedConversion)
}

func TestCalculateFlashDealAbsentCapUsesDefault(t *testing.T) {
	svc := &DefaultPricingService{}

	// Default cap is 30, which does not bite on a 25% band discount.
	deal, err := svc.CalculateFlashDeal(models.FlashDealRequest{
		BasePrice:       1000,
		InventoryToMove: 12,
		TotalInventory:  20,
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, deal.DiscountPercent)
}

func TestCalculateFlashDealConversionCeiling(t *testing.T) {
	svc := &DefaultPricingService{}

	// 15% discount maps to 80% conversion; the ceiling only bites above 20%.
	deal, err := svc.CalculateFlashDeal(models.FlashDealRequest{
		BasePrice:       1000,
		InventoryToMove: 5,
		TotalInventory:  20,
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, deal.ExpectedConversion)
}

func TestCalculateFlashDealInvalidInput(t *testing.T) {
	svc := &DefaultPricingService{}

	_, err := svc.CalculateFlashDeal(models.FlashDealRequest{BasePrice: 0, InventoryToMove: 1, TotalInventory: 10})
	assert.ErrorIs(t, err, ErrInvalidFlashDealInput)

	_, err = svc.CalculateFlashDeal(models.FlashDealRequest{BasePrice: 1000, InventoryToMove: 0, TotalInventory: 10})
	assert.ErrorIs(t, err, ErrInvalidFlashDealInput)

	_, err = svc.CalculateFlashDeal(models.FlashDealRequest{BasePrice: 1000, InventoryToMove: 1, TotalInventory: 0})
	assert.ErrorIs(t, err, ErrInvalidFlashDealInput)
}
