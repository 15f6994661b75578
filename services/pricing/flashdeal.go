package pricing

import (
	"fmt"
	"math"

	"ratecraft/models"
)

const defaultMaxFlashDiscount = 30.0

// CalculateFlashDeal sizes a time-boxed clearance discount for a quantity
// of unsold inventory. The heavier the share of inventory to move, the
// steeper the discount, capped by the caller's maximum.
func (s *DefaultPricingService) CalculateFlashDeal(req models.FlashDealRequest) (*models.FlashDeal, error) {
	if req.BasePrice == 0 || req.InventoryToMove == 0 || req.TotalInventory == 0 {
		return nil, ErrInvalidFlashDealInput
	}

	maxDiscount := defaultMaxFlashDiscount
	if req.MaxDiscountPercent != nil {
		maxDiscount = *req.MaxDiscountPercent
	}

	percentToMove := float64(req.InventoryToMove) / float64(req.TotalInventory) * 100

	// 10% is the floor even for tiny clearances.
	discount := 10.0
	switch {
	case percentToMove > 50:
		discount = 25
	case percentToMove > 30:
		discount = 20
	case percentToMove > 20:
		discount = 15
	}
	discount = math.Min(discount, maxDiscount)

	flashPrice := req.BasePrice * (1 - discount/100)

	return &models.FlashDeal{
		BasePrice:          req.BasePrice,
		FlashPrice:         math.Round(flashPrice),
		DiscountPercent:    discount,
		SavingsPerUnit:     math.Round(req.BasePrice - flashPrice),
		UrgencyMessage:     fmt.Sprintf("Flash Sale! %.0f%% off - only %d left!", discount, req.InventoryToMove),
		ExpectedConversion: math.Min(90, 50+discount*2),
	}, nil
}
