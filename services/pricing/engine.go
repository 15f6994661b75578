package pricing

import (
	"fmt"
	"math"
	"time"

	"ratecraft/models"
)

// CalculateDynamicPrice runs the full adjustment pipeline for one quote.
// Stages apply in a fixed order, each reading the running price and
// appending one adjustment; season and scarcity only contribute when they
// raise the price. now is injected so day-count math stays deterministic.
func (s *DefaultPricingService) CalculateDynamicPrice(req models.PricingRequest, now time.Time) (*models.PricingBreakdown, error) {
	if req.BasePrice <= 0 {
		return nil, ErrInvalidBasePrice
	}
	applyRequestDefaults(&req)

	price := req.BasePrice
	breakdown := &models.PricingBreakdown{
		BasePrice:   req.BasePrice,
		Adjustments: make([]models.PricingAdjustment, 0, 7),
	}

	// 1. Demand surge from current occupancy.
	demand := demandMultiplier(req.OccupancyRate)
	price *= demand
	breakdown.Adjustments = append(breakdown.Adjustments, models.PricingAdjustment{
		Type:       "demand",
		Label:      fmt.Sprintf("Occupancy: %.0f%%", req.OccupancyRate*100),
		Multiplier: demand,
		Impact:     price - req.BasePrice,
	})

	// 2. Booking-window discount or last-minute surge.
	window := bookingWindowFor(req.CheckInDate, now)
	price *= 1 + window.Delta
	breakdown.Adjustments = append(breakdown.Adjustments, models.PricingAdjustment{
		Type:       "booking_window",
		Label:      window.Label,
		Multiplier: 1 + window.Delta,
		Impact:     price - req.BasePrice,
	})

	// 3. Length-of-stay discount, compounding on the running price. The
	// recorded impact is derived from the already-discounted price; partner
	// statements were published with that figure, so it stays.
	nights := lengthOfStay(req.CheckInDate, req.CheckOutDate)
	losDiscount := lengthOfStayDiscount(nights)
	price *= 1 - losDiscount
	breakdown.Adjustments = append(breakdown.Adjustments, models.PricingAdjustment{
		Type:       "length_of_stay",
		Label:      fmt.Sprintf("%d nights: -%.0f%%", nights, losDiscount*100),
		Multiplier: 1 - losDiscount,
		Impact:     -(price * losDiscount),
	})

	// 4. Group-booking discount.
	group := groupDiscount(req.GroupSize)
	price *= 1 - group
	breakdown.Adjustments = append(breakdown.Adjustments, models.PricingAdjustment{
		Type:       "group",
		Label:      fmt.Sprintf("Group of %d: -%.0f%%", req.GroupSize, group*100),
		Multiplier: 1 - group,
		Impact:     -(price * group),
	})

	// 5. Loyalty-tier discount.
	loyalty := loyaltyDiscount(req.UserTier)
	price *= 1 - loyalty
	breakdown.Adjustments = append(breakdown.Adjustments, models.PricingAdjustment{
		Type:       "loyalty",
		Label:      fmt.Sprintf("%s tier: -%.0f%%", req.UserTier, loyalty*100),
		Multiplier: 1 - loyalty,
		Impact:     -(price * loyalty),
	})

	// 6. Peak season, only when it raises the price.
	if seasonMult := seasonMultiplier(req.CheckInDate); seasonMult > 1 {
		price *= seasonMult
		breakdown.Adjustments = append(breakdown.Adjustments, models.PricingAdjustment{
			Type:       "season",
			Label:      fmt.Sprintf("Peak season: +%.0f%%", (seasonMult-1)*100),
			Multiplier: seasonMult,
			Impact:     price - req.BasePrice,
		})
	}

	// 7. Scarcity premium, only when it raises the price.
	if invMult := inventoryMultiplier(req.AvailableInventory, req.TotalInventory); invMult > 1 {
		price *= invMult
		breakdown.Adjustments = append(breakdown.Adjustments, models.PricingAdjustment{
			Type:       "scarcity",
			Label:      fmt.Sprintf("Low availability: +%.0f%%", (invMult-1)*100),
			Multiplier: invMult,
			Impact:     price - req.BasePrice,
		})
	}

	// Quotes land on multiples of 50.
	finalPrice := math.Round(price/priceRoundingUnit) * priceRoundingUnit

	paymentFee := math.Round(finalPrice * paymentFeeRate)
	breakdown.FinalPrice = finalPrice
	breakdown.BookingFee = bookingFee
	breakdown.PaymentFee = paymentFee
	breakdown.TotalFees = bookingFee + paymentFee
	breakdown.TotalPrice = finalPrice + breakdown.TotalFees
	breakdown.Savings = math.Max(0, req.BasePrice-finalPrice)
	breakdown.Increase = math.Max(0, finalPrice-req.BasePrice)

	breakdown.Alerts = generateAlerts(alertInput{
		BasePrice:     req.BasePrice,
		FinalPrice:    finalPrice,
		OccupancyRate: req.OccupancyRate,
		UserTier:      req.UserTier,
		Nights:        nights,
	})

	return breakdown, nil
}

// applyRequestDefaults fills the fields a caller may omit. Occupancy and
// inventory are left as supplied; a zero total inventory is meaningful.
func applyRequestDefaults(req *models.PricingRequest) {
	if req.GroupSize <= 0 {
		req.GroupSize = 1
	}
	if req.UserTier == "" {
		req.UserTier = models.TierBronze
	}
	if req.PropertyType == "" {
		req.PropertyType = "accommodation"
	}
}
