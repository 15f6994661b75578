package pricing

import (
	"fmt"
	"math"
	"strings"

	"ratecraft/models"
)

const freezeBaseCost = 10.0

// Freeze-cost multipliers by loyalty tier. Unknown tiers pay full price.
var freezeTierMultipliers = map[string]float64{
	models.TierBronze:   1.0,
	models.TierSilver:   0.9,
	models.TierGold:     0.75,
	models.TierPlatinum: 0.5,
}

// GetPriceFreezeCost prices the option of locking the given quote for the
// freeze window.
func (s *DefaultPricingService) GetPriceFreezeCost(currentPrice float64, userTier string) *models.PriceFreezeQuote {
	multiplier, ok := freezeTierMultipliers[strings.ToLower(userTier)]
	if !ok {
		multiplier = 1.0
	}
	cost := freezeBaseCost * multiplier

	// The platinum copy says free even though the computed cost is 5.
	// Known mismatch, kept as shipped pending a product decision.
	message := fmt.Sprintf("R%.0f to freeze price", math.Round(cost))
	if multiplier == 0.5 {
		message = "FREE for Platinum members!"
	}

	return &models.PriceFreezeQuote{
		BaseCost:     freezeBaseCost,
		TierDiscount: (1 - multiplier) * 100,
		FinalCost:    math.Round(cost),
		Message:      message,
	}
}
