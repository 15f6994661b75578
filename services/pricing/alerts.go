package pricing

import (
	"fmt"

	"ratecraft/models"
)

// alertInput is the slice of a computed breakdown the alert rules read.
type alertInput struct {
	BasePrice     float64
	FinalPrice    float64
	OccupancyRate float64
	UserTier      string
	Nights        int
}

// generateAlerts derives operational hints for partners from a computed
// breakdown. Rules are independent; any subset can fire.
func generateAlerts(in alertInput) []models.PricingAlert {
	alerts := []models.PricingAlert{}

	if in.OccupancyRate > 0.9 {
		alerts = append(alerts, models.PricingAlert{
			Type:    "high_occupancy",
			Message: "High occupancy - consider increasing price further",
			Action:  "Increase base price by 10-20%",
		})
	}
	if in.FinalPrice > in.BasePrice*1.25 {
		alerts = append(alerts, models.PricingAlert{
			Type:    "price_surge",
			Message: "Price surge active - 25%+ increase from base",
			Action:  "Monitor bookings carefully",
		})
	}
	if in.FinalPrice < in.BasePrice*0.75 {
		alerts = append(alerts, models.PricingAlert{
			Type:    "heavy_discount",
			Message: "Heavy discount active - consider lower base price",
			Action:  "Analyze demand trends",
		})
	}
	if in.UserTier != "" && in.UserTier != models.TierBronze {
		alerts = append(alerts, models.PricingAlert{
			Type:    "loyalty_applied",
			Message: fmt.Sprintf("Loyalty discount applied (%s tier)", in.UserTier),
			Action:  "Upsell premium services",
		})
	}

	return alerts
}
