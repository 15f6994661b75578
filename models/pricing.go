package models

import "time"

// Loyalty tiers recognised by the pricing engine. Unknown tiers are treated
// as having no loyalty discount.
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// PricingRequest carries everything the engine needs to quote one bookable
// unit. Callers supply current occupancy and inventory state on every call;
// the engine holds no state of its own.
type PricingRequest struct {
	BasePrice          float64   `bson:"basePrice" json:"basePrice"`
	CheckInDate        time.Time `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate       time.Time `bson:"checkOutDate" json:"checkOutDate"`
	OccupancyRate      float64   `bson:"occupancyRate" json:"occupancyRate"`           // fraction of inventory booked, nominally 0-1
	AvailableInventory int       `bson:"availableInventory" json:"availableInventory"` // units still open
	TotalInventory     int       `bson:"totalInventory" json:"totalInventory"`
	PropertyType       string    `bson:"propertyType" json:"propertyType"` // informational tag, e.g. "accommodation"
	GroupSize          int       `bson:"groupSize" json:"groupSize"`       // units booked together
	UserTier           string    `bson:"userTier" json:"userTier"`
}

// PricingAdjustment is one step of the quote pipeline. The slice on a
// breakdown is append-only and keeps the pipeline's application order.
type PricingAdjustment struct {
	Type       string  `bson:"type" json:"type"`
	Label      string  `bson:"label" json:"label"`
	Multiplier float64 `bson:"multiplier" json:"multiplier"`
	Impact     float64 `bson:"impact" json:"impact"` // delta vs the running price when the step applied
}

// PricingAlert is an operational hint for partners derived from a computed
// breakdown.
type PricingAlert struct {
	Type    string `bson:"type" json:"type"`
	Message string `bson:"message" json:"message"`
	Action  string `bson:"action" json:"action"`
}

// PricingBreakdown is the full result of a dynamic price calculation.
// FinalPrice is always a positive multiple of 50.
type PricingBreakdown struct {
	BasePrice   float64             `bson:"basePrice" json:"basePrice"`
	Adjustments []PricingAdjustment `bson:"adjustments" json:"adjustments"`
	FinalPrice  float64             `bson:"finalPrice" json:"finalPrice"`
	BookingFee  float64             `bson:"bookingFee" json:"bookingFee"`
	PaymentFee  float64             `bson:"paymentFee" json:"paymentFee"`
	TotalFees   float64             `bson:"totalFees" json:"totalFees"`
	TotalPrice  float64             `bson:"totalPrice" json:"totalPrice"`
	Savings     float64             `bson:"savings" json:"savings"`
	Increase    float64             `bson:"increase" json:"increase"`
	Alerts      []PricingAlert      `bson:"alerts" json:"alerts"`
}
