package pricing

import "ratecraft/models"

// Static pricing tables. Everything here is process-wide constant data and
// is never mutated at runtime, so concurrent quotes can share it freely.

const (
	bookingFee        = 25.0  // fixed fee per booking, in Rand
	paymentFeeRate    = 0.025 // 2.5% payment processing fee on the final price
	priceRoundingUnit = 50.0  // quotes land on multiples of 50
)

// Demand surge multipliers by occupancy, peak bucket first. A boundary
// value belongs to the higher bucket.
var demandLadder = []bucket{
	{1.0, 1.30}, // peak demand
	{0.8, 1.15}, // high demand
	{0.6, 1.00}, // normal
}

// lowDemandMultiplier applies below every demand bucket.
const lowDemandMultiplier = 0.85

// bookingWindow maps how far out a booking is made to a price delta.
// Negative deltas are discounts, positive ones surges.
type bookingWindow struct {
	DaysAhead int
	Delta     float64
	Label     string
}

var bookingWindows = []bookingWindow{
	{60, -0.15, "Early Bird (-15%)"},
	{30, -0.10, "Advance (-10%)"},
	{7, 0.0, "Standard"},
}

// lastMinuteWindow is the fallthrough: inside a week of check-in the price
// surges instead of discounting.
var lastMinuteWindow = bookingWindow{0, 0.20, "Last Minute (+20%)"}

// Length-of-stay discounts by nights.
var lengthOfStayLadder = []bucket{
	{30, 0.15},
	{14, 0.10},
	{7, 0.05},
}

// Group-booking discounts by units booked together.
var groupLadder = []bucket{
	{10, 0.15},
	{5, 0.10},
	{3, 0.05},
	{2, 0.02},
}

// Loyalty-tier discounts. Missing tiers read as zero.
var tierDiscounts = map[string]float64{
	models.TierBronze:   0.02,
	models.TierSilver:   0.05,
	models.TierGold:     0.08,
	models.TierPlatinum: 0.12,
}

// season is a (month, day) range with a peak multiplier. A range whose
// start month is after its end month wraps the year boundary.
type season struct {
	Name       string
	StartMonth int
	StartDay   int
	EndMonth   int
	EndDay     int
	Multiplier float64
}

// Declaration order is the resolution order: the first season containing a
// date wins. Summer and Christmas overlap mid-December through early
// January, so Summer's 1.25 takes those dates. Product has signed off on
// keeping it that way.
var peakSeasons = []season{
	{"Summer", 12, 15, 1, 15, 1.25},
	{"Easter", 3, 1, 4, 30, 1.20},
	{"School Holidays", 6, 1, 7, 31, 1.30},
	{"Christmas", 12, 1, 1, 5, 1.35},
}

// Scarcity premiums by availability rate, scarcest bucket first.
var scarcityLadder = []bucket{
	{0.1, 1.50}, // 90%+ sold
	{0.2, 1.35},
	{0.3, 1.20},
	{0.5, 1.10},
}
