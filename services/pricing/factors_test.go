package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDemandMultiplier(t *testing.T) {
	cases := []struct {
		occupancy float64
		want      float64
	}{
		{0.0, 0.85},
		{0.4, 0.85},
		{0.59, 0.85},
		{0.6, 1.00}, // boundary belongs to the higher bucket
		{0.79, 1.00},
		{0.8, 1.15},
		{0.99, 1.15},
		{1.0, 1.30},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, demandMultiplier(tc.occupancy), "occupancy %.2f", tc.occupancy)
	}
}

func TestDemandMultiplierDoesNotClampOutOfRangeInput(t *testing.T) {
	// Overbooked inventory reads as peak demand, negative rates as low.
	assert.Equal(t, 1.30, demandMultiplier(1.5))
	assert.Equal(t, 0.85, demandMultiplier(-0.3))
}

func TestBookingWindowFor(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		daysOut   int
		wantDelta float64
		wantLabel string
	}{
		{90, -0.15, "Early Bird (-15%)"},
		{60, -0.15, "Early Bird (-15%)"},
		{59, -0.10, "Advance (-10%)"},
		{30, -0.10, "Advance (-10%)"},
		{29, 0.0, "Standard"},
		{7, 0.0, "Standard"},
		{6, 0.20, "Last Minute (+20%)"},
		{0, 0.20, "Last Minute (+20%)"},
	}
	for _, tc := range cases {
		w := bookingWindowFor(now.AddDate(0, 0, tc.daysOut), now)
		assert.Equal(t, tc.wantDelta, w.Delta, "%d days out", tc.daysOut)
		assert.Equal(t, tc.wantLabel, w.Label, "%d days out", tc.daysOut)
	}
}

func TestDaysAheadRoundsPartialDaysUp(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 60, daysAhead(now.Add(60*day), now))
	assert.Equal(t, 60, daysAhead(now.Add(59*day+time.Hour), now))
	assert.Equal(t, 1, daysAhead(now.Add(time.Hour), now))
}

func TestLengthOfStay(t *testing.T) {
	checkIn := time.Date(2025, 8, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, lengthOfStay(checkIn, checkIn.AddDate(0, 0, 5)))
	assert.Equal(t, 1, lengthOfStay(checkIn, checkIn.Add(12*time.Hour)))
	// Same-day or inverted ranges never go below one night.
	assert.Equal(t, 1, lengthOfStay(checkIn, checkIn))
	assert.Equal(t, 1, lengthOfStay(checkIn, checkIn.AddDate(0, 0, -2)))
}

func TestLengthOfStayDiscount(t *testing.T) {
	assert.Equal(t, 0.0, lengthOfStayDiscount(6))
	assert.Equal(t, 0.05, lengthOfStayDiscount(7))
	assert.Equal(t, 0.10, lengthOfStayDiscount(14))
	assert.Equal(t, 0.15, lengthOfStayDiscount(30))
	assert.Equal(t, 0.15, lengthOfStayDiscount(90))
}

func TestGroupDiscount(t *testing.T) {
	assert.Equal(t, 0.0, groupDiscount(1))
	assert.Equal(t, 0.02, groupDiscount(2))
	assert.Equal(t, 0.05, groupDiscount(3))
	assert.Equal(t, 0.10, groupDiscount(5))
	assert.Equal(t, 0.15, groupDiscount(10))
	assert.Equal(t, 0.15, groupDiscount(40))
}

func TestLoyaltyDiscount(t *testing.T) {
	assert.Equal(t, 0.02, loyaltyDiscount("bronze"))
	assert.Equal(t, 0.05, loyaltyDiscount("silver"))
	assert.Equal(t, 0.08, loyaltyDiscount("gold"))
	assert.Equal(t, 0.12, loyaltyDiscount("platinum"))
	assert.Equal(t, 0.12, loyaltyDiscount("Platinum"))
	// Unknown or missing tiers carry no discount.
	assert.Equal(t, 0.0, loyaltyDiscount("vip"))
	assert.Equal(t, 0.0, loyaltyDiscount(""))
}

func TestSeasonMultiplierFirstDeclaredWins(t *testing.T) {
	// Dec 20 sits in both Summer (Dec 15 - Jan 15) and Christmas
	// (Dec 1 - Jan 5); Summer is declared first and takes it.
	dec20 := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1.25, seasonMultiplier(dec20))
}

func TestSeasonMultiplier(t *testing.T) {
	cases := []struct {
		month time.Month
		day   int
		want  float64
	}{
		{time.December, 10, 1.35}, // Christmas only, before Summer starts
		{time.January, 10, 1.25},  // Summer wraps the year
		{time.January, 16, 1.0},   // just past every season
		{time.February, 14, 1.0},
		{time.March, 1, 1.20},
		{time.April, 30, 1.20},
		{time.May, 15, 1.0},
		{time.June, 1, 1.30},
		{time.July, 31, 1.30},
		{time.August, 1, 1.0},
		{time.October, 30, 1.0},
	}
	for _, tc := range cases {
		date := time.Date(2025, tc.month, tc.day, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tc.want, seasonMultiplier(date), "%s %d", tc.month, tc.day)
	}
}

func TestInventoryMultiplier(t *testing.T) {
	cases := []struct {
		available, total int
		want             float64
	}{
		{1, 20, 1.50},
		{2, 20, 1.50}, // 0.1 boundary takes the scarcer bucket
		{3, 20, 1.35},
		{4, 20, 1.35},
		{5, 20, 1.20},
		{6, 20, 1.20},
		{8, 20, 1.10},
		{10, 20, 1.10},
		{12, 20, 1.0},
		{20, 20, 1.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, inventoryMultiplier(tc.available, tc.total), "%d/%d", tc.available, tc.total)
	}
}

func TestInventoryMultiplierZeroTotalInventory(t *testing.T) {
	assert.Equal(t, 1.0, inventoryMultiplier(0, 0))
	assert.Equal(t, 1.0, inventoryMultiplier(5, 0))
}
