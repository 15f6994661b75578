package pricing

import (
	"math"
	"strings"
	"time"
)

const day = 24 * time.Hour

// demandMultiplier maps current occupancy to a surge multiplier.
// Out-of-range occupancy is not clamped: a rate above 1.0 still reads as
// peak demand, a negative one as low demand.
func demandMultiplier(occupancyRate float64) float64 {
	return pick(demandLadder, occupancyRate, lowDemandMultiplier)
}

// daysAhead counts days from now until check-in, rounding partial days up.
func daysAhead(checkIn, now time.Time) int {
	return int(math.Ceil(float64(checkIn.Sub(now)) / float64(day)))
}

// bookingWindowFor resolves the booking window for a check-in date.
func bookingWindowFor(checkIn, now time.Time) bookingWindow {
	d := daysAhead(checkIn, now)
	for _, w := range bookingWindows {
		if d >= w.DaysAhead {
			return w
		}
	}
	return lastMinuteWindow
}

// lengthOfStay returns the stay length in nights, never below one.
func lengthOfStay(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(float64(checkOut.Sub(checkIn)) / float64(day)))
	if nights < 1 {
		return 1
	}
	return nights
}

func lengthOfStayDiscount(nights int) float64 {
	return pick(lengthOfStayLadder, float64(nights), 0)
}

func groupDiscount(groupSize int) float64 {
	return pick(groupLadder, float64(groupSize), 0)
}

func loyaltyDiscount(tier string) float64 {
	return tierDiscounts[strings.ToLower(tier)]
}

// seasonMultiplier resolves the peak-season multiplier for a check-in date.
// Seasons are checked in declaration order and the first match wins; a date
// outside every season reads as 1.0.
func seasonMultiplier(checkIn time.Time) float64 {
	month := int(checkIn.Month())
	dayOfMonth := checkIn.Day()
	for _, s := range peakSeasons {
		if s.contains(month, dayOfMonth) {
			return s.Multiplier
		}
	}
	return 1.0
}

func (s season) contains(month, day int) bool {
	afterStart := month > s.StartMonth || (month == s.StartMonth && day >= s.StartDay)
	beforeEnd := month < s.EndMonth || (month == s.EndMonth && day <= s.EndDay)
	if s.StartMonth <= s.EndMonth {
		return afterStart && beforeEnd
	}
	// Range wraps the year boundary, e.g. Dec 15 - Jan 15.
	return afterStart || beforeEnd
}

// inventoryMultiplier prices scarcity: the fewer units remain relative to
// total inventory, the higher the premium. Zero total inventory means no
// premium rather than a division.
func inventoryMultiplier(available, total int) float64 {
	if total == 0 {
		return 1.0
	}
	availabilityRate := float64(available) / float64(total)
	return pickLow(scarcityLadder, availabilityRate, 1.0)
}
