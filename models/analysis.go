package models

// ComparisonRequest positions one of our prices against competitor quotes
// for the same inventory.
type ComparisonRequest struct {
	OurPrice         float64   `json:"ourPrice"`
	CompetitorPrices []float64 `json:"competitorPrices"`
}

// PricingComparison is the market-position report for a price.
type PricingComparison struct {
	OurPrice           float64 `json:"ourPrice"`
	AvgCompetitorPrice float64 `json:"avgCompetitorPrice"`
	MinCompetitorPrice float64 `json:"minCompetitorPrice"`
	MaxCompetitorPrice float64 `json:"maxCompetitorPrice"`
	PriceDiffFromAvg   float64 `json:"priceDiffFromAvg"`
	PercentDiffFromAvg float64 `json:"percentDiffFromAvg"`
	IsCompetitive      bool    `json:"isCompetitive"`
	Recommendation     string  `json:"recommendation"`
}

// ForecastRequest asks for a recommended price given the occupancy trend
// and how far out the booking date sits.
type ForecastRequest struct {
	BasePrice           float64 `json:"basePrice"`
	HistoricalOccupancy float64 `json:"historicalOccupancy"`
	UpcomingOccupancy   float64 `json:"upcomingOccupancy"`
	DaysUntilBooking    int     `json:"daysUntilBooking"`
}

// PriceRecommendation is a forecast-driven price suggestion with the
// reasoning that produced it.
type PriceRecommendation struct {
	BasePrice        float64  `json:"basePrice"`
	RecommendedPrice float64  `json:"recommendedPrice"`
	PriceChange      float64  `json:"priceChange"`
	PercentChange    float64  `json:"percentChange"`
	Rationale        []string `json:"rationale"`
	Confidence       float64  `json:"confidence"`
}

// FlashDealRequest sizes a clearance discount for a quantity of unsold
// inventory. A nil MaxDiscountPercent means the default cap of 30; an
// explicit zero cap pins the discount to zero.
type FlashDealRequest struct {
	BasePrice          float64  `json:"basePrice"`
	InventoryToMove    int      `json:"inventoryToMove"`
	TotalInventory     int      `json:"totalInventory"`
	MaxDiscountPercent *float64 `json:"maxDiscountPercent"`
}

// FlashDeal is a recommended time-boxed discount.
type FlashDeal struct {
	BasePrice          float64 `json:"basePrice"`
	FlashPrice         float64 `json:"flashPrice"`
	DiscountPercent    float64 `json:"discountPercent"`
	SavingsPerUnit     float64 `json:"savingsPerUnit"`
	UrgencyMessage     string  `json:"urgencyMessage"`
	ExpectedConversion float64 `json:"expectedConversion"`
}

// PriceFreezeQuote is the cost of locking a quoted price for the freeze
// window, discounted by loyalty tier.
type PriceFreezeQuote struct {
	BaseCost     float64 `json:"baseCost"`
	TierDiscount float64 `json:"tierDiscount"` // percent off the base cost
	FinalCost    float64 `json:"finalCost"`
	Message      string  `json:"message"`
}

// PerformanceRequest compares realized bookings at base vs optimized
// pricing over a period. PeriodDays of zero means 30.
type PerformanceRequest struct {
	BookingsAtBasePrice      int     `json:"bookingsAtBasePrice"`
	BookingsAtOptimizedPrice int     `json:"bookingsAtOptimizedPrice"`
	BasePrice                float64 `json:"basePrice"`
	OptimizedPrice           float64 `json:"optimizedPrice"`
	PeriodDays               int     `json:"periodDays"`
}

// PricingPerformance is the revenue report for a pricing strategy.
type PricingPerformance struct {
	BaseRevenue             float64 `json:"baseRevenue"`
	OptimizedRevenue        float64 `json:"optimizedRevenue"`
	RevenueIncrease         float64 `json:"revenueIncrease"`
	PercentIncrease         float64 `json:"percentIncrease"`
	AvgBookingsPerDay       float64 `json:"avgBookingsPerDay"`
	ProjectedMonthlyRevenue float64 `json:"projectedMonthlyRevenue"`
	ROI                     float64 `json:"roi"`
	Recommendation          string  `json:"recommendation"`
}
