package models

import "time"

// QuoteRecord is the audit trail of one served quote: the request as the
// engine saw it and the breakdown it returned. Records are written by the
// background audit worker, never by the engine itself.
type QuoteRecord struct {
	ID        string           `bson:"id" json:"id"`
	Request   PricingRequest   `bson:"request" json:"request"`
	Breakdown PricingBreakdown `bson:"breakdown" json:"breakdown"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
}
