package models

import "time"

// FreezeRequest asks to lock a quoted price for the freeze window.
type FreezeRequest struct {
	QuotedPrice float64 `json:"quotedPrice"`
	UserTier    string  `json:"userTier"`
}

// PriceFreeze is an issued price lock. It lives in the cache until
// ExpiresAt and is gone afterwards.
type PriceFreeze struct {
	ID          string    `json:"id"`
	QuotedPrice float64   `json:"quotedPrice"`
	UserTier    string    `json:"userTier"`
	Cost        float64   `json:"cost"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
