package freeze

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"ratecraft/models"
	"ratecraft/services/pricing"
)

// freezeWindow is how long a locked price stays honoured.
const freezeWindow = 7 * 24 * time.Hour

// ErrFreezeNotFound covers both unknown IDs and freezes past their window,
// since the cache forgets expired entries.
var ErrFreezeNotFound = errors.New("price freeze not found or expired")

func freezeKey(id string) string {
	return "freeze:" + id
}

// CreateFreeze prices the lock for the caller's tier, stores the frozen
// quote and returns it with its expiry.
func (s *DefaultFreezeService) CreateFreeze(ctx context.Context, req models.FreezeRequest) (*models.PriceFreeze, error) {
	if req.QuotedPrice <= 0 {
		return nil, pricing.ErrInvalidBasePrice
	}
	tier := req.UserTier
	if tier == "" {
		tier = models.TierBronze
	}

	cost := s.Pricing.GetPriceFreezeCost(req.QuotedPrice, tier)

	now := time.Now()
	frozen := &models.PriceFreeze{
		ID:          uuid.New().String(),
		QuotedPrice: req.QuotedPrice,
		UserTier:    tier,
		Cost:        cost.FinalCost,
		Message:     cost.Message,
		CreatedAt:   now,
		ExpiresAt:   now.Add(freezeWindow),
	}

	data, err := json.Marshal(frozen)
	if err != nil {
		return nil, err
	}
	if err := s.Cache.Set(ctx, freezeKey(frozen.ID), data, freezeWindow).Err(); err != nil {
		return nil, err
	}
	return frozen, nil
}

// GetFreeze resolves an issued freeze by ID.
func (s *DefaultFreezeService) GetFreeze(ctx context.Context, id string) (*models.PriceFreeze, error) {
	data, err := s.Cache.Get(ctx, freezeKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrFreezeNotFound
	}
	if err != nil {
		return nil, err
	}

	var frozen models.PriceFreeze
	if err := json.Unmarshal([]byte(data), &frozen); err != nil {
		return nil, err
	}
	return &frozen, nil
}
