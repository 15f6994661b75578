package freeze

import (
	"context"

	"github.com/go-redis/redis/v8"

	"ratecraft/models"
	"ratecraft/services/pricing"
)

// PriceFreezeService issues and resolves price locks.
type PriceFreezeService interface {
	CreateFreeze(ctx context.Context, req models.FreezeRequest) (*models.PriceFreeze, error)
	GetFreeze(ctx context.Context, id string) (*models.PriceFreeze, error)
}

// DefaultFreezeService stores frozen quotes in Redis with a TTL covering
// the freeze window, so expiry needs no sweeper.
type DefaultFreezeService struct {
	Cache   *redis.Client
	Pricing pricing.PricingService
}
