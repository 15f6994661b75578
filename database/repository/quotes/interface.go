package quotesRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"ratecraft/database"
	"ratecraft/models"
)

// QuoteRecordRepository is the audit store for served quotes. The engine
// itself persists nothing; the background worker writes through here.
type QuoteRecordRepository interface {
	Create(ctx context.Context, record models.QuoteRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.QuoteRecord, error)
	ListRecent(ctx context.Context, limit int64) ([]models.QuoteRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoQuoteRepo struct {
	coll *mongo.Collection
}

// NewMongoQuoteRepo returns a QuoteRecordRepository backed by MongoDB.
func NewMongoQuoteRepo() QuoteRecordRepository {
	db := database.MongoClient.Database("ratecraft")
	return &mongoQuoteRepo{
		coll: db.Collection("quote_records"),
	}
}
