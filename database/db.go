package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ratecraft/config"
)

// MongoClient backs the quote audit trail. It is the only Mongo handle the
// service holds; quotes are computed on the fly and persisted only for audit.
var MongoClient *mongo.Client

// InitDB connects to the audit datastore and verifies it is reachable.
// A dead datastore is fatal at startup rather than a silent audit gap.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		log.Fatalf("database: cannot connect to audit datastore: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("database: audit datastore not reachable: %v", err)
	}

	MongoClient = client
	log.Println("database: audit datastore connected")
}

// CloseDB releases the Mongo connection during shutdown.
func CloseDB(ctx context.Context) {
	if MongoClient == nil {
		return
	}
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Printf("database: error disconnecting audit datastore: %v", err)
	}
}
