package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"ratecraft/config"
	quotesRepo "ratecraft/database/repository/quotes"
	"ratecraft/models"
)

const TypeQuoteRecord = "quote:record"

// NewQuoteRecordTask wraps a served quote into an audit task payload.
func NewQuoteRecordTask(record models.QuoteRecord) (*asynq.Task, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeQuoteRecord, payload), nil
}

// NewQueueClient returns an asynq client for enqueueing audit tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// InitQuoteAuditWorker runs the async worker that persists served quotes in
// the background, keeping the quote endpoint free of write latency.
func InitQuoteAuditWorker(repo quotesRepo.QuoteRecordRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeQuoteRecord, handleQuoteRecordTask(repo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[QuoteAuditWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[QuoteAuditWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[QuoteAuditWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleQuoteRecordTask(repo quotesRepo.QuoteRecordRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var record models.QuoteRecord
		if err := json.Unmarshal(task.Payload(), &record); err != nil {
			log.Printf("[QuoteAuditWorker] Invalid payload: %v", err)
			return err
		}

		if _, err := repo.Create(ctx, record); err != nil {
			log.Printf("[QuoteAuditWorker] Failed to persist quote record %s: %v", record.ID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[QuoteAuditWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
