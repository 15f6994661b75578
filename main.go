package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"ratecraft/config"
	"ratecraft/cron"
	"ratecraft/database"
	quotesRepo "ratecraft/database/repository/quotes"
	"ratecraft/handlers"
	"ratecraft/middleware"
	"ratecraft/routes"
	"ratecraft/services/freeze"
	"ratecraft/services/pricing"
	"ratecraft/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	quoteRepo := quotesRepo.NewMongoQuoteRepo()

	// Services.
	pricingService := &pricing.DefaultPricingService{}
	freezeService := &freeze.DefaultFreezeService{
		Cache:   utils.GetCacheClient(),
		Pricing: pricingService,
	}

	// Background quote-audit worker and its queue client.
	cron.InitQuoteAuditWorker(quoteRepo)
	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	// Handlers.
	pricingHandler := handlers.NewPricingHandler(pricingService, queueClient, logger)
	freezeHandler := handlers.NewFreezeHandler(freezeService)
	quoteRecordsHandler := handlers.NewQuoteRecordsHandler(quoteRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		QuoteHandler:          pricingHandler.QuoteHandler,
		ComparisonHandler:     pricingHandler.ComparisonHandler,
		RecommendationHandler: pricingHandler.RecommendationHandler,
		FlashDealHandler:      pricingHandler.FlashDealHandler,
		FreezeCostHandler:     pricingHandler.FreezeCostHandler,

		CreateFreezeHandler: freezeHandler.CreateFreezeHandler,
		GetFreezeHandler:    freezeHandler.GetFreezeHandler,

		PerformanceHandler:      pricingHandler.PerformanceHandler,
		GetQuoteRecordHandler:   quoteRecordsHandler.GetQuoteRecordHandler,
		ListRecentQuotesHandler: quoteRecordsHandler.ListRecentQuotesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	database.CloseDB(ctx)

	logger.Sugar().Info("main: server stopped gracefully")
}
