package main

import (
	"context"
	"log"

	"parcel-service/config"
	"parcel-service/controllers"
	"parcel-service/database"
	"parcel-service/logger"
	"parcel-service/middleware"
	"parcel-service/repository"
	"parcel-service/routes"
	"parcel-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[ParcelService] ❌ Failed to load config:", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(cfg.MongoURI, cfg.MongoDB); err != nil {
		logger.Log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer database.Close()

	parcelRepo := repository.NewMongoParcelRepository(database.DB)
	paymentRepo := repository.NewMongoPaymentRepository(database.DB)

	// The unique index on payment_intent_id backs the ledger's
	// one-entry-per-intent invariant.
	if err := paymentRepo.EnsureIndexes(context.Background()); err != nil {
		logger.Log.Fatal("Failed to ensure payment indexes", zap.Error(err))
	}

	redisClient := database.NewRedisClient(cfg.RedisURL)
	cache := services.NewParcelCache(redisClient, logger.Log)

	stripeSvc := services.NewStripeService(cfg.StripeSecretKey)

	var events services.EventPublisher
	if cfg.PaymentTopicARN != "" {
		publisher, err := services.NewSNSPublisher(context.Background(), cfg.PaymentTopicARN)
		if err != nil {
			logger.Log.Warn("SNS publisher disabled", zap.Error(err))
		} else {
			events = publisher
		}
	}

	parcelSvc := services.NewParcelService(parcelRepo, cache, logger.Log)
	paymentSvc := services.NewPaymentService(parcelRepo, paymentRepo, stripeSvc, events, cache, logger.Log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(r,
		controllers.NewParcelController(parcelSvc),
		controllers.NewPaymentController(paymentSvc),
	)

	logger.Log.Info("Parcel service running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed", zap.Error(err))
	}
}
