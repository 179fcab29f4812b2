package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autorent/internal/config"
	"autorent/internal/handlers"
	"autorent/internal/middleware"
	"autorent/internal/repositories/mongodb"
	"autorent/internal/services"
	"autorent/pkg/cache"
	"autorent/pkg/database"
	"autorent/pkg/logger"
	"autorent/pkg/maps"
	"autorent/pkg/payment"
	"autorent/pkg/storage"
	"autorent/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.App.LogLevel),
		Format:     logFormat(),
		Output:     "stdout",
		TimeFormat: time.RFC3339,
		Colors:     !config.IsProduction(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.Infof("starting %s %s (%s)", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer db.Close()

	if err := database.EnsureIndexes(db.Database); err != nil {
		log.WithError(err).Fatal("failed to ensure indexes")
	}

	var cacheService services.CacheService = services.NoopCacheService{}
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, running without cache")
	} else {
		defer redisCache.Close()
		cacheService = services.NewCacheService(redisCache)
	}

	paymentProvider := payment.NewStripeProvider(cfg.Payment.Stripe.SecretKey, cfg.Payment.Stripe.PublishableKey)

	geocoder, err := maps.NewGoogleMapsGeocoder(cfg.Maps.GoogleMaps.APIKey)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize geocoder")
	}

	storageProvider, err := buildStorage(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize storage")
	}

	// Repositories
	carRepo := mongodb.NewCarRepository(db.Database, cacheService)
	bookingRepo := mongodb.NewBookingRepository(db.Database, cacheService)
	paymentRepo := mongodb.NewPaymentRepository(db.Database, cacheService)
	cancellationRepo := mongodb.NewCancellationRepository(db.Database, cacheService)
	reviewRepo := mongodb.NewReviewRepository(db.Database, cacheService)
	profileRepo := mongodb.NewProfileRepository(db.Database, cacheService)
	contactRepo := mongodb.NewContactRepository(db.Database, cacheService)

	// Services
	bookingService := services.NewBookingService(bookingRepo, carRepo, paymentRepo, cancellationRepo, paymentProvider, cacheService, log, cfg.Payment.Currency)
	carService := services.NewCarService(carRepo, geocoder, storageProvider, cacheService, log)
	reviewService := services.NewReviewService(reviewRepo, carRepo, log)
	profileService := services.NewProfileService(profileRepo, storageProvider, log)
	contactService := services.NewContactService(contactRepo, log)
	dashboardService := services.NewDashboardService(bookingRepo, carRepo, reviewRepo, cancellationRepo, log)

	// Handlers
	carHandler := handlers.NewCarHandler(carService, reviewService, bookingService, log)
	bookingHandler := handlers.NewBookingHandler(bookingService, log)
	reviewHandler := handlers.NewReviewHandler(reviewService, log)
	profileHandler := handlers.NewProfileHandler(profileService, log)
	contactHandler := handlers.NewContactHandler(contactService, log)
	adminHandler := handlers.NewAdminHandler(carService, bookingService, reviewService, contactService, dashboardService, log)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.App.Version})
	})

	api := router.Group("/api/v1")
	routes.Setup(api, cfg.Security.JWTSecret, carHandler, bookingHandler, reviewHandler, profileHandler, contactHandler, adminHandler)

	// The client needs the publishable key and currency to render the
	// hosted payment form.
	api.GET("/payments/config", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"publishable_key": paymentProvider.PublishableKey(),
			"currency":        cfg.Payment.Currency,
		})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
}

func buildStorage(cfg *config.Config) (storage.Provider, error) {
	switch cfg.Storage.Provider {
	case "s3":
		return storage.NewAWSS3Storage(cfg.Storage.S3.Region, cfg.Storage.S3.Bucket, cfg.Storage.S3.CDNDomain)
	default:
		return storage.NewLocalStorage(cfg.Storage.Local.BasePath, cfg.Storage.Local.BaseURL)
	}
}

func logFormat() string {
	if config.IsProduction() {
		return "json"
	}
	return "text"
}
