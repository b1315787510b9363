package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHTTP "streamhub/internal/controller/http"
	"streamhub/internal/repo/persistent"
	"streamhub/internal/usecase"
	"streamhub/pkg/cache"
	"streamhub/pkg/config"
	"streamhub/pkg/database"
	"streamhub/pkg/jwt"
	"streamhub/pkg/logger"
	"streamhub/pkg/middleware"
	"streamhub/pkg/payments"
	"streamhub/pkg/queue"
	"streamhub/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "streamhub/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	movieRepo := persistent.NewMovieRepository(a.db)
	codeRepo := persistent.NewPremiumCodeRepository(a.db)
	adViewRepo := persistent.NewAdViewRepository(a.db)

	// Initialize use cases
	entitlementUseCase := usecase.NewEntitlementUseCase(userRepo, a.cfg.AdminEmail, a.log)
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.log)
	redemptionUseCase := usecase.NewRedemptionUseCase(
		codeRepo,
		entitlementUseCase,
		a.queueClient,
		a.cfg.AdminOverrideCode,
		a.log,
	)
	catalogUseCase := usecase.NewCatalogUseCase(
		movieRepo,
		entitlementUseCase,
		a.s3Client,
		a.redisClient,
		usecase.AdPolicy{
			AdsPerSession:      a.cfg.AdsPerSession,
			AdDurationSeconds:  a.cfg.AdDurationSeconds,
			AdSkipAfterSeconds: a.cfg.AdSkipAfterSecs,
		},
		a.log,
	)
	adsUseCase := usecase.NewAdsUseCase(adViewRepo, a.cfg.AdViewRateGrosz, a.log)
	analyticsUseCase := usecase.NewAnalyticsUseCase(userRepo, movieRepo, adsUseCase, a.redisClient, a.log)
	profileUseCase := usecase.NewProfileUseCase(userRepo, a.queueClient, a.log)
	twoFactorUseCase := usecase.NewTwoFactorUseCase(userRepo, a.cfg.TwoFactorIssuer, a.log)
	billingUseCase := usecase.NewBillingUseCase(
		userRepo,
		entitlementUseCase,
		payments.NewStripeGateway(a.cfg, a.log),
		a.log,
	)

	// Initialize HTTP handlers
	authHandler := apiHTTP.NewAuthHandler(authUseCase, entitlementUseCase)
	movieHandler := apiHTTP.NewMovieHandler(catalogUseCase, a.log)
	adsHandler := apiHTTP.NewAdsHandler(adsUseCase, a.log)
	premiumHandler := apiHTTP.NewPremiumHandler(redemptionUseCase, a.log)
	profileHandler := apiHTTP.NewProfileHandler(profileUseCase, a.log)
	twoFactorHandler := apiHTTP.NewTwoFactorHandler(twoFactorUseCase, a.log)
	billingHandler := apiHTTP.NewBillingHandler(billingUseCase, a.log)
	adminHandler := apiHTTP.NewAdminHandler(catalogUseCase, redemptionUseCase, analyticsUseCase, a.log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/movies", movieHandler.ListMovies)
		api.GET("/movies/:id", movieHandler.GetMovie)
		api.POST("/profile/verify-email/:token", profileHandler.VerifyEmail)
		// Authenticated by the processor signature, not a JWT.
		api.POST("/billing/webhook", billingHandler.Webhook)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		protected.Use(middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
		{
			protected.GET("/me", authHandler.Me)
			protected.POST("/movies/:id/watch", movieHandler.WatchMovie)
			protected.POST("/ads/view", adsHandler.RecordAdView)
			protected.POST("/premium-codes/redeem", premiumHandler.RedeemCode)
			protected.PUT("/profile", profileHandler.UpdateProfile)
			protected.POST("/profile/change-email", profileHandler.ChangeEmail)
			protected.POST("/2fa/setup", twoFactorHandler.Setup)
			protected.POST("/2fa/verify", twoFactorHandler.Verify)
			protected.POST("/2fa/disable", twoFactorHandler.Disable)
			protected.POST("/billing/subscription", billingHandler.CreateSubscription)

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.AdminMiddleware(entitlementUseCase))
			{
				admin.GET("/stats", adminHandler.Stats)
				admin.POST("/movies", adminHandler.CreateMovie)
				admin.PUT("/movies/:id", adminHandler.UpdateMovie)
				admin.DELETE("/movies/:id", adminHandler.DeleteMovie)
				admin.POST("/movies/:id/media/:kind", adminHandler.UploadMedia)
				admin.POST("/premium-codes", adminHandler.GenerateCodes)
				admin.GET("/premium-codes", adminHandler.ListCodes)
			}
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("StreamHub starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Close queue connection
	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing queue: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("StreamHub exited")
	return nil
}
