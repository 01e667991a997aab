package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pay-chain.backend/internal/config"
	"pay-chain.backend/internal/domain/entities"
	"pay-chain.backend/internal/infrastructure/blockchain"
	"pay-chain.backend/internal/infrastructure/jobs"
	"pay-chain.backend/internal/infrastructure/repositories"
	"pay-chain.backend/internal/infrastructure/salesdata"
	"pay-chain.backend/internal/interfaces/http/handlers"
	"pay-chain.backend/internal/interfaces/http/middleware"
	"pay-chain.backend/internal/metrics"
	"pay-chain.backend/internal/usecases"
	"pay-chain.backend/pkg/jwt"
	"pay-chain.backend/pkg/logger"
	"pay-chain.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (loan endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	if err := db.AutoMigrate(&entities.LoanRequest{}); err != nil {
		log.Printf("⚠️ Migration failed: %v", err)
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiry)

	// Initialize data sources and repositories
	salesSource := salesdata.NewGenerator()
	profileCache := repositories.NewProfileCache()
	loanRequestRepo := repositories.NewLoanRequestRepository(db)

	// Initialize usecases
	metricsCalculator := usecases.NewSalesMetricsCalculator()
	trustEngine := usecases.NewTrustScoreEngine(metricsCalculator)
	eligibilityValidator := usecases.NewEligibilityValidator()
	loanLimits := usecases.NewLoanLimitCalculator()
	recommender := usecases.NewRecommendationEngine()
	profileUsecase := usecases.NewMerchantProfileUsecase(
		salesSource,
		profileCache,
		metricsCalculator,
		trustEngine,
		eligibilityValidator,
		loanLimits,
		recommender,
		cfg.Profile.CacheTTL,
	)
	loanRequestUsecase := usecases.NewLoanRequestUsecase(loanRequestRepo, profileUsecase)

	// Initialize on-chain contract client (optional, status endpoint degrades)
	contractClient, err := blockchain.NewLoanContractClient(cfg.Blockchain.PolygonAmoyRPC, cfg.Blockchain.LoanContractAddress)
	if err != nil {
		log.Printf("⚠️ Loan contract unavailable: %v (contract status endpoint degraded)", err)
		contractClient = nil
	} else {
		defer contractClient.Close()
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(jwtService)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	loanRequestHandler := handlers.NewLoanRequestHandler(loanRequestUsecase)
	contractHandler := handlers.NewContractHandler(contractClient)

	// Wallet session auth middleware
	walletAuth := middleware.WalletAuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewLoanRequestExpiryJob(loanRequestRepo, cfg.Loans.RequestMaxAge)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(metrics.Middleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", metrics.Handler())
	registerAPIV1Routes(r, routeDeps{
		authHandler:        authHandler,
		profileHandler:     profileHandler,
		loanRequestHandler: loanRequestHandler,
		contractHandler:    contractHandler,
		walletAuth:         walletAuth,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Solvi Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
