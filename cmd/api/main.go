package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/talksense/pkg/validator"

	"github.com/johnquangdev/talksense/internal/adapter/handler"
	"github.com/johnquangdev/talksense/internal/infrastructure/cache"
	"github.com/johnquangdev/talksense/internal/infrastructure/storage"
	"github.com/johnquangdev/talksense/internal/usecase/analysis"
	"github.com/johnquangdev/talksense/internal/usecase/patterns"
	pkgai "github.com/johnquangdev/talksense/pkg/ai"
	"github.com/johnquangdev/talksense/pkg/config"
	"github.com/johnquangdev/talksense/pkg/sessionlog"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Session cache: Redis when enabled, in-memory otherwise
	var store cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		log.Println("📦 Using in-memory session cache")
		store = cache.NewMemoryStore()
	}
	sessionCache := cache.NewSessionCache(store, cfg.Analysis.CacheTTL, logger)

	// Object storage for uploaded audio (optional)
	var audioStore analysis.AudioStore
	log.Println("🪣 Connecting to MinIO...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Printf("⚠️  MinIO unavailable, audio will go straight to the transcription engine: %v", err)
	} else {
		audioStore = minioClient
	}

	// Transcription and sentiment clients
	log.Println("🤖 Initializing AI components...")
	asmClient := pkgai.NewAssemblyAIClient(&cfg.Assembly, logger)
	sentimentClient := pkgai.NewSentimentClient(&cfg.Sentiment, logger)

	// Analysis pipeline
	log.Println("🧠 Initializing analysis pipeline...")
	keywords := analysis.LoadKeywords(cfg.Analysis.KeywordsPath, logger)
	enricher := analysis.NewEnricher(keywords, analysis.NewSentimentBridge(sentimentClient), logger)
	analyzer := analysis.NewAnalyzer(keywords)
	sessionLog := sessionlog.NewWriter(cfg.Analysis.SessionLogPath, logger)

	analysisService := analysis.NewService(
		analyzer,
		enricher,
		asmClient,
		audioStore,
		sessionCache,
		sessionLog,
		cfg.Analysis.WorkerCount,
		logger,
	)

	// Pattern miner for the offline report endpoint
	miner := patterns.NewMiner(&keywords)

	// Initialize analysis handler
	log.Println("🚀 Initializing analysis handler...")
	analysisHandler := handler.NewAnalysis(analysisService, miner, logger)
	log.Println("✅ Analysis handler initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, analysisHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
