package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-analyzer/internal/cache"
	"portfolio-analyzer/internal/config"
	"portfolio-analyzer/internal/repository"
	"portfolio-analyzer/internal/service"
	"portfolio-analyzer/internal/transport/rest"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	ctx := context.Background()

	aiConfig := config.DefaultAIConfig()
	if aiConfig.IsEnabled() {
		logger.Info("AI reviewer configured",
			zap.String("analysis_model", aiConfig.Models.EssayAnalysis),
			zap.String("alignment_model", aiConfig.Models.Alignment),
			zap.String("suggestions_model", aiConfig.Models.Suggestions))
	} else {
		logger.Warn("GEMINI_API_KEY not set, essay analysis will use default feedback")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to ping Redis", zap.Error(err))
	}
	logger.Info("connected to Redis")

	// Initialize repositories and caches
	profileRepo := repository.NewProfileRepo(db)
	analysisCache := cache.NewAnalysisCache(rdb)

	// Initialize services
	essayAnalyzer := service.NewEssayAnalyzerService(aiConfig, logger)
	portfolioSvc := service.NewPortfolioService(logger)
	testPlanSvc := service.NewTestPlanService(logger)
	profileSvc := service.NewProfileService(profileRepo)

	router := rest.NewRouter(&rest.Container{
		EssayAnalyzer:    essayAnalyzer,
		PortfolioService: portfolioSvc,
		TestPlanService:  testPlanSvc,
		ProfileService:   profileSvc,
		AnalysisCache:    analysisCache,
		Logger:           logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve failed", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
