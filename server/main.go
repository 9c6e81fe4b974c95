package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/api/routes"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/pricing"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/sessions"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/shared/config"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/shared/middleware"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/pkg/logger"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Initialize the pricing oracle. The whole tool exists to front this
	// call, so a missing API key is fatal at boot, not at first request.
	oracleCtx := context.Background()
	oracle, err := pricing.NewGeminiOracle(oracleCtx, pricing.GeminiOracleConfig{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	}, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize pricing oracle", slog.Any("error", err))
		os.Exit(1)
	}
	appLogger.Info("Pricing oracle initialized", slog.String("model", cfg.Gemini.Model))

	// Initialize the in-memory session store and its eviction sweeper
	store := sessions.NewStore(cfg.Session.TTL, appLogger)
	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()
	store.StartSweeper(sweepCtx, cfg.Session.SweepInterval)

	// Setup router
	router := setupRouter(cfg, store, oracle, appLogger)

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("version", cfg.APIVersion),
			slog.String("oracle_model", cfg.Gemini.Model),
			slog.Bool("rate_limiting", cfg.RateLimit.Enabled),
			slog.Bool("rule_enforcement", cfg.Pricing.EnforceRules),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, store *sessions.Store, oracle pricing.Oracle, appLogger *logger.Logger) *gin.Engine {
	engine := gin.New()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(middleware.RequestID(), RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // allow every origin dynamically
		},
		AllowMethods:     []string{"GET", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", middleware.SessionHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global rate limiting middleware (applied to all routes)
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewRateLimiter(&ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			QuoteRequests:   cfg.RateLimit.QuoteRequests,
			HealthRequests:  cfg.RateLimit.HealthRequests,
		})
		engine.Use(ratelimit.Middleware(limiter))
		appLogger.Info("Rate limiting middleware applied to all routes",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("quote_requests", cfg.RateLimit.QuoteRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Initialize and setup routes
	appRouter := routes.NewRouter(cfg, store, oracle, appLogger)
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.WithRequestID(middleware.GetRequestID(c)).LogHTTPRequest(c, duration)
	}
}
