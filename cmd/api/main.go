package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/PavaniTiago/nr01-risk-api/internal/config"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/database"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/nr01-risk-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/nr01-risk-api/internal/interfaces/http/routes"
)

type stateStore interface {
	risk.StateStore
	Close() error
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading configuration: %v", err)
	}

	appLog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("❌ Error creating logger: %v", err)
	}
	defer appLog.Sync()

	// Initialize database
	db, err := database.SetupDatabase(cfg, appLog)
	if err != nil {
		appLog.Fatal("❌ Error setting up database", "error", err)
	}

	// Estado conhecido das probabilidades: Redis quando configurado, memória caso contrário
	var state stateStore
	if cfg.UsesRedis() {
		state, err = cache.NewRedisProbabilityState(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.ProbabilityStateTTL)
		if err != nil {
			appLog.Fatal("❌ Error connecting to Redis", "addr", cfg.RedisAddr, "error", err)
		}
		appLog.Info("📦 Estado de probabilidades no Redis", "addr", cfg.RedisAddr)
	} else {
		state = cache.NewMemoryProbabilityState(cfg.ProbabilityStateTTL)
		appLog.Info("📦 Estado de probabilidades em memória")
	}
	defer state.Close()

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		// Increase concurrency for better performance
		Concurrency: 256 * 1024,
		// Desabilitado modo Prefork: o estado em memória não é compartilhado entre processos
		Prefork: false,
		// Set reasonable body limit
		BodyLimit: 1 * 1024 * 1024, // 1MB
		// Configure server for better performance
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app, cfg, appLog)

	// Setup routes
	routes.SetupRoutes(app, db, cfg, state, appLog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		appLog.Info("🛑 Encerrando servidor...")
		if err := app.ShutdownWithTimeout(15 * time.Second); err != nil {
			appLog.Error("Erro ao encerrar servidor", "error", err)
		}
	}()

	// Start server
	appLog.Info("🚀 Server is running", "port", cfg.Port, "env", cfg.AppEnv)
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLog.Error("❌ Server stopped", "error", err)
	}
}
