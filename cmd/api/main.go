package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/johnquangdev/minutes-agent/internal/adapter/handler"
	"github.com/johnquangdev/minutes-agent/internal/usecase/pipeline"
	"github.com/johnquangdev/minutes-agent/internal/usecase/summarize"
	pkgai "github.com/johnquangdev/minutes-agent/pkg/ai"
	"github.com/johnquangdev/minutes-agent/pkg/config"
	pkgvalidator "github.com/johnquangdev/minutes-agent/pkg/validator"
)

// @title           Minutes Agent API
// @version         1.0
// @description     API for converting raw meeting transcripts into structured Minutes of Meeting
// @host      localhost:8080
// @BasePath  /v1

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
		AllowOrigins: strings.Split(cfg.Server.AllowedOrigins, ","),
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// External summarizer is optional: without credentials the pipeline
	// runs fully rule-based.
	var external summarize.External
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	if groqClient.Available() {
		log.Println("🤖 External summarizer enabled (Groq)")
		external = groqClient
	} else {
		log.Println("📝 No GROQ_API_KEY set; using extractive summarization only")
	}

	// Initialize pipeline and handlers
	log.Println("🔧 Initializing pipeline...")
	pipe := pipeline.New(external, logger)
	minutesHandler := handler.NewMinutesHandler(pipe, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, minutesHandler)
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
