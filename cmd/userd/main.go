package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/userd/userd/internal/config"
	"github.com/userd/userd/internal/users"
)

// AppState holds all application services
type AppState struct {
	Logger      *zap.Logger
	Config      *config.Config
	UserService users.UserManager
}

func main() {
	// Load configuration
	config.Load()

	// Initialize logger with config
	logger := initLogger()
	logger.Info("Configuration loaded", zap.String("source", "config.Load()"))

	// Initialize application state
	as := newAppState(logger)

	// Create HTTP server
	router := setupRouter(as)

	addr := fmt.Sprintf("%s:%d", config.Http().Host, config.Http().Port)

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Setup graceful shutdown
	done := setupSignalHandler(server, logger)

	// Seed the startup records
	if !config.Seed().Disabled {
		if err := users.SetupDefaults(context.Background(), as.UserService); err != nil {
			logger.Error("Failed to seed default users", zap.Error(err))
			// Continue anyway - an empty store is still serviceable
		} else {
			logger.Info("Default users seeded")
		}
	}

	// Start server
	logger.Info("Starting userd server", zap.String("address", addr))

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}

	<-done
	logger.Info("Server shutdown complete")
}

// newAppState creates and initializes the application state.
// The store is owned here and injected into the service, never a package global.
func newAppState(logger *zap.Logger) *AppState {
	userStore := users.NewInMemoryStore()
	userService := users.NewUserService(userStore)

	return &AppState{
		Logger:      logger,
		Config:      config.Get(),
		UserService: userService,
	}
}

func initLogger() *zap.Logger {
	logConfig := config.Logger()

	var config zap.Config
	if logConfig.Format == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	// Set log level
	switch logConfig.Level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	return logger
}

func setupRouter(as *AppState) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add CORS middleware
	router.Use(cors.Default())

	// Add logging middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Health endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// User CRUD routes
	userHandlers := users.NewUserHandlers(as.UserService, as.Logger)
	userHandlers.RegisterRoutes(&router.RouterGroup)

	return router
}

func setupSignalHandler(server *http.Server, logger *zap.Logger) chan struct{} {
	done := make(chan struct{}, 1)

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signalCh

		logger.Info("Shutting down server...")

		// Create context with timeout for graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Shutdown server
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Error during server shutdown", zap.Error(err))
		}

		done <- struct{}{}
	}()

	return done
}
