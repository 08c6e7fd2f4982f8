package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/taskflow-api/taskflow/internal/auth"
	"github.com/taskflow-api/taskflow/internal/config"
	"github.com/taskflow-api/taskflow/internal/database"
	httpServer "github.com/taskflow-api/taskflow/internal/http"
	"github.com/taskflow-api/taskflow/internal/httputil"
	"github.com/taskflow-api/taskflow/internal/logging"
	"github.com/taskflow-api/taskflow/internal/task"
	"github.com/taskflow-api/taskflow/internal/token"
	"github.com/taskflow-api/taskflow/internal/user"
)

// @title           Taskflow API
// @version         1.0
// @description     A task-management REST API with token authentication and owner-scoped task CRUD.

// @host      localhost:3001
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(!cfg.Server.IsProduction())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	if cfg.Auth.UsingDefaultSecret() {
		logger.Warn("JWT_SECRET is not set, using the insecure default; set it before deploying")
	}

	// Database handle is constructed here and passed down; nothing holds
	// it as process-global state.
	db, err := database.OpenDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	tokenService, err := newTokenService(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	userRepo := user.NewBunRepository(db)
	taskRepo := task.NewBunRepository(db)

	authService := auth.NewService(userRepo, tokenService)
	taskService := task.NewService(taskRepo)

	errorWriter := httputil.NewErrorWriter(logger, cfg.Server.IsProduction())

	authHandler := auth.NewHandler(authService, errorWriter)
	taskHandler := task.NewHandler(taskService, errorWriter)
	authMiddleware := auth.NewMiddleware(tokenService, errorWriter)

	router := httpServer.NewRouter(cfg, authHandler, taskHandler, authMiddleware, errorWriter, logger)

	server := httpServer.NewServer(
		":"+cfg.Server.Port,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		logger,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received signal", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

func newTokenService(cfg *config.Config) (token.Service, error) {
	switch cfg.Auth.Scheme {
	case "paseto":
		return token.NewPasetoService(cfg.Auth.PasetoKey, cfg.Auth.TokenTTL)
	default:
		return token.NewJWTService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL), nil
	}
}
