package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/usecase/access"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/session"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/config"
)

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Start the HTTP server",
	RunE:         serveCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(serveCmd)
	RootCmd.RunE = serveCmdF
}

func serveCmdF(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Resolve the shared secret before touching the database
	secretHash, err := access.ResolveSecret(cfg.Auth.Password, cfg.Auth.PasswordHash)
	if err != nil {
		return fmt.Errorf("auth.password or auth.passwordHash: %w", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.ledger.EnsureSchema(cmd.Context()); err != nil {
		return err
	}

	sessions := session.NewMemoryStore(cfg.Auth.SessionTTL, cfg.Auth.SessionTTL/2)
	gate := access.NewGate(secretHash, sessions, a.tp, a.logger, cfg.Auth.SessionTTL)

	router := gin.New()
	routes.SetupMiddlewares(router, a.logger)
	routes.SetupRoutes(router, routes.Handlers{
		Ledger: handler.NewLedgerHandler(a.ledger, a.logger),
		Access: handler.NewAccessHandler(gate, a.logger, cfg.Auth.CookieSecure),
		Health: handler.NewHealthHandler(a.db, a.logger),
	}, gate, middleware.NewRateLimiter(cfg.Auth.LoginRatePerMinute))

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": a.db.Driver(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok {
			a.logger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			return err
		}
		return nil
	case <-quit:
	}

	a.logger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	a.logger.Info("Server exited gracefully", map[string]any{
		"open_sessions": sessions.Count(),
	})
	return nil
}
