package main

import (
	"context"
	"fmt"
	"os"
	"time"

	coreport "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/database"
	applogger "github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/config"
)

// app holds the components shared by every command
type app struct {
	cfg    *config.Config
	logger *applogger.ZapLogger
	tp     coreport.TimeProvider
	db     *database.Manager
	ledger *ledger.Service
}

// loadConfig reads configuration for the selected environment
func loadConfig() (*config.Config, error) {
	if envName != "" {
		if err := os.Setenv(config.EnvPrefix+"_ENV", envName); err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// newApp connects to the ledger store and wires the ledger service
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	appLogger, err := applogger.NewZapLogger(applogger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		return nil, err
	}

	tp := timeProvider.NewRealTimeProvider(time.UTC)

	dbConfig := database.CreateConfigFromViperConfig(cfg)
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"url":   database.Redact(dbConfig.URL),
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		return nil, err
	}

	metrics := database.NewMetricsCollector(appLogger, tp, dbConfig.SlowQueryThreshold)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger, tp, dbConfig.QueryTimeout, metrics)

	return &app{
		cfg:    cfg,
		logger: appLogger,
		tp:     tp,
		db:     dbManager,
		ledger: ledger.NewService(transactionRepo, tp, appLogger),
	}, nil
}

// Close releases the database connection and flushes the logger
func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("Failed to close database", map[string]any{
			"error": err.Error(),
		})
	}
	_ = a.logger.Flush()
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if cfg.Database.URL == "" {
		missingConfigs = append(missingConfigs, "database.url (or DB_URL environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
