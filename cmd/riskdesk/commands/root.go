// Package commands holds the riskdesk admin CLI. Every command runs against
// the PostgreSQL database named by DATABASE_URL.
package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"riskdesk/internal/platform/config"
	"riskdesk/internal/platform/database"
	"riskdesk/internal/platform/logger"
)

func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "riskdesk",
		Short:         "Administration commands for the riskdesk backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// env is what every command needs: configuration, a logger and an open pool.
type env struct {
	cfg    config.Config
	logger *slog.Logger
	pool   *database.Pool
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if cfg.Database.URL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	pool, err := database.New(ctx, database.CLIConfig(cfg.Database.URL))
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: log, pool: pool}, nil
}

func (e *env) Close() {
	if err := e.pool.Close(); err != nil {
		e.logger.Warn("closing database pool failed", "err", err)
	}
}
