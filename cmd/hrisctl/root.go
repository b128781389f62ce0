package main

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/config"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hrisctl",
		Short:         "Administrative tasks for the HRIS timekeeping service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newCreateAdminCmd())
	return cmd
}

func connectDB(ctx context.Context) (*config.Config, *database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.App.Timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, db, nil
}
