package main

import (
	"context"
	"fmt"

	"staybook/internal/infra/db"
	"staybook/internal/pkg/config"
	"staybook/migrations"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var target int64

	cmd := &cobra.Command{
		Use:   "migrate [up|down|status]",
		Short: "Apply or inspect the embedded schema migrations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}
			return runMigrate(cmd.Context(), direction, target)
		},
	}

	cmd.Flags().Int64Var(&target, "to", 0, "target version (0 means latest for up, previous for down)")
	return cmd
}

func runMigrate(ctx context.Context, direction string, target int64) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	switch direction {
	case "up":
		if target > 0 {
			return goose.UpToContext(ctx, sqlDB, ".", target)
		}
		return goose.UpContext(ctx, sqlDB, ".")
	case "down":
		if target > 0 {
			return goose.DownToContext(ctx, sqlDB, ".", target)
		}
		return goose.DownContext(ctx, sqlDB, ".")
	case "status":
		return goose.StatusContext(ctx, sqlDB, ".")
	default:
		return fmt.Errorf("unknown migrate direction %q", direction)
	}
}
