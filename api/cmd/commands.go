package main

import (
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/infrastructure/db/postgres"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/seed"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := loadAndOpen(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			return postgres.MigrateUp(db, cfg.MigrationsTable)
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last N migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := loadAndOpen(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			if err := postgres.MigrateDown(db, cfg.MigrationsTable, steps); err != nil {
				return err
			}
			zlog.Info().Int("steps", steps).Msg("migrations rolled back")
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(up, down)
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo users, categories, events and RSVPs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, db, err := loadAndOpen(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			app, err := NewApp(ctx, cfg, db)
			if err != nil {
				return err
			}
			defer app.Close()

			res, err := seed.Run(ctx, seed.Deps{
				Users:      app.Services.Users,
				Categories: app.Services.Categories,
				Events:     app.Services.Events,
				RSVPs:      app.Services.Participants,
			}, sysClock{}.Now())
			if err != nil {
				return err
			}
			zlog.Info().
				Ints64("users", res.UserIDs).
				Ints64("categories", res.CategoryIDs).
				Ints64("events", res.EventIDs).
				Msg("seed complete")
			return nil
		},
	}
}
