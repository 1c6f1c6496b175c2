package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/category"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/participant"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/user"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/config"
	rediscache "github.com/baechuer/real-time-ressys/services/eventhub-service/internal/infrastructure/caching/redis"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/infrastructure/db/postgres"
	rabbitpub "github.com/baechuer/real-time-ressys/services/eventhub-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/infrastructure/security"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/logger"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/handlers"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/router"
)

// sysClock implements the service clocks using system time
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

type Services struct {
	Users        *user.Service
	Events       *event.Service
	Categories   *category.Service
	Participants *participant.Service
}

// App holds all dependencies for the service
type App struct {
	Config   *config.Config
	Server   *http.Server
	DB       *sql.DB
	Services Services

	Publisher *rabbitpub.Publisher
	Cache     *rediscache.Client
}

func main() {
	logger.Init()

	if err := newRootCmd().Execute(); err != nil {
		zlog.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "eventhub",
		Short:         "Event management backend: users, events, categories and RSVPs",
		SilenceUsage:  true,
		SilenceErrors: true,
		// serve when no subcommand is given
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// loadAndOpen is the shared prologue of every subcommand.
func loadAndOpen(ctx context.Context) (*config.Config, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	if ctx == nil {
		ctx = context.Background()
	}
	db, err := postgres.Open(ctx, postgres.Options{
		Driver:          cfg.DBDriver,
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLife,
		PingTimeout:     3 * time.Second,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, db, err := loadAndOpen(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := postgres.MigrateUp(db, cfg.MigrationsTable); err != nil {
			return err
		}
	}

	app, err := NewApp(ctx, cfg, db)
	if err != nil {
		return err
	}
	defer app.Close()

	errCh := make(chan error, 1)
	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server crashed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zlog.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.Server.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// NewApp wires repositories, services and the HTTP stack. RabbitMQ and Redis are
// optional and only dialed when configured.
func NewApp(ctx context.Context, cfg *config.Config, db *sql.DB) (*App, error) {
	app := &App{Config: cfg, DB: db}

	// 1) Infrastructure
	eventRepo := postgres.NewEventRepo(db)
	userRepo := postgres.NewUserRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	participantRepo := postgres.NewParticipantRepo(db)

	var eventPub event.EventPublisher
	var rsvpPub participant.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			return nil, fmt.Errorf("rabbit publisher init: %w", err)
		}
		app.Publisher = p
		eventPub, rsvpPub = p, p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: domain events will not be published")
	}

	var cache event.Cache
	if cfg.RedisURL != "" {
		c, err := rediscache.New(ctx, cfg.RedisURL)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("redis init: %w", err)
		}
		app.Cache = c
		cache = c
		zlog.Info().Msg("redis cache ready")
	}

	// 2) Application
	clock := sysClock{}
	eventSvc := event.New(eventRepo, clock, eventPub, cache, cfg.CacheTTLEvent)
	app.Services = Services{
		Events:       eventSvc,
		Users:        user.New(userRepo, security.NewBcryptHasher(cfg.BcryptCost), eventSvc, participantRepo, clock),
		Categories:   category.New(categoryRepo, cache),
		Participants: participant.New(participantRepo, eventRepo, rsvpPub, clock),
	}

	// 3) Transport
	deps := map[string]handlers.Pinger{"postgres": db}
	if app.Cache != nil {
		deps["redis"] = handlers.PingFunc(app.Cache.Ping)
	}
	h := router.Handlers{
		Users:        handlers.NewUsersHandler(app.Services.Users, clock),
		Events:       handlers.NewEventsHandler(app.Services.Events, clock),
		Categories:   handlers.NewCategoriesHandler(app.Services.Categories),
		Participants: handlers.NewParticipantsHandler(app.Services.Participants),
		Health:       handlers.NewHealthHandler(deps),
	}

	// 4) Server
	app.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(h, cfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
	return app, nil
}

// Close releases the optional clients. The DB belongs to the caller.
func (a *App) Close() {
	if a.Publisher != nil {
		if err := a.Publisher.Close(); err != nil {
			zlog.Warn().Err(err).Msg("rabbit close failed")
		}
	}
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			zlog.Warn().Err(err).Msg("redis close failed")
		}
	}
}
