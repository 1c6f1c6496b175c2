//go:build integration

package infra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/infrastructure/db/postgres"
)

// StartPostgres runs a throwaway postgres container and returns its URL.
func StartPostgres(ctx context.Context) (string, func(), error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "eventhub",
			"POSTGRES_PASSWORD": "eventhub",
			"POSTGRES_DB":       "eventhub",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", nil, err
	}
	terminate := func() { _ = c.Terminate(context.Background()) }

	host, err := c.Host(ctx)
	if err != nil {
		terminate()
		return "", nil, err
	}
	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		return "", nil, err
	}
	url := fmt.Sprintf("postgres://eventhub:eventhub@%s:%s/eventhub?sslmode=disable", host, port.Port())
	return url, terminate, nil
}

// OpenDB opens through the same path as the service and applies migrations.
func OpenDB(ctx context.Context, url string) (*sql.DB, error) {
	db, err := postgres.Open(ctx, postgres.Options{Driver: "pgx", URL: url, PingTimeout: 5 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := postgres.MigrateUp(db, "schema_migrations"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func Reset(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := db.ExecContext(ctx,
		`TRUNCATE TABLE participants, event_categories, events, categories, users RESTART IDENTITY`)
	return err
}
