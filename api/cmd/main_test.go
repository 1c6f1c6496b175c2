package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTPAddr:         ":8081",
		CacheTTLEvent:    time.Minute,
		BcryptCost:       4,
		HTTPReadTimeout:  time.Second,
		HTTPWriteTimeout: time.Second,
		HTTPIdleTimeout:  time.Second,
	}
}

func TestNewApp(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	t.Run("should_correctly_wire_dependencies", func(t *testing.T) {
		cfg := testConfig()
		app, err := NewApp(context.Background(), cfg, db)
		require.NoError(t, err)
		defer app.Close()

		assert.Equal(t, cfg.HTTPAddr, app.Server.Addr)
		assert.NotNil(t, app.Server.Handler, "HTTP Handler should be initialized")
		assert.NotNil(t, app.Services.Users)
		assert.NotNil(t, app.Services.Events)
		assert.NotNil(t, app.Services.Categories)
		assert.NotNil(t, app.Services.Participants)
		assert.Nil(t, app.Publisher)
		assert.Nil(t, app.Cache)
	})

	t.Run("readyz_pings_postgres", func(t *testing.T) {
		app, err := NewApp(context.Background(), testConfig(), db)
		require.NoError(t, err)

		mock.ExpectPing()
		rr := httptest.NewRecorder()
		app.Server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"postgres":"up"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNewApp_WithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := testConfig()
	cfg.RedisURL = "redis://" + mr.Addr()

	app, err := NewApp(context.Background(), cfg, db)
	require.NoError(t, err)
	defer app.Close()
	assert.NotNil(t, app.Cache)
}

func TestNewApp_RedisUnreachable(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := testConfig()
	cfg.RedisURL = "redis://127.0.0.1:1"

	_, err = NewApp(context.Background(), cfg, db)
	assert.Error(t, err)
}

func TestRootCmd(t *testing.T) {
	root := newRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])

	down, _, err := root.Find([]string{"migrate", "down"})
	require.NoError(t, err)
	assert.Equal(t, "1", down.Flags().Lookup("steps").DefValue)
}

func TestSysClock_Now(t *testing.T) {
	clock := sysClock{}
	now := clock.Now()

	// Verify the clock uses UTC
	assert.Equal(t, "UTC", now.Location().String())
}
