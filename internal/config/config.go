package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPgx = "pgx"
	DriverPQ  = "postgres"
)

type Config struct {
	AppEnv string

	HTTPAddr string

	// Postgres
	DatabaseURL     string
	DBDriver        string // pgx | postgres
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnMaxLife   time.Duration
	AutoMigrate     bool
	MigrationsTable string

	// RabbitMQ (optional)
	RabbitURL      string
	RabbitExchange string

	// Redis & Caching (optional)
	RedisURL      string
	CacheTTLEvent time.Duration

	// Rate Limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	BcryptCost int

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	ShutdownTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	cfg.DatabaseURL = firstNonEmpty(
		getEnv("DATABASE_URL", ""),
		buildPostgresURL(
			getEnv("DB_HOST", ""),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", ""),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_NAME", ""),
			getEnv("DB_SSLMODE", "disable"),
		),
	)
	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", DriverPgx))
	cfg.DBMaxOpenConns = getIntEnv("DB_MAX_OPEN_CONNS", 20)
	cfg.DBMaxIdleConns = getIntEnv("DB_MAX_IDLE_CONNS", 5)
	cfg.DBConnMaxLife = getDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	cfg.AutoMigrate = getBool("AUTO_MIGRATE", false)
	cfg.MigrationsTable = getEnv("MIGRATIONS_TABLE", "schema_migrations")

	cfg.RabbitURL = getEnv("RABBIT_URL", "")
	cfg.RabbitExchange = getEnv("RABBIT_EXCHANGE", "eventhub.events")

	cfg.RedisURL = getEnv("REDIS_URL", "")
	cfg.CacheTTLEvent = getDuration("CACHE_TTL_EVENT", 5*time.Minute)

	// 100 reqs / 1 min per IP
	cfg.RLEnabled = getBool("RL_ENABLED", true)
	cfg.RLLimit = getIntEnv("RL_IP_LIMIT", 100)
	cfg.RLWindow = getDuration("RL_IP_WINDOW", 1*time.Minute)

	cfg.BcryptCost = getIntEnv("BCRYPT_COST", 10)

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)
	cfg.ShutdownTimeout = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	// validation
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("missing DATABASE_URL")
	}
	if cfg.DBDriver != DriverPgx && cfg.DBDriver != DriverPQ {
		return nil, fmt.Errorf("invalid DB_DRIVER %q (want %s or %s)", cfg.DBDriver, DriverPgx, DriverPQ)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("invalid BCRYPT_COST %d (want 4..31)", cfg.BcryptCost)
	}

	return cfg, nil
}

// buildPostgresURL builds a postgres URL DSN from parts, escaping credentials.
func buildPostgresURL(host, port, user, pass, db, sslmode string) string {
	if host == "" || user == "" || db == "" {
		return ""
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + strings.TrimPrefix(db, "/"),
	}
	if pass != "" {
		u.User = url.UserPassword(user, pass)
	} else {
		u.User = url.User(user)
	}

	q := url.Values{}
	if sslmode != "" {
		q.Set("sslmode", sslmode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return def
	}
}
