package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
)

const (
	CursorBackendPostgres = "postgres"
	CursorBackendRedis    = "redis"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	LogLevel               slog.Level
	TaxRateBasisPoints     int
	DeliveryFeeCents       int64
	DefaultPrepMinutes     int
	DeliveryMinutes        int
	PickupLead             time.Duration
	StaleAfter             time.Duration
	KitchenMediumThreshold int
	KitchenHighThreshold   int
	KafkaHost              string
	KafkaOrderChangedTopic string
	CursorBackend          string
	RedisAddr              string
	JobsStoreIDs           []kernel.UUID
	ReaperSchedule         string
	AssignmentSchedule     string
	ShutdownTimeout        time.Duration
}

// DSN is the lib/pq style connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads .env when present and then the process environment.
// Variables already set in the environment win over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return loadConfig(os.LookupEnv)
}

type envLookup func(string) (string, bool)

// envReader collects every malformed variable so startup reports them all.
type envReader struct {
	lookup envLookup
	errs   []error
}

func loadConfig(lookup envLookup) (Config, error) {
	r := &envReader{lookup: lookup}

	cfg := Config{
		HTTPPort:               r.getString("HTTP_PORT", "8080"),
		DBHost:                 r.getString("DB_HOST", "localhost"),
		DBPort:                 r.getString("DB_PORT", "5432"),
		DBUser:                 r.getString("DB_USER", "postgres"),
		DBPassword:             r.getString("DB_PASSWORD", ""),
		DBName:                 r.getString("DB_NAME", "pizzeria"),
		DBSslMode:              r.getString("DB_SSLMODE", "disable"),
		LogLevel:               r.getLevel("LOG_LEVEL", slog.LevelInfo),
		TaxRateBasisPoints:     r.getInt("TAX_RATE_BPS", 800),
		DeliveryFeeCents:       int64(r.getInt("DELIVERY_FEE_CENTS", 300)),
		DefaultPrepMinutes:     r.getInt("DEFAULT_PREP_MINUTES", 15),
		DeliveryMinutes:        r.getInt("DELIVERY_MINUTES", 20),
		PickupLead:             r.getDuration("PICKUP_LEAD", 15*time.Minute),
		StaleAfter:             r.getDuration("STALE_AFTER", 30*time.Minute),
		KitchenMediumThreshold: r.getInt("KITCHEN_MEDIUM_THRESHOLD", 5),
		KitchenHighThreshold:   r.getInt("KITCHEN_HIGH_THRESHOLD", 10),
		KafkaHost:              r.getString("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: r.getString("KAFKA_ORDER_CHANGED_TOPIC", "order.status.changed"),
		CursorBackend:          strings.ToLower(r.getString("CURSOR_BACKEND", CursorBackendPostgres)),
		RedisAddr:              r.getString("REDIS_ADDR", ""),
		JobsStoreIDs:           r.getUUIDs("JOBS_STORE_IDS"),
		ReaperSchedule:         r.getString("REAPER_SCHEDULE", "@every 1m"),
		AssignmentSchedule:     r.getString("ASSIGNMENT_SCHEDULE", "@every 10s"),
		ShutdownTimeout:        r.getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	r.check(cfg.TaxRateBasisPoints >= 0, "TAX_RATE_BPS must not be negative")
	r.check(cfg.DeliveryFeeCents >= 0, "DELIVERY_FEE_CENTS must not be negative")
	r.check(cfg.DefaultPrepMinutes >= 0, "DEFAULT_PREP_MINUTES must not be negative")
	r.check(cfg.DeliveryMinutes >= 0, "DELIVERY_MINUTES must not be negative")
	r.check(cfg.PickupLead >= 0, "PICKUP_LEAD must not be negative")
	r.check(cfg.StaleAfter > 0, "STALE_AFTER must be positive")
	r.check(cfg.KitchenMediumThreshold > 0 && cfg.KitchenMediumThreshold < cfg.KitchenHighThreshold,
		"KITCHEN_MEDIUM_THRESHOLD must be positive and below KITCHEN_HIGH_THRESHOLD")
	r.check(cfg.ShutdownTimeout > 0, "SHUTDOWN_TIMEOUT must be positive")
	switch cfg.CursorBackend {
	case CursorBackendPostgres:
	case CursorBackendRedis:
		r.check(cfg.RedisAddr != "", "REDIS_ADDR is required when CURSOR_BACKEND is redis")
	default:
		r.fail("CURSOR_BACKEND must be postgres or redis, got %q", cfg.CursorBackend)
	}

	if err := errors.Join(r.errs...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (r *envReader) getString(key, def string) string {
	if v, ok := r.lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (r *envReader) getInt(key string, def int) int {
	v := r.getString(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail("%s: %q is not an integer", key, v)
		return def
	}
	return n
}

func (r *envReader) getDuration(key string, def time.Duration) time.Duration {
	v := r.getString(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail("%s: %q is not a duration", key, v)
		return def
	}
	return d
}

func (r *envReader) getLevel(key string, def slog.Level) slog.Level {
	v := r.getString(key, "")
	if v == "" {
		return def
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		r.fail("%s: %q is not a log level", key, v)
		return def
	}
	return level
}

func (r *envReader) getUUIDs(key string) []kernel.UUID {
	v := r.getString(key, "")
	if v == "" {
		return nil
	}

	var ids []kernel.UUID
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := kernel.UUIDFromString(part)
		if err != nil {
			r.fail("%s: %q is not a UUID", key, part)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (r *envReader) check(ok bool, msg string) {
	if !ok {
		r.errs = append(r.errs, errors.New(msg))
	}
}

func (r *envReader) fail(format string, args ...any) {
	r.errs = append(r.errs, fmt.Errorf(format, args...))
}
