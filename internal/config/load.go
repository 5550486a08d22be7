package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/workforce-analytics-backend/internal/platform/envutil"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func defaultConfig() *Config {
	return &Config{
		Env: "development",
		HTTP: HTTPConfig{
			Addr:              ":8000",
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       2 * time.Minute,
			ShutdownTimeout:   15 * time.Second,
			CORSOrigins:       []string{"*"},
		},
		Store: StoreConfig{
			Driver:     DriverPostgres,
			Name:       "workforce_analytics",
			SQLitePath: "workforce.db",
			BatchSize:  100,
		},
		Redis: RedisConfig{
			Prefix:   "wfa",
			CacheTTL: 5 * time.Minute,
		},
		Neo4j: Neo4jConfig{
			User:        "neo4j",
			Timeout:     10 * time.Second,
			MaxPoolSize: 50,
		},
		Otel: OtelConfig{
			ServiceName: "workforce-analytics",
			SampleRatio: 0.1,
		},
		Metrics: MetricsConfig{
			Path: "/metrics",
		},
	}
}

// Load resolves configuration in order: defaults, YAML file, environment.
// A .env file in the working directory is loaded into the environment first
// without overriding variables that are already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaultConfig()

	cfgPath := strings.TrimSpace(os.Getenv("WFA_CONFIG_PATH"))
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, "config", "config.yaml")
			if _, err := os.Stat(p); err == nil {
				cfgPath = p
			}
		}
	}
	if cfgPath != "" {
		b, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Env = envutil.String("LOG_MODE", cfg.Env)

	if port := envutil.String("PORT", ""); port != "" {
		cfg.HTTP.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	cfg.HTTP.Addr = envutil.String("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.CORSOrigins = envutil.List("CORS_ORIGINS", cfg.HTTP.CORSOrigins)
	cfg.HTTP.ShutdownTimeout = time.Duration(envutil.Int("HTTP_SHUTDOWN_TIMEOUT_SECONDS", int(cfg.HTTP.ShutdownTimeout/time.Second))) * time.Second
	cfg.HTTP.ReadHeaderTimeout = time.Duration(envutil.Int("HTTP_READ_HEADER_TIMEOUT_SECONDS", int(cfg.HTTP.ReadHeaderTimeout/time.Second))) * time.Second

	cfg.Store.Driver = strings.ToLower(envutil.String("DB_DRIVER", cfg.Store.Driver))
	cfg.Store.URL = envutil.String("DATABASE_URL", cfg.Store.URL)
	cfg.Store.Name = envutil.String("DB_NAME", cfg.Store.Name)
	cfg.Store.SQLitePath = envutil.String("SQLITE_PATH", cfg.Store.SQLitePath)
	cfg.Store.BatchSize = envutil.Int("DB_BATCH_SIZE", cfg.Store.BatchSize)

	cfg.Redis.Addr = envutil.String("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = envutil.String("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = envutil.Int("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.Prefix = envutil.String("REDIS_PREFIX", cfg.Redis.Prefix)
	cfg.Redis.CacheTTL = time.Duration(envutil.Int("REDIS_CACHE_TTL_SECONDS", int(cfg.Redis.CacheTTL/time.Second))) * time.Second

	cfg.Neo4j.URI = envutil.String("NEO4J_URI", cfg.Neo4j.URI)
	cfg.Neo4j.User = envutil.String("NEO4J_USER", cfg.Neo4j.User)
	cfg.Neo4j.Password = envutil.String("NEO4J_PASSWORD", cfg.Neo4j.Password)
	cfg.Neo4j.Database = envutil.String("NEO4J_DATABASE", cfg.Neo4j.Database)
	cfg.Neo4j.Timeout = time.Duration(envutil.Int("NEO4J_TIMEOUT_SECONDS", int(cfg.Neo4j.Timeout/time.Second))) * time.Second
	cfg.Neo4j.MaxPoolSize = envutil.Int("NEO4J_MAX_POOL_SIZE", cfg.Neo4j.MaxPoolSize)

	cfg.Otel.Enabled = envutil.Bool("OTEL_ENABLED", cfg.Otel.Enabled)
	cfg.Otel.ServiceName = envutil.String("OTEL_SERVICE_NAME", cfg.Otel.ServiceName)
	cfg.Otel.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.Endpoint)
	cfg.Otel.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Otel.Insecure)
	cfg.Otel.SampleRatio = envutil.Float("OTEL_SAMPLER_RATIO", cfg.Otel.SampleRatio)

	cfg.Metrics.Enabled = envutil.Bool("METRICS_ENABLED", cfg.Metrics.Enabled)
	cfg.Metrics.Path = envutil.String("METRICS_PATH", cfg.Metrics.Path)

	if seed := envutil.String("DATASET_SEED", ""); seed != "" {
		if n, err := strconv.ParseUint(seed, 10, 64); err == nil {
			cfg.Dataset.Seed = n
		}
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("http.addr is required")
	}
	switch c.Store.Driver {
	case DriverPostgres:
		if strings.TrimSpace(c.Store.URL) == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	case DriverSQLite:
		if strings.TrimSpace(c.Store.SQLitePath) == "" {
			return errors.New("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported store driver %q", c.Store.Driver)
	}
	if c.Store.BatchSize <= 0 {
		c.Store.BatchSize = 100
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = 15 * time.Second
	}
	if c.Redis.CacheTTL < 0 {
		return errors.New("redis cache ttl must not be negative")
	}
	if c.Otel.SampleRatio < 0 {
		c.Otel.SampleRatio = 0
	}
	if c.Otel.SampleRatio > 1 {
		c.Otel.SampleRatio = 1
	}
	if c.Metrics.Path == "" || !strings.HasPrefix(c.Metrics.Path, "/") {
		c.Metrics.Path = "/metrics"
	}
	if len(c.HTTP.CORSOrigins) == 0 {
		c.HTTP.CORSOrigins = []string{"*"}
	}
	return nil
}
