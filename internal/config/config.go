package config

import "time"

type HTTPConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	// CORSOrigins is the allow-list; a single "*" admits every origin.
	CORSOrigins []string `yaml:"cors_origins"`
}

type StoreConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver string `yaml:"driver"`
	// URL is the postgres connection string.
	URL        string `yaml:"url"`
	Name       string `yaml:"name"`
	SQLitePath string `yaml:"sqlite_path"`
	BatchSize  int    `yaml:"batch_size"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type Neo4jConfig struct {
	URI         string        `yaml:"uri"`
	User        string        `yaml:"user"`
	Password    string        `yaml:"password"`
	Database    string        `yaml:"database"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxPoolSize int           `yaml:"max_pool_size"`
}

type OtelConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type DatasetConfig struct {
	// Seed fixes the sample generator; 0 draws a fresh seed per process.
	Seed uint64 `yaml:"seed"`
}

type Config struct {
	Env     string        `yaml:"env"`
	HTTP    HTTPConfig    `yaml:"http"`
	Store   StoreConfig   `yaml:"store"`
	Redis   RedisConfig   `yaml:"redis"`
	Neo4j   Neo4jConfig   `yaml:"neo4j"`
	Otel    OtelConfig    `yaml:"otel"`
	Metrics MetricsConfig `yaml:"metrics"`
	Dataset DatasetConfig `yaml:"dataset"`
}
