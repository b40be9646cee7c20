package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	LLM       LLMConfig       `yaml:"llm"`
	Import    ImportConfig    `yaml:"import"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	Migrate         bool          `yaml:"migrate"            env:"DATABASE_MIGRATE"            env-default:"true"`
}

// LLMConfig holds settings for the AI collaborator.
type LLMConfig struct {
	APIKey           string        `yaml:"api_key"            env:"LLM_API_KEY"            env-required:"true"`
	Model            string        `yaml:"model"              env:"LLM_MODEL"              env-default:"claude-3-5-sonnet-latest"`
	RequestTimeout   time.Duration `yaml:"request_timeout"    env:"LLM_REQUEST_TIMEOUT"    env-default:"60s"`
	GenerateMaxSize  int           `yaml:"generate_max_size"  env:"LLM_GENERATE_MAX_SIZE"  env-default:"1024"`
	TranslateMaxSize int           `yaml:"translate_max_size" env:"LLM_TRANSLATE_MAX_SIZE" env-default:"512"`
	ExtractMaxSize   int           `yaml:"extract_max_size"   env:"LLM_EXTRACT_MAX_SIZE"   env-default:"4096"`
}

// ImportConfig holds bulk-import pipeline settings.
type ImportConfig struct {
	MaxBatchSize    int `yaml:"max_batch_size"    env:"IMPORT_MAX_BATCH_SIZE"    env-default:"50"`
	MaxCandidateLen int `yaml:"max_candidate_len" env:"IMPORT_MAX_CANDIDATE_LEN" env-default:"100"`
	MaxNotesLen     int `yaml:"max_notes_len"     env:"IMPORT_MAX_NOTES_LEN"     env-default:"5000"`
}

// RateLimitConfig holds per-route request budgets. The API-wide budget is a
// 15-minute window; the generate and translate budgets are per minute because
// those routes spend paid AI calls.
type RateLimitConfig struct {
	APIPerQuarterHour  int           `yaml:"api_per_quarter_hour" env:"RATE_API_PER_QUARTER_HOUR" env-default:"100"`
	GeneratePerMinute  int           `yaml:"generate_per_minute"  env:"RATE_GENERATE_PER_MINUTE"  env-default:"5"`
	TranslatePerMinute int           `yaml:"translate_per_minute" env:"RATE_TRANSLATE_PER_MINUTE" env-default:"30"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"     env:"RATE_CLEANUP_INTERVAL"     env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
