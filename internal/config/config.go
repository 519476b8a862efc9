package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	Upload    UploadConfig
	Inference InferenceConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	RunMigrations     bool
	ConnectTimeoutSec int32
	ConnMaxLifeSec    int32
}

// RedisConfig holds Redis connection values. The same instance backs the
// readiness probe and the ingestion task queue.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// UploadConfig controls where uploaded resume files land.
type UploadConfig struct {
	Dir string
}

// InferenceConfig points at the external text-understanding endpoint.
type InferenceConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	MaxTokens      int
	TimeoutSeconds int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	// Pool defaults keep the legacy tunables: 5 base connections plus 10
	// overflow, 30s acquire timeout, 30 min recycle, ping before use.
	maxConns := int32(getEnvAsInt("POSTGRES_MAX_CONNS", 15))
	minConns := int32(getEnvAsInt("POSTGRES_MIN_CONNS", 5))
	runMigrations := getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true)
	connectTimeout := int32(getEnvAsInt("POSTGRES_CONNECT_TIMEOUT_SECONDS", 30))
	connMaxLife := int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 1800))

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "skillbridge"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:               os.Getenv("POSTGRES_DSN"),
			MaxConns:          maxConns,
			MinConns:          minConns,
			RunMigrations:     runMigrations,
			ConnectTimeoutSec: connectTimeout,
			ConnMaxLifeSec:    connMaxLife,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 30),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads/pdfs"),
		},
		Inference: InferenceConfig{
			BaseURL:        getEnv("INFERENCE_BASE_URL", "https://api.openai.com/v1"),
			APIKey:         os.Getenv("INFERENCE_API_KEY"),
			Model:          getEnv("INFERENCE_MODEL", "gpt-4o-mini"),
			MaxTokens:      getEnvAsInt("INFERENCE_MAX_TOKENS", 2000),
			TimeoutSeconds: getEnvAsInt("INFERENCE_TIMEOUT_SECONDS", 60),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the inference call budget.
func (i InferenceConfig) Timeout() time.Duration {
	if i.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(i.TimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
