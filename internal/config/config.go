package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// LogDir, when set, also writes session log files there
	LogDir string

	StorageDriver string `validate:"oneof=memory sqlite postgres"`
	SQLitePath    string `validate:"required_if=StorageDriver sqlite"`
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int           `validate:"min=1"`
	DBMaxIdle     time.Duration `validate:"min=0"`
	DBMaxLife     time.Duration `validate:"min=0"`

	// RNGSeed seeds the encounter coin; 0 means a fresh crypto seed per run
	RNGSeed int64

	CacheSize int           `validate:"min=1"`
	CacheTTL  time.Duration `validate:"min=0"`

	// RosterPath optionally points at a JSON roster registered at startup
	RosterPath string

	// TrustedProxies may set X-Forwarded-For for rate limiting
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:     getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:   getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:   getEnv("SERVICE_NAME", DefaultServiceName),
		Version:       getEnv("VERSION", DefaultVersion),
		LogDir:        getEnv("LOG_DIR", ""),
		StorageDriver: getEnv("STORAGE_DRIVER", StorageMemory),
		SQLitePath:    getEnv("SQLITE_PATH", DefaultSQLitePath),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "scavengers"),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdle:     getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxIdle),
		DBMaxLife:     getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxLife),
		CacheSize:     getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:      getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),
		RosterPath:    getEnv("ROSTER_PATH", ""),
	}

	for _, proxy := range strings.Split(getEnv("TRUSTED_PROXIES", ""), ",") {
		if proxy = strings.TrimSpace(proxy); proxy != "" {
			cfg.TrustedProxies = append(cfg.TrustedProxies, proxy)
		}
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	seedStr := getEnv("RNG_SEED", "0")
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RNG_SEED value: %w", err)
	}
	cfg.RNGSeed = seed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags on Config
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration retrieves a duration environment variable (e.g. "5m"), falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
