// shared/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// CommonConfig holds configuration fields shared by every component that
// talks to the cache layer.
type CommonConfig struct {
	Environment   string        // "development", "test" or "production"
	RedisAddr     string        // Redis server address (e.g. "localhost:6379")
	RedisPassword string        // Redis password, empty when auth is disabled
	CacheTTL      time.Duration // Expiry applied to cache entries; 0 means no expiry
}

// LeagueServiceConfig holds configuration specific to the league service.
type LeagueServiceConfig struct {
	CommonConfig

	ListenAddr string // Address for the HTTP server to listen on (e.g. ":8080")
	BaseURL    string // Public base URL used to derive shareable fixture links

	MongoDBConnStr            string
	MongoDBDatabase           string
	MongoDBUsersCollection    string
	MongoDBAdminsCollection   string
	MongoDBTeamsCollection    string
	MongoDBFixturesCollection string

	JWTSecret string
	JWTIssuer string
	JWTExpiry time.Duration

	BcryptCost      int
	RequestTimeout  time.Duration // Per-request timeout applied by handlers
	ShutdownTimeout time.Duration
}

// LoadCommonConfig loads shared configuration from environment variables.
// A .env file is honored when present so local runs don't need an exported
// environment.
func LoadCommonConfig() (CommonConfig, error) {
	_ = godotenv.Load()

	cfg := CommonConfig{
		Environment:   getEnv("ENVIRONMENT", "development"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	var err error
	cfg.CacheTTL, err = getDuration("CACHE_TTL", 0)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLeagueServiceConfig loads configuration for the league service.
func LoadLeagueServiceConfig() (*LeagueServiceConfig, error) {
	common, err := LoadCommonConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load common config for league-service: %w", err)
	}

	cfg := &LeagueServiceConfig{
		CommonConfig:              common,
		ListenAddr:                getEnv("LEAGUE_SERVICE_LISTEN_ADDR", ":8080"),
		BaseURL:                   getEnv("BASE_URL", "http://localhost:8080"),
		MongoDBConnStr:            getEnv("MONGODB_CONN_STR", "mongodb://localhost:27017"),
		MongoDBDatabase:           getEnv("MONGODB_DATABASE", "league"),
		MongoDBUsersCollection:    getEnv("MONGODB_USERS_COLLECTION", "users"),
		MongoDBAdminsCollection:   getEnv("MONGODB_ADMINS_COLLECTION", "admins"),
		MongoDBTeamsCollection:    getEnv("MONGODB_TEAMS_COLLECTION", "teams"),
		MongoDBFixturesCollection: getEnv("MONGODB_FIXTURES_COLLECTION", "fixtures"),
		JWTSecret:                 os.Getenv("JWT_SECRET"),
		JWTIssuer:                 getEnv("JWT_ISSUER", "league-api"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	cfg.JWTExpiry, err = getDuration("JWT_EXPIRY", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.BcryptCost, err = getInt("BCRYPT_COST", 10)
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	// A trailing slash would otherwise leak into generated fixture links.
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return cfg, nil
}

func getEnv(envKey, defaultVal string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	return defaultVal
}

// Helper function to parse duration from environment variable
func getDuration(envKey string, defaultVal time.Duration) (time.Duration, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s: %w", envKey, err)
	}
	return d, nil
}

// Helper function to parse int from environment variable
func getInt(envKey string, defaultVal int) (int, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid integer format for %s: %w", envKey, err)
	}
	return i, nil
}
