package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file named by AGENTMARKET_ENV (default .env),
// then its .secret sidecar if present. All config is flat env vars
// read through the accessors below.
func Load() error {
	envFile := os.Getenv("AGENTMARKET_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// StoreDriver selects the agent store backend. Defaults to postgres
// when DATABASE_URL is set, sqlite otherwise.
// Valid values: postgres, sqlite
func StoreDriver() string {
	driver := os.Getenv("STORE_DRIVER")
	if driver != "" {
		return driver
	}
	if DatabaseURL() != "" {
		return "postgres"
	}
	return "sqlite"
}

func SQLitePath() string {
	return os.Getenv("SQLITE_PATH")
}

// RedisURL enables the directory page cache when set.
func RedisURL() string {
	return os.Getenv("REDIS_URL")
}

// MarketURL is the API base URL used by marketctl.
func MarketURL() string {
	u := os.Getenv("MARKET_URL")
	if u == "" {
		return "http://localhost:8080"
	}
	return u
}

// WalletAddress is the connected-wallet identity used by marketctl.
// Empty means no wallet is connected.
func WalletAddress() string {
	return os.Getenv("MARKET_WALLET")
}

// RateLimitRPS returns requests per second per IP.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
