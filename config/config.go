package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env    string
	Port   string
	DBURL  string
	Secret string

	TokenExpiryHours int
	BcryptCost       int

	CORSOrigin        string
	RateLimitMax      int
	RateLimitWindowMS int

	HistoryDefaultLimit int
	HistoryMaxLimit     int
}

func Load() *Config {
	// Best effort: a missing .env is fine, real env vars still apply.
	_ = godotenv.Load()

	return &Config{
		Env:                 getEnv("ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		DBURL:               mustGetEnv("DB_URL"),
		Secret:              mustGetEnv("JWT_SECRET"),
		TokenExpiryHours:    getEnvAsInt("JWT_EXPIRE_HOURS", 168),
		BcryptCost:          getEnvAsInt("BCRYPT_SALT_ROUNDS", 12),
		CORSOrigin:          getEnv("CORS_ORIGIN", "http://localhost:3000"),
		RateLimitMax:        getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitWindowMS:   getEnvAsInt("RATE_LIMIT_WINDOW_MS", 900000),
		HistoryDefaultLimit: getEnvAsInt("HISTORY_DEFAULT_LIMIT", 20),
		HistoryMaxLimit:     getEnvAsInt("HISTORY_MAX_LIMIT", 100),
	}
}

// IsDevelopment reports whether internal error detail may be exposed to
// clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
