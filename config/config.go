package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBUrl         string
	FrontendURL   string
	SessionSecret string
	// Session lifetime in hours
	SessionTTLHours int
	// Redis Configuration (session table + login rate limiter)
	RedisURL      string
	RedisPassword string
	// Password Policy
	MinPasswordLength int
	BcryptCost        int
	// Candidate mandatory profile fields (comma-separated struct field names).
	// Empty by default: candidates are low-friction, employers are not.
	CandidateMandatoryFields []string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Session Configuration
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Password Policy
		MinPasswordLength: getEnvInt("MIN_PASSWORD_LENGTH", 6),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		// Candidate mandatory fields (none observed in production; keep configurable)
		CandidateMandatoryFields: getEnvList("CANDIDATE_MANDATORY_FIELDS", nil),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60), // 1 minute window
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
	}

	// Basic validation to avoid confusing failures later
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.SessionSecret == "" {
		log.Println("WARNING: SESSION_SECRET is missing. Session tokens cannot be issued.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Sessions and rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList returns a comma-separated environment variable as a slice,
// skipping empty segments.
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
