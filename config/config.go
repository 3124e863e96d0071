package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default client-side deadlines for the AI collaborator calls
const (
	DefaultAITimeout       = 15 * time.Second
	DefaultAIDomainTimeout = 20 * time.Second
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// AI collaborator (case generation, audience scenes, judging, appeal)
	AIBaseURL       string
	AIAPIKey        string
	AIEnabled       bool
	AITimeout       time.Duration
	AIDomainTimeout time.Duration
	Lang            string
	// Other
	AllowedOrigins []string
	AppURL         string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "db/justicelab.db"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		AIBaseURL:       getEnv("AI_BASE_URL", ""),
		AIAPIKey:        getEnv("AI_API_KEY", ""),
		AIEnabled:       getEnvBool("AI_ENABLED", false),
		AITimeout:       getEnvDurationMs("AI_TIMEOUT_MS", DefaultAITimeout),
		AIDomainTimeout: getEnvDurationMs("AI_DOMAIN_TIMEOUT_MS", DefaultAIDomainTimeout),
		Lang:            getEnv("LANG_CODE", "fr"),
		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AppURL:          getEnv("APP_URL", "http://localhost:8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDurationMs(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	ms, err := strconv.Atoi(value)
	if err != nil || ms <= 0 {
		log.Printf("[WARNING] Invalid value for %s: %q. Using default %s.", key, value, defaultValue)
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}
