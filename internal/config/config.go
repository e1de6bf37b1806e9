package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	SearchDepth        int
	Difficulty         string
	ThinkingDelay      time.Duration
	SimGames           int
	SimMatchups        string
	SimWorkers         int
	SessionFinishedTTL time.Duration
	SessionIdleTTL     time.Duration
	CleanupInterval    time.Duration
	LogLevel           string
}

var AppConfig *Config

// LoadEnvFile reads .env from the working directory or its parent.
// A missing file is not an error; the environment is used as is.
func LoadEnvFile() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Debug().Str("component", "config").Msg("no .env file found, using environment variables")
		}
	}
}

func LoadConfig() *Config {
	searchDepth := GetEnvAsInt("SEARCH_DEPTH", 5)
	if searchDepth < 1 {
		log.Warn().Str("component", "config").Int("depth", searchDepth).Msg("search depth below 1, using 1")
		searchDepth = 1
	}

	simWorkers := GetEnvAsInt("SIM_WORKERS", 1)
	if simWorkers < 1 {
		simWorkers = 1
	}

	AppConfig = &Config{
		SearchDepth:        searchDepth,
		Difficulty:         strings.ToLower(GetEnv("AI_DIFFICULTY", "")),
		ThinkingDelay:      time.Duration(GetEnvAsInt("THINKING_DELAY_MS", 500)) * time.Millisecond,
		SimGames:           GetEnvAsInt("SIM_GAMES_PER_MATCHUP", 30),
		SimMatchups:        GetEnv("SIM_MATCHUPS", "3v1,5v1,5v3"),
		SimWorkers:         simWorkers,
		SessionFinishedTTL: time.Duration(GetEnvAsInt("SESSION_FINISHED_TTL_MINUTES", 60)) * time.Minute,
		SessionIdleTTL:     time.Duration(GetEnvAsInt("SESSION_IDLE_TTL_MINUTES", 24*60)) * time.Minute,
		CleanupInterval:    GetEnvAsDuration("SESSION_CLEANUP_INTERVAL", time.Hour),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("component", "config").Str("key", key).Str("value", valueStr).
			Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

// GetEnvAsDuration parses Go duration strings such as "90s" or "1h".
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Warn().Str("component", "config").Str("key", key).Str("value", valueStr).
			Dur("default", defaultValue).Msg("invalid duration value, using default")
		return defaultValue
	}
	return value
}
