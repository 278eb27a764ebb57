package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	HTTPPort      string
	GinMode       string
	JWTSecret     string
	TokenTTLHours int
	LogLevel      string
	LogJSON       bool
	LogFile       string
	CORSOrigins   string
}

func Load() *Config {
	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "contacts"),
		DBPassword:    getEnv("DB_PASSWORD", "contacts"),
		DBName:        getEnv("DB_NAME", "contacts"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		JWTSecret:     getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 24),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogJSON:       getEnv("LOG_JSON", "") == "true",
		LogFile:       getEnv("LOG_FILE", ""),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
