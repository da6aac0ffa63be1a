package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds runtime settings read from the environment.
type Config struct {
	CanvasWidth  int
	CanvasHeight int
	Catalog      string
	LogLevel     slog.Level
	DefaultFont  string
	LoadWorkers  int
}

// Load reads the configuration from DELUXETEX_* environment variables.
func Load() *Config {
	return &Config{
		CanvasWidth:  getEnvAsInt("DELUXETEX_CANVAS_WIDTH", 1024),
		CanvasHeight: getEnvAsInt("DELUXETEX_CANVAS_HEIGHT", 1024),
		Catalog:      getEnv("DELUXETEX_MODELS", "models.json"),
		LogLevel:     getEnvAsLevel("DELUXETEX_LOG_LEVEL", slog.LevelInfo),
		DefaultFont:  getEnv("DELUXETEX_DEFAULT_FONT", "Arial"),
		LoadWorkers:  getEnvAsInt("DELUXETEX_LOAD_WORKERS", 4),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsLevel(key string, defaultVal slog.Level) slog.Level {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultVal
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return defaultVal
	}
	return level
}
