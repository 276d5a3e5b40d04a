// Package config loads the application configuration from the environment.
// A .env file next to the binary is loaded first when present; explicit
// environment variables win over it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the resolved application configuration.
type Config struct {
	Addr         string  `validate:"required"`
	DataDir      string  `validate:"required"`
	DBPath       string  `validate:"required"`
	EffectsDir   string  `validate:"required"`
	StaticDir    string
	CameraID     int     `validate:"gte=0"`
	MotionThresh float64 `validate:"gte=0,lte=100"`
	LogLevel     string  `validate:"oneof=debug info warn error"`
}

// Load reads the configuration from the environment, falling back to
// defaults rooted in ~/.huehand.
func Load() (*Config, error) {
	// Missing .env is fine; env vars alone are a valid configuration.
	_ = godotenv.Load()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	dataDir := getEnv("HUEHAND_DATA_DIR", filepath.Join(homeDir, ".huehand"))

	cfg := &Config{
		Addr:       getEnv("HUEHAND_ADDR", ":8080"),
		DataDir:    dataDir,
		DBPath:     getEnv("HUEHAND_DB", filepath.Join(dataDir, "huehand.db")),
		EffectsDir: getEnv("HUEHAND_EFFECTS_DIR", filepath.Join(dataDir, "effects")),
		StaticDir:  os.Getenv("HUEHAND_STATIC_DIR"),
		LogLevel:   getEnv("HUEHAND_LOG_LEVEL", "info"),
	}

	cfg.CameraID, err = getEnvInt("HUEHAND_CAMERA", 0)
	if err != nil {
		return nil, err
	}
	cfg.MotionThresh, err = getEnvFloat("HUEHAND_MOTION_THRESHOLD", 0.5)
	if err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}
