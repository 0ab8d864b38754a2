package config

import (
	"os"
	"strconv"

	"mostest/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Catalog  CatalogConfig
	Sampling SamplingConfig
	Results  ResultsConfig
	Server   ServerConfig
	Study    StudyConfig
}

// CatalogConfig locates the trial catalog and the optional trial pools.
type CatalogConfig struct {
	Path             string
	AttentionPool    string
	InstructionsPath string
	Locale           string
}

// SamplingConfig holds per-session sampling parameters
type SamplingConfig struct {
	SamplePerGroup int
	NumAttention   int
	// Fractional bounds of the sequence inside which attention checks
	// may land. Policy knobs, not a contract.
	AttentionWindowLo float64
	AttentionWindowHi float64
	// Seed for the session sampler; 0 means time-seeded.
	RandomSeed int64
}

// ResultsConfig holds result persistence settings
type ResultsConfig struct {
	Backend     string // "local" or "postgres"
	Dir         string
	DatabaseURL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port     string
	GinMode  string
	AudioDir string
}

// StudyConfig holds participant-facing study settings
type StudyConfig struct {
	ProlificCompletionCode string
	MaxParticipants        int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Catalog: CatalogConfig{
			Path:             os.Getenv("CATALOG_PATH"),
			AttentionPool:    getEnvOrDefault("ATTENTION_POOL_PATH", ""),
			InstructionsPath: getEnvOrDefault("INSTRUCTIONS_PATH", ""),
			Locale:           getEnvOrDefault("LOCALE", "english"),
		},
		Sampling: SamplingConfig{
			SamplePerGroup:    getEnvIntOrDefault("SAMPLE_PER_GROUP", 4),
			NumAttention:      getEnvIntOrDefault("NUM_ATTENTION", 3),
			AttentionWindowLo: getEnvFloatOrDefault("ATTENTION_WINDOW_LO", 0.2),
			AttentionWindowHi: getEnvFloatOrDefault("ATTENTION_WINDOW_HI", 0.9),
			RandomSeed:        int64(getEnvIntOrDefault("RANDOM_SEED", 0)),
		},
		Results: ResultsConfig{
			Backend:     getEnvOrDefault("RESULTS_BACKEND", "local"),
			Dir:         getEnvOrDefault("RESULTS_DIR", "results"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port:     getEnvOrDefault("PORT", "8080"),
			GinMode:  getEnvOrDefault("GIN_MODE", "debug"),
			AudioDir: getEnvOrDefault("AUDIO_DIR", "."),
		},
		Study: StudyConfig{
			ProlificCompletionCode: getEnvOrDefault("PROLIFIC_COMPLETION_CODE", ""),
			MaxParticipants:        getEnvIntOrDefault("MAX_PARTICIPANTS", 0),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Catalog.Path == "" {
		return errors.ConfigInvalid("CATALOG_PATH is required")
	}
	if cfg.Sampling.SamplePerGroup < 1 {
		return errors.ConfigInvalid("SAMPLE_PER_GROUP must be at least 1")
	}
	if cfg.Sampling.NumAttention < 0 {
		return errors.ConfigInvalid("NUM_ATTENTION must not be negative")
	}
	lo, hi := cfg.Sampling.AttentionWindowLo, cfg.Sampling.AttentionWindowHi
	if lo < 0 || hi > 1 || lo >= hi {
		return errors.ConfigInvalid("attention window bounds must satisfy 0 <= lo < hi <= 1")
	}
	switch cfg.Results.Backend {
	case "local":
		if cfg.Results.Dir == "" {
			return errors.ConfigInvalid("RESULTS_DIR is required for the local backend")
		}
	case "postgres":
		if cfg.Results.DatabaseURL == "" {
			return errors.ConfigInvalid("DATABASE_URL is required for the postgres backend")
		}
	default:
		return errors.ConfigInvalid("RESULTS_BACKEND must be local or postgres")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
