package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth. Empty disables authentication (local use).
	APIKey string

	// Upload limits
	MaxBodyBytes int64

	// Sizer
	SizerWorkers int
	Tokenizer    string

	// Recommendation thresholds
	LowMeanTokens float64
	HighMaxTokens int
	VarianceRatio float64
	SplitShare    float64
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("CHUNKLENS_API_KEY"),

		MaxBodyBytes: envInt64("MAX_BODY_BYTES", 20971520), // 20MB

		SizerWorkers: envInt("SIZER_WORKERS", 4),
		Tokenizer:    envOr("TOKENIZER", "whitespace"),

		LowMeanTokens: envFloat("LOW_MEAN_TOKENS", 400),
		HighMaxTokens: envInt("HIGH_MAX_TOKENS", 1500),
		VarianceRatio: envFloat("VARIANCE_RATIO", 0.5),
		SplitShare:    envFloat("SPLIT_SHARE", 0.5),
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 20971520
	}
	if cfg.SizerWorkers <= 0 {
		cfg.SizerWorkers = 4
	}
	if cfg.LowMeanTokens <= 0 {
		cfg.LowMeanTokens = 400
	}
	if cfg.HighMaxTokens <= 0 {
		cfg.HighMaxTokens = 1500
	}
	if cfg.VarianceRatio <= 0 {
		cfg.VarianceRatio = 0.5
	}
	if cfg.SplitShare <= 0 {
		cfg.SplitShare = 0.5
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %q", c.Port)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
