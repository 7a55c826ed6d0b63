package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/sentiment"
)

type Config struct {
	AppEnv            string
	Port              string
	LogLevel          string
	LogFormat         string
	RedisURL          string
	SpikeThreshold    float64
	SuddenChangeDelta float64
	EmotionMode       string
	StreamKeyword     string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		RedisURL:      getEnv("REDIS_URL", ""),
		EmotionMode:   getEnv("EMOTION_MODE", sentiment.StrategyDominant),
		StreamKeyword: getEnv("STREAM_KEYWORD", "tesla"),
	}

	var err error
	if cfg.SpikeThreshold, err = getFraction("SPIKE_THRESHOLD", 0.4); err != nil {
		return nil, err
	}
	if cfg.SuddenChangeDelta, err = getFraction("SUDDEN_CHANGE_DELTA", 0.2); err != nil {
		return nil, err
	}

	if cfg.EmotionMode != sentiment.StrategyDominant && cfg.EmotionMode != sentiment.StrategyDistribution {
		return nil, fmt.Errorf("EMOTION_MODE must be %q or %q, got %q",
			sentiment.StrategyDominant, sentiment.StrategyDistribution, cfg.EmotionMode)
	}
	if cfg.StreamKeyword == "" {
		return nil, fmt.Errorf("STREAM_KEYWORD must not be empty")
	}

	return cfg, nil
}

// getFraction reads an optional float env var constrained to [0,1].
func getFraction(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("%s must be between 0 and 1, got %v", key, v)
	}
	return v, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
