package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port        int    `envconfig:"PORT" default:"8000"`
	Environment string `envconfig:"ENV" default:"development"`

	// Database
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// Extractor
	ExtractorType string `envconfig:"EXTRACTOR_TYPE" default:"facenet"`
	FaceNetURL    string `envconfig:"FACENET_URL" default:"http://localhost:5005"`

	// Generation
	OllamaURL   string `envconfig:"OLLAMA_BASE_URL" default:"http://localhost:11434"`
	OllamaModel string `envconfig:"OLLAMA_MODEL" default:"codellama:7b"`

	// Recognition
	Capacity             int     `envconfig:"CAPACITY" default:"50"`
	RecognitionThreshold float64 `envconfig:"RECOGNITION_THRESHOLD" default:"0.6"`
	EmbeddingDim         int     `envconfig:"EMBEDDING_DIM" default:"512"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("load config: CAPACITY must be positive, got %d", cfg.Capacity)
	}
	if cfg.RecognitionThreshold < 0 || cfg.RecognitionThreshold > 1 {
		return nil, fmt.Errorf("load config: RECOGNITION_THRESHOLD must be within [0, 1], got %g", cfg.RecognitionThreshold)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
