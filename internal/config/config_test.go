package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*Config) bool
	}{
		{
			name: "loads with all vars set",
			envVars: map[string]string{
				"PORT":                  "9000",
				"ENV":                   "production",
				"DATABASE_URL":          "postgres://localhost/garlicq",
				"EXTRACTOR_TYPE":        "mock",
				"CAPACITY":              "10",
				"RECOGNITION_THRESHOLD": "0.75",
			},
			wantErr: false,
			check: func(c *Config) bool {
				return c.Port == 9000 &&
					c.Environment == "production" &&
					c.DatabaseURL == "postgres://localhost/garlicq" &&
					c.ExtractorType == "mock" &&
					c.Capacity == 10 &&
					c.RecognitionThreshold == 0.75
			},
		},
		{
			name: "uses defaults when optional vars missing",
			envVars: map[string]string{
				"DATABASE_URL": "postgres://localhost/garlicq",
			},
			wantErr: false,
			check: func(c *Config) bool {
				return c.Port == 8000 &&
					c.Environment == "development" &&
					c.ExtractorType == "facenet" &&
					c.Capacity == 50 &&
					c.RecognitionThreshold == 0.6 &&
					c.EmbeddingDim == 512 &&
					c.OllamaModel == "codellama:7b"
			},
		},
		{
			name:    "fails when DATABASE_URL missing",
			envVars: map[string]string{},
			wantErr: true,
			check:   nil,
		},
		{
			name: "fails on non-positive capacity",
			envVars: map[string]string{
				"DATABASE_URL": "postgres://localhost/garlicq",
				"CAPACITY":     "0",
			},
			wantErr: true,
			check:   nil,
		},
		{
			name: "fails on threshold above 1",
			envVars: map[string]string{
				"DATABASE_URL":          "postgres://localhost/garlicq",
				"RECOGNITION_THRESHOLD": "1.5",
			},
			wantErr: true,
			check:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}

			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("Load() config check failed: %+v", cfg)
			}
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	dev := &Config{Environment: "development"}
	prod := &Config{Environment: "production"}

	if !dev.IsDevelopment() || dev.IsProduction() {
		t.Error("development config misclassified")
	}
	if !prod.IsProduction() || prod.IsDevelopment() {
		t.Error("production config misclassified")
	}
}
