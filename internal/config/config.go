package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the application configuration, read from CAPREP_* environment
// variables. A .env file in the working directory is loaded before parsing.
type Config struct {
	API  APIConfig  `envPrefix:"API_"`
	Exam ExamConfig `envPrefix:"EXAM_"`
	Data DataConfig `envPrefix:"DATA_"`
}

// APIConfig configures the backend REST client.
type APIConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8000"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// ExamConfig configures the exam runner.
type ExamConfig struct {
	// Budget is the exam time allowance. Lowered in development to exercise
	// the time-pressure warnings without waiting 90 minutes.
	Budget time.Duration `env:"BUDGET" envDefault:"90m"`
}

// DataConfig configures local storage locations.
type DataConfig struct {
	// Dir holds the local database and credential file. Defaults to the
	// XDG data directory.
	Dir string `env:"DIR"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "CAPREP_"}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Sanitize()
	return cfg, nil
}

// Sanitize normalizes parsed values and fills derived defaults.
func (c *Config) Sanitize() {
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.Timeout <= 0 {
		c.API.Timeout = 15 * time.Second
	}
	if c.Exam.Budget <= 0 {
		c.Exam.Budget = 90 * time.Minute
	}
	if c.Data.Dir == "" {
		c.Data.Dir = defaultDataDir()
	}
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "caprep")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "caprep")
}
