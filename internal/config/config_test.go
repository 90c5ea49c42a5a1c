package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("timeout = %v", cfg.API.Timeout)
	}
	if cfg.Exam.Budget != 90*time.Minute {
		t.Errorf("budget = %v", cfg.Exam.Budget)
	}
	if cfg.Data.Dir == "" {
		t.Error("data dir not defaulted")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CAPREP_API_BASE_URL", "https://api.example.com/")
	t.Setenv("CAPREP_API_TIMEOUT", "3s")
	t.Setenv("CAPREP_EXAM_BUDGET", "10m")
	t.Setenv("CAPREP_DATA_DIR", "/tmp/caprep-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.com" {
		t.Errorf("base url = %q, want trailing slash trimmed", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("timeout = %v", cfg.API.Timeout)
	}
	if cfg.Exam.Budget != 10*time.Minute {
		t.Errorf("budget = %v", cfg.Exam.Budget)
	}
	if cfg.Data.Dir != "/tmp/caprep-test" {
		t.Errorf("data dir = %q", cfg.Data.Dir)
	}
}

func TestSanitizeClampsNonPositive(t *testing.T) {
	cfg := &Config{}
	cfg.API.BaseURL = " http://localhost:8000/ "
	cfg.Sanitize()

	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout <= 0 || cfg.Exam.Budget <= 0 {
		t.Error("expected positive defaults after Sanitize")
	}
}
