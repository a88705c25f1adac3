package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Search.MaxExpansions != 0 {
		t.Errorf("Default max_expansions = %d, want 0", cfg.Search.MaxExpansions)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Default log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Metrics.Enabled || cfg.Telemetry.Enabled || cfg.Trace.Enabled {
		t.Error("Sinks must default to disabled")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("Missing file uses defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Expected defaults, got %+v", cfg)
		}
	})

	t.Run("Empty path uses defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Search.ProgressEvery != 10000 {
			t.Errorf("Expected defaults, got %+v", cfg)
		}
	})

	t.Run("File overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		data := "search:\n  max_expansions: 5000\nlog:\n  level: debug\n"
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Search.MaxExpansions != 5000 {
			t.Errorf("max_expansions = %d, want 5000", cfg.Search.MaxExpansions)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("log level = %q, want debug", cfg.Log.Level)
		}
		// Untouched sections keep defaults.
		if cfg.Search.ProgressEvery != 10000 {
			t.Errorf("progress_every = %d, want default 10000", cfg.Search.ProgressEvery)
		}
	})

	t.Run("Environment interpolation", func(t *testing.T) {
		t.Setenv("SWAPSEARCH_TEST_TOKEN", "secret-token")

		path := filepath.Join(t.TempDir(), "cfg.yaml")
		data := "telemetry:\n  enabled: true\n  token: ${SWAPSEARCH_TEST_TOKEN}\n"
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Telemetry.Token != "secret-token" {
			t.Errorf("token = %q, want interpolated value", cfg.Telemetry.Token)
		}
	})

	t.Run("Malformed YAML fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		if err := os.WriteFile(path, []byte("search: ["), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("Expected error for malformed YAML")
		}
	})
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cfg.yaml")

	cfg := DefaultConfig()
	cfg.Search.MaxExpansions = 123
	cfg.Trace.Enabled = true
	cfg.Trace.Directory = "/tmp/traces"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Search.MaxExpansions != 123 || !loaded.Trace.Enabled || loaded.Trace.Directory != "/tmp/traces" {
		t.Errorf("Round trip lost settings: %+v", loaded)
	}
}
