package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Search    SearchConfig    `yaml:"search"`
	Log       LogConfig       `yaml:"log"`
	Trace     TraceConfig     `yaml:"trace"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// SearchConfig holds solver limits
type SearchConfig struct {
	MaxExpansions int `yaml:"max_expansions"` // 0 = unbounded
	ProgressEvery int `yaml:"progress_every"` // expansions between progress ticks
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// TraceConfig holds solve-trace persistence settings
type TraceConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Directory string `yaml:"directory"`
}

// MetricsConfig holds Prometheus Pushgateway settings
type MetricsConfig struct {
	Enabled        bool   `yaml:"enabled"`
	PushgatewayURL string `yaml:"pushgateway_url"`
	JobName        string `yaml:"job_name"`
}

// TelemetryConfig holds InfluxDB settings for per-solve telemetry
type TelemetryConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Token   string `yaml:"token"` // supports ${ENV_VAR} interpolation
	Org     string `yaml:"org"`
	Bucket  string `yaml:"bucket"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxExpansions: 0,
			ProgressEvery: 10000,
		},
		Log: LogConfig{
			Level: "info",
		},
		Trace: TraceConfig{
			Enabled:   false,
			Directory: "./traces",
		},
		Metrics: MetricsConfig{
			Enabled:        false,
			PushgatewayURL: "http://localhost:9091",
			JobName:        "swapsearch",
		},
		Telemetry: TelemetryConfig{
			Enabled: false,
			URL:     "http://localhost:8086",
			Org:     "swapsearch",
			Bucket:  "solves",
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the config
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ExampleConfig returns a commented example config
func ExampleConfig() string {
	return `# swapsearch Configuration File
# Priority: CLI flags > config file > defaults
# ${ENV_VAR} references in this file are expanded from the environment

search:
  # Abort a solve after this many expansions (0 = unbounded)
  max_expansions: 0

  # Expansions between progress ticks in interactive mode
  progress_every: 10000

log:
  # Level: debug, info, warn, error
  level: info

trace:
  # Persist a JSON trace of every solve
  enabled: false

  # Directory for trace files
  directory: ./traces

metrics:
  # Push solve metrics to a Prometheus Pushgateway
  enabled: false
  pushgateway_url: http://localhost:9091
  job_name: swapsearch

telemetry:
  # Record per-solve telemetry points to InfluxDB
  enabled: false
  url: http://localhost:8086

  # Token: supports ${ENV_VAR} interpolation
  token: ${INFLUX_TOKEN}
  org: swapsearch
  bucket: solves
`
}
