package config

import (
	"os"
	"path/filepath"
	"time"

	"codemaster/internal/errors"
	"codemaster/internal/types"

	"gopkg.in/yaml.v3"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// Config holds all codemaster configuration.
type Config struct {
	// Active display locale (ar, en)
	Locale string `yaml:"locale"`

	// Generation service
	Generation GenerationConfig `yaml:"generation"`

	// Tutor chat behavior
	Chat ChatConfig `yaml:"chat"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Metrics endpoint
	Metrics MetricsConfig `yaml:"metrics"`
}

// GenerationConfig configures the Gemini client.
type GenerationConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each call. Empty means no client-side timeout.
	Timeout string `yaml:"timeout"`

	// Temperature is passed through when > 0.
	Temperature float32 `yaml:"temperature"`

	// Prompt limits for guide generation
	MaxUseCases int `yaml:"max_use_cases"`
	MaxTools    int `yaml:"max_tools"`
}

// ChatConfig configures the tutor conversation.
type ChatConfig struct {
	// SendHistory resends prior turns on every message. Off by default: only
	// the newest message is transmitted and the log is display-only.
	SendHistory bool `yaml:"send_history"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	File       string          `yaml:"file"`
	JSONFormat bool            `yaml:"json_format"`
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address for /metrics. Empty disables it.
	Addr string `yaml:"addr"`
}

// Dir returns the per-user codemaster directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".codemaster"
	}
	return filepath.Join(home, ".codemaster")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Locale: string(types.DefaultLocale),

		Generation: GenerationConfig{
			Model:       DefaultModel,
			MaxUseCases: 3,
			MaxTools:    4,
		},

		Chat: ChatConfig{
			SendHistory: false,
		},

		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(Dir(), "logs", "codemaster.log"),
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to read config")
		}
		// Defaults if the config file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write config")
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// API key from environment (later entries win)
	for _, name := range []string{"API_KEY", "GOOGLE_API_KEY", "GEMINI_API_KEY"} {
		if key := os.Getenv(name); key != "" {
			c.Generation.APIKey = key
		}
	}

	if model := os.Getenv("CODEMASTER_MODEL"); model != "" {
		c.Generation.Model = model
	}
	if loc := os.Getenv("CODEMASTER_LOCALE"); loc != "" {
		c.Locale = loc
	}
}

// GetLocale returns the configured locale, or the default when unparseable.
func (c *Config) GetLocale() types.Locale {
	loc, err := types.ParseLocale(c.Locale)
	if err != nil {
		return types.DefaultLocale
	}
	return loc
}

// GetTimeout returns the generation timeout; zero means none.
func (c *Config) GetTimeout() time.Duration {
	if c.Generation.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Generation.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate validates settings that do not depend on the command being run.
func (c *Config) Validate() error {
	if _, err := types.ParseLocale(c.Locale); err != nil {
		return errors.Mark(errors.Wrap(err, "locale"), errors.ErrInvalidConfig)
	}
	if c.Generation.Timeout != "" {
		d, err := time.ParseDuration(c.Generation.Timeout)
		if err != nil {
			return errors.Mark(errors.Wrapf(err, "generation.timeout %q", c.Generation.Timeout), errors.ErrInvalidConfig)
		}
		if d < 0 {
			return errors.Mark(errors.Newf("generation.timeout must not be negative, got %s", d), errors.ErrInvalidConfig)
		}
	}
	if c.Generation.MaxUseCases <= 0 || c.Generation.MaxTools <= 0 {
		return errors.Mark(errors.New("generation.max_use_cases and generation.max_tools must be positive"), errors.ErrInvalidConfig)
	}
	if c.Generation.Model == "" {
		return errors.Mark(errors.New("generation.model is empty"), errors.ErrInvalidConfig)
	}
	return nil
}

// ValidateForGeneration also requires credentials for the generation service.
func (c *Config) ValidateForGeneration() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Generation.APIKey == "" {
		return errors.WithHint(
			errors.Mark(errors.New("generation API key not configured"), errors.ErrInvalidConfig),
			"set GEMINI_API_KEY, pass --api-key, or add generation.api_key to the config file",
		)
	}
	return nil
}
