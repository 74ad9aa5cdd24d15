package file

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/services"
	"github.com/custodia-labs/htmlreg/internal/postprocessors"
)

// Environment variables that override file settings.
const (
	EnvSourceURL = "HTMLREG_SOURCE_URL"
	EnvOutput    = "HTMLREG_OUTPUT"
	EnvSQLite    = "HTMLREG_SQLITE"
	EnvVerbose   = "HTMLREG_VERBOSE"
	EnvUserAgent = "HTMLREG_USER_AGENT"
)

// Defaults.
const (
	DefaultJSONPath       = "data/elements.json"
	DefaultTimeoutSeconds = 30
	configFileName        = "config.toml"
)

// Config is the full application configuration.
type Config struct {
	Source  SourceConfig `toml:"source"`
	Output  OutputConfig `toml:"output"`
	Build   BuildConfig  `toml:"build"`
	Verbose bool         `toml:"verbose"`
}

// SourceConfig controls where the reference page is fetched from.
type SourceConfig struct {
	URL            string `toml:"url"`
	UserAgent      string `toml:"user_agent,omitempty"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// OutputConfig controls where a build is written.
type OutputConfig struct {
	// JSONPath is the interchange file. Always written.
	JSONPath string `toml:"json_path"`
	// SQLitePath enables the SQLite mirror when non-empty.
	SQLitePath string `toml:"sqlite_path,omitempty"`
}

// BuildConfig controls processing between parse and save.
type BuildConfig struct {
	// Processors names the post-processing stages, run in order.
	Processors []string `toml:"processors"`
}

// Timeout returns the fetch timeout as a duration.
func (c SourceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL:            services.DefaultSourceURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Output: OutputConfig{
			JSONPath: DefaultJSONPath,
		},
		Build: BuildConfig{
			Processors: append([]string(nil), postprocessors.DefaultNames...),
		},
	}
}

// Validate checks the configuration for values the builder cannot use.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Source.URL)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("%w: source.url %q is not an absolute URL", domain.ErrInvalidInput, c.Source.URL)
	}
	if c.Source.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: source.timeout_seconds must not be negative", domain.ErrInvalidInput)
	}
	if c.Output.JSONPath == "" {
		return fmt.Errorf("%w: output.json_path is required", domain.ErrInvalidInput)
	}
	return nil
}

// ConfigStore loads and saves the TOML config file.
type ConfigStore struct {
	filePath  string
	envFiles  []string
	lookupEnv func(string) (string, bool)
}

// NewConfigStore creates a store for the config file in configDir.
// If configDir is empty, defaults to ~/.htmlreg.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".htmlreg")
	}
	return NewConfigStoreAt(filepath.Join(configDir, configFileName)), nil
}

// NewConfigStoreAt creates a store for an explicit config file path.
func NewConfigStoreAt(path string) *ConfigStore {
	return &ConfigStore{
		filePath:  path,
		envFiles:  []string{".env"},
		lookupEnv: os.LookupEnv,
	}
}

// Path returns the config file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// WithEnv replaces the environment lookup and .env files. Used by tests.
func (s *ConfigStore) WithEnv(lookup func(string) (string, bool), envFiles ...string) *ConfigStore {
	s.lookupEnv = lookup
	s.envFiles = envFiles
	return s
}

// Load returns defaults overlaid with the config file and environment.
// A missing config file is not an error.
func (s *ConfigStore) Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(s.filePath)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", s.filePath, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// No config file yet - defaults apply
	default:
		return nil, fmt.Errorf("reading %s: %w", s.filePath, err)
	}

	if err := s.applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to the config file with restricted permissions.
func (s *ConfigStore) Save(cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// applyEnv overlays environment variables. Values from the process
// environment win over values from .env files.
func (s *ConfigStore) applyEnv(cfg *Config) error {
	dotenv := s.readEnvFiles()
	get := func(key string) (string, bool) {
		if v, ok := s.lookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := get(EnvSourceURL); ok && v != "" {
		cfg.Source.URL = v
	}
	if v, ok := get(EnvUserAgent); ok && v != "" {
		cfg.Source.UserAgent = v
	}
	if v, ok := get(EnvOutput); ok && v != "" {
		cfg.Output.JSONPath = v
	}
	if v, ok := get(EnvSQLite); ok {
		cfg.Output.SQLitePath = v
	}
	if v, ok := get(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", domain.ErrInvalidInput, EnvVerbose, v)
		}
		cfg.Verbose = b
	}
	return nil
}

// readEnvFiles merges the .env files that exist; missing files are skipped.
func (s *ConfigStore) readEnvFiles() map[string]string {
	merged := make(map[string]string)
	for _, name := range s.envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		values, err := godotenv.Read(name)
		if err != nil {
			continue
		}
		for k, v := range values {
			if _, seen := merged[k]; !seen {
				merged[k] = v
			}
		}
	}
	return merged
}
