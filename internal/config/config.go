package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nikbrunner/marks/internal/logger"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Platform values.
const (
	PlatformAuto  = "auto"
	PlatformMac   = "mac"
	PlatformOther = "other"
)

// Config holds application configuration.
type Config struct {
	Backend        string        `yaml:"backend"`        // "json" | "sqlite"
	DataPath       string        `yaml:"dataPath"`       // bookmarks file; empty => default per backend
	LogLevel       string        `yaml:"logLevel"`       // "debug" | "info" | "warn" | "error"
	LogFile        string        `yaml:"logFile"`        // empty => logging disabled
	PrettyLog      bool          `yaml:"prettyLog"`      // true => console encoder, false => JSON
	ToastDuration  time.Duration `yaml:"toastDuration"`  // how long a notification stays visible
	ImportCategory string        `yaml:"importCategory"` // category for root-level imported links
	Platform       string        `yaml:"platform"`       // "auto" | "mac" | "other"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Backend:        BackendJSON,
		LogLevel:       "info",
		LogFile:        defaultLogFile(),
		PrettyLog:      false,
		ToastDuration:  4 * time.Second,
		ImportCategory: "Imported",
		Platform:       PlatformAuto,
	}
}

// Load reads config from the YAML file at path, then applies environment
// overrides. Creates the file with defaults if it doesn't exist.
func Load(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			// Non-fatal: defaults still apply when the file cannot be written
			_ = Save(path, &cfg)
			return &cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if cfg.Backend == "" {
		cfg.Backend = defaults.Backend
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.ToastDuration == 0 {
		cfg.ToastDuration = defaults.ToastDuration
	}
	if cfg.ImportCategory == "" {
		cfg.ImportCategory = defaults.ImportCategory
	}
	if cfg.Platform == "" {
		cfg.Platform = defaults.Platform
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Backend = getenv("MARKS_BACKEND", cfg.Backend)
	cfg.DataPath = getenv("MARKS_DATA_PATH", cfg.DataPath)
	cfg.LogLevel = getenv("MARKS_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getenv("MARKS_LOG_FILE", cfg.LogFile)
	cfg.Platform = getenv("MARKS_PLATFORM", cfg.Platform)

	pretty, err := getenvBool("MARKS_PRETTY_LOG", cfg.PrettyLog)
	if err != nil {
		return err
	}
	cfg.PrettyLog = pretty

	toast, err := getenvDuration("MARKS_TOAST_DURATION", cfg.ToastDuration)
	if err != nil {
		return err
	}
	cfg.ToastDuration = toast

	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}

	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown logLevel %q", ErrInvalid, c.LogLevel)
	}

	switch c.Platform {
	case PlatformAuto, PlatformMac, PlatformOther:
	default:
		return fmt.Errorf("%w: unknown platform %q", ErrInvalid, c.Platform)
	}

	if c.ToastDuration <= 0 {
		return fmt.Errorf("%w: toastDuration must be positive", ErrInvalid)
	}
	if strings.TrimSpace(c.ImportCategory) == "" {
		return fmt.Errorf("%w: importCategory must not be empty", ErrInvalid)
	}
	return nil
}

// IsMac resolves the platform flag used for shortcut labels.
func (c *Config) IsMac() bool {
	switch c.Platform {
	case PlatformMac:
		return true
	case PlatformOther:
		return false
	default:
		return runtime.GOOS == "darwin"
	}
}

// Save writes config to the YAML file.
// Creates the directory if it doesn't exist.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Dir returns the configuration directory: ~/.config/marks
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "marks"), nil
}

// DefaultPath returns the default config path: ~/.config/marks/config.yaml
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func defaultLogFile() string {
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "marks.log")
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, key, v)
	}
	return b, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a duration", ErrInvalid, key, v)
	}
	return d, nil
}
