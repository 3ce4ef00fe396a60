package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Clipboard backends
const (
	ClipboardAuto   = "auto"
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"
)

// Candidate source encodings
const (
	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift_jis"
)

// DefaultCSVPath is the candidate source used when none is configured
const DefaultCSVPath = "send_mail-ranking_tabulator.csv"

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version       int        `toml:"version"`
	CSVPath       string     `toml:"csv_path"`
	Encoding      string     `toml:"encoding"`
	Delimiter     string     `toml:"delimiter"`
	Clipboard     string     `toml:"clipboard"`
	Watch         bool       `toml:"watch"`
	DesktopNotify bool       `toml:"desktop_notify"`
	LogFile       string     `toml:"log_file"`
	To            PaneConfig `toml:"to"`
	CC            PaneConfig `toml:"cc"`
}

// PaneConfig holds the labels of one pane
type PaneConfig struct {
	Title       string `toml:"title"`
	ButtonLabel string `toml:"button_label"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "recipick", "config.toml"),
	}
}

// NewConfigServiceWithPath creates a config service bound to an explicit file
func NewConfigServiceWithPath(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the values that cannot be corrected silently
func (c *Config) Validate() error {
	switch strings.ToLower(c.Encoding) {
	case EncodingUTF8, "utf8", EncodingShiftJIS, "sjis", "shift-jis":
	default:
		return fmt.Errorf("%w: unsupported encoding %q", ErrInvalidConfig, c.Encoding)
	}

	switch c.Clipboard {
	case ClipboardAuto, ClipboardSystem, ClipboardOSC52:
	default:
		return fmt.Errorf("%w: unknown clipboard backend %q", ErrInvalidConfig, c.Clipboard)
	}

	if c.Delimiter == "" {
		return fmt.Errorf("%w: delimiter must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.CSVPath) == "" {
		return fmt.Errorf("%w: csv_path must not be empty", ErrInvalidConfig)
	}

	return nil
}

// DefaultLogFile returns the log path used when none is configured
func DefaultLogFile() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "recipick.log"
	}
	return filepath.Join(cacheDir, "recipick", "recipick.log")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		CSVPath:   DefaultCSVPath,
		Encoding:  EncodingUTF8,
		Delimiter: ";",
		Clipboard: ClipboardAuto,
		Watch:     true,
		LogFile:   DefaultLogFile(),
		To: PaneConfig{
			Title:       "To",
			ButtonLabel: "Create To",
		},
		CC: PaneConfig{
			Title:       "CC",
			ButtonLabel: "Create CC",
		},
	}
}
