// Package config loads the YAML configuration of the Lite Data client.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"litedata/internal/errors"
	"litedata/internal/fields"
	"litedata/pkg/types"

	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	EnvConfig = "LITEDATA_CONFIG"
	EnvAPIURL = "LITEDATA_API_URL"
	EnvDebug  = "LITEDATA_DEBUG"
)

// Palette holds the colors of one display mode. Values are anything lipgloss
// and fyne accept as a hex color.
type Palette struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Background string `yaml:"background"`
	Error      string `yaml:"error"`
	Success    string `yaml:"success"`
	Border     string `yaml:"border"`
}

// Config represents the application configuration structure.
type Config struct {
	API struct {
		BaseURL string        `yaml:"base_url"` // Root of the data service
		Timeout time.Duration `yaml:"timeout"`  // Per-request timeout, 0 = none
	} `yaml:"api"`
	Export struct {
		OutputDir     string        `yaml:"output_dir"`     // Where generated files are saved
		DefaultFormat string        `yaml:"default_format"` // Preselected file format
		DefaultRows   int           `yaml:"default_rows"`   // Preselected row count
		MaxRows       int           `yaml:"max_rows"`       // Upper row bound, 0 = unbounded
		NoticeTTL     time.Duration `yaml:"notice_ttl"`     // How long notices stay visible
	} `yaml:"export"`
	Fields struct {
		NamePolicy string `yaml:"name_policy"` // follow, independent or always
	} `yaml:"fields"`
	Prefs struct {
		Path  string `yaml:"path"`  // Preference file
		Watch bool   `yaml:"watch"` // Follow external edits of the preference file
	} `yaml:"prefs"`
	Theme struct {
		Light Palette `yaml:"light"`
		Dark  Palette `yaml:"dark"`
	} `yaml:"theme"`
	Log struct {
		Debug bool   `yaml:"debug"`
		JSON  bool   `yaml:"json"`
		File  string `yaml:"file"` // Log file used by the interactive front ends
	} `yaml:"log"`
}

// Dir returns the per-user configuration directory.
func Dir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "litedata")
	}
	return filepath.Join(".", ".litedata")
}

// DefaultPath returns the config file location, honoring LITEDATA_CONFIG.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return ExpandPath(p)
	}
	return filepath.Join(Dir(), "config.yaml")
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(DefaultPath())
}

// LoadConfigFile loads configuration from a specific file path. If the file
// doesn't exist, the defaults are returned. Unset keys keep their defaults.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// ApplyEnv applies LITEDATA_API_URL and LITEDATA_DEBUG.
func (c *Config) ApplyEnv() {
	if u := os.Getenv(EnvAPIURL); u != "" {
		c.API.BaseURL = u
	}
	switch strings.ToLower(os.Getenv(EnvDebug)) {
	case "1", "true", "yes", "on":
		c.Log.Debug = true
	}
}

func defaultConfig() *Config {
	cfg := &Config{}

	cfg.API.BaseURL = "http://localhost:5000"

	cfg.Export.OutputDir = "."
	cfg.Export.DefaultFormat = string(types.DefaultFileFormat)
	cfg.Export.DefaultRows = 10
	cfg.Export.MaxRows = 1000
	cfg.Export.NoticeTTL = 6 * time.Second

	cfg.Fields.NamePolicy = "follow"

	cfg.Prefs.Path = filepath.Join(Dir(), "prefs.yaml")
	cfg.Prefs.Watch = true

	cfg.Theme.Light = Palette{
		Primary:    "#3c6e71",
		Secondary:  "#284b63",
		Text:       "#353535",
		Muted:      "#284b63",
		Background: "#ffffff",
		Error:      "#d32f2f",
		Success:    "#2e7d32",
		Border:     "#d9d9d9",
	}
	cfg.Theme.Dark = Palette{
		Primary:    "#4d8a8d",
		Secondary:  "#3a6b85",
		Text:       "#ffffff",
		Muted:      "#d9d9d9",
		Background: "#353535",
		Error:      "#ef5350",
		Success:    "#66bb6a",
		Border:     "#424242",
	}

	cfg.Log.File = filepath.Join(Dir(), "litedata.log")
	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewFileError("failed to create config directory", dir, errors.FileCreateFailed, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewFileError("failed to write config file", path, errors.FileCreateFailed, err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.NewConfigError("base url must be an absolute http(s) URL", "api.base_url", errors.InvalidConfig, err)
	}
	if c.API.Timeout < 0 {
		return errors.NewConfigError("timeout must be >= 0", "api.timeout", errors.InvalidConfig, nil)
	}

	if _, err := types.ParseFileFormat(c.Export.DefaultFormat); err != nil {
		return errors.NewConfigError("invalid default format", "export.default_format", errors.InvalidConfig, err)
	}
	if c.Export.MaxRows < 0 {
		return errors.NewConfigError("max rows must be >= 0", "export.max_rows", errors.InvalidConfig, nil)
	}
	if c.Export.DefaultRows < 1 || (c.Export.MaxRows > 0 && c.Export.DefaultRows > c.Export.MaxRows) {
		return errors.NewConfigError("default rows out of range", "export.default_rows", errors.InvalidConfig, nil)
	}
	if c.Export.NoticeTTL < 0 {
		return errors.NewConfigError("notice ttl must be >= 0", "export.notice_ttl", errors.InvalidConfig, nil)
	}

	if _, ok := fields.ParseNamePolicy(c.Fields.NamePolicy); !ok {
		return errors.NewConfigError("invalid name policy "+c.Fields.NamePolicy, "fields.name_policy", errors.InvalidConfig, nil)
	}

	if c.Prefs.Path == "" {
		return errors.NewConfigError("preference path cannot be empty", "prefs.path", errors.InvalidConfig, nil)
	}
	return nil
}

// NamePolicy returns the parsed fields.name_policy.
func (c *Config) NamePolicy() fields.NamePolicy {
	p, _ := fields.ParseNamePolicy(c.Fields.NamePolicy)
	return p
}

// DefaultFormat returns the parsed export.default_format, falling back to csv.
func (c *Config) DefaultFormat() types.FileFormat {
	f, err := types.ParseFileFormat(c.Export.DefaultFormat)
	if err != nil {
		return types.DefaultFileFormat
	}
	return f
}

// Palette returns the colors for mode.
func (c *Config) Palette(mode types.DisplayMode) Palette {
	if mode == types.Dark {
		return c.Theme.Dark
	}
	return c.Theme.Light
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.API.BaseURL = "http://127.0.0.1:0"
	cfg.Export.OutputDir = os.TempDir()
	cfg.Export.NoticeTTL = time.Second
	cfg.Prefs.Path = filepath.Join(os.TempDir(), "litedata-test-prefs.yaml")
	cfg.Prefs.Watch = false
	cfg.Log.File = ""
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
