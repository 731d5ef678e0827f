// Package config loads, validates and saves the footprint configuration.
//
// Values are resolved in increasing precedence: built-in defaults, the YAML
// config file, FOOTPRINT_* environment variables, then CLI flags (applied by
// the cli package).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	CurrentSchemaVersion = "1.0.0"
	DefaultReportsDir    = "Reports"
	DefaultReportSuffix  = "report"
	DefaultChartFile     = "carbon_trends.png"
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "console"
)

// Config is the full footprint configuration.
type Config struct {
	SchemaVersion string        `yaml:"schema_version"`
	Output        OutputConfig  `yaml:"output"`
	Logging       LoggingConfig `yaml:"logging"`

	configPath string
}

// OutputConfig controls where reports and the trend chart are written.
type OutputConfig struct {
	// ReportsDir receives one PDF per client.
	ReportsDir string `yaml:"reports_dir"`
	// ReportSuffix is appended to the client name: <name>_<suffix>.pdf.
	ReportSuffix string `yaml:"report_suffix"`
	// ChartFile is the aggregate PNG path, overwritten on every run.
	ChartFile string `yaml:"chart_file"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns a Config holding only built-in defaults. Its config path
// is the default location, or empty if the home directory is unknown.
func Default() *Config {
	path, _ := DefaultConfigPath()
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Output: OutputConfig{
			ReportsDir:   DefaultReportsDir,
			ReportSuffix: DefaultReportSuffix,
			ChartFile:    DefaultChartFile,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		configPath: path,
	}
}

// Load resolves the effective configuration. When path is empty the default
// location is used and a missing file is not an error; an explicit path must
// exist. Environment overrides are applied through lookupEnv.
func Load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if explicit {
		cfg.configPath = path
	}

	if cfg.configPath != "" {
		err := cfg.loadFile(cfg.configPath)
		switch {
		case err == nil:
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, err
		}
	}

	if lookupEnv != nil {
		cfg.ApplyEnv(lookupEnv)
	}
	return cfg, nil
}

// loadFile decodes path on top of the current values. Keys absent from the
// file keep their defaults; unknown keys are rejected.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// ConfigPath returns the file this config was loaded from or will save to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Marshal returns the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}
