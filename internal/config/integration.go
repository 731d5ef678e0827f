package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables read by ApplyEnv and GetConfigDir.
const (
	EnvHome         = "FOOTPRINT_HOME"
	EnvReportsDir   = "FOOTPRINT_REPORTS_DIR"
	EnvReportSuffix = "FOOTPRINT_REPORT_SUFFIX"
	EnvChartFile    = "FOOTPRINT_CHART_FILE"
	EnvLogLevel     = "FOOTPRINT_LOG_LEVEL"
	EnvLogFormat    = "FOOTPRINT_LOG_FORMAT"
	EnvLogFile      = "FOOTPRINT_LOG_FILE"
)

// configFileName is the config file inside the config directory.
const configFileName = "config.yaml"

// GetConfigDir returns the footprint configuration directory:
// $FOOTPRINT_HOME when set, otherwise ~/.footprint.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".footprint"), nil
}

// DefaultConfigPath returns the config file path inside GetConfigDir.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// ApplyEnv overrides config values from FOOTPRINT_* variables. Empty values
// are ignored.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	overrides := []struct {
		key    string
		target *string
	}{
		{EnvReportsDir, &c.Output.ReportsDir},
		{EnvReportSuffix, &c.Output.ReportSuffix},
		{EnvChartFile, &c.Output.ChartFile},
		{EnvLogLevel, &c.Logging.Level},
		{EnvLogFormat, &c.Logging.Format},
		{EnvLogFile, &c.Logging.File},
	}

	for _, o := range overrides {
		if v, ok := lookupEnv(o.key); ok && v != "" {
			*o.target = v
		}
	}
}
