package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/rshade/footprint/internal/logging"
)

// supportedSchema is the range of config schema versions this build reads.
const supportedSchema = "^1"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the config for values the rest of the program cannot use.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if err := validateSchemaVersion(c.SchemaVersion); err != nil {
		errs = append(errs, err)
	}

	if strings.TrimSpace(c.Output.ReportsDir) == "" {
		errs = append(errs, errors.New("output.reports_dir must not be empty"))
	}
	if strings.TrimSpace(c.Output.ReportSuffix) == "" {
		errs = append(errs, errors.New("output.report_suffix must not be empty"))
	} else if strings.ContainsAny(c.Output.ReportSuffix, `/\`) {
		errs = append(errs, fmt.Errorf("output.report_suffix %q must not contain path separators", c.Output.ReportSuffix))
	}
	if strings.TrimSpace(c.Output.ChartFile) == "" {
		errs = append(errs, errors.New("output.chart_file must not be empty"))
	} else if !strings.EqualFold(filepath.Ext(c.Output.ChartFile), ".png") {
		errs = append(errs, fmt.Errorf("output.chart_file %q must end in .png", c.Output.ChartFile))
	}

	if !logging.IsValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be %q or %q",
			c.Logging.Format, logging.FormatConsole, logging.FormatJSON))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func validateSchemaVersion(v string) error {
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("schema_version %q is not a semantic version: %w", v, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing supported schema range: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("schema_version %s is not supported (want %s)", v, supportedSchema)
	}
	return nil
}
