package config

import "github.com/rshade/footprint/internal/logging"

// ToLoggingConfig converts the logging section for the logging package.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}

// ForceDebug switches to debug console output on stderr, as --debug does.
func (lc *LoggingConfig) ForceDebug() {
	lc.Level = "debug"
	lc.Format = logging.FormatConsole
	lc.File = ""
}
