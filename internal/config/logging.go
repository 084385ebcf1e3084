package config

import (
	"github.com/rshade/fieldcarbon/internal/logging"
)

// ToLoggingConfig converts the logging section for logging.NewLoggerWithPath.
// Output is left nil so the caller decides where console logs go.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global logging section. Flag
// overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
