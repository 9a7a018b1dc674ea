package config

import (
	"strings"

	"github.com/dshills/lime/internal/theme"
)

// Config holds the user settings.
type Config struct {
	Theme   string        `toml:"theme" yaml:"theme"`
	Editor  EditorConfig  `toml:"editor" yaml:"editor"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// EditorConfig holds text view settings.
type EditorConfig struct {
	// ScrollMargin is the number of lines kept visible above and below
	// the cursor.
	ScrollMargin int `toml:"scroll_margin" yaml:"scroll_margin"`
}

// LoggingConfig controls the log output. Logs are discarded when File is
// empty because the terminal is in use by the editor.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file,omitempty" yaml:"file,omitempty"`
}

// Log levels accepted by Validate.
var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme:   theme.DefaultName,
		Editor:  EditorConfig{ScrollMargin: 0},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Validate checks every setting and returns the first invalid one as a
// *ValidationError.
func (c *Config) Validate() error {
	if _, ok := theme.Lookup(c.Theme); !ok {
		return &ValidationError{
			Path:    "theme",
			Value:   c.Theme,
			Message: "unknown theme, expected one of: " + strings.Join(theme.Names(), ", "),
		}
	}
	if c.Editor.ScrollMargin < 0 {
		return &ValidationError{
			Path:    "editor.scroll_margin",
			Value:   c.Editor.ScrollMargin,
			Message: "must not be negative",
		}
	}
	level := strings.ToLower(c.Logging.Level)
	for _, l := range logLevels {
		if level == l {
			return nil
		}
	}
	return &ValidationError{
		Path:    "logging.level",
		Value:   c.Logging.Level,
		Message: "expected one of: " + strings.Join(logLevels, ", "),
	}
}
