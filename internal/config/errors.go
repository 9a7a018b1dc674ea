package config

import (
	"errors"
	"fmt"
)

// ErrNoConfigDir indicates the user configuration directory is unknown.
var ErrNoConfigDir = errors.New("no user config directory")

// ParseError reports a configuration file that is not valid TOML or YAML.
// Line and Column are 1-based and zero when the decoder gave no position.
type ParseError struct {
	Path         string
	Line, Column int
	Message      string
	Err          error
}

func (e *ParseError) Error() string {
	where := e.Path
	switch {
	case e.Line > 0 && e.Column > 0:
		where = fmt.Sprintf("%s:%d:%d", e.Path, e.Line, e.Column)
	case e.Line > 0:
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("parse config %s: %s", where, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a setting with an invalid value.
type ValidationError struct {
	// Path is the dotted setting path, e.g. "logging.level".
	Path string
	// Value is the invalid value.
	Value any
	// Message describes what is wrong.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Path, e.Value, e.Message)
}
