package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/lime/internal/vfs"
)

// Format is a configuration file format.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatFor returns the format used for path, based on its extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// DefaultPath returns <user config dir>/lime/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return filepath.Join(dir, "lime", "config.toml"), nil
}

// Loader reads configuration files through a vfs.FS.
type Loader struct {
	fs        vfs.FS
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a loader reading from fsys and the process environment.
func NewLoader(fsys vfs.FS) *Loader {
	return &Loader{fs: fsys, lookupEnv: os.LookupEnv}
}

// WithEnv replaces the environment lookup, typically with a map in tests.
func (l *Loader) WithEnv(lookup func(string) (string, bool)) *Loader {
	l.lookupEnv = lookup
	return l
}

// Load reads path, applies environment overrides and validates the result.
// A missing file yields the defaults with overrides applied.
func (l *Loader) Load(path string) (*Config, error) {
	cfg, err := l.LoadFile(path)
	if err != nil {
		return nil, err
	}

	applyEnv(cfg, l.lookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFile reads path on top of the defaults without environment
// overrides or validation. It returns what the file itself says.
func (l *Loader) LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := l.fs.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := decode(path, data, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// decode parses data in the format implied by path into cfg.
func decode(path string, data []byte, cfg *Config) error {
	if FormatFor(path) == FormatYAML {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return &ParseError{Path: path, Message: err.Error(), Err: err}
		}
		return nil
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		perr := &ParseError{Path: path, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

// Save writes cfg to path in the format implied by its extension. The file
// is replaced atomically and its directory created if needed.
func Save(fsys vfs.FS, path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if FormatFor(path) == FormatYAML {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = toml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := vfs.WriteFileAtomic(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// SaveTheme stores theme in the file at path, leaving every other setting
// as the file has it. Environment and command-line overrides are never
// written back.
func SaveTheme(fsys vfs.FS, path, theme string) error {
	cfg, err := NewLoader(fsys).LoadFile(path)
	if err != nil {
		return err
	}
	cfg.Theme = theme
	return Save(fsys, path, cfg)
}
