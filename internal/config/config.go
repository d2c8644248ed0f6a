// Package config loads the ukechords TOML configuration file.
//
// The file is optional. It is looked up in this order:
//
//  1. the --config flag
//  2. $UKECHORDS_CONFIG
//  3. $XDG_CONFIG_HOME/ukechords/config.toml
//  4. ~/.config/ukechords/config.toml
//
// A file named by the flag or the environment must exist. A missing file in
// the default locations means built-in defaults.
//
// Example:
//
//	definitions = ["~/chords/baritone.txt"]
//	builtin = true
//
//	[display]
//	width = 0
//	spacing = 2
//	marker = "●"
//	strings = ["G", "C", "E", "A"]
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ukechords/pkg/chord"
	"github.com/matzehuels/ukechords/pkg/errors"
	"github.com/matzehuels/ukechords/pkg/grid"
)

const (
	appName  = "ukechords"
	fileName = "config.toml"

	// EnvPath names an explicit config file.
	EnvPath = "UKECHORDS_CONFIG"
)

// Config is the on-disk configuration.
type Config struct {
	// Definitions are extra chord definition files, read after the
	// built-in set. Later entries shadow nothing: lookup takes the first match.
	Definitions []string `toml:"definitions"`

	// Builtin includes the embedded ukulele definitions.
	Builtin bool `toml:"builtin"`

	Display Display `toml:"display"`

	// Path is the file this config was read from, empty for defaults.
	Path string `toml:"-"`
}

// Display controls diagram drawing and grid layout.
type Display struct {
	// Width is the grid width in columns. Zero means the terminal width.
	Width   int      `toml:"width"`
	Spacing int      `toml:"spacing"`
	Marker  string   `toml:"marker"`
	Strings []string `toml:"strings"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Builtin: true,
		Display: Display{
			Width:   0,
			Spacing: grid.DefaultSpacing,
			Marker:  "●",
			Strings: []string{"G", "C", "E", "A"},
		},
	}
}

// =============================================================================
// Paths
// =============================================================================

// DefaultPath returns the XDG location of the config file.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Resolve picks the config file to read. explicit reports whether the user
// named the file, in which case it must exist.
func Resolve(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env, true
	}
	path, err := DefaultPath()
	if err != nil {
		return "", false
	}
	return path, false
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// =============================================================================
// Loading
// =============================================================================

// Load resolves and reads the config file, falling back to defaults when no
// file exists at the default location.
func Load(flagPath string) (*Config, error) {
	path, explicit := Resolve(flagPath)
	if path == "" {
		return Default(), nil
	}
	if !explicit {
		if _, err := os.Stat(path); stderrors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
	}
	return LoadFile(path)
}

// LoadFile reads one TOML file on top of the defaults. Unknown keys are
// rejected. Relative definition paths are resolved against the file's
// directory.
func LoadFile(path string) (*Config, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		var perr *fs.PathError
		if stderrors.As(err, &perr) {
			return nil, errors.Wrap(errors.ErrCodeReadFailed, err, "read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.Path = path
	dir := filepath.Dir(path)
	for i, def := range cfg.Definitions {
		def = ExpandHome(def)
		if def != "" && !filepath.IsAbs(def) {
			def = filepath.Join(dir, def)
		}
		cfg.Definitions[i] = def
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// =============================================================================
// Validation
// =============================================================================

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid field of a config.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks field ranges and that at least one chord source is enabled.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if !c.Builtin && len(c.Definitions) == 0 {
		errs = append(errs, ValidationError{"definitions", "no chord sources: builtin is off and no files are listed"})
	}
	for i, def := range c.Definitions {
		if strings.TrimSpace(def) == "" {
			errs = append(errs, ValidationError{fmt.Sprintf("definitions[%d]", i), "empty path"})
		}
	}
	if c.Display.Width < 0 {
		errs = append(errs, ValidationError{"display.width", fmt.Sprintf("must not be negative, got %d", c.Display.Width)})
	}
	if c.Display.Spacing < 0 {
		errs = append(errs, ValidationError{"display.spacing", fmt.Sprintf("must not be negative, got %d", c.Display.Spacing)})
	}
	if grid.Width(c.Display.Marker) != 1 {
		errs = append(errs, ValidationError{"display.marker", fmt.Sprintf("must be one column wide, got %q", c.Display.Marker)})
	}
	if len(c.Display.Strings) != chord.Strings {
		errs = append(errs, ValidationError{"display.strings", fmt.Sprintf("need %d names, got %d", chord.Strings, len(c.Display.Strings))})
	}

	if len(errs) == 0 {
		return nil
	}
	where := "config"
	if c.Path != "" {
		where = c.Path
	}
	return errors.Wrap(errors.ErrCodeInvalidConfig, errs, "invalid %s", where)
}

// StringNames returns the display string names as a fixed array. Validate
// must have passed.
func (d Display) StringNames() [chord.Strings]string {
	var names [chord.Strings]string
	copy(names[:], d.Strings)
	return names
}
