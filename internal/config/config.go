// Package config loads formatter settings from viewfmt.toml, VIEWFMT_*
// environment variables and command line flags.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/grindlemire/viewfmt/internal/errors"
	"github.com/grindlemire/viewfmt/internal/log"
	"github.com/grindlemire/viewfmt/pkg/formatter"
)

const (
	// FileName is the name of the project configuration file.
	FileName = "viewfmt.toml"
	// EnvPrefix prefixes environment overrides: VIEWFMT_MAX_WIDTH=80.
	EnvPrefix = "VIEWFMT"
)

// Setting keys, shared by the file, the environment and flags.
const (
	KeyMaxWidth            = "max_width"
	KeyTabSpaces           = "tab_spaces"
	KeyIndentationStyle    = "indentation_style"
	KeyNewlineStyle        = "newline_style"
	KeyAttrValueBraceStyle = "attr_value_brace_style"
	KeyClosingTagStyle     = "closing_tag_style"
)

// Keys lists every setting key in file order.
var Keys = []string{
	KeyMaxWidth,
	KeyTabSpaces,
	KeyIndentationStyle,
	KeyNewlineStyle,
	KeyAttrValueBraceStyle,
	KeyClosingTagStyle,
}

// FlagName returns the command line flag for a setting key: max_width
// becomes --max-width.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	d := formatter.DefaultSettings()
	v.SetDefault(KeyMaxWidth, d.MaxWidth)
	v.SetDefault(KeyTabSpaces, d.TabSpaces)
	v.SetDefault(KeyIndentationStyle, string(d.IndentationStyle))
	v.SetDefault(KeyNewlineStyle, string(d.NewlineStyle))
	v.SetDefault(KeyAttrValueBraceStyle, string(d.AttrValueBraceStyle))
	v.SetDefault(KeyClosingTagStyle, string(d.ClosingTagStyle))
}

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit configuration file. When empty, FileName is
	// searched for from Dir upwards.
	File string
	// Dir starts the search (default: working directory).
	Dir string
	// Flags are bound for every key whose flag exists. A flag that was not
	// set contributes only its default, which ranks below the file and
	// the environment.
	Flags *pflag.FlagSet
}

// Result is the outcome of Load.
type Result struct {
	Settings formatter.Settings
	// File is the configuration file that was read, or "".
	File string
}

// Load resolves settings with precedence defaults < file < environment < flags.
func Load(opts Options) (Result, error) {
	logger := log.Named("config")

	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	SetDefaults(v)

	file := opts.File
	if file == "" {
		file = FindFile(opts.Dir)
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Result{}, errors.WithHint(
				errors.Wrapf(err, "reading %s", file),
				"check the file is valid TOML")
		}
		logger.Debugw("loaded configuration", "file", file)

		for _, key := range v.AllKeys() {
			if !slices.Contains(Keys, key) {
				logger.Warnw("unknown configuration key", "file", file, "key", key)
			}
		}
	}

	if opts.Flags != nil {
		for _, key := range Keys {
			if f := opts.Flags.Lookup(FlagName(key)); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Result{}, errors.Wrapf(err, "binding flag --%s", f.Name)
				}
			}
		}
	}

	var settings formatter.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Result{}, errors.Wrap(err, "decoding settings")
	}

	if err := settings.Validate(); err != nil {
		if file != "" {
			return Result{}, errors.WithDetailf(err, "configuration file: %s", file)
		}
		return Result{}, err
	}

	return Result{Settings: settings, File: file}, nil
}

// FindFile searches for FileName by walking up from dir. It returns "" if
// none is found.
func FindFile(dir string) string {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = wd
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
