package formatter

import (
	"slices"

	"github.com/grindlemire/viewfmt/internal/errors"
	"github.com/grindlemire/viewfmt/pkg/printer"
)

// IndentationStyle selects the characters used for indentation.
type IndentationStyle string

const (
	IndentSpaces IndentationStyle = "spaces"
	IndentTabs   IndentationStyle = "tabs"
)

// NewlineStyle selects the line endings of formatted files.
type NewlineStyle string

const (
	// NewlineAuto keeps CRLF if the first line break of the input is CRLF.
	NewlineAuto    NewlineStyle = "auto"
	NewlineUnix    NewlineStyle = "unix"
	NewlineWindows NewlineStyle = "windows"
	// NewlineNative uses the line endings of the running platform.
	NewlineNative NewlineStyle = "native"
)

// AttrValueBraceStyle controls when attribute values are wrapped in braces.
type AttrValueBraceStyle string

const (
	// BraceAlways wraps every attribute value in braces.
	BraceAlways AttrValueBraceStyle = "always"
	// BraceAlwaysUnlessLit wraps every value that is not a literal.
	BraceAlwaysUnlessLit AttrValueBraceStyle = "always_unless_lit"
	// BraceWhenRequired leaves literals and plain identifier paths bare.
	BraceWhenRequired AttrValueBraceStyle = "when_required"
	// BracePreserve keeps values as written.
	BracePreserve AttrValueBraceStyle = "preserve"
)

// ClosingTagStyle controls how childless elements are written.
type ClosingTagStyle string

const (
	ClosingPreserve       ClosingTagStyle = "preserve"
	ClosingSelfClosing    ClosingTagStyle = "self_closing"
	ClosingNonSelfClosing ClosingTagStyle = "non_self_closing"
)

// Settings configures a Formatter. The zero value is not valid; start from
// DefaultSettings.
type Settings struct {
	MaxWidth            int                 `mapstructure:"max_width" toml:"max_width"`
	TabSpaces           int                 `mapstructure:"tab_spaces" toml:"tab_spaces"`
	IndentationStyle    IndentationStyle    `mapstructure:"indentation_style" toml:"indentation_style"`
	NewlineStyle        NewlineStyle        `mapstructure:"newline_style" toml:"newline_style"`
	AttrValueBraceStyle AttrValueBraceStyle `mapstructure:"attr_value_brace_style" toml:"attr_value_brace_style"`
	ClosingTagStyle     ClosingTagStyle     `mapstructure:"closing_tag_style" toml:"closing_tag_style"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		MaxWidth:            printer.DefaultMaxWidth,
		TabSpaces:           printer.DefaultIndentWidth,
		IndentationStyle:    IndentSpaces,
		NewlineStyle:        NewlineAuto,
		AttrValueBraceStyle: BraceAlwaysUnlessLit,
		ClosingTagStyle:     ClosingPreserve,
	}
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if s.MaxWidth <= 0 {
		return errors.WithHint(
			errors.Newf("invalid max_width %d", s.MaxWidth),
			"max_width must be a positive number of columns")
	}
	if s.TabSpaces <= 0 {
		return errors.WithHint(
			errors.Newf("invalid tab_spaces %d", s.TabSpaces),
			"tab_spaces must be a positive number of columns")
	}
	if err := oneOf("indentation_style", s.IndentationStyle, IndentSpaces, IndentTabs); err != nil {
		return err
	}
	if err := oneOf("newline_style", s.NewlineStyle, NewlineAuto, NewlineUnix, NewlineWindows, NewlineNative); err != nil {
		return err
	}
	if err := oneOf("attr_value_brace_style", s.AttrValueBraceStyle,
		BraceAlways, BraceAlwaysUnlessLit, BraceWhenRequired, BracePreserve); err != nil {
		return err
	}
	return oneOf("closing_tag_style", s.ClosingTagStyle, ClosingPreserve, ClosingSelfClosing, ClosingNonSelfClosing)
}

func oneOf[T ~string](key string, got T, allowed ...T) error {
	if slices.Contains(allowed, got) {
		return nil
	}
	return errors.WithHintf(
		errors.Newf("invalid %s %q", key, got),
		"%s must be one of %q", key, allowed)
}

// printerOptions converts the settings for one printer pass.
func (s Settings) printerOptions() printer.Options {
	return printer.Options{
		MaxWidth:    s.MaxWidth,
		IndentWidth: s.TabSpaces,
		HardTabs:    s.IndentationStyle == IndentTabs,
	}
}
