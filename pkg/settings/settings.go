// Package settings holds the user preferences that shape generated blocks and
// rendered dividers.
//
// Only [Settings.HorizontalDivider] influences generation, and only through
// the caller: [Settings.MetadataFlags] adds the "horizontal" flag before the
// request reaches the generator. The divider width, style and color are
// rendering concerns, exposed as CSS custom properties by
// [Settings.CSSVariables].
package settings

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/matzehuels/multicolumn/pkg/errors"
	"github.com/matzehuels/multicolumn/pkg/layout"
	"github.com/matzehuels/multicolumn/pkg/width"
)

// Divider styles accepted by [Settings.Validate].
var DividerStyles = []string{"solid", "dashed", "dotted", "double", "none"}

// MaxDividerWidth is the widest divider, in pixels.
const MaxDividerWidth = 20

// CSS custom properties written onto multi-column containers.
const (
	VarDividerWidth = "--multi-column-divider-width"
	VarDividerStyle = "--multi-column-divider-style"
	VarDividerColor = "--multi-column-divider-color"
)

// Settings are the persisted user preferences.
type Settings struct {
	Language          string `toml:"language" json:"language"`
	HorizontalDivider bool   `toml:"horizontal_divider" json:"horizontalDivider"`
	DividerWidth      int    `toml:"divider_width" json:"dividerWidth"`
	DividerStyle      string `toml:"divider_style" json:"dividerStyle"`
	DividerColor      string `toml:"divider_color" json:"dividerColor"`
}

// Defaults returns the settings used when nothing has been saved.
func Defaults() Settings {
	return Settings{
		Language:     "en",
		DividerWidth: 1,
		DividerStyle: "solid",
		DividerColor: "var(--background-modifier-border)",
	}
}

// Validate checks every field.
func (s Settings) Validate() error {
	if _, err := language.Parse(s.Language); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSetting, err, "invalid language %q", s.Language)
	}
	if s.DividerWidth < 0 || s.DividerWidth > MaxDividerWidth {
		return errors.New(errors.ErrCodeInvalidSetting, "divider width must be between 0 and %d, got %d", MaxDividerWidth, s.DividerWidth)
	}
	if !slices.Contains(DividerStyles, s.DividerStyle) {
		return errors.New(errors.ErrCodeInvalidSetting, "divider style must be one of %s, got %q",
			strings.Join(DividerStyles, ", "), s.DividerStyle)
	}
	if strings.TrimSpace(s.DividerColor) == "" || strings.ContainsAny(s.DividerColor, ";{}") {
		return errors.New(errors.ErrCodeInvalidSetting, "invalid divider color %q", s.DividerColor)
	}
	return nil
}

// MetadataFlags returns base as a flag set, with "horizontal" appended when
// the horizontal divider is enabled.
func (s Settings) MetadataFlags(base ...string) layout.Flags {
	flags := layout.NewFlags(base...)
	if s.HorizontalDivider {
		flags = flags.Add(layout.FlagHorizontal)
	}
	return flags
}

// CSSVariables returns the divider styling as CSS custom properties.
func (s Settings) CSSVariables() []width.Declaration {
	return []width.Declaration{
		{Property: VarDividerWidth, Value: strconv.Itoa(s.DividerWidth) + "px"},
		{Property: VarDividerStyle, Value: s.DividerStyle},
		{Property: VarDividerColor, Value: s.DividerColor},
	}
}

// Keys lists the settable keys in display order.
func Keys() []string {
	return []string{"language", "horizontal_divider", "divider_width", "divider_style", "divider_color"}
}

// Get returns the value of key formatted as a string.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "language":
		return s.Language, nil
	case "horizontal_divider":
		return strconv.FormatBool(s.HorizontalDivider), nil
	case "divider_width":
		return strconv.Itoa(s.DividerWidth), nil
	case "divider_style":
		return s.DividerStyle, nil
	case "divider_color":
		return s.DividerColor, nil
	}
	return "", unknownKey(key)
}

// Set parses value into key. The result is validated; on error s is unchanged.
func (s *Settings) Set(key, value string) error {
	next := *s
	switch key {
	case "language":
		next.Language = strings.TrimSpace(value)
	case "horizontal_divider":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidSetting, "horizontal_divider must be true or false, got %q", value)
		}
		next.HorizontalDivider = b
	case "divider_width":
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(value), "px"))
		if err != nil {
			return errors.New(errors.ErrCodeInvalidSetting, "divider_width must be a number of pixels, got %q", value)
		}
		next.DividerWidth = n
	case "divider_style":
		next.DividerStyle = strings.ToLower(strings.TrimSpace(value))
	case "divider_color":
		next.DividerColor = strings.TrimSpace(value)
	default:
		return unknownKey(key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

func unknownKey(key string) error {
	return errors.New(errors.ErrCodeInvalidSetting, "unknown setting %q (valid: %s)", key, strings.Join(Keys(), ", "))
}

// String renders the settings as "key = value" lines.
func (s Settings) String() string {
	var b strings.Builder
	for _, k := range Keys() {
		v, _ := s.Get(k)
		fmt.Fprintf(&b, "%s = %s\n", k, v)
	}
	return b.String()
}
