package tint

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Theme provides a set of incremental styles for consistent UI
// appearance. Drawing code patches a theme style over whatever is already
// on a cell, so themes compose with layer-local overrides.
type Theme struct {
	Base   Style // default text style
	Muted  Style // de-emphasized text
	Accent Style // highlighted/important text
	Error  Style // error messages
	Border Style // border/divider style
}

// Pre-defined themes

// ThemeDark is a dark theme with light text on dark background.
var ThemeDark = Theme{
	Base:   Style{}.Foreground(White),
	Muted:  Style{}.Foreground(DarkGray),
	Accent: Style{}.Foreground(LightCyan),
	Error:  Style{}.Foreground(LightRed),
	Border: Style{}.Foreground(DarkGray),
}

// ThemeLight is a light theme with dark text on light background.
var ThemeLight = Theme{
	Base:   Style{}.Foreground(Black),
	Muted:  Style{}.Foreground(DarkGray),
	Accent: Style{}.Foreground(Blue),
	Error:  Style{}.Foreground(Red),
	Border: Style{}.Foreground(White),
}

// ThemeMonochrome is a minimal theme using only attributes.
var ThemeMonochrome = Theme{
	Base:   Style{},
	Muted:  Style{}.Dim(),
	Accent: Style{}.Bold(),
	Error:  Style{}.Bold().Underlined(),
	Border: Style{}.Dim(),
}

// styleSpec is the TOML shape of a single style. Colors use the ParseColor
// text forms; modifier lists use the flag names from Modifier.String.
type styleSpec struct {
	Fg  string   `toml:"fg"`
	Bg  string   `toml:"bg"`
	Add []string `toml:"add"`
	Sub []string `toml:"sub"`
}

func (spec styleSpec) style() (Style, error) {
	var s Style
	if spec.Fg != "" {
		c, err := ParseColor(spec.Fg)
		if err != nil {
			return Style{}, err
		}
		s = s.Foreground(c)
	}
	if spec.Bg != "" {
		c, err := ParseColor(spec.Bg)
		if err != nil {
			return Style{}, err
		}
		s = s.Background(c)
	}
	for _, name := range spec.Add {
		m, err := ParseModifier(name)
		if err != nil {
			return Style{}, err
		}
		s = s.With(m)
	}
	for _, name := range spec.Sub {
		m, err := ParseModifier(name)
		if err != nil {
			return Style{}, err
		}
		s = s.Without(m)
	}
	return s, nil
}

type themeSpec struct {
	Base   styleSpec `toml:"base"`
	Muted  styleSpec `toml:"muted"`
	Accent styleSpec `toml:"accent"`
	Error  styleSpec `toml:"error"`
	Border styleSpec `toml:"border"`
}

// LoadTheme parses a theme from TOML data. Styles not present in the data
// stay zero, meaning they change nothing when applied.
func LoadTheme(data []byte) (Theme, error) {
	var spec themeSpec
	if err := toml.Unmarshal(data, &spec); err != nil {
		return Theme{}, fmt.Errorf("tint: bad theme: %w", err)
	}

	var theme Theme
	var err error
	if theme.Base, err = spec.Base.style(); err != nil {
		return Theme{}, fmt.Errorf("tint: theme base: %w", err)
	}
	if theme.Muted, err = spec.Muted.style(); err != nil {
		return Theme{}, fmt.Errorf("tint: theme muted: %w", err)
	}
	if theme.Accent, err = spec.Accent.style(); err != nil {
		return Theme{}, fmt.Errorf("tint: theme accent: %w", err)
	}
	if theme.Error, err = spec.Error.style(); err != nil {
		return Theme{}, fmt.Errorf("tint: theme error: %w", err)
	}
	if theme.Border, err = spec.Border.style(); err != nil {
		return Theme{}, fmt.Errorf("tint: theme border: %w", err)
	}
	return theme, nil
}

// LoadThemeFile loads a TOML theme from disk.
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("tint: read theme: %w", err)
	}
	return LoadTheme(data)
}
