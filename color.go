package tint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type colorKind uint8

const (
	colorReset colorKind = iota
	colorNamed
	colorIndexed
	colorRGB
)

// Color identifies a terminal color: the terminal default (Reset), one of
// the 16 named ANSI colors, a 256-palette index or a 24-bit RGB value.
// Colors are immutable values compared with ==. The zero value is Reset.
// Named colors are distinct from their palette equivalents: Black is not
// equal to Indexed(0), since the terminal may resolve them differently.
type Color struct {
	kind    colorKind
	index   uint8
	r, g, b uint8
}

func named(index uint8) Color {
	return Color{kind: colorNamed, index: index}
}

var (
	Reset        = Color{}
	Black        = named(0)
	Red          = named(1)
	Green        = named(2)
	Yellow       = named(3)
	Blue         = named(4)
	Magenta      = named(5)
	Cyan         = named(6)
	Gray         = named(7)
	DarkGray     = named(8)
	LightRed     = named(9)
	LightGreen   = named(10)
	LightYellow  = named(11)
	LightBlue    = named(12)
	LightMagenta = named(13)
	LightCyan    = named(14)
	White        = named(15)
)

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// Indexed returns a color from the 256-entry terminal palette.
func Indexed(index uint8) Color {
	return Color{kind: colorIndexed, index: index}
}

// Hex returns a 24-bit true color from a packed hex value (e.g. 0xFF5500).
func Hex(hex uint32) Color {
	return RGB(uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// IsReset reports whether c is the terminal default color.
func (c Color) IsReset() bool {
	return c.kind == colorReset
}

var colorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "gray",
	"darkgray", "lightred", "lightgreen", "lightyellow", "lightblue",
	"lightmagenta", "lightcyan", "white",
}

// String returns the textual form of the color: a lowercase name for Reset
// and the named colors, "#rrggbb" for RGB colors and the decimal index for
// palette colors. The form round-trips through ParseColor.
func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return colorNames[c.index]
	case colorIndexed:
		return strconv.Itoa(int(c.index))
	case colorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return "reset"
	}
}

// ParseColor parses the String form of a color: a color name, a "#rrggbb"
// hex triplet or a decimal palette index (0-255).
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "reset" {
		return Reset, nil
	}
	for i, n := range colorNames {
		if name == n {
			return named(uint8(i)), nil
		}
	}
	if strings.HasPrefix(name, "#") {
		cf, err := colorful.Hex(name)
		if err != nil {
			return Color{}, fmt.Errorf("tint: bad color %q: %w", s, err)
		}
		r, g, b := cf.RGB255()
		return RGB(r, g, b), nil
	}
	if index, err := strconv.ParseUint(name, 10, 8); err == nil {
		return Indexed(uint8(index)), nil
	}
	return Color{}, fmt.Errorf("tint: unknown color %q", s)
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// palette256 holds the xterm 256-color palette entries 16-255: a 6x6x6
// color cube followed by a 24-step grayscale ramp. Entries 0-15 are left
// zero and never searched, since terminals commonly remap them.
var palette256 [256]colorful.Color

func init() {
	levels := [6]float64{0, 95, 135, 175, 215, 255}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				palette256[16+36*r+6*g+b] = colorful.Color{
					R: levels[r] / 255, G: levels[g] / 255, B: levels[b] / 255,
				}
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := float64(8+10*i) / 255
		palette256[232+i] = colorful.Color{R: v, G: v, B: v}
	}
}

// Indexed256 downsamples the color to a 256-palette index for terminals
// without true color support. Named colors map to their ANSI index and
// palette colors to themselves; RGB colors map to the nearest cube or
// grayscale entry (16-255). Reset has no palette entry and maps to 0;
// renderers emit the default-color sequence for Reset before ever
// consulting the palette.
func (c Color) Indexed256() uint8 {
	switch c.kind {
	case colorNamed:
		return c.index
	case colorIndexed:
		return c.index
	case colorRGB:
		target := colorful.Color{
			R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255,
		}
		best, bestDist := 16, target.DistanceRgb(palette256[16])
		for i := 17; i < 256; i++ {
			if d := target.DistanceRgb(palette256[i]); d < bestDist {
				best, bestDist = i, d
			}
		}
		return uint8(best)
	default:
		return 0
	}
}
