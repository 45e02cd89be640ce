// Package tint provides the style primitives for terminal rendering: colors,
// attribute bit-sets and composable incremental styles, plus a cell buffer
// and screen renderer that consume them.
package tint

import "fmt"

// OptColor is an optional Color: either a concrete color to apply or
// absent, meaning "leave the color already in effect unchanged". The zero
// value is absent. It is a plain value type, comparable and allocation
// free.
type OptColor struct {
	color Color
	set   bool
}

// SomeColor wraps a concrete color.
func SomeColor(c Color) OptColor {
	return OptColor{color: c, set: true}
}

// Get returns the wrapped color and whether one is present.
func (o OptColor) Get() (Color, bool) {
	return o.color, o.set
}

// IsSet reports whether a color is present.
func (o OptColor) IsSet() bool {
	return o.set
}

// Or returns o if it holds a color, otherwise fallback. A present value is
// never displaced by an absent one.
func (o OptColor) Or(fallback OptColor) OptColor {
	if o.set {
		return o
	}
	return fallback
}

// String returns the wrapped color's form, or "none" when absent.
func (o OptColor) String() string {
	if !o.set {
		return "none"
	}
	return o.color.String()
}

// MarshalJSON encodes the color text form, or null when absent.
func (o OptColor) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return []byte(`"` + o.color.String() + `"`), nil
}

// UnmarshalJSON decodes null as absent and a quoted color form as present.
func (o *OptColor) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = OptColor{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("tint: bad optional color %s", data)
	}
	c, err := ParseColor(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*o = SomeColor(c)
	return nil
}

// Style is an incremental change to how text is displayed: optional
// foreground and background overrides plus the attributes the change turns
// on (Add) and off (Sub). It is not an absolute style; a chain of changes
// is folded into one with Patch. The zero value changes nothing and is the
// identity of Patch.
//
// Add and Sub never share a flag: every mutator clears a flag from the
// opposite set before inserting it into its own.
//
// Styles are small comparable values; == is structural equality.
type Style struct {
	Fg  OptColor `json:"fg"`
	Bg  OptColor `json:"bg"`
	Add Modifier `json:"add"`
	Sub Modifier `json:"sub"`
}

// ResetStyle returns the style that wipes out everything applied before
// it: both colors forced back to the terminal default and every attribute
// turned off. Patching it onto any accumulated style yields the same
// result regardless of what came before; changes patched on after it still
// compose as usual.
func ResetStyle() Style {
	return Style{
		Fg:  SomeColor(Reset),
		Bg:  SomeColor(Reset),
		Sub: ModAll,
	}
}

// Foreground returns the style with the foreground override set to c.
func (s Style) Foreground(c Color) Style {
	s.Fg = SomeColor(c)
	return s
}

// Background returns the style with the background override set to c.
func (s Style) Background(c Color) Style {
	s.Bg = SomeColor(c)
	return s
}

// With returns the style with the given attributes turned on.
func (s Style) With(m Modifier) Style {
	s.Sub.Remove(m)
	s.Add.Insert(m)
	return s
}

// Without returns the style with the given attributes turned off.
func (s Style) Without(m Modifier) Style {
	s.Add.Remove(m)
	s.Sub.Insert(m)
	return s
}

// Bold turns on bold.
func (s Style) Bold() Style { return s.With(ModBold) }

// Dim turns on dim.
func (s Style) Dim() Style { return s.With(ModDim) }

// Italic turns on italic.
func (s Style) Italic() Style { return s.With(ModItalic) }

// Underlined turns on underline.
func (s Style) Underlined() Style { return s.With(ModUnderlined) }

// SlowBlink turns on slow blinking.
func (s Style) SlowBlink() Style { return s.With(ModSlowBlink) }

// RapidBlink turns on rapid blinking.
func (s Style) RapidBlink() Style { return s.With(ModRapidBlink) }

// Reversed swaps foreground and background.
func (s Style) Reversed() Style { return s.With(ModReversed) }

// Hidden turns on concealed text.
func (s Style) Hidden() Style { return s.With(ModHidden) }

// CrossedOut turns on strikethrough.
func (s Style) CrossedOut() Style { return s.With(ModCrossedOut) }

// Patch combines two styles applied in sequence (s first, other second)
// into one style with the same net effect. A later color override wins; an
// absent color never displaces a present one. A later removal retracts an
// earlier addition of the same attribute and vice versa, so the result
// tracks the net state of each flag across a chain of any length.
//
// Folding a chain element by element and pre-combining a suffix are
// indistinguishable: for any a, b, c and d,
//
//	zero.Patch(a).Patch(b).Patch(c).Patch(d) == zero.Patch(a.Patch(b.Patch(c.Patch(d))))
//
// Patch is pure and total. It is not commutative; callers must apply
// changes in the order they were produced.
func (s Style) Patch(other Style) Style {
	s.Fg = other.Fg.Or(s.Fg)
	s.Bg = other.Bg.Or(s.Bg)

	s.Add.Remove(other.Sub)
	s.Add.Insert(other.Add)
	s.Sub.Remove(other.Add)
	s.Sub.Insert(other.Sub)

	return s
}
