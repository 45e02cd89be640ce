package tint

import (
	"fmt"
	"strconv"
	"strings"
)

// Modifier is a bit-set of text attributes. Being an integer type, the
// native bit operators compose sets directly: | is union, & is
// intersection, ^ is symmetric difference and &^ is difference. The named
// methods are equivalent and exist for call chains and for the in-place
// mutators.
type Modifier uint16

const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderlined
	ModSlowBlink
	ModRapidBlink
	ModReversed
	ModHidden
	ModCrossedOut
)

const (
	// ModNone is the empty set, the identity for union.
	ModNone Modifier = 0

	// ModAll is the union of the nine defined flags. Bits above ModAll
	// carry no meaning and are rejected by ModifierFromBits.
	ModAll = ModBold | ModDim | ModItalic | ModUnderlined | ModSlowBlink |
		ModRapidBlink | ModReversed | ModHidden | ModCrossedOut
)

// ModifierFromBits converts a raw bit pattern into a Modifier. It reports
// false if the pattern contains any bit outside ModAll.
func ModifierFromBits(bits uint16) (Modifier, bool) {
	if Modifier(bits)&^ModAll != 0 {
		return ModNone, false
	}
	return Modifier(bits), true
}

// ModifierFromBitsTruncate converts a raw bit pattern into a Modifier,
// silently dropping any bits outside ModAll.
func ModifierFromBitsTruncate(bits uint16) Modifier {
	return Modifier(bits) & ModAll
}

// ModifierFromBitsUnchecked converts a raw bit pattern into a Modifier
// without validation. Bits outside ModAll are preserved; the caller takes
// responsibility for never relying on their meaning. Intended for forward
// compatibility with flag sets defined elsewhere.
func ModifierFromBitsUnchecked(bits uint16) Modifier {
	return Modifier(bits)
}

// Bits returns the raw bit pattern.
func (m Modifier) Bits() uint16 {
	return uint16(m)
}

// IsEmpty reports whether no flags are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// IsAll reports whether every defined flag is set.
func (m Modifier) IsAll() bool {
	return m&ModAll == ModAll
}

// Intersects reports whether m and other share at least one flag.
func (m Modifier) Intersects(other Modifier) bool {
	return m&other != ModNone
}

// Contains reports whether every flag of other is set in m. The empty set
// is never contained, not even by itself.
func (m Modifier) Contains(other Modifier) bool {
	return other != ModNone && m&other == other
}

// Insert sets the flags of other in-place.
func (m *Modifier) Insert(other Modifier) {
	*m |= other
}

// Remove clears the flags of other in-place.
func (m *Modifier) Remove(other Modifier) {
	*m &^= other
}

// Union returns the flags present in either set.
func (m Modifier) Union(other Modifier) Modifier {
	return m | other
}

// Intersection returns the flags present in both sets.
func (m Modifier) Intersection(other Modifier) Modifier {
	return m & other
}

// Difference returns the flags present in m but not in other.
func (m Modifier) Difference(other Modifier) Modifier {
	return m &^ other
}

// SymmetricDifference returns the flags present in exactly one of the two
// sets.
func (m Modifier) SymmetricDifference(other Modifier) Modifier {
	return m ^ other
}

// Complement returns the defined flags not present in m. The result never
// carries bits outside ModAll.
func (m Modifier) Complement() Modifier {
	return ^m & ModAll
}

var modifierFlags = []struct {
	bit  Modifier
	name string
}{
	{ModBold, "BOLD"},
	{ModDim, "DIM"},
	{ModItalic, "ITALIC"},
	{ModUnderlined, "UNDERLINED"},
	{ModSlowBlink, "SLOW_BLINK"},
	{ModRapidBlink, "RAPID_BLINK"},
	{ModReversed, "REVERSED"},
	{ModHidden, "HIDDEN"},
	{ModCrossedOut, "CROSSED_OUT"},
}

// String renders the set flag names separated by " | ". Bits outside the
// defined flags appear as a trailing hex residue; the empty set renders as
// "(empty)". The form round-trips through ParseModifier.
func (m Modifier) String() string {
	if m == ModNone {
		return "(empty)"
	}
	parts := make([]string, 0, len(modifierFlags)+1)
	for _, f := range modifierFlags {
		if m&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	if residue := m &^ ModAll; residue != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(residue), 16))
	}
	return strings.Join(parts, " | ")
}

// ParseModifier parses the String form back into a Modifier: flag names
// joined by "|", an optional 0x-prefixed residue, or "(empty)". Unknown
// flag names are an error.
func ParseModifier(s string) (Modifier, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "(empty)" {
		return ModNone, nil
	}
	var m Modifier
parts:
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "0x") || strings.HasPrefix(part, "0X") {
			residue, err := strconv.ParseUint(part[2:], 16, 16)
			if err != nil {
				return ModNone, fmt.Errorf("tint: bad modifier residue %q: %w", part, err)
			}
			m |= Modifier(residue)
			continue
		}
		for _, f := range modifierFlags {
			if strings.EqualFold(part, f.name) {
				m |= f.bit
				continue parts
			}
		}
		return ModNone, fmt.Errorf("tint: unknown modifier %q", part)
	}
	return m, nil
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (m Modifier) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Modifier) UnmarshalText(text []byte) error {
	parsed, err := ParseModifier(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
