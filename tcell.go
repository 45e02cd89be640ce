package tint

import "github.com/gdamore/tcell/v2"

// Conversions between resolved tint styles and tcell's style model, for
// programs that draw through a tcell screen instead of the built-in
// renderer. tcell styles are absolute, so the conversions are meant for
// styles that have already been folded with Patch.

// TcellColor converts a Color to a tcell.Color. Reset maps to the
// terminal default.
func TcellColor(c Color) tcell.Color {
	switch c.kind {
	case colorNamed, colorIndexed:
		return tcell.PaletteColor(int(c.index))
	case colorRGB:
		return tcell.NewRGBColor(int32(c.r), int32(c.g), int32(c.b))
	default:
		return tcell.ColorDefault
	}
}

// ColorFromTcell converts a tcell.Color back. RGB colors keep their
// channels; palette colors below 256 become Indexed, anything else falls
// back to Reset. The named/indexed distinction does not survive a round
// trip through tcell, which has only palette numbers.
func ColorFromTcell(c tcell.Color) Color {
	if c == tcell.ColorDefault {
		return Reset
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return RGB(uint8(r), uint8(g), uint8(b))
	}
	if idx := int(c &^ (tcell.ColorValid | tcell.ColorIsRGB)); idx < 256 {
		return Indexed(uint8(idx))
	}
	return Reset
}

// TcellAttrs converts a Modifier set to a tcell.AttrMask. tcell has a
// single blink attribute and no hidden attribute, so both blink flags map
// to AttrBlink and ModHidden is dropped.
func TcellAttrs(m Modifier) tcell.AttrMask {
	var mask tcell.AttrMask
	if m&ModBold != 0 {
		mask |= tcell.AttrBold
	}
	if m&ModDim != 0 {
		mask |= tcell.AttrDim
	}
	if m&ModItalic != 0 {
		mask |= tcell.AttrItalic
	}
	if m&ModUnderlined != 0 {
		mask |= tcell.AttrUnderline
	}
	if m&(ModSlowBlink|ModRapidBlink) != 0 {
		mask |= tcell.AttrBlink
	}
	if m&ModReversed != 0 {
		mask |= tcell.AttrReverse
	}
	if m&ModCrossedOut != 0 {
		mask |= tcell.AttrStrikeThrough
	}
	return mask
}

// AttrsFromTcell converts a tcell.AttrMask to a Modifier set. AttrBlink
// maps to ModSlowBlink.
func AttrsFromTcell(mask tcell.AttrMask) Modifier {
	var m Modifier
	if mask&tcell.AttrBold != 0 {
		m |= ModBold
	}
	if mask&tcell.AttrDim != 0 {
		m |= ModDim
	}
	if mask&tcell.AttrItalic != 0 {
		m |= ModItalic
	}
	if mask&tcell.AttrUnderline != 0 {
		m |= ModUnderlined
	}
	if mask&tcell.AttrBlink != 0 {
		m |= ModSlowBlink
	}
	if mask&tcell.AttrReverse != 0 {
		m |= ModReversed
	}
	if mask&tcell.AttrStrikeThrough != 0 {
		m |= ModCrossedOut
	}
	return m
}

// TcellStyle converts a resolved style to a tcell.Style. Absent colors and
// explicit Reset both select the terminal default; attributes come from
// the Add set.
func TcellStyle(s Style) tcell.Style {
	st := tcell.StyleDefault
	if c, ok := s.Fg.Get(); ok {
		st = st.Foreground(TcellColor(c))
	}
	if c, ok := s.Bg.Get(); ok {
		st = st.Background(TcellColor(c))
	}
	return st.Attributes(TcellAttrs(s.Add))
}

// StyleFromTcell converts a tcell.Style into an equivalent absolute tint
// style: both colors present (defaults become Reset) and the attribute
// set in Add.
func StyleFromTcell(st tcell.Style) Style {
	fg, bg, attrs := st.Decompose()
	return Style{
		Fg:  SomeColor(ColorFromTcell(fg)),
		Bg:  SomeColor(ColorFromTcell(bg)),
		Add: AttrsFromTcell(attrs),
	}
}
