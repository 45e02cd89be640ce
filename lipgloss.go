package tint

import "github.com/charmbracelet/lipgloss"

// LipglossColor converts a Color to a lipgloss.TerminalColor, for
// embedding resolved styles in lipgloss-rendered output. Reset becomes
// NoColor, which lipgloss treats as the terminal default.
func LipglossColor(c Color) lipgloss.TerminalColor {
	switch c.kind {
	case colorNamed, colorIndexed:
		return lipgloss.ANSIColor(c.index)
	case colorRGB:
		return lipgloss.Color(c.String())
	default:
		return lipgloss.NoColor{}
	}
}

// LipglossStyle converts a resolved style to a lipgloss.Style. Attributes
// come from the Add set; lipgloss has no hidden attribute and a single
// blink, so ModHidden is dropped and both blink flags map to Blink.
func LipglossStyle(s Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c, ok := s.Fg.Get(); ok && !c.IsReset() {
		st = st.Foreground(LipglossColor(c))
	}
	if c, ok := s.Bg.Get(); ok && !c.IsReset() {
		st = st.Background(LipglossColor(c))
	}
	if s.Add&ModBold != 0 {
		st = st.Bold(true)
	}
	if s.Add&ModDim != 0 {
		st = st.Faint(true)
	}
	if s.Add&ModItalic != 0 {
		st = st.Italic(true)
	}
	if s.Add&ModUnderlined != 0 {
		st = st.Underline(true)
	}
	if s.Add&(ModSlowBlink|ModRapidBlink) != 0 {
		st = st.Blink(true)
	}
	if s.Add&ModReversed != 0 {
		st = st.Reverse(true)
	}
	if s.Add&ModCrossedOut != 0 {
		st = st.Strikethrough(true)
	}
	return st
}
