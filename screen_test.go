package tint

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// testScreen builds a screen over an in-memory writer, bypassing terminal
// detection.
func testScreen(w, h int) (*Screen, *bytes.Buffer) {
	var out bytes.Buffer
	s := &Screen{
		front:      NewBuffer(w, h),
		back:       NewBuffer(w, h),
		writer:     &out,
		width:      w,
		height:     h,
		colorMode:  ColorModeTrueColor,
		resizeChan: make(chan Size, 1),
		sigChan:    make(chan os.Signal, 1),
	}
	return s, &out
}

func sgrFor(s *Screen, style Style) string {
	var buf bytes.Buffer
	s.writeStyle(&buf, style)
	return buf.String()
}

func TestWriteStyle(t *testing.T) {
	s, _ := testScreen(4, 1)

	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{"Zero", Style{}, "\x1b[0;39;49m"},
		{"Bold", Style{}.Bold(), "\x1b[0;1;39;49m"},
		{"NamedFg", Style{}.Foreground(Red), "\x1b[0;31;49m"},
		{"BrightFg", Style{}.Foreground(LightRed), "\x1b[0;91;49m"},
		{"NamedBg", Style{}.Background(Green), "\x1b[0;39;42m"},
		{"BrightBg", Style{}.Background(LightCyan), "\x1b[0;39;106m"},
		{"ExplicitReset", Style{}.Foreground(Reset), "\x1b[0;39;49m"},
		{"Indexed", Style{}.Foreground(Indexed(100)), "\x1b[0;38;5;100;49m"},
		{"TrueColor", Style{}.Background(RGB(1, 2, 3)), "\x1b[0;39;48;2;1;2;3m"},
		{
			"Everything",
			Style{}.Foreground(Yellow).Background(Indexed(17)).Bold().Underlined(),
			"\x1b[0;1;4;33;48;5;17m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sgrFor(s, tt.style); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteStyle256Fallback(t *testing.T) {
	s, _ := testScreen(4, 1)
	s.SetColorMode(ColorMode256)

	// Exact cube entry so the downsample is deterministic.
	got := sgrFor(s, Style{}.Foreground(RGB(95, 135, 175)))
	want := "\x1b[0;38;5;67;49m"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Sub never affects rendering: by the time a style is painted it has
// already removed the attributes during patching.
func TestWriteStyleIgnoresSub(t *testing.T) {
	s, _ := testScreen(4, 1)
	if got := sgrFor(s, Style{Sub: ModAll}); got != sgrFor(s, Style{}) {
		t.Errorf("Sub leaked into SGR output: %q", got)
	}
}

func TestFlushDiff(t *testing.T) {
	s, out := testScreen(5, 2)

	s.Buffer().WriteString(0, 0, "hi", Style{}.Bold())
	s.Flush()

	want := "\x1b[1;1H\x1b[0;1;39;49mhi\x1b[0m"
	if got := out.String(); got != want {
		t.Errorf("first flush = %q, want %q", got, want)
	}

	// Nothing changed: nothing written.
	out.Reset()
	s.Flush()
	if out.Len() != 0 {
		t.Errorf("idle flush wrote %q", out.String())
	}

	// Only the changed cell is repositioned and repainted.
	out.Reset()
	s.Buffer().SetRune(1, 1, 'x')
	s.Flush()
	got := out.String()
	if !strings.Contains(got, "\x1b[2;2H") {
		t.Errorf("second flush missing cursor move: %q", got)
	}
	if strings.Contains(got, "hi") {
		t.Errorf("second flush repainted unchanged cells: %q", got)
	}
}

func TestFlushSkipsPlaceholders(t *testing.T) {
	s, out := testScreen(6, 1)
	s.Buffer().WriteString(0, 0, "日x", Style{})
	s.Flush()

	got := out.String()
	if !strings.Contains(got, "日x") {
		// The placeholder behind 日 must not break up the run.
		t.Errorf("wide rune and successor not contiguous: %q", got)
	}
}

func TestDetectColorMode(t *testing.T) {
	t.Setenv("COLORTERM", "truecolor")
	if DetectColorMode() != ColorModeTrueColor {
		t.Error("COLORTERM=truecolor not detected")
	}
	t.Setenv("COLORTERM", "")
	if DetectColorMode() != ColorMode256 {
		t.Error("expected 256-color fallback")
	}
}
