package tint

import "testing"

func TestColorEquality(t *testing.T) {
	if Black == Indexed(0) {
		t.Error("named Black must differ from palette entry 0")
	}
	if RGB(1, 2, 3) != RGB(1, 2, 3) {
		t.Error("identical RGB colors must compare equal")
	}
	if RGB(0, 0, 0) == Black {
		t.Error("RGB black must differ from named Black")
	}
	var zero Color
	if zero != Reset {
		t.Error("zero Color must be Reset")
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Reset, "reset"},
		{Black, "black"},
		{DarkGray, "darkgray"},
		{LightMagenta, "lightmagenta"},
		{White, "white"},
		{Indexed(42), "42"},
		{RGB(255, 85, 0), "#ff5500"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		colors := []Color{
			Reset, Black, Red, Green, Yellow, Blue, Magenta, Cyan, Gray,
			DarkGray, LightRed, LightGreen, LightYellow, LightBlue,
			LightMagenta, LightCyan, White,
			Indexed(0), Indexed(255), RGB(0, 0, 0), RGB(18, 52, 86),
		}
		for _, c := range colors {
			back, err := ParseColor(c.String())
			if err != nil {
				t.Fatalf("parse %q: %v", c.String(), err)
			}
			if back != c {
				t.Errorf("round trip of %v via %q gave %v", c, c.String(), back)
			}
		}
	})

	t.Run("Lenient", func(t *testing.T) {
		c, err := ParseColor("  LightBlue ")
		if err != nil || c != LightBlue {
			t.Errorf("got %v, %v", c, err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{"", "mauve", "#12345", "#gghhii", "256", "-1"} {
			if c, err := ParseColor(s); err == nil {
				t.Errorf("ParseColor(%q) = %v, want error", s, c)
			}
		}
	})
}

func TestHex(t *testing.T) {
	if Hex(0xFF5500) != RGB(255, 85, 0) {
		t.Errorf("Hex(0xFF5500) = %v", Hex(0xFF5500))
	}
}

func TestColorText(t *testing.T) {
	data, err := Yellow.MarshalText()
	if err != nil || string(data) != "yellow" {
		t.Fatalf("got %q, %v", data, err)
	}
	var c Color
	if err := c.UnmarshalText([]byte("#102040")); err != nil {
		t.Fatal(err)
	}
	if c != RGB(16, 32, 64) {
		t.Errorf("got %v", c)
	}
}

func TestIndexed256(t *testing.T) {
	tests := []struct {
		c    Color
		want uint8
	}{
		{Black, 0},
		{White, 15},
		{Indexed(200), 200},
		{RGB(0, 0, 0), 16},       // cube origin
		{RGB(255, 255, 255), 231}, // cube top
		{RGB(95, 135, 175), 67},  // exact cube entry 16+36*1+6*2+3
		{RGB(8, 8, 8), 232},      // first grayscale step
		{RGB(238, 238, 238), 255}, // last grayscale step
	}
	for _, tt := range tests {
		if got := tt.c.Indexed256(); got != tt.want {
			t.Errorf("Indexed256(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}
