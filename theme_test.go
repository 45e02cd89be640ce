package tint

import "testing"

func TestLoadTheme(t *testing.T) {
	data := []byte(`
[base]
fg = "white"

[accent]
fg = "#ff8700"
add = ["bold"]

[error]
fg = "lightred"
bg = "232"
add = ["bold", "underlined"]

[muted]
fg = "darkgray"
sub = ["bold"]
`)

	theme, err := LoadTheme(data)
	if err != nil {
		t.Fatal(err)
	}

	if got := theme.Base; got != (Style{}).Foreground(White) {
		t.Errorf("base = %+v", got)
	}
	if got := theme.Accent; got != (Style{}).Foreground(RGB(255, 135, 0)).Bold() {
		t.Errorf("accent = %+v", got)
	}
	want := Style{}.Foreground(LightRed).Background(Indexed(232)).With(ModBold | ModUnderlined)
	if theme.Error != want {
		t.Errorf("error = %+v, want %+v", theme.Error, want)
	}
	if got := theme.Muted; got != (Style{}).Foreground(DarkGray).Without(ModBold) {
		t.Errorf("muted = %+v", got)
	}

	// Sections absent from the file are the do-nothing style.
	if theme.Border != (Style{}) {
		t.Errorf("border should be zero, got %+v", theme.Border)
	}
}

func TestLoadThemeErrors(t *testing.T) {
	if _, err := LoadTheme([]byte(`[base]` + "\n" + `fg = "mauve"`)); err == nil {
		t.Error("unknown color should fail")
	}
	if _, err := LoadTheme([]byte(`[accent]` + "\n" + `add = ["sparkly"]`)); err == nil {
		t.Error("unknown modifier should fail")
	}
	if _, err := LoadTheme([]byte(`not toml [`)); err == nil {
		t.Error("malformed TOML should fail")
	}
}

func TestBuiltinThemesCompose(t *testing.T) {
	// Theme styles are incremental; applying one then a local override
	// must keep the theme's untouched fields.
	s := Style{}.Patch(ThemeDark.Error).Patch(Style{}.Bold())
	if fg, _ := s.Fg.Get(); fg != LightRed {
		t.Errorf("fg = %v", fg)
	}
	if s.Add != ModBold {
		t.Errorf("add = %v", s.Add)
	}
}
