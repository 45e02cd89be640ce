package main

import (
	"fmt"
	"log"
	"os"

	"tint"
)

// A little style gallery: named colors, the 256 palette, truecolor,
// attribute flags, and theme cycling. Press 't' to cycle themes,
// 'q' to quit.

var themes = []struct {
	name  string
	theme tint.Theme
}{
	{"Dark", tint.ThemeDark},
	{"Light", tint.ThemeLight},
	{"Monochrome", tint.ThemeMonochrome},
}

var namedColors = []struct {
	name  string
	color tint.Color
}{
	{"black", tint.Black}, {"red", tint.Red}, {"green", tint.Green},
	{"yellow", tint.Yellow}, {"blue", tint.Blue}, {"magenta", tint.Magenta},
	{"cyan", tint.Cyan}, {"gray", tint.Gray}, {"darkgray", tint.DarkGray},
	{"lightred", tint.LightRed}, {"lightgreen", tint.LightGreen},
	{"lightyellow", tint.LightYellow}, {"lightblue", tint.LightBlue},
	{"lightmagenta", tint.LightMagenta}, {"lightcyan", tint.LightCyan},
	{"white", tint.White},
}

var attrs = []struct {
	name string
	mod  tint.Modifier
}{
	{"bold", tint.ModBold},
	{"dim", tint.ModDim},
	{"italic", tint.ModItalic},
	{"underlined", tint.ModUnderlined},
	{"reversed", tint.ModReversed},
	{"crossed out", tint.ModCrossedOut},
}

func draw(screen *tint.Screen, themeIdx int) {
	theme := themes[themeIdx].theme
	buf := screen.Buffer()
	buf.Clear()

	base := theme.Base
	y := 1

	tint.DrawSpans(buf, 2, y, base,
		tint.Span{Text: "Style Gallery", Style: theme.Accent},
		tint.Span{Text: "  theme: "},
		tint.Span{Text: themes[themeIdx].name, Style: tint.Style{Add: tint.ModBold}},
		tint.Span{Text: "  [t] cycle  [q] quit", Style: theme.Muted},
	)
	y += 2

	// Named colors, normal and bright
	buf.WriteString(2, y, "named", theme.Muted)
	x := 12
	for _, nc := range namedColors {
		buf.WriteString(x, y, "██", base.Foreground(nc.color))
		x += 2
	}
	y += 2

	// A slice of the 256 palette
	buf.WriteString(2, y, "indexed", theme.Muted)
	for i := 0; i < 36; i++ {
		buf.WriteString(12+i, y, " ", base.Background(tint.Indexed(uint8(16+i))))
	}
	y += 2

	// Truecolor gradient
	buf.WriteString(2, y, "rgb", theme.Muted)
	for i := 0; i < 36; i++ {
		r := uint8(255 * i / 35)
		buf.WriteString(12+i, y, " ", base.Background(tint.RGB(r, 64, 255-r)))
	}
	y += 2

	// Attribute flags
	buf.WriteString(2, y, "attrs", theme.Muted)
	x = 12
	for _, a := range attrs {
		buf.WriteString(x, y, a.name, base.With(a.mod))
		x += len(a.name) + 2
	}
	y += 2

	// Patch layering: each row adds one more layer on top of the last
	buf.WriteString(2, y, "layers", theme.Muted)
	layered := base
	for i, layer := range []tint.Style{
		tint.Style{}.Foreground(tint.LightBlue),
		tint.Style{}.Bold(),
		tint.Style{}.Background(tint.Indexed(236)).Italic(),
		tint.ResetStyle(),
	} {
		layered = layered.Patch(layer)
		buf.WriteString(12, y+i, fmt.Sprintf("layer %d: %s on %s", i+1, layered.Fg, layered.Bg), layered)
	}
	y += 5

	tint.DrawSpans(buf, 2, y, base,
		tint.Span{Text: "error style sample", Style: theme.Error},
		tint.Span{Text: "  border sample", Style: theme.Border},
	)

	screen.Flush()
}

func main() {
	screen, err := tint.NewScreen(nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.EnterRawMode(); err != nil {
		log.Fatal(err)
	}
	defer screen.ExitRawMode()

	themeIdx := 0
	draw(screen, themeIdx)

	input := make(chan byte)
	go func() {
		b := make([]byte, 1)
		for {
			if _, err := os.Stdin.Read(b); err != nil {
				close(input)
				return
			}
			input <- b[0]
		}
	}()

	for {
		select {
		case <-screen.ResizeChan():
			draw(screen, themeIdx)
		case key, ok := <-input:
			if !ok {
				return
			}
			switch key {
			case 't':
				themeIdx = (themeIdx + 1) % len(themes)
				draw(screen, themeIdx)
			case 'q', 3: // ctrl-c
				return
			}
		}
	}
}
