package tint

import "testing"

func TestRich(t *testing.T) {
	spans := Rich("plain ", Bold("loud"), FG("red", Red))
	if len(spans) != 3 {
		t.Fatalf("got %d spans", len(spans))
	}
	if spans[0].Style != (Style{}) {
		t.Error("plain string should carry the zero style")
	}
	if spans[1].Style.Add != ModBold {
		t.Error("Bold span lost its attribute")
	}
	if fg, _ := spans[2].Style.Fg.Get(); fg != Red {
		t.Error("FG span lost its color")
	}
}

func TestSpanWidth(t *testing.T) {
	if w := (Span{Text: "abc"}).Width(); w != 3 {
		t.Errorf("got %d, want 3", w)
	}
	if w := (Span{Text: "日本"}).Width(); w != 4 {
		t.Errorf("wide runes: got %d, want 4", w)
	}
	if w := SpansWidth(Rich("ab", Bold("日"))); w != 4 {
		t.Errorf("SpansWidth: got %d, want 4", w)
	}
}

func TestDrawSpans(t *testing.T) {
	buf := NewBuffer(20, 1)
	base := Style{}.Foreground(White).Background(Blue)

	n := DrawSpans(buf, 0, 0, base,
		Span{Text: "ok "},
		Bold("hot"),
		FG("!", Red),
	)
	if n != 7 {
		t.Fatalf("advanced %d columns, want 7", n)
	}

	// Plain span: base colors only.
	s := buf.Get(0, 0).Style
	if fg, _ := s.Fg.Get(); fg != White {
		t.Errorf("plain span fg = %v", fg)
	}

	// Bold span layers the attribute over the base colors.
	s = buf.Get(3, 0).Style
	if s.Add != ModBold {
		t.Errorf("bold span add = %v", s.Add)
	}
	if bg, _ := s.Bg.Get(); bg != Blue {
		t.Errorf("bold span lost base bg: %v", bg)
	}

	// Colored span overrides the base foreground, keeps its background.
	s = buf.Get(6, 0).Style
	if fg, _ := s.Fg.Get(); fg != Red {
		t.Errorf("colored span fg = %v", fg)
	}
	if bg, _ := s.Bg.Get(); bg != Blue {
		t.Errorf("colored span lost base bg: %v", bg)
	}
}
