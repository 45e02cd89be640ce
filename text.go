package tint

import "github.com/mattn/go-runewidth"

// Span is a styled segment of text. Its style is incremental: when the
// span is drawn it patches over whatever base style is in effect.
type Span struct {
	Text  string
	Style Style
}

// Width returns the display width of the span in terminal columns.
func (s Span) Width() int {
	return runewidth.StringWidth(s.Text)
}

// Rich builds a span sequence from a mix of strings and Spans. Plain
// strings get the zero style, Spans keep their own.
//
//	Rich("Hello ", Bold("world"), "!")
func Rich(parts ...any) []Span {
	spans := make([]Span, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			spans = append(spans, Span{Text: v})
		case Span:
			spans = append(spans, v)
		}
	}
	return spans
}

// Styled creates a span with the given style.
func Styled(text string, style Style) Span {
	return Span{Text: text, Style: style}
}

// Bold creates a bold text span.
func Bold(text string) Span {
	return Span{Text: text, Style: Style{Add: ModBold}}
}

// Dim creates a dim text span.
func Dim(text string) Span {
	return Span{Text: text, Style: Style{Add: ModDim}}
}

// Italic creates an italic text span.
func Italic(text string) Span {
	return Span{Text: text, Style: Style{Add: ModItalic}}
}

// Underline creates an underlined text span.
func Underline(text string) Span {
	return Span{Text: text, Style: Style{Add: ModUnderlined}}
}

// Reverse creates an inverse text span.
func Reverse(text string) Span {
	return Span{Text: text, Style: Style{Add: ModReversed}}
}

// FG creates a span with a foreground color.
func FG(text string, color Color) Span {
	return Span{Text: text, Style: Style{Fg: SomeColor(color)}}
}

// BG creates a span with a background color.
func BG(text string, color Color) Span {
	return Span{Text: text, Style: Style{Bg: SomeColor(color)}}
}

// SpansWidth returns the total display width of a span sequence.
func SpansWidth(spans []Span) int {
	total := 0
	for _, s := range spans {
		total += s.Width()
	}
	return total
}

// DrawSpans writes a span sequence into the buffer left to right starting
// at (x, y). Each span's style is patched over base, so span styles layer
// on top of the surrounding context instead of replacing it. Returns the
// number of columns advanced.
func DrawSpans(buf *Buffer, x, y int, base Style, spans ...Span) int {
	written := 0
	for _, span := range spans {
		written += buf.WriteString(x+written, y, span.Text, base.Patch(span.Style))
	}
	return written
}
