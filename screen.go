package tint

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ColorMode indicates how RGB colors are emitted.
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota // 24-bit SGR sequences
	ColorMode256                        // downsample RGB to the 256 palette
)

// DetectColorMode determines terminal color capability from the
// environment.
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// Screen manages the terminal display with double buffering and diff-based
// updates. Drawing code patches styles into the back buffer; Flush
// translates each changed cell's resolved style into SGR sequences.
type Screen struct {
	front  *Buffer   // what's currently displayed
	back   *Buffer   // what we're drawing to
	writer io.Writer // output destination (usually os.Stdout)
	fd     int       // file descriptor for terminal operations

	width  int
	height int

	colorMode ColorMode

	// Terminal state
	rawState  *term.State
	inRawMode bool

	// Resize handling
	resizeChan chan Size
	sigChan    chan os.Signal

	// Rendering state
	lastStyle Style // last resolved style emitted, for coalescing
	lastValid bool
	buf       bytes.Buffer // reusable buffer for building output

	// Protects buffer access during resize
	mu sync.Mutex
}

// Size represents dimensions.
type Size struct {
	Width  int
	Height int
}

// NewScreen creates a new screen writing to the given writer.
// Pass nil to use os.Stdout.
func NewScreen(w io.Writer) (*Screen, error) {
	if w == nil {
		w = os.Stdout
	}

	fd := int(os.Stdout.Fd())
	width, height, err := getTerminalSize(fd)
	if err != nil {
		// Default fallback
		width, height = 80, 24
	}

	s := &Screen{
		front:      NewBuffer(width, height),
		back:       NewBuffer(width, height),
		writer:     w,
		fd:         fd,
		width:      width,
		height:     height,
		colorMode:  DetectColorMode(),
		resizeChan: make(chan Size, 1),
		sigChan:    make(chan os.Signal, 1),
	}

	return s, nil
}

// getTerminalSize returns the current terminal dimensions.
func getTerminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// SetColorMode overrides the detected color capability.
func (s *Screen) SetColorMode(mode ColorMode) {
	s.colorMode = mode
}

// Size returns the current screen dimensions.
func (s *Screen) Size() Size {
	return Size{Width: s.width, Height: s.height}
}

// Width returns the screen width.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height.
func (s *Screen) Height() int {
	return s.height
}

// Buffer returns the back buffer for drawing.
func (s *Screen) Buffer() *Buffer {
	return s.back
}

// ResizeChan returns a channel that receives size updates on terminal resize.
func (s *Screen) ResizeChan() <-chan Size {
	return s.resizeChan
}

// EnterRawMode puts the terminal into raw mode for full-screen operation.
func (s *Screen) EnterRawMode() error {
	if s.inRawMode {
		return nil
	}
	if !term.IsTerminal(s.fd) {
		return fmt.Errorf("tint: fd %d is not a terminal", s.fd)
	}

	state, err := term.MakeRaw(s.fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	s.rawState = state
	s.inRawMode = true

	// Start listening for resize signals
	signal.Notify(s.sigChan, syscall.SIGWINCH)
	go s.handleSignals()

	s.writeString("\x1b[?1049h") // Enter alternate screen
	s.writeString("\x1b[2J")     // Clear screen so the front buffer matches reality
	s.writeString("\x1b[H")      // Move cursor to home position
	s.writeString("\x1b[?25l")   // Hide cursor

	return nil
}

// ExitRawMode restores the terminal to its original state.
func (s *Screen) ExitRawMode() error {
	if !s.inRawMode {
		return nil
	}

	s.writeString("\x1b[0m")     // Reset style
	s.writeString("\x1b[?25h")   // Show cursor
	s.writeString("\x1b[?1049l") // Exit alternate screen

	signal.Stop(s.sigChan)

	if s.rawState != nil {
		if err := term.Restore(s.fd, s.rawState); err != nil {
			return fmt.Errorf("failed to restore terminal: %w", err)
		}
	}

	s.inRawMode = false
	return nil
}

// handleSignals reacts to SIGWINCH by resizing both buffers and notifying
// the resize channel.
func (s *Screen) handleSignals() {
	for range s.sigChan {
		width, height, err := getTerminalSize(s.fd)
		if err != nil {
			continue
		}

		s.mu.Lock()
		s.width = width
		s.height = height
		s.front.Resize(width, height)
		s.back.Resize(width, height)
		s.lastValid = false
		s.mu.Unlock()

		// Non-blocking send; drop if nobody is listening
		select {
		case s.resizeChan <- Size{Width: width, Height: height}:
		default:
		}
	}
}

// Flush writes only the cells that changed since the last flush.
func (s *Screen) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()

	cursorX, cursorY := -1, -1
	changed := false

	for y := 0; y < s.height; y++ {
		if !s.back.RowDirty(y) {
			continue
		}

		for x := 0; x < s.width; x++ {
			backCell := s.back.Get(x, y)
			if backCell == s.front.Get(x, y) {
				continue
			}
			s.front.Set(x, y, backCell)

			// Placeholder cells are covered by the wide rune before them
			if backCell.Rune == 0 {
				continue
			}
			changed = true

			if cursorX != x || cursorY != y {
				s.buf.WriteString("\x1b[")
				writeIntToBuf(&s.buf, y+1)
				s.buf.WriteByte(';')
				writeIntToBuf(&s.buf, x+1)
				s.buf.WriteByte('H')
			}

			s.writeCell(&s.buf, backCell)
			cursorX = x + cellWidth(backCell.Rune)
			cursorY = y
		}
	}

	if changed {
		s.buf.WriteString("\x1b[0m")
		s.lastValid = false
	}
	s.back.ClearDirtyFlags()

	if s.buf.Len() > 0 {
		s.writer.Write(s.buf.Bytes())
	}
}

// FlushFull does a complete redraw without diffing.
func (s *Screen) FlushFull() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	s.buf.WriteString("\x1b[2J\x1b[H")

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			cell := s.back.Get(x, y)
			if cell.Rune != 0 {
				s.writeCell(&s.buf, cell)
			}
			s.front.Set(x, y, cell)
		}
		if y < s.height-1 {
			s.buf.WriteString("\r\n")
		}
	}

	s.buf.WriteString("\x1b[0m")
	s.lastValid = false
	s.back.ClearDirtyFlags()

	s.writer.Write(s.buf.Bytes())
}

// writeCell writes a cell's style and rune to the buffer.
func (s *Screen) writeCell(buf *bytes.Buffer, cell Cell) {
	// Only emit style changes
	if !s.lastValid || cell.Style != s.lastStyle {
		s.writeStyle(buf, cell.Style)
		s.lastStyle = cell.Style
		s.lastValid = true
	}
	buf.WriteRune(cell.Rune)
}

// writeStyle writes the SGR sequence for a resolved style. The sequence
// starts from a reset, so only the style's Add set matters for attributes;
// Sub has already done its work during patching.
func (s *Screen) writeStyle(buf *bytes.Buffer, style Style) {
	buf.WriteString("\x1b[0")

	if style.Add&ModBold != 0 {
		buf.WriteString(";1")
	}
	if style.Add&ModDim != 0 {
		buf.WriteString(";2")
	}
	if style.Add&ModItalic != 0 {
		buf.WriteString(";3")
	}
	if style.Add&ModUnderlined != 0 {
		buf.WriteString(";4")
	}
	if style.Add&ModSlowBlink != 0 {
		buf.WriteString(";5")
	}
	if style.Add&ModRapidBlink != 0 {
		buf.WriteString(";6")
	}
	if style.Add&ModReversed != 0 {
		buf.WriteString(";7")
	}
	if style.Add&ModHidden != 0 {
		buf.WriteString(";8")
	}
	if style.Add&ModCrossedOut != 0 {
		buf.WriteString(";9")
	}

	s.writeColor(buf, style.Fg, true)
	s.writeColor(buf, style.Bg, false)

	buf.WriteByte('m')
}

// writeColor writes the SGR fragment for an optional color. An absent
// color and an explicit Reset both select the terminal default; the two
// are indistinguishable here because the preceding reset already dropped
// any inherited color.
func (s *Screen) writeColor(buf *bytes.Buffer, o OptColor, fg bool) {
	c, ok := o.Get()
	if !ok || c.kind == colorReset {
		if fg {
			buf.WriteString(";39")
		} else {
			buf.WriteString(";49")
		}
		return
	}

	switch c.kind {
	case colorNamed:
		base := 30
		if !fg {
			base = 40
		}
		if c.index >= 8 {
			// Bright range
			base += 60
			buf.WriteByte(';')
			writeIntToBuf(buf, base + int(c.index-8))
		} else {
			buf.WriteByte(';')
			writeIntToBuf(buf, base + int(c.index))
		}
	case colorIndexed:
		if fg {
			buf.WriteString(";38;5;")
		} else {
			buf.WriteString(";48;5;")
		}
		writeIntToBuf(buf, int(c.index))
	case colorRGB:
		if s.colorMode == ColorMode256 {
			if fg {
				buf.WriteString(";38;5;")
			} else {
				buf.WriteString(";48;5;")
			}
			writeIntToBuf(buf, int(c.Indexed256()))
			return
		}
		if fg {
			buf.WriteString(";38;2;")
		} else {
			buf.WriteString(";48;2;")
		}
		writeIntToBuf(buf, int(c.r))
		buf.WriteByte(';')
		writeIntToBuf(buf, int(c.g))
		buf.WriteByte(';')
		writeIntToBuf(buf, int(c.b))
	}
}

// writeIntToBuf writes an integer to the buffer without allocation.
func writeIntToBuf(buf *bytes.Buffer, n int) {
	if n == 0 {
		buf.WriteByte('0')
		return
	}
	if n < 0 {
		buf.WriteByte('-')
		n = -n
	}

	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	buf.Write(scratch[i:])
}

// writeString is a helper to write a string directly to the terminal.
func (s *Screen) writeString(str string) {
	io.WriteString(s.writer, str)
}

// Clear clears the back buffer.
func (s *Screen) Clear() {
	s.back.Clear()
}

// ShowCursor makes the cursor visible.
func (s *Screen) ShowCursor() {
	s.writeString("\x1b[?25h")
}

// HideCursor hides the cursor.
func (s *Screen) HideCursor() {
	s.writeString("\x1b[?25l")
}

// MoveCursor moves the cursor to the given position (0-indexed).
func (s *Screen) MoveCursor(x, y int) {
	var scratch [32]byte
	b := scratch[:0]
	b = append(b, "\x1b["...)
	b = appendInt(b, y+1)
	b = append(b, ';')
	b = appendInt(b, x+1)
	b = append(b, 'H')
	s.writer.Write(b)
}

// appendInt appends an integer to a byte slice without allocation.
func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, scratch[i:]...)
}
