package tint

import "github.com/mattn/go-runewidth"

// Cell is a single character cell: a rune plus the resolved style
// accumulated for it so far. A Rune of 0 marks the continuation half of a
// double-width character; renderers skip it.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell with no style applied.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// NewCell creates a cell with the given rune and style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// Buffer is a 2D grid of cells representing a drawable surface. Drawing
// layers apply incremental styles to cells; the buffer folds them in
// arrival order so each cell always holds one resolved style.
type Buffer struct {
	cells  []Cell
	width  int
	height int
	dirty  []bool // per-row write flags for diff rendering
}

// NewBuffer creates a new buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
		dirty:  make([]bool, height),
	}
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// index converts x,y coordinates to a slice index.
func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

// Get returns the cell at the given coordinates.
// Returns an empty cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// Set replaces the cell at the given coordinates.
// Does nothing if out of bounds.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
	b.dirty[y] = true
}

// SetRune sets just the rune at the given coordinates, preserving the
// cell's resolved style.
func (b *Buffer) SetRune(x, y int, r rune) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)].Rune = r
	b.dirty[y] = true
}

// SetStyle patches the given incremental style onto the cell's resolved
// style. Successive calls on the same cell fold left-to-right, so the cell
// ends up with the combined effect of every layer that touched it.
func (b *Buffer) SetStyle(x, y int, s Style) {
	if !b.InBounds(x, y) {
		return
	}
	idx := b.index(x, y)
	b.cells[idx].Style = b.cells[idx].Style.Patch(s)
	b.dirty[y] = true
}

// PatchRect patches the given style onto every cell in a rectangular
// region.
func (b *Buffer) PatchRect(x, y, width, height int, s Style) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			b.SetStyle(x+dx, y+dy, s)
		}
	}
}

// Fill fills the entire buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
	for y := range b.dirty {
		b.dirty[y] = true
	}
}

// Clear clears the buffer to empty cells with no style.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
}

// FillRect fills a rectangular region with the given cell.
func (b *Buffer) FillRect(x, y, width, height int, c Cell) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			b.Set(x+dx, y+dy, c)
		}
	}
}

// WriteString writes a string at the given coordinates, overwriting runes
// and patching the style onto each touched cell. Double-width runes occupy
// two cells; the second gets a zero-rune placeholder. Zero-width runes are
// skipped. Returns the number of columns advanced.
func (b *Buffer) WriteString(x, y int, s string, style Style) int {
	return b.WriteStringClipped(x, y, s, style, b.width)
}

// WriteStringClipped writes a string, stopping once maxWidth columns have
// been used. Returns the number of columns advanced.
func (b *Buffer) WriteStringClipped(x, y int, s string, style Style, maxWidth int) int {
	written := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if written+w > maxWidth || !b.InBounds(x+w-1, y) {
			break
		}
		b.SetRune(x, y, r)
		b.SetStyle(x, y, style)
		if w == 2 {
			b.SetRune(x+1, y, 0)
			b.SetStyle(x+1, y, style)
		}
		x += w
		written += w
	}
	return written
}

// cellWidth returns the display width of a rune. Zero-width runes still
// advance the cursor by one column in most terminals.
func cellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// HLine draws a horizontal line of the given rune.
func (b *Buffer) HLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		b.SetRune(x+i, y, r)
		b.SetStyle(x+i, y, style)
	}
}

// VLine draws a vertical line of the given rune.
func (b *Buffer) VLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		b.SetRune(x, y+i, r)
		b.SetStyle(x, y+i, style)
	}
}

// RowDirty reports whether the row has been written to since the dirty
// flags were last cleared.
func (b *Buffer) RowDirty(y int) bool {
	return y >= 0 && y < b.height && b.dirty[y]
}

// ClearDirtyFlags resets all per-row write flags.
func (b *Buffer) ClearDirtyFlags() {
	for y := range b.dirty {
		b.dirty[y] = false
	}
}

// String returns the buffer's runes as a string, one line per row, for
// testing and debugging. Placeholder cells render as nothing (the wide
// rune before them covers their column).
func (b *Buffer) String() string {
	var out []byte
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if r := b.cells[b.index(x, y)].Rune; r != 0 {
				out = append(out, string(r)...)
			}
		}
		if y < b.height-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// Resize resizes the buffer to new dimensions.
// Existing content is preserved where it fits.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}

	newCells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range newCells {
		newCells[i] = empty
	}

	minWidth := b.width
	if width < minWidth {
		minWidth = width
	}
	minHeight := b.height
	if height < minHeight {
		minHeight = height
	}

	for y := 0; y < minHeight; y++ {
		for x := 0; x < minWidth; x++ {
			newCells[y*width+x] = b.cells[y*b.width+x]
		}
	}

	b.cells = newCells
	b.width = width
	b.height = height
	b.dirty = make([]bool, height)
	for y := range b.dirty {
		b.dirty[y] = true
	}
}
