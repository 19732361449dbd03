package core

import "fmt"

// Board is the grid of settled cells. Cells hold NoColor when empty.
// Rows are indexed top to bottom; row Height()-1 is the resting side.
type Board struct {
	width  int
	height int
	rows   [][]ColorKey
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.rows = make([][]ColorKey, height)
	for r := range b.rows {
		b.rows[r] = make([]ColorKey, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether the cell lies on the board.
func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

// At returns the contents of a cell. Out-of-bounds cells read as NoColor.
func (b *Board) At(row, col int) ColorKey {
	if !b.InBounds(Cell{Row: row, Col: col}) {
		return NoColor
	}
	return b.rows[row][col]
}

// Set writes a cell directly. Out-of-bounds writes are ignored.
// Used to build fixtures and by Lock.
func (b *Board) Set(row, col int, key ColorKey) {
	if !b.InBounds(Cell{Row: row, Col: col}) {
		return
	}
	b.rows[row][col] = key
}

// IsValid reports whether every cell of the piece is on the board and empty.
// Cells above row 0 are invalid.
func (b *Board) IsValid(p Piece) bool {
	for c := range p.Cells() {
		if !b.InBounds(c) || b.rows[c.Row][c.Col] != NoColor {
			return false
		}
	}
	return true
}

// Lock writes the piece's color into every cell it occupies.
// Locking an invalid piece is a caller bug and panics.
func (b *Board) Lock(p Piece) {
	if !b.IsValid(p) {
		panic(fmt.Sprintf("core: lock of invalid piece %s at (%d,%d) rot %d", p.Kind, p.Row, p.Col, p.Rotation))
	}
	key := p.ColorKey()
	for c := range p.Cells() {
		b.rows[c.Row][c.Col] = key
	}
}

// rowFull reports whether every cell in the row is occupied.
func (b *Board) rowFull(r int) bool {
	for _, cell := range b.rows[r] {
		if cell == NoColor {
			return false
		}
	}
	return true
}

// FullRows returns the indices of completely filled rows, bottom first.
func (b *Board) FullRows() []int {
	var full []int
	for r := b.height - 1; r >= 0; r-- {
		if b.rowFull(r) {
			full = append(full, r)
		}
	}
	return full
}

// ClearLines removes every full row and returns how many were removed.
// Rows above a cleared row shift down by one and an empty row enters at the top.
func (b *Board) ClearLines() int {
	cleared := 0
	for r := b.height - 1; r >= 0; {
		if !b.rowFull(r) {
			r--
			continue
		}
		cleared++
		// Reuse the cleared row's storage as the new top row.
		removed := b.rows[r]
		copy(b.rows[1:r+1], b.rows[:r])
		for c := range removed {
			removed[c] = NoColor
		}
		b.rows[0] = removed
		// Stay on r: it now holds the row that was above.
	}
	return cleared
}

// Rows returns a deep copy of the grid.
func (b *Board) Rows() [][]ColorKey {
	out := make([][]ColorKey, b.height)
	for r, row := range b.rows {
		out[r] = make([]ColorKey, b.width)
		copy(out[r], row)
	}
	return out
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.rows {
		for _, cell := range row {
			if cell != NoColor {
				n++
			}
		}
	}
	return n
}
