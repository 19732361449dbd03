package core

import (
	"fmt"
	"iter"
)

// Cell is an absolute board coordinate. Row 0 is the top of the board.
type Cell struct {
	Row int
	Col int
}

// Piece is the live state of a piece on the board.
// It is a value type: copies are independent candidates.
type Piece struct {
	Kind     Kind
	Row      int
	Col      int
	Rotation int
}

// NewPiece creates a piece of the given kind at row 0 and the given column.
func NewPiece(k Kind, col int) Piece {
	return Piece{Kind: k, Row: 0, Col: col, Rotation: 0}
}

// rotationState returns the active rotation state.
// An out-of-range rotation index is a caller bug.
func (p Piece) rotationState() RotationState {
	states := Rotations(p.Kind)
	if p.Rotation < 0 || p.Rotation >= len(states) {
		panic(fmt.Sprintf("core: rotation %d out of range for %s", p.Rotation, p.Kind))
	}
	return states[p.Rotation]
}

// Cells yields every board cell the piece occupies.
// The sequence is recomputed on each iteration.
func (p Piece) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		rs := p.rotationState()
		for r, row := range rs.Rows {
			for c, filled := range row {
				if !filled {
					continue
				}
				if !yield(Cell{Row: p.Row + r + rs.TransRow, Col: p.Col + c + rs.TransCol}) {
					return
				}
			}
		}
	}
}

// CellList collects Cells into a slice.
func (p Piece) CellList() []Cell {
	cells := make([]Cell, 0, 4)
	for c := range p.Cells() {
		cells = append(cells, c)
	}
	return cells
}

// Rotate advances to the next rotation state, wrapping around.
// It does not check board validity.
func (p *Piece) Rotate() {
	p.Rotation = (p.Rotation + 1) % len(Rotations(p.Kind))
}

// Translate offsets the piece. It does not check bounds.
func (p *Piece) Translate(dRow, dCol int) {
	p.Row += dRow
	p.Col += dCol
}

// Rotated returns a rotated copy.
func (p Piece) Rotated() Piece {
	p.Rotate()
	return p
}

// Translated returns a translated copy.
func (p Piece) Translated(dRow, dCol int) Piece {
	p.Translate(dRow, dCol)
	return p
}

// ColorKey returns the display identity of the piece's kind.
func (p Piece) ColorKey() ColorKey {
	return p.Kind.ColorKey()
}
