// Package core provides the rules engine for Blockfall.
// This package is UI-agnostic and deterministic for a given RNG seed.
package core

import "fmt"

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindStraight Kind = iota
	KindLLeft
	KindLRight
	KindSquare
	KindS
	KindZ
	KindT

	kindCount = 7
)

// Kinds returns every piece kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindStraight, KindLLeft, KindLRight, KindSquare, KindS, KindZ, KindT}
}

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStraight:
		return "Straight"
	case KindLLeft:
		return "LLeft"
	case KindLRight:
		return "LRight"
	case KindSquare:
		return "Square"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindT:
		return "T"
	default:
		return "Unknown"
	}
}

// ColorKey is the fixed display identity of a kind. Renderers map it to a color;
// the engine treats it as an opaque token. NoColor marks an empty board cell.
type ColorKey uint8

const (
	NoColor ColorKey = iota
	ColorLightBlue
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorRed
	ColorPurple
)

// String returns the color name.
func (c ColorKey) String() string {
	switch c {
	case NoColor:
		return "none"
	case ColorLightBlue:
		return "light-blue"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// ColorKey returns the display identity of the kind.
func (k Kind) ColorKey() ColorKey {
	switch k {
	case KindStraight:
		return ColorLightBlue
	case KindLLeft:
		return ColorBlue
	case KindLRight:
		return ColorOrange
	case KindSquare:
		return ColorYellow
	case KindS:
		return ColorGreen
	case KindZ:
		return ColorRed
	case KindT:
		return ColorPurple
	}
	panic(fmt.Sprintf("core: unknown piece kind %d", k))
}

// RotationState is one orientation of a piece shape.
// A filled local cell (r, c) maps to board cell (row+r+TransRow, col+c+TransCol).
type RotationState struct {
	Rows     [][]bool
	TransRow int
	TransCol int
}

// catalog is built once and never mutated.
var catalog = buildCatalog()

// Rotations returns the ordered rotation states of a kind.
// The returned slice is shared and must not be modified.
func Rotations(k Kind) []RotationState {
	if int(k) >= len(catalog) {
		panic(fmt.Sprintf("core: unknown piece kind %d", k))
	}
	return catalog[k]
}

func buildCatalog() [kindCount][]RotationState {
	var c [kindCount][]RotationState
	for _, k := range Kinds() {
		c[k] = shapeOf(k)
	}
	return c
}

// shapeOf holds the raw shape table. Every kind must have a case here.
func shapeOf(k Kind) []RotationState {
	switch k {
	case KindStraight:
		return []RotationState{
			state(1, 0, "####"),
			state(-1, 1, "#", "#", "#", "#"),
		}
	case KindLLeft:
		return []RotationState{
			state(1, -1, "###", "..#"),
			state(-1, 0, ".#", ".#", "##"),
			state(0, 0, "#..", "###"),
			state(0, 1, "##", "#.", "#."),
		}
	case KindLRight:
		return []RotationState{
			state(1, -1, "###", "#.."),
			state(-1, 0, "##", ".#", ".#"),
			state(0, 0, "..#", "###"),
			state(0, 1, "#.", "#.", "##"),
		}
	case KindSquare:
		return []RotationState{
			state(0, 0, "##", "##"),
		}
	case KindS:
		return []RotationState{
			state(1, 0, ".##", "##."),
			state(-1, 0, "#.", "##", ".#"),
		}
	case KindZ:
		return []RotationState{
			state(1, 0, "##.", ".##"),
			state(-1, 0, ".#", "##", "#."),
		}
	case KindT:
		return []RotationState{
			state(1, -1, "###", ".#."),
			state(-1, 0, ".#", "##", ".#"),
			state(0, 0, ".#.", "###"),
			state(0, 1, "#.", "##", "#."),
		}
	}
	panic(fmt.Sprintf("core: no shape for piece kind %d", k))
}

// state parses a rotation state from rows of '#' (filled) and '.' (empty).
func state(transRow, transCol int, rows ...string) RotationState {
	grid := make([][]bool, len(rows))
	for r, line := range rows {
		grid[r] = make([]bool, len(line))
		for c, ch := range line {
			grid[r][c] = ch == '#'
		}
	}
	return RotationState{Rows: grid, TransRow: transRow, TransCol: transCol}
}
