package core

import "fmt"

// Kick is a (row, column) offset tried when a rotation would be invalid.
type Kick struct {
	DRow int
	DCol int
}

// KickTable is an ordered list of kicks. The first entry is always {0, 0}.
type KickTable []Kick

var (
	// KicksColumns shifts sideways only.
	KicksColumns = KickTable{{0, 0}, {0, -1}, {0, 1}, {0, -2}, {0, 2}}

	// KicksExtended adds floor and ceiling kicks after the sideways ones.
	KicksExtended = KickTable{{0, 0}, {0, -1}, {0, 1}, {0, -2}, {0, 2}, {-1, 0}, {1, 0}, {-1, -1}, {-1, 1}}
)

// KickTableByName resolves a configured kick table name.
func KickTableByName(name string) (KickTable, error) {
	switch name {
	case "", "extended":
		return KicksExtended, nil
	case "columns":
		return KicksColumns, nil
	default:
		return nil, fmt.Errorf("core: unknown kick table %q", name)
	}
}

// tryRotate returns the first kicked rotation of p that the board accepts.
func tryRotate(b *Board, p Piece, kicks KickTable) (Piece, bool) {
	rotated := p.Rotated()
	for _, k := range kicks {
		candidate := rotated.Translated(k.DRow, k.DCol)
		if b.IsValid(candidate) {
			return candidate, true
		}
	}
	return p, false
}
