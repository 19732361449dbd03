package core_test

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

func TestRotationCounts(t *testing.T) {
	expected := map[core.Kind]int{
		core.KindStraight: 2,
		core.KindLLeft:    4,
		core.KindLRight:   4,
		core.KindSquare:   1,
		core.KindS:        2,
		core.KindZ:        2,
		core.KindT:        4,
	}

	for _, k := range core.Kinds() {
		if got := len(core.Rotations(k)); got != expected[k] {
			t.Errorf("len(Rotations(%v)) = %d, want %d", k, got, expected[k])
		}
	}
}

func TestEveryStateHasFourCells(t *testing.T) {
	for _, k := range core.Kinds() {
		for rot := range core.Rotations(k) {
			p := core.Piece{Kind: k, Row: 5, Col: 5, Rotation: rot}
			if n := len(p.CellList()); n != 4 {
				t.Errorf("%v rotation %d has %d cells, want 4", k, rot, n)
			}
		}
	}
}

func TestColorKeysDistinct(t *testing.T) {
	seen := make(map[core.ColorKey]core.Kind)
	for _, k := range core.Kinds() {
		key := k.ColorKey()
		if key == core.NoColor {
			t.Errorf("%v has no color key", k)
		}
		if other, dup := seen[key]; dup {
			t.Errorf("%v and %v share color %v", k, other, key)
		}
		seen[key] = k
	}
}

func TestStraightCells(t *testing.T) {
	p := core.NewPiece(core.KindStraight, 3)
	cells := p.CellList()
	want := []core.Cell{{Row: 1, Col: 3}, {Row: 1, Col: 4}, {Row: 1, Col: 5}, {Row: 1, Col: 6}}

	if len(cells) != len(want) {
		t.Fatalf("cells = %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, cells[i], want[i])
		}
	}
}

func TestCellsRestartable(t *testing.T) {
	p := core.NewPiece(core.KindT, 4)
	first := p.CellList()
	p.Translate(2, 1)
	second := p.CellList()

	for i := range first {
		if second[i].Row != first[i].Row+2 || second[i].Col != first[i].Col+1 {
			t.Errorf("cell %d = %v, want %v shifted by (2,1)", i, second[i], first[i])
		}
	}

	// Stopping early must not panic.
	for range p.Cells() {
		break
	}
}

func TestRotateRoundTrip(t *testing.T) {
	for _, k := range core.Kinds() {
		count := len(core.Rotations(k))
		for start := 0; start < count; start++ {
			p := core.Piece{Kind: k, Row: 4, Col: 4, Rotation: start}
			p.Rotate()
			for i := 0; i < count-1; i++ {
				p.Rotate()
			}
			if p.Rotation != start {
				t.Errorf("%v from %d: rotation after full cycle = %d", k, start, p.Rotation)
			}
		}
	}
}

func TestRotatedLeavesOriginal(t *testing.T) {
	p := core.NewPiece(core.KindLLeft, 3)
	r := p.Rotated()
	if p.Rotation != 0 || r.Rotation != 1 {
		t.Errorf("Rotated() mutated original or failed: %d -> %d", p.Rotation, r.Rotation)
	}
}

func TestOutOfRangeRotationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Cells() with out-of-range rotation should panic")
		}
	}()
	p := core.Piece{Kind: core.KindSquare, Rotation: 1}
	p.CellList()
}

func TestIsValidRejectsOutside(t *testing.T) {
	b := core.NewBoard(10, 20)
	for _, k := range core.Kinds() {
		for rot := range core.Rotations(k) {
			for row := -3; row < 23; row++ {
				for col := -3; col < 13; col++ {
					p := core.Piece{Kind: k, Row: row, Col: col, Rotation: rot}
					outside := false
					for c := range p.Cells() {
						if c.Row < 0 || c.Row >= 20 || c.Col < 0 || c.Col >= 10 {
							outside = true
						}
					}
					if outside && b.IsValid(p) {
						t.Fatalf("IsValid(%+v) = true for a piece outside the board", p)
					}
					if !outside && !b.IsValid(p) {
						t.Fatalf("IsValid(%+v) = false on an empty board", p)
					}
				}
			}
		}
	}
}
