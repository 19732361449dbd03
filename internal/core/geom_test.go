package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("Right/Bottom = %d/%d, expected 25/25", r.Right(), r.Bottom())
	}
}

func TestRectFits(t *testing.T) {
	r := NewRect(0, 1, 40, 23)

	tests := []struct {
		name     string
		w, h     int
		expected bool
	}{
		{"smaller", 36, 22, true},
		{"exact", 40, 23, true},
		{"too wide", 41, 10, false},
		{"too tall", 10, 24, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Fits(tc.w, tc.h); got != tc.expected {
				t.Errorf("Fits(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	got := NewRect(2, 3, 22, 22).Inset(1)
	want := NewRect(3, 4, 20, 20)
	if got != want {
		t.Errorf("Inset(1) = %+v, expected %+v", got, want)
	}

	if got := NewRect(0, 0, 1, 1).Inset(1); got.W != 0 || got.H != 0 {
		t.Errorf("Inset of a 1x1 rect = %+v, expected zero size", got)
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"even", NewRect(0, 0, 80, 24), 20, 10, NewRect(30, 7, 20, 10)},
		{"offset", NewRect(0, 1, 80, 23), 37, 22, NewRect(21, 1, 37, 22)},
		{"oversized pinned", NewRect(4, 2, 10, 5), 30, 9, NewRect(4, 2, 30, 9)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.outer.Center(tc.w, tc.h); got != tc.expected {
				t.Errorf("Center(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestColorValid(t *testing.T) {
	if !ColorBright.Valid() || !ColorDefault.Valid() {
		t.Error("predefined colors should be valid")
	}
	if Color(200).Valid() {
		t.Error("Color(200) should not be valid")
	}
}
