package types

import "testing"

func TestUniverseDefaultGrid(t *testing.T) {
	u := NewUniverse(DefaultConfig().Grid)
	if u.Len() != 1156 {
		t.Fatalf("expected 1156 cells, got %d", u.Len())
	}

	seen := make(map[Position]bool, u.Len())
	u.Each(func(p Position) bool {
		if seen[p] {
			t.Errorf("duplicate cell %v", p)
		}
		seen[p] = true
		if p.X < 0 || p.X > 297 || p.Y < 0 || p.Y > 297 || p.X%9 != 0 || p.Y%9 != 0 {
			t.Errorf("invalid cell %v", p)
		}
		return true
	})

	if !u.Contains(Position{297, 297}) {
		t.Error("last cell missing")
	}
	if u.Contains(Position{300, 0}) || u.Contains(Position{4, 0}) {
		t.Error("universe contains off-grid cell")
	}
}

func TestUniverseRowMajorOrder(t *testing.T) {
	u := NewUniverse(Grid{Width: 20, Height: 20, CellSize: 10})
	want := []Position{{0, 0}, {10, 0}, {0, 10}, {10, 10}}
	if u.Len() != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), u.Len())
	}
	for i, p := range want {
		if u.At(i) != p {
			t.Errorf("At(%d) = %v, want %v", i, u.At(i), p)
		}
	}
}

func TestUniverseCellsIsCopy(t *testing.T) {
	u := NewUniverse(Grid{Width: 20, Height: 20, CellSize: 10})
	cells := u.Cells()
	cells[0] = Position{X: -1, Y: -1}
	if u.At(0) != (Position{0, 0}) {
		t.Error("mutating Cells() result changed the universe")
	}
}

func TestUniverseEmptyForDegenerateGrid(t *testing.T) {
	u := NewUniverse(Grid{Width: 5, Height: 300, CellSize: 9})
	if u.Len() != 0 {
		t.Errorf("expected empty universe, got %d cells", u.Len())
	}
}

func TestPositionSet(t *testing.T) {
	s := NewPositionSet(Position{0, 0}, Position{9, 0}, Position{0, 0})
	if s.Len() != 2 {
		t.Errorf("expected 2 distinct cells, got %d", s.Len())
	}
	if !s.Occupies(Position{9, 0}) || s.Occupies(Position{18, 0}) {
		t.Error("membership mismatch")
	}
}
