package entity

import (
	"testing"

	"grid-snake/game/types"
)

const cell = 9

// assertInSync checks that the index holds exactly the body's multiset
func assertInSync(t *testing.T, s *Snake) {
	t.Helper()
	counts := map[types.Position]int{}
	for _, p := range s.body {
		counts[p]++
	}
	if len(counts) != len(s.index) {
		t.Fatalf("index has %d cells, body has %d distinct cells", len(s.index), len(counts))
	}
	for p, n := range counts {
		if s.index[p] != n {
			t.Fatalf("index[%v] = %d, body holds %d", p, s.index[p], n)
		}
	}
}

func TestNewSnake(t *testing.T) {
	grid := types.DefaultConfig().Grid
	s := NewSnake(grid, types.NewRand(1))
	if s.Length() != 1 {
		t.Fatalf("expected single segment, got %d", s.Length())
	}
	if !grid.Contains(s.Head()) {
		t.Errorf("spawned off grid at %v", s.Head())
	}
	assertInSync(t, s)
}

func TestMoveRightFromOrigin(t *testing.T) {
	s := NewSnakeAt(types.Position{X: 0, Y: 0}, types.Right, cell)
	s.MoveForward(false)

	body := s.Body()
	if len(body) != 1 || body[0] != (types.Position{X: 9, Y: 0}) {
		t.Fatalf("body = %v, want [(9,0)]", body)
	}
	if s.Occupies(types.Position{X: 0, Y: 0}) {
		t.Error("old cell still indexed")
	}
	assertInSync(t, s)
}

func TestMoveForwardLength(t *testing.T) {
	s := NewSnakeAt(types.Position{X: 90, Y: 90}, types.Down, cell)

	s.MoveForward(true)
	if s.Length() != 2 {
		t.Fatalf("grow: length = %d, want 2", s.Length())
	}
	s.MoveForward(true)
	if s.Length() != 3 {
		t.Fatalf("grow: length = %d, want 3", s.Length())
	}
	for i := 0; i < 5; i++ {
		s.MoveForward(false)
		if s.Length() != 3 {
			t.Fatalf("slide %d: length = %d, want 3", i, s.Length())
		}
		assertInSync(t, s)
	}

	want := []types.Position{{X: 90, Y: 153}, {X: 90, Y: 144}, {X: 90, Y: 135}}
	for i, p := range s.Body() {
		if p != want[i] {
			t.Errorf("segment %d = %v, want %v", i, p, want[i])
		}
	}
	if s.Tail() != want[2] {
		t.Errorf("Tail() = %v, want %v", s.Tail(), want[2])
	}
}

func TestIndexStaysInSyncWhenHeadTakesVacatedTail(t *testing.T) {
	// A 2x2 loop: the head moves into the cell the tail is leaving
	body := []types.Position{{X: 9, Y: 0}, {X: 9, Y: 9}, {X: 0, Y: 9}, {X: 0, Y: 0}}
	s := NewSnakeFromBody(body, types.Left, cell)

	s.MoveForward(false)

	if s.Head() != (types.Position{X: 0, Y: 0}) {
		t.Fatalf("head = %v, want (0,0)", s.Head())
	}
	if s.Count(s.Head()) != 1 {
		t.Errorf("head counted %d times, want 1", s.Count(s.Head()))
	}
	if !s.Occupies(s.Head()) {
		t.Error("head missing from index")
	}
	assertInSync(t, s)
}

func TestChangeDirection(t *testing.T) {
	tests := []struct {
		current types.Direction
		next    types.Direction
		want    bool
	}{
		{types.Up, types.Down, false},
		{types.Down, types.Up, false},
		{types.Left, types.Right, false},
		{types.Right, types.Left, false},
		{types.Up, types.Up, true},
		{types.Up, types.Left, true},
		{types.Up, types.Right, true},
		{types.Left, types.Left, true},
		{types.Left, types.Up, true},
		{types.Left, types.Down, true},
	}
	for _, tt := range tests {
		s := NewSnakeAt(types.Position{X: 90, Y: 90}, tt.current, cell)
		if got := s.ChangeDirection(tt.next); got != tt.want {
			t.Errorf("%v -> %v: accepted = %t, want %t", tt.current, tt.next, got, tt.want)
		}
		if s.Direction() != tt.current {
			t.Errorf("%v -> %v: direction changed before move", tt.current, tt.next)
		}
	}
}

func TestOnlyFirstChangePerTick(t *testing.T) {
	s := NewSnakeAt(types.Position{X: 90, Y: 90}, types.Right, cell)

	if !s.ChangeDirection(types.Up) {
		t.Fatal("first change rejected")
	}
	// Up then Left within one tick would be a reversal via two turns
	if s.ChangeDirection(types.Left) {
		t.Fatal("second change in the same tick accepted")
	}
	if pending, ok := s.Pending(); !ok || pending != types.Up {
		t.Fatalf("pending = %v (%t), want Up", pending, ok)
	}

	s.MoveForward(false)
	if s.Direction() != types.Up || s.Head() != (types.Position{X: 90, Y: 81}) {
		t.Fatalf("after move: direction %v head %v", s.Direction(), s.Head())
	}
	if _, ok := s.Pending(); ok {
		t.Error("pending not consumed by move")
	}

	// Next tick accepts a new change, checked against Up
	if s.ChangeDirection(types.Down) {
		t.Error("reversal of the new heading accepted")
	}
	if !s.ChangeDirection(types.Left) {
		t.Error("valid change after move rejected")
	}
}

func TestNewSnakeFromBodyPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty body")
		}
	}()
	NewSnakeFromBody(nil, types.Up, cell)
}
