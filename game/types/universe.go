package types

// Universe is the immutable set of every valid cell on a grid.
// Cells are kept in row-major order so enumeration is stable.
type Universe struct {
	cells []Position
	index map[Position]struct{}
}

// NewUniverse materializes every cell of grid
func NewUniverse(grid Grid) *Universe {
	cols, rows := grid.Columns(), grid.Rows()
	u := &Universe{
		cells: make([]Position, 0, len(cols)*len(rows)),
		index: make(map[Position]struct{}, len(cols)*len(rows)),
	}
	for _, y := range rows {
		for _, x := range cols {
			p := Position{X: x, Y: y}
			u.cells = append(u.cells, p)
			u.index[p] = struct{}{}
		}
	}
	return u
}

// Len returns the number of cells
func (u *Universe) Len() int {
	return len(u.cells)
}

// At returns the i-th cell in row-major order
func (u *Universe) At(i int) Position {
	return u.cells[i]
}

// Contains reports whether p is a valid cell
func (u *Universe) Contains(p Position) bool {
	_, ok := u.index[p]
	return ok
}

// Each calls fn for every cell in order until fn returns false
func (u *Universe) Each(fn func(Position) bool) {
	for _, p := range u.cells {
		if !fn(p) {
			return
		}
	}
}

// Cells returns a copy of every cell
func (u *Universe) Cells() []Position {
	out := make([]Position, len(u.cells))
	copy(out, u.cells)
	return out
}

// Occupancy answers membership queries for cells that food must avoid
type Occupancy interface {
	Occupies(p Position) bool
	Len() int // Number of distinct occupied cells
}

// PositionSet is a plain Occupancy backed by a map
type PositionSet map[Position]struct{}

// NewPositionSet builds a set from ps
func NewPositionSet(ps ...Position) PositionSet {
	s := make(PositionSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

func (s PositionSet) Occupies(p Position) bool {
	_, ok := s[p]
	return ok
}

func (s PositionSet) Len() int {
	return len(s)
}
