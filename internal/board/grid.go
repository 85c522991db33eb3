package board

// grid owns the cells in row-major order: index = row*cols + col.
type grid struct {
	rows  int
	cols  int
	cells []cell
}

func newGrid(rows, cols int) grid {
	// zero value of cell is {Covered, false, 0}
	return grid{
		rows:  rows,
		cols:  cols,
		cells: make([]cell, rows*cols),
	}
}

func (g *grid) contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

func (g *grid) position(i int) Position {
	return Position{Row: i / g.cols, Col: i % g.cols}
}

// at returns the cell at p. Out-of-range access panics.
func (g *grid) at(p Position) *cell {
	if !g.contains(p) {
		panic(ContractError{Op: "access", Pos: p})
	}
	return &g.cells[g.index(p)]
}

func (g *grid) size() int {
	return len(g.cells)
}
