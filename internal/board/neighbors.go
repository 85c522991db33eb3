package board

// neighborDeltas lists the eight surrounding offsets.
var neighborDeltas = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// neighbors appends to dst every in-bounds position adjacent to p.
func (g *grid) neighbors(dst []Position, p Position) []Position {
	for _, d := range neighborDeltas {
		n := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if g.contains(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Neighbors returns the positions adjacent to p, clipped to the grid.
// Corners have 3, edges 5 and interior cells 8. The order is unspecified.
func (b *Board) Neighbors(p Position) []Position {
	b.mustContain("neighbors", p)
	return b.grid.neighbors(make([]Position, 0, 8), p)
}

// countNeighbors counts the neighbors of p matching pred.
func (g *grid) countNeighbors(p Position, pred func(*cell) bool) int {
	n := 0
	for _, d := range neighborDeltas {
		q := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if g.contains(q) && pred(&g.cells[g.index(q)]) {
			n++
		}
	}
	return n
}
