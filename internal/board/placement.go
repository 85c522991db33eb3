package board

// attemptsPerCell scales the default placement budget with the board size.
// Rejection sampling needs about n*ln(n) draws to fill n free cells.
const attemptsPerCell = 64

// DefaultMaxPlacementAttempts returns the sampling budget used for a board
// of the given size when no explicit cap is configured.
func DefaultMaxPlacementAttempts(rows, columns int) int {
	return attemptsPerCell*rows*columns + 4096
}

// placeMines scatters the board's mines by rejection sampling, keeping the
// anchor and its neighbors clear, then computes every adjacency count.
func (b *Board) placeMines(anchor Position) {
	excluded := make([]bool, b.grid.size())
	excluded[b.grid.index(anchor)] = true
	for _, n := range b.grid.neighbors(make([]Position, 0, 8), anchor) {
		excluded[b.grid.index(n)] = true
	}

	limit := b.maxAttempts
	if limit <= 0 {
		limit = DefaultMaxPlacementAttempts(b.grid.rows, b.grid.cols)
	}

	sites := make([]Position, 0, b.mineCount)
	attempts := 0
	for len(sites) < b.mineCount {
		if attempts >= limit {
			b.logger.Error("mine placement exhausted",
				"placed", len(sites), "want", b.mineCount, "attempts", attempts)
			panic(ContractError{Op: "place", Pos: anchor, Err: ErrPlacementExhausted})
		}
		attempts++

		i := b.rng.IntN(b.grid.size())
		if excluded[i] {
			continue
		}
		excluded[i] = true
		sites = append(sites, b.grid.position(i))
	}

	b.layMines(sites)
	b.logger.Debug("mines placed",
		"anchor", anchor, "mines", len(sites), "attempts", attempts)
}

// layMines marks the given sites as mines and freezes the adjacency counts.
func (b *Board) layMines(sites []Position) {
	for _, p := range sites {
		b.grid.at(p).isMine = true
	}
	for i := range b.grid.cells {
		p := b.grid.position(i)
		b.grid.cells[i].adjacent = b.grid.countNeighbors(p, func(c *cell) bool {
			return c.isMine
		})
	}
	b.minesPlaced = true
}
