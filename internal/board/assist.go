package board

// Satisfied reports whether the number of flags around p equals its mine
// count. It is recomputed from the current flags on every call.
func (b *Board) Satisfied(p Position) bool {
	b.mustContain("satisfied", p)
	return b.satisfied(p)
}

func (b *Board) satisfied(p Position) bool {
	flags := b.grid.countNeighbors(p, func(c *cell) bool {
		return c.state == Flagged
	})
	return flags == b.grid.at(p).adjacent
}

// autoFlagFrontier runs auto-flag on p and on every revealed neighbor of p,
// since revealing p can leave a neighbor with only mines around it.
func (b *Board) autoFlagFrontier(ch *chain, p Position) {
	b.autoFlag(ch, p)

	var buf [8]Position
	for _, n := range b.grid.neighbors(buf[:0], p) {
		if b.grid.at(n).state == Empty {
			b.autoFlag(ch, n)
		}
	}
}

// autoFlag flags the covered neighbors of a revealed numbered cell when
// every one of its unrevealed neighbors must be a mine. Zero cells never
// qualify.
func (b *Board) autoFlag(ch *chain, p Position) {
	c := b.grid.at(p)
	if c.state != Empty || c.adjacent == 0 {
		return
	}

	hidden := b.grid.countNeighbors(p, func(n *cell) bool {
		return n.state != Empty
	})
	if hidden != c.adjacent {
		return
	}

	var buf [8]Position
	for _, n := range b.grid.neighbors(buf[:0], p) {
		nc := b.grid.at(n)
		if nc.state != Covered {
			continue
		}
		nc.state = Flagged
		ch.stats.Flagged++

		if b.policy.AutoReveal {
			b.revealSatisfiedAround(ch, n)
		}
	}
}

// revealSatisfiedAround queues the covered neighbors of every revealed
// numbered cell next to the flag at p that the flag has satisfied.
func (b *Board) revealSatisfiedAround(ch *chain, p Position) {
	var buf [8]Position
	for _, n := range b.grid.neighbors(buf[:0], p) {
		c := b.grid.at(n)
		if c.state != Empty || c.adjacent == 0 {
			continue
		}
		if b.satisfied(n) {
			ch.pushNeighbors(n)
		}
	}
}
