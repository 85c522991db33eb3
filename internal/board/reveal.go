package board

// ChainStats describes the propagation triggered by the last Expose or
// ToggleFlag call.
type ChainStats struct {
	Visited   int // positions taken off the work-list
	Exposed   int // cells that became Empty or Detonated
	Flagged   int // cells flagged by the auto-flag assist
	Detonated bool
}

// chain is the explicit work-list shared by flood reveal and the assist
// behaviors. Every position is queued at most once per chain.
type chain struct {
	b      *Board
	queue  []Position
	queued []bool
	stats  ChainStats
}

func (b *Board) newChain() *chain {
	return &chain{
		b:      b,
		queued: make([]bool, b.grid.size()),
	}
}

// push queues p for exposure if it is still covered and not yet queued.
func (ch *chain) push(p Position) {
	i := ch.b.grid.index(p)
	if ch.queued[i] || ch.b.grid.cells[i].state != Covered {
		return
	}
	ch.queued[i] = true
	ch.queue = append(ch.queue, p)
}

// pushNeighbors queues every covered neighbor of p.
func (ch *chain) pushNeighbors(p Position) {
	var buf [8]Position
	for _, n := range ch.b.grid.neighbors(buf[:0], p) {
		ch.push(n)
	}
}

// run drains the work-list. It terminates because every iteration either
// skips a position or moves a covered cell to a terminal state.
func (ch *chain) run() {
	for len(ch.queue) > 0 {
		p := ch.queue[len(ch.queue)-1]
		ch.queue = ch.queue[:len(ch.queue)-1]
		ch.stats.Visited++
		ch.b.exposeOne(ch, p)
	}
	ch.b.last = ch.stats
}

// Expose uncovers the cell at p. Flagged and already revealed cells are left
// alone. The first call places the mines, keeping p and its neighbors clear.
// Exposing a zero cell floods through its connected zero region; the assist
// policy may flag and reveal further cells before Expose returns.
func (b *Board) Expose(p Position) {
	b.mustContain("expose", p)
	if b.grid.at(p).state != Covered {
		b.last = ChainStats{}
		return
	}

	if !b.minesPlaced {
		b.placeMines(p)
	}

	ch := b.newChain()
	ch.push(p)
	ch.run()

	if ch.stats.Detonated {
		b.logger.Debug("mine detonated", "pos", p)
	}
}

// exposeOne reveals a single covered cell and schedules whatever the reveal
// makes certain.
func (b *Board) exposeOne(ch *chain, p Position) {
	c := b.grid.at(p)
	if c.state != Covered {
		return
	}
	ch.stats.Exposed++

	if c.isMine {
		c.state = Detonated
		ch.stats.Detonated = true
		return
	}
	c.state = Empty

	if c.adjacent == 0 {
		ch.pushNeighbors(p)
	} else if b.policy.AutoReveal && b.satisfied(p) {
		ch.pushNeighbors(p)
	}

	if b.policy.AutoFlag {
		b.autoFlagFrontier(ch, p)
	}
}

// ToggleFlag flips a cell between Covered and Flagged. Revealed cells are
// left alone. With AutoReveal on, placing a flag exposes the covered
// neighbors of every cell it satisfies.
func (b *Board) ToggleFlag(p Position) {
	b.mustContain("flag", p)
	b.last = ChainStats{}

	c := b.grid.at(p)
	switch c.state {
	case Covered:
		c.state = Flagged
	case Flagged:
		c.state = Covered
		return
	default:
		return
	}

	if !b.policy.AutoReveal {
		return
	}
	ch := b.newChain()
	b.revealSatisfiedAround(ch, p)
	ch.run()
}

// LastChain returns the propagation statistics of the most recent Expose
// or ToggleFlag.
func (b *Board) LastChain() ChainStats {
	return b.last
}

// Chord exposes the covered neighbors of a revealed numbered cell whose
// flags already satisfy it. It is the manual counterpart of AutoReveal and
// does nothing on any other cell.
func (b *Board) Chord(p Position) {
	b.mustContain("chord", p)
	b.last = ChainStats{}

	c := b.grid.at(p)
	if c.state != Empty || c.adjacent == 0 || !b.satisfied(p) {
		return
	}
	ch := b.newChain()
	ch.pushNeighbors(p)
	ch.run()
}
