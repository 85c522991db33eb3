package board

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	assistOff  = AssistPolicy{}
	flagOnly   = AssistPolicy{AutoFlag: true}
	revealOnly = AssistPolicy{AutoReveal: true}
	assistOn   = AssistPolicy{AutoFlag: true, AutoReveal: true}
)

func TestSatisfied(t *testing.T) {
	b := newFixture(t, 3, 3, []Position{P(0, 0)}, assistOff)
	b.Expose(P(1, 1))

	assert.False(t, b.Satisfied(P(1, 1)))

	b.ToggleFlag(P(0, 0))
	assert.True(t, b.Satisfied(P(1, 1)))

	b.ToggleFlag(P(0, 1))
	assert.False(t, b.Satisfied(P(1, 1)), "over-flagged cell is not satisfied")

	b.ToggleFlag(P(0, 1))
	b.ToggleFlag(P(0, 0))
	assert.False(t, b.Satisfied(P(1, 1)), "removing a flag must be seen")
}

func TestAutoFlag(t *testing.T) {
	b := newFixture(t, 1, 3, []Position{P(0, 0)}, flagOnly)

	b.Expose(P(0, 2))

	assert.Equal(t, Flagged, b.Cell(P(0, 0)).State)
	assert.Equal(t, 0, b.MinesRemaining())
	assert.Equal(t, ChainStats{Visited: 2, Exposed: 2, Flagged: 1}, b.LastChain())
}

func TestAutoFlagDisabled(t *testing.T) {
	b := newFixture(t, 1, 3, []Position{P(0, 0)}, assistOff)

	b.Expose(P(0, 2))

	assert.Equal(t, Covered, b.Cell(P(0, 0)).State)
	assert.Equal(t, 1, b.MinesRemaining())
}

func TestAutoFlagIgnoresZeroCells(t *testing.T) {
	b, err := New(3, 3, 0, flagOnly)
	require.NoError(t, err)

	b.Expose(P(1, 1))

	assert.Equal(t, Counts{Empty: 9}, b.Counts())
	assert.Equal(t, 0, b.LastChain().Flagged)
}

func TestAutoRevealAfterFlag(t *testing.T) {
	b := newFixture(t, 3, 3, []Position{P(0, 0)}, revealOnly)

	b.Expose(P(1, 1))
	require.Equal(t, Counts{Covered: 8, Empty: 1}, b.Counts())

	b.ToggleFlag(P(0, 0))

	assert.Equal(t, Counts{Empty: 8, Flagged: 1}, b.Counts())
	assert.Equal(t, 7, b.LastChain().Exposed)
}

func TestAutoRevealOnExpose(t *testing.T) {
	b := newFixture(t, 3, 3, []Position{P(0, 0)}, revealOnly)

	b.ToggleFlag(P(0, 0))
	require.Equal(t, Counts{Covered: 8, Flagged: 1}, b.Counts())

	b.Expose(P(1, 1))

	assert.Equal(t, Counts{Empty: 8, Flagged: 1}, b.Counts())
}

func TestAutoRevealTrustsFlags(t *testing.T) {
	b := newFixture(t, 3, 3, []Position{P(0, 0)}, revealOnly)

	b.Expose(P(1, 1))
	b.ToggleFlag(P(0, 1))

	assert.Equal(t, Detonated, b.Cell(P(0, 0)).State)
	assert.True(t, b.LastChain().Detonated)
}

func TestAssistChainsFeedEachOther(t *testing.T) {
	mines := []Position{P(0, 0), P(2, 2)}

	setup := func(t *testing.T, policy AssistPolicy) *Board {
		t.Helper()
		b := newFixture(t, 3, 3, mines, assistOff)
		b.Expose(P(0, 2))
		require.Equal(t, ""+
			"#1.\n"+
			"#21\n"+
			"###", b.String())
		b.SetPolicy(policy)
		return b
	}

	t.Run("both", func(t *testing.T) {
		b := setup(t, assistOn)

		b.Expose(P(2, 1))

		assert.Equal(t, ""+
			"F1.\n"+
			"121\n"+
			".1F", b.String())
		assert.Equal(t, 0, b.MinesRemaining())
		assert.Equal(t, ChainStats{Visited: 3, Exposed: 3, Flagged: 2}, b.LastChain())
	})

	t.Run("flag only", func(t *testing.T) {
		b := setup(t, flagOnly)

		b.Expose(P(2, 1))

		assert.Equal(t, ""+
			"#1.\n"+
			"#21\n"+
			"#1F", b.String())
		assert.Equal(t, ChainStats{Visited: 1, Exposed: 1, Flagged: 1}, b.LastChain())
	})

	t.Run("reveal only", func(t *testing.T) {
		b := setup(t, revealOnly)

		b.Expose(P(2, 1))

		assert.Equal(t, ""+
			"#1.\n"+
			"#21\n"+
			"#1#", b.String())
	})
}

func TestSetPolicyAffectsLaterOperations(t *testing.T) {
	b := newFixture(t, 1, 3, []Position{P(0, 0)}, assistOff)

	b.Expose(P(0, 2))
	require.Equal(t, Covered, b.Cell(P(0, 0)).State)

	b.SetPolicy(flagOnly)
	assert.Equal(t, flagOnly, b.Policy())
	assert.Equal(t, Covered, b.Cell(P(0, 0)).State, "policy change alone must not mutate the board")
}

// TestAssistIsSound plays seeded rounds without manual flags, exposing only
// safe cells. With both assists on, no flag may land on a safe cell and no
// mine may be revealed.
func TestAssistIsSound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))

	for round := range 60 {
		rows, cols := 5+r.IntN(16), 5+r.IntN(16)
		mines := r.IntN(MaxMines(rows, cols)/4 + 1)

		b, err := New(rows, cols, mines, assistOn, WithRand(r))
		require.NoError(t, err)

		b.Expose(P(r.IntN(rows), r.IntN(cols)))
		for {
			safe := coveredSafeCells(b)
			if len(safe) == 0 {
				break
			}
			b.Expose(safe[r.IntN(len(safe))])
			require.False(t, b.LastChain().Detonated, "round %d", round)
		}

		for _, p := range allPositions(b) {
			mine, _ := b.Solution(p)
			switch b.Cell(p).State {
			case Flagged:
				require.True(t, mine, "round %d: safe cell %v auto-flagged", round, p)
			case Empty:
				require.False(t, mine, "round %d: mine %v revealed", round, p)
			}
		}
		assert.GreaterOrEqual(t, b.MinesRemaining(), 0, "round %d", round)
	}
}

func coveredSafeCells(b *Board) []Position {
	var out []Position
	for _, p := range allPositions(b) {
		if b.Cell(p).State != Covered {
			continue
		}
		if mine, _ := b.Solution(p); !mine {
			out = append(out, p)
		}
	}
	return out
}
