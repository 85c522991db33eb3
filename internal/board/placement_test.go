package board

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name             string
		rows, cols, mine int
		want             error
	}{
		{"zero rows", 0, 5, 1, ErrInvalidDimensions},
		{"negative columns", 5, -1, 1, ErrInvalidDimensions},
		{"negative mines", 5, 5, -1, ErrInvalidMineCount},
		{"no room outside safety zone", 5, 5, 17, ErrTooManyMines},
		{"tiny board with a mine", 2, 2, 1, ErrTooManyMines},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New(tc.rows, tc.cols, tc.mine, AssistPolicy{})
			assert.Nil(t, b)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMaxMines(t *testing.T) {
	assert.Equal(t, 0, MaxMines(1, 1))
	assert.Equal(t, 0, MaxMines(2, 2))
	assert.Equal(t, 4, MaxMines(2, 5))
	assert.Equal(t, 72, MaxMines(9, 9))
	assert.Equal(t, 0, MaxMines(0, 9))

	b, err := New(9, 9, 72, AssistPolicy{})
	require.NoError(t, err)
	assert.Equal(t, 72, b.MineCount())
}

func TestMinesPlacedOnFirstExpose(t *testing.T) {
	b, err := New(9, 9, 10, AssistPolicy{}, WithSeed(1))
	require.NoError(t, err)

	assert.False(t, b.MinesPlaced())
	for _, p := range allPositions(b) {
		mine, _ := b.Solution(p)
		assert.False(t, mine)
	}

	b.Expose(P(4, 4))
	assert.True(t, b.MinesPlaced())
}

func TestFirstExposeIsSafe(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name              string
		rows, cols, mines int
	}{
		{"9x9(10)", 9, 9, 10},
		{"16x16(40)", 16, 16, 40},
		{"8x8(full)", 8, 8, MaxMines(8, 8)},
		{"3x10(full)", 3, 10, MaxMines(3, 10)},
		{"1x12(full)", 1, 12, MaxMines(1, 12)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))

			for range 25 {
				anchor := P(r.IntN(tc.rows), r.IntN(tc.cols))
				b, err := New(tc.rows, tc.cols, tc.mines, AssistPolicy{}, WithRand(r))
				require.NoError(t, err)

				b.Expose(anchor)

				mine, _ := b.Solution(anchor)
				require.False(t, mine, "mine at anchor %v", anchor)
				for _, n := range b.Neighbors(anchor) {
					mine, _ := b.Solution(n)
					require.False(t, mine, "mine at %v next to anchor %v", n, anchor)
				}
				assert.NotEqual(t, Detonated, b.Cell(anchor).State)

				assertLayoutInvariants(t, b)
			}
		})
	}
}

// assertLayoutInvariants checks the exact mine total and every adjacency count.
func assertLayoutInvariants(t *testing.T, b *Board) {
	t.Helper()

	total := 0
	for _, p := range allPositions(b) {
		mine, adjacent := b.Solution(p)
		if mine {
			total++
		}

		want := 0
		for _, n := range b.Neighbors(p) {
			if m, _ := b.Solution(n); m {
				want++
			}
		}
		assert.Equal(t, want, adjacent, "adjacent count at %v", p)
	}
	assert.Equal(t, b.MineCount(), total)
}

func TestFullBoardLeavesOnlySafetyZone(t *testing.T) {
	b, err := New(8, 8, MaxMines(8, 8), AssistPolicy{}, WithSeed(99))
	require.NoError(t, err)

	b.Expose(P(3, 3))

	// The anchor has no mined neighbors, so it floods into exactly the
	// 3x3 zone around it and no further.
	counts := b.Counts()
	assert.Equal(t, 9, counts.Empty)
	assert.Equal(t, 0, counts.Detonated)
	assert.Equal(t, 64-9, counts.Covered)
	assert.Equal(t, 0, b.Cell(P(3, 3)).AdjacentMineCount)
}

func TestPlacementIsDeterministicForSeed(t *testing.T) {
	b1, err := New(16, 16, 40, AssistPolicy{}, WithSeed(2024))
	require.NoError(t, err)
	b2, err := New(16, 16, 40, AssistPolicy{}, WithSeed(2024))
	require.NoError(t, err)

	b1.Expose(P(0, 0))
	b2.Expose(P(0, 0))

	for _, p := range allPositions(b1) {
		m1, a1 := b1.Solution(p)
		m2, a2 := b2.Solution(p)
		require.Equal(t, m1, m2, "mine mismatch at %v", p)
		require.Equal(t, a1, a2, "count mismatch at %v", p)
	}
	assert.Equal(t, b1.String(), b2.String())
}

func TestPlacementExhaustedPanics(t *testing.T) {
	b, err := New(10, 10, 50, AssistPolicy{}, WithSeed(3), WithMaxPlacementAttempts(1))
	require.NoError(t, err)

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.True(t, ok, "panic value %T is not an error", r)
		assert.True(t, errors.Is(err, ErrPlacementExhausted))

		var ce ContractError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "place", ce.Op)
		assert.Equal(t, P(5, 5), ce.Pos)
	}()

	b.Expose(P(5, 5))
}
