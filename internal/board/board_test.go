package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/minesweeper/internal/domain"
)

func TestNewValidates(t *testing.T) {
	_, err := New(0, 5, 0, 0, 0)
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = New(5, 5, 0, 5, 0)
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)

	b, err := New(7, 5, 3, 4, 6)
	require.NoError(t, err)
	assert.Equal(t, 7, b.Width())
	assert.Equal(t, 5, b.Height())
	assert.Equal(t, domain.Coord{Row: 4, Col: 6}, b.Origin())
	for r := 0; r < 5; r++ {
		for c := 0; c < 7; c++ {
			assert.Equal(t, domain.NewCell(), cellAt(t, b, r, c))
		}
	}
}

func TestPlaceMinesInvariants(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		origin        domain.Coord
	}{
		{"5x5 centre", 5, 5, domain.Coord{Row: 2, Col: 2}},
		{"5x5 corner", 5, 5, domain.Coord{Row: 0, Col: 0}},
		{"10x7 edge", 10, 7, domain.Coord{Row: 6, Col: 4}},
		{"50x50", 50, 50, domain.Coord{Row: 25, Col: 49}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mines := tc.width * tc.height / 5
			for seed := int64(1); seed <= 20; seed++ {
				b, err := New(tc.width, tc.height, mines, tc.origin.Row, tc.origin.Col)
				require.NoError(t, err)
				require.NoError(t, b.PlaceMines(rand.New(rand.NewSource(seed))))
				require.NoError(t, b.ComputeAdjacency())

				total := 0
				for r := 0; r < tc.height; r++ {
					for c := 0; c < tc.width; c++ {
						cell := cellAt(t, b, r, c)
						if cell.IsMine() {
							total++
							assert.False(t, abs(r-tc.origin.Row) <= 1 && abs(c-tc.origin.Col) <= 1,
								"mine at (%d,%d) inside safe zone, seed %d", r, c, seed)
							continue
						}
						want := 0
						for _, n := range b.Neighbors(domain.Coord{Row: r, Col: c}) {
							if cellAt(t, b, n.Row, n.Col).IsMine() {
								want++
							}
						}
						assert.Equal(t, want, cell.AdjacentMines(), "adjacency at (%d,%d)", r, c)
					}
				}
				assert.Equal(t, mines, total, "seed %d", seed)
			}
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestPlaceMinesDeterministic(t *testing.T) {
	mk := func() *Board {
		b, err := New(12, 9, 20, 3, 3)
		require.NoError(t, err)
		require.NoError(t, b.PlaceMines(rand.New(rand.NewSource(42))))
		return b
	}
	a, b := mk(), mk()
	for r := 0; r < 9; r++ {
		for c := 0; c < 12; c++ {
			assert.Equal(t, cellAt(t, a, r, c).IsMine(), cellAt(t, b, r, c).IsMine())
		}
	}
}

func TestPlaceMinesCapacity(t *testing.T) {
	cases := []struct {
		name   string
		origin domain.Coord
		mines  int
		ok     bool
	}{
		{"centre full", domain.Coord{Row: 2, Col: 2}, 16, true},
		{"centre overfull", domain.Coord{Row: 2, Col: 2}, 17, false},
		{"corner full", domain.Coord{Row: 0, Col: 0}, 21, true},
		{"corner overfull", domain.Coord{Row: 0, Col: 0}, 22, false},
		{"edge full", domain.Coord{Row: 0, Col: 2}, 19, true},
		{"negative", domain.Coord{Row: 2, Col: 2}, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New(5, 5, tc.mines, tc.origin.Row, tc.origin.Col)
			require.NoError(t, err)
			err = b.PlaceMines(rand.New(rand.NewSource(7)))
			if !tc.ok {
				var cfgErr *domain.ConfigurationError
				assert.ErrorAs(t, err, &cfgErr)
				assert.ErrorIs(t, err, domain.ErrConfiguration)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLifecycle(t *testing.T) {
	b, err := New(5, 5, 2, 2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, b.ComputeAdjacency(), ErrNotPlaced)

	rng := rand.New(rand.NewSource(1))
	require.NoError(t, b.PlaceMines(rng))
	assert.ErrorIs(t, b.PlaceMines(rng), ErrAlreadyPlaced)

	_, err = b.RevealCell(4, 4)
	assert.ErrorIs(t, err, ErrNotCounted, "reveal before counting")
	assert.False(t, cellAt(t, b, 4, 4).IsRevealed())

	require.NoError(t, b.ComputeAdjacency())
	assert.ErrorIs(t, b.ComputeAdjacency(), ErrAlreadyCounted)
}

func TestAdjacencyFrozenAfterCounting(t *testing.T) {
	b := minedBoard(t, 5, 5, domain.Coord{Row: 3, Col: 3}, domain.Coord{Row: 0, Col: 0})
	require.Equal(t, 1, cellAt(t, b, 1, 1).AdjacentMines())

	assert.ErrorIs(t, b.CountAdjacentMines(1, 1), ErrAlreadyCounted)
	assert.Equal(t, 1, cellAt(t, b, 1, 1).AdjacentMines())

	fresh, err := New(5, 5, 1, 3, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, fresh.CountAdjacentMines(1, 1), ErrNotPlaced)
}

func TestOutOfBounds(t *testing.T) {
	b := minedBoard(t, 5, 6, domain.Coord{Row: 2, Col: 2})
	bad := []domain.Coord{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 6, Col: 0}, {Row: 0, Col: 5}}
	for _, c := range bad {
		_, err := b.Cell(c.Row, c.Col)
		assert.ErrorIs(t, err, domain.ErrOutOfBounds)

		_, err = b.RevealCell(c.Row, c.Col)
		assert.ErrorIs(t, err, domain.ErrOutOfBounds)

		assert.ErrorIs(t, b.ToggleFlag(c.Row, c.Col), domain.ErrOutOfBounds)
		assert.ErrorIs(t, b.CountAdjacentMines(c.Row, c.Col), domain.ErrOutOfBounds)
	}
	_, err := b.Cell(5, 4)
	assert.NoError(t, err)
}

func TestNeighbors(t *testing.T) {
	b, err := New(5, 5, 0, 0, 0)
	require.NoError(t, err)
	assert.Len(t, b.Neighbors(domain.Coord{Row: 0, Col: 0}), 3)
	assert.Len(t, b.Neighbors(domain.Coord{Row: 0, Col: 2}), 5)
	assert.Len(t, b.Neighbors(domain.Coord{Row: 2, Col: 2}), 8)
	assert.NotContains(t, b.Neighbors(domain.Coord{Row: 2, Col: 2}), domain.Coord{Row: 2, Col: 2})
}
