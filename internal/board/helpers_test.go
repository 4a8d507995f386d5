package board

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/minesweeper/internal/domain"
)

// scripted replays a fixed sequence of draws.
type scripted struct {
	vals []int
	pos  int
}

func (s *scripted) Intn(n int) int {
	if s.pos >= len(s.vals) {
		panic("scripted source exhausted")
	}
	v := s.vals[s.pos]
	s.pos++
	if v >= n {
		panic(fmt.Sprintf("scripted value %d out of range [0,%d)", v, n))
	}
	return v
}

// minedBoard builds a board whose mines are exactly at the given coordinates.
func minedBoard(t *testing.T, width, height int, origin domain.Coord, mines ...domain.Coord) *Board {
	t.Helper()
	b, err := New(width, height, len(mines), origin.Row, origin.Col)
	require.NoError(t, err)
	src := &scripted{}
	for _, m := range mines {
		src.vals = append(src.vals, m.Row, m.Col)
	}
	require.NoError(t, b.PlaceMines(src))
	require.NoError(t, b.ComputeAdjacency())
	return b
}

func cellAt(t *testing.T, b *Board, row, col int) domain.Cell {
	t.Helper()
	c, err := b.Cell(row, col)
	require.NoError(t, err)
	return c
}
