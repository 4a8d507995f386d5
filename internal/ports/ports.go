package ports

import (
	"context"

	"svw.info/minesweeper/internal/domain"
)

// RandomSource is the only randomness the engine needs. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Grid is a read-only view of a board.
type Grid interface {
	Width() int
	Height() int
	MineCount() int
	Origin() domain.Coord
	Cell(row, col int) (domain.Cell, error)
	Neighbors(c domain.Coord) []domain.Coord
}

// Validator checks the placement invariants of a freshly mined grid.
type Validator interface {
	Validate(ctx context.Context, g Grid) (ok bool, conflicts []domain.Coord, err error)
}

// Hinter suggests the next logical move from player-visible state only.
type Hinter interface {
	Hint(ctx context.Context, g Grid) (domain.Suggestion, bool, error)
}

// Renderer lays a grid out as text. Cells the grid cannot report are drawn
// hidden.
type Renderer interface {
	Render(g Grid) string
}
