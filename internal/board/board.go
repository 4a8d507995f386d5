// Package board owns the minesweeper grid: deferred mine placement,
// adjacency counting, flood-fill reveal and the win/loss rules.
package board

import (
	"errors"
	"fmt"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/ports"
)

var (
	ErrAlreadyPlaced  = errors.New("mines already placed")
	ErrNotPlaced      = errors.New("mines not placed yet")
	ErrAlreadyCounted = errors.New("adjacency already computed")
	ErrNotCounted     = errors.New("adjacency not computed yet")
)

var _ ports.Grid = (*Board)(nil)

// Board is a fixed-size grid of cells. It is not safe for concurrent use.
type Board struct {
	width     int
	height    int
	mineCount int
	origin    domain.Coord
	grid      [][]domain.Cell

	placed  bool
	counted bool
}

// New allocates an empty width x height grid whose safe zone is centred on
// (originRow, originCol). No mines are placed until PlaceMines is called, so
// the board can be shown as a preview before the first move is known.
func New(width, height, mineCount, originRow, originCol int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("board must be at least 1x1, got %dx%d", height, width)}
	}
	b := &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		origin:    domain.Coord{Row: originRow, Col: originCol},
	}
	if err := b.check(originRow, originCol); err != nil {
		return nil, fmt.Errorf("safe origin: %w", err)
	}
	b.grid = make([][]domain.Cell, height)
	for r := range b.grid {
		b.grid[r] = make([]domain.Cell, width)
		for c := range b.grid[r] {
			b.grid[r][c] = domain.NewCell()
		}
	}
	return b, nil
}

func (b *Board) Width() int           { return b.width }
func (b *Board) Height() int          { return b.height }
func (b *Board) MineCount() int       { return b.mineCount }
func (b *Board) Origin() domain.Coord { return b.origin }

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (domain.Cell, error) {
	if err := b.check(row, col); err != nil {
		return domain.Cell{}, err
	}
	return b.grid[row][col], nil
}

// InBounds reports whether (row, col) lies on the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

func (b *Board) check(row, col int) error {
	if !b.InBounds(row, col) {
		return &domain.OutOfBoundsError{Row: row, Col: col, Width: b.width, Height: b.height}
	}
	return nil
}

// Neighbors returns the up-to-8 grid-clamped neighbours of c, row-major.
func (b *Board) Neighbors(c domain.Coord) []domain.Coord {
	out := make([]domain.Coord, 0, 8)
	for r := max(0, c.Row-1); r <= min(b.height-1, c.Row+1); r++ {
		for col := max(0, c.Col-1); col <= min(b.width-1, c.Col+1); col++ {
			if r == c.Row && col == c.Col {
				continue
			}
			out = append(out, domain.Coord{Row: r, Col: col})
		}
	}
	return out
}

// FlagCount is the number of flags currently on the board.
func (b *Board) FlagCount() int {
	n := 0
	for r := range b.grid {
		for c := range b.grid[r] {
			if b.grid[r][c].IsFlagged() {
				n++
			}
		}
	}
	return n
}

func (b *Board) at(c domain.Coord) *domain.Cell { return &b.grid[c.Row][c.Col] }
