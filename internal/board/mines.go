package board

import (
	"fmt"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/generator"
	"svw.info/minesweeper/internal/ports"
)

// PlaceMines marks MineCount random cells as mines, never touching the safe
// zone around the origin. It runs once per board.
func (b *Board) PlaceMines(rng ports.RandomSource) error {
	if b.placed {
		return ErrAlreadyPlaced
	}
	coords, err := generator.Pick(rng, b.width, b.height, b.mineCount, b.origin)
	if err != nil {
		return fmt.Errorf("place mines: %w", err)
	}
	for _, c := range coords {
		b.at(c).MarkAsMine()
	}
	b.placed = true
	return nil
}

// CountAdjacentMines increments the counter of the cell at (row, col) once
// for every mine among its neighbours. It must run exactly once per cell,
// after placement; ComputeAdjacency does that for the whole grid. Counts are
// frozen once ComputeAdjacency has finished.
func (b *Board) CountAdjacentMines(row, col int) error {
	if err := b.check(row, col); err != nil {
		return err
	}
	switch {
	case !b.placed:
		return ErrNotPlaced
	case b.counted:
		return ErrAlreadyCounted
	}
	self := domain.Coord{Row: row, Col: col}
	for _, n := range b.Neighbors(self) {
		if b.at(n).IsMine() {
			b.at(self).IncrementAdjacency()
		}
	}
	return nil
}

// ComputeAdjacency counts adjacent mines for every cell of the grid.
func (b *Board) ComputeAdjacency() error {
	switch {
	case !b.placed:
		return ErrNotPlaced
	case b.counted:
		return ErrAlreadyCounted
	}
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			if err := b.CountAdjacentMines(r, c); err != nil {
				return err
			}
		}
	}
	b.counted = true
	return nil
}
