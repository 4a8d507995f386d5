// Package generator picks mine positions for a board.
package generator

import (
	"fmt"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/ports"
)

// ExclusionZone returns how many cells of the 3x3 block centred on origin
// lie inside a width x height grid.
func ExclusionZone(width, height int, origin domain.Coord) int {
	rows := min(origin.Row+1, height-1) - max(origin.Row-1, 0) + 1
	cols := min(origin.Col+1, width-1) - max(origin.Col-1, 0) + 1
	return rows * cols
}

// Capacity is the largest mine count a board can hold around origin.
func Capacity(width, height int, origin domain.Coord) int {
	return width*height - ExclusionZone(width, height, origin)
}

func inSafeZone(c, origin domain.Coord) bool {
	return abs(c.Row-origin.Row) <= 1 && abs(c.Col-origin.Col) <= 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Pick draws count distinct coordinates by rejection sampling: uniform
// (row, col) pairs are drawn from rng and discarded when already chosen or
// inside the safe zone around origin. The order of the result is the order
// of acceptance.
func Pick(rng ports.RandomSource, width, height, count int, origin domain.Coord) ([]domain.Coord, error) {
	if count < 0 {
		return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("negative mine count %d", count)}
	}
	if capacity := Capacity(width, height, origin); count > capacity {
		return nil, &domain.ConfigurationError{
			Reason: fmt.Sprintf("%d mines do not fit a %dx%d board around (%d,%d); at most %d",
				count, height, width, origin.Row, origin.Col, capacity),
		}
	}
	chosen := make(map[domain.Coord]struct{}, count)
	out := make([]domain.Coord, 0, count)
	for len(out) < count {
		c := domain.Coord{Row: rng.Intn(height), Col: rng.Intn(width)}
		if inSafeZone(c, origin) {
			continue
		}
		if _, dup := chosen[c]; dup {
			continue
		}
		chosen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}
