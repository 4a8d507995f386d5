package validator

import (
	"context"
	"errors"
	"fmt"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/ports"
)

var ErrMineCount = errors.New("mine total does not match board")

// FastValidator checks a mined grid in one pass: no mine in the safe zone,
// adjacency counts matching the neighbourhood, and the advertised mine total.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g ports.Grid) (bool, []domain.Coord, error) {
	conf := make([]domain.Coord, 0, 8)
	origin := g.Origin()
	mines := 0
	for r := 0; r < g.Height(); r++ {
		if err := ctx.Err(); err != nil {
			return false, nil, err
		}
		for c := 0; c < g.Width(); c++ {
			cell, err := g.Cell(r, c)
			if err != nil {
				return false, nil, err
			}
			at := domain.Coord{Row: r, Col: c}
			if cell.IsMine() {
				mines++
				if near(at, origin) {
					conf = append(conf, at)
				}
				continue
			}
			want := 0
			for _, n := range g.Neighbors(at) {
				nc, err := g.Cell(n.Row, n.Col)
				if err != nil {
					return false, nil, err
				}
				if nc.IsMine() {
					want++
				}
			}
			if cell.AdjacentMines() != want {
				conf = append(conf, at)
			}
		}
	}
	if mines != g.MineCount() {
		return false, conf, fmt.Errorf("%w: found %d, want %d", ErrMineCount, mines, g.MineCount())
	}
	return len(conf) == 0, conf, nil
}

func near(a, b domain.Coord) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}
