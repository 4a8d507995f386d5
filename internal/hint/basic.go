package hint

import (
	"context"
	"fmt"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/ports"
)

// Basic implements a Hinter that only looks at one numbered cell at a time.
// It trusts the player's flags, and its safe suggestions say so.
type Basic struct{}

func NewBasic() *Basic { return &Basic{} }

// Hint returns the first deduction found scanning row-major: a hidden cell
// that must be safe, or one that must be a mine.
func (h *Basic) Hint(ctx context.Context, g ports.Grid) (domain.Suggestion, bool, error) {
	for r := 0; r < g.Height(); r++ {
		if err := ctx.Err(); err != nil {
			return domain.Suggestion{}, false, err
		}
		for c := 0; c < g.Width(); c++ {
			cell, err := g.Cell(r, c)
			if err != nil {
				return domain.Suggestion{}, false, err
			}
			if !cell.IsRevealed() || cell.IsMine() || cell.AdjacentMines() == 0 {
				continue
			}
			at := domain.Coord{Row: r, Col: c}
			flags, hidden, err := surroundings(g, at)
			if err != nil {
				return domain.Suggestion{}, false, err
			}
			if len(hidden) == 0 {
				continue
			}
			n := cell.AdjacentMines()
			target := hidden[0]
			switch {
			case flags == n:
				return domain.Suggestion{
					Message: fmt.Sprintf("Safe if your flags are right: %s touches %d flagged mine(s), so %s can be opened", label(at), n, label(target)),
					Cell:    target,
					Mode:    domain.Reveal,
				}, true, nil
			case flags+len(hidden) == n:
				return domain.Suggestion{
					Message: fmt.Sprintf("Mine: %s needs %d mine(s) and only %d hidden neighbour(s) remain, so flag %s", label(at), n, flags+len(hidden), label(target)),
					Cell:    target,
					Mode:    domain.Flag,
				}, true, nil
			}
		}
	}
	return domain.Suggestion{}, false, nil
}

// surroundings counts flagged neighbours and lists hidden unflagged ones.
func surroundings(g ports.Grid, at domain.Coord) (int, []domain.Coord, error) {
	flags := 0
	var hidden []domain.Coord
	for _, n := range g.Neighbors(at) {
		nc, err := g.Cell(n.Row, n.Col)
		if err != nil {
			return 0, nil, err
		}
		switch {
		case nc.IsRevealed():
		case nc.IsFlagged():
			flags++
		default:
			hidden = append(hidden, n)
		}
	}
	return flags, hidden, nil
}

// label renders a coordinate the way players type it: 1-based row, column.
func label(c domain.Coord) string {
	return fmt.Sprintf("(%d,%d)", c.Row+1, c.Col+1)
}
