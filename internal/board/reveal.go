package board

import (
	"github.com/gammazero/deque"

	"svw.info/minesweeper/internal/domain"
)

// RevealCell opens the cell at (row, col).
//
// A flagged target loses its flag first and the reveal proceeds in the same
// call. A hidden safe cell is revealed and flood-filled; a mine ends the
// round and discloses the whole board. Adjacency must have been computed.
func (b *Board) RevealCell(row, col int) (domain.Outcome, error) {
	if err := b.check(row, col); err != nil {
		return domain.AlreadyHandled, err
	}
	if !b.counted {
		return domain.AlreadyHandled, ErrNotCounted
	}
	target := domain.Coord{Row: row, Col: col}
	cell := b.at(target)
	if cell.IsFlagged() {
		cell.ToggleFlag()
	}
	switch {
	case !cell.IsRevealed() && !cell.IsMine():
		cell.Reveal()
		b.floodFill(target)
		return domain.Continue, nil
	case cell.IsMine():
		b.revealAll()
		return domain.Lost, nil
	default:
		return domain.AlreadyHandled, nil
	}
}

// floodFill expands from a revealed safe cell across the connected region of
// blank cells, revealing the numbered cells that border it. Flagged cells are
// left alone and do not propagate.
func (b *Board) floodFill(from domain.Coord) {
	if b.at(from).AdjacentMines() > 0 {
		return
	}
	var queue deque.Deque[domain.Coord]
	queue.PushBack(from)
	for queue.Len() > 0 {
		cur := queue.PopFront()
		for _, n := range b.Neighbors(cur) {
			cell := b.at(n)
			if cell.IsRevealed() || cell.IsMine() || cell.IsFlagged() {
				continue
			}
			cell.Reveal()
			if cell.AdjacentMines() == 0 {
				queue.PushBack(n)
			}
		}
	}
}

func (b *Board) revealAll() {
	for r := range b.grid {
		for c := range b.grid[r] {
			b.grid[r][c].Reveal()
		}
	}
}

// ToggleFlag flips the flag on a hidden cell. Revealed cells are unaffected.
func (b *Board) ToggleFlag(row, col int) error {
	if err := b.check(row, col); err != nil {
		return err
	}
	cell := &b.grid[row][col]
	if !cell.IsRevealed() {
		cell.ToggleFlag()
	}
	return nil
}

// EvaluateWin reports whether play continues. It returns false only once
// every safe cell is revealed and every mine is flagged.
func (b *Board) EvaluateWin() bool {
	for r := range b.grid {
		for c := range b.grid[r] {
			cell := b.grid[r][c]
			if !cell.IsMine() && !cell.IsRevealed() {
				return true
			}
			if cell.IsMine() && !cell.IsFlagged() {
				return true
			}
		}
	}
	return false
}
