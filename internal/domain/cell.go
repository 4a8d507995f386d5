package domain

// Cell is one grid position. The zero value is a hidden, unflagged, plain cell.
type Cell struct {
	kind     Kind
	flagged  bool
	revealed bool
	adjacent int
}

func NewCell() Cell { return Cell{} }

// MarkAsMine turns the cell into a mine. There is no way back.
func (c *Cell) MarkAsMine() { c.kind = Mine }

// ToggleFlag flips the flag unconditionally; callers gate on IsRevealed.
func (c *Cell) ToggleFlag() { c.flagged = !c.flagged }

func (c *Cell) Reveal() { c.revealed = true }

func (c *Cell) IncrementAdjacency() { c.adjacent++ }

func (c Cell) Kind() Kind         { return c.kind }
func (c Cell) IsMine() bool       { return c.kind == Mine }
func (c Cell) IsFlagged() bool    { return c.flagged }
func (c Cell) IsRevealed() bool   { return c.revealed }
func (c Cell) AdjacentMines() int { return c.adjacent }

// Classify maps a cell to what a player may see of it. The checks form a
// strict priority chain: a flag hides everything, then an unrevealed cell
// hides its content.
func Classify(c Cell) Glyph {
	switch {
	case c.flagged:
		return GlyphFlag
	case !c.revealed:
		return GlyphHidden
	case c.kind == Mine:
		return GlyphMine
	case c.adjacent > 0:
		return GlyphCount
	default:
		return GlyphBlank
	}
}
