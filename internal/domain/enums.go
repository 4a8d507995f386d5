package domain

// Kind tags what a cell holds.
type Kind int

const (
	Plain Kind = iota
	Mine
)

// Mode is the action a player requests for a turn.
type Mode int

const (
	Reveal Mode = iota + 1 // open a cell
	Flag                   // toggle a flag on a hidden cell
	Hint                   // ask for a deduction; never mutates the board
)

func (m Mode) String() string {
	switch m {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Outcome is the board-level result of a reveal request.
type Outcome int

const (
	Continue Outcome = iota
	Lost
	AlreadyHandled
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Lost:
		return "lost"
	case AlreadyHandled:
		return "already-handled"
	default:
		return "unknown"
	}
}

// Status is the state of a whole round.
type Status int

const (
	Playing Status = iota
	Won
	Defeated
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Defeated:
		return "lost"
	default:
		return "unknown"
	}
}

// Glyph is the display class of a cell, independent of any character set.
type Glyph int

const (
	GlyphFlag Glyph = iota
	GlyphHidden
	GlyphMine
	GlyphCount
	GlyphBlank
)
