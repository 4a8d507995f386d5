package domain

// Coord identifies a cell on the board, zero-based.
type Coord struct {
	Row, Col int
}

// Turn is one player request.
type Turn struct {
	Coord
	Mode Mode
}

// Suggestion describes a deduction offered to the player.
type Suggestion struct {
	Message string
	Cell    Coord
	Mode    Mode // Reveal for a safe cell, Flag for a certain mine
}
