package game

// Move is a destination square for a player. It carries no board reference
// and is only meaningful relative to the board it was generated from.
type Move struct {
	Row    int
	Col    int
	Player Player
}

// Position returns the destination of the move.
func (m Move) Position() Position {
	return Position{Row: m.Row, Col: m.Col}
}

// String renders the move in board notation, e.g. "C4".
func (m Move) String() string {
	return Notation(m.Position())
}
