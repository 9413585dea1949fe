package game

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Player identifies one of the two sides. The zero value is PlayerA.
type Player uint8

const (
	PlayerA Player = iota // Plays as X
	PlayerB               // Plays as O
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	return p ^ 1
}

// Cell returns the occupancy marker of the player.
func (p Player) Cell() Cell {
	if p == PlayerA {
		return OccupiedA
	}
	return OccupiedB
}

func (p Player) String() string {
	if p == PlayerA {
		return "X"
	}
	return "O"
}

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	Used
	OccupiedA
	OccupiedB
)

func (c Cell) String() string {
	switch c {
	case Used:
		return "#"
	case OccupiedA:
		return "X"
	case OccupiedB:
		return "O"
	default:
		return "-"
	}
}

// Position is a 0-based (row, column) coordinate.
type Position struct {
	Row int
	Col int
}

func (p Position) inBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Evaluate scores a board from the given player's perspective. Higher is better.
type Evaluate func(Board, Player) int
