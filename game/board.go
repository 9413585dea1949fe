package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidBoard = errors.New("invalid board layout")

// maxMoves bounds the number of destinations a queen can reach on an empty board.
const maxMoves = 4*(BoardSize-1) - 1

type direction struct {
	dRow int
	dCol int
}

// directions fixes both the move enumeration order and the neighbourhood used by
// HasLost: up, down, left, right, then up-left, up-right, down-right, down-left.
var directions = [8]direction{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, 1}, {1, -1},
}

// Board is one game position. It is a plain value: assigning or passing a Board
// copies the whole grid, so positions in a search tree never share state.
type Board struct {
	grid      [BoardSize][BoardSize]Cell
	positions [2]Position
}

// NewBoard returns the starting position. The first player sits in the top-left
// corner (A1) and the other player in the bottom-right corner (H8).
func NewBoard(first Player) Board {
	var b Board
	b.place(first, Position{Row: 0, Col: 0})
	b.place(first.Opponent(), Position{Row: BoardSize - 1, Col: BoardSize - 1})
	return b
}

// ParseBoard builds a board from eight rows of eight cells, using the same
// symbols String prints ('-' or '.' empty, '#' used, 'X' and 'O' players).
// Whitespace and an optional header or row labels are ignored.
func ParseBoard(layout string) (Board, error) {
	var b Board
	seen := [2]bool{}
	row := 0
	for _, line := range strings.Split(layout, "\n") {
		cells := strings.Join(strings.Fields(line), "")
		if len(cells) == BoardSize+1 && strings.ContainsRune(rowLabels, rune(cells[0])) {
			cells = cells[1:]
		}
		if len(cells) != BoardSize || cells == columnHeader {
			continue
		}
		if row == BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d rows", ErrInvalidBoard, BoardSize)
		}
		for col, r := range cells {
			switch r {
			case '-', '.':
			case '#':
				b.grid[row][col] = Used
			case 'X', 'O':
				p := PlayerA
				if r == 'O' {
					p = PlayerB
				}
				if seen[p] {
					return Board{}, fmt.Errorf("%w: player %s placed twice", ErrInvalidBoard, p)
				}
				seen[p] = true
				b.place(p, Position{Row: row, Col: col})
			default:
				return Board{}, fmt.Errorf("%w: unknown cell %q", ErrInvalidBoard, r)
			}
		}
		row++
	}
	if row != BoardSize {
		return Board{}, fmt.Errorf("%w: found %d rows", ErrInvalidBoard, row)
	}
	if !seen[PlayerA] || !seen[PlayerB] {
		return Board{}, fmt.Errorf("%w: both players must be placed", ErrInvalidBoard)
	}
	return b, nil
}

func (b *Board) place(p Player, pos Position) {
	b.positions[p] = pos
	b.grid[pos.Row][pos.Col] = p.Cell()
}

// Cell returns the content of the square at (row, col).
func (b Board) Cell(row, col int) Cell {
	return b.grid[row][col]
}

// Position returns the player's current square.
func (b Board) Position(p Player) Position {
	return b.positions[p]
}

// FreeCells counts the empty squares left on the board.
func (b Board) FreeCells() int {
	free := 0
	for row := range b.grid {
		for _, c := range b.grid[row] {
			if c == Empty {
				free++
			}
		}
	}
	return free
}

func (b *Board) isEmpty(pos Position) bool {
	return pos.inBounds() && b.grid[pos.Row][pos.Col] == Empty
}

// LegalMoves lists every square the player can reach, scanning each direction
// outward until the board edge or the first non-empty square.
func (b Board) LegalMoves(p Player) []Move {
	from := b.positions[p]
	moves := make([]Move, 0, maxMoves)
	for _, d := range directions {
		pos := Position{Row: from.Row + d.dRow, Col: from.Col + d.dCol}
		for b.isEmpty(pos) {
			moves = append(moves, Move{Row: pos.Row, Col: pos.Col, Player: p})
			pos.Row += d.dRow
			pos.Col += d.dCol
		}
	}
	return moves
}

// Mobility counts the player's legal moves without allocating them.
func (b Board) Mobility(p Player) int {
	from := b.positions[p]
	count := 0
	for _, d := range directions {
		pos := Position{Row: from.Row + d.dRow, Col: from.Col + d.dCol}
		for b.isEmpty(pos) {
			count++
			pos.Row += d.dRow
			pos.Col += d.dCol
		}
	}
	return count
}

// HasLost reports whether the player is boxed in: none of the neighbouring
// squares is empty. The first step of every ray in LegalMoves is one of these
// neighbours, so HasLost(p) holds exactly when LegalMoves(p) is empty.
func (b Board) HasLost(p Player) bool {
	from := b.positions[p]
	for _, d := range directions {
		if b.isEmpty(Position{Row: from.Row + d.dRow, Col: from.Col + d.dCol}) {
			return false
		}
	}
	return true
}

// Play returns the board after the move. The vacated square becomes Used.
// The receiver is left untouched. The move must come from LegalMoves on this
// board; it is not validated.
func (b Board) Play(m Move) Board {
	from := b.positions[m.Player]
	b.grid[from.Row][from.Col] = Used
	b.place(m.Player, m.Position())
	return b
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 1; col <= BoardSize; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteString("\n")
	for row := range b.grid {
		sb.WriteByte(rowLabels[row])
		for _, c := range b.grid[row] {
			sb.WriteString(" ")
			sb.WriteString(c.String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
