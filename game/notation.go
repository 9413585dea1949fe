package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	rowLabels    = "ABCDEFGH"
	columnHeader = "12345678"
)

var (
	ErrInvalidNotation = errors.New("move must be a row letter A-H followed by a column number 1-8")
	ErrInvalidRow      = errors.New("row label out of range")
	ErrInvalidColumn   = errors.New("column number out of range")
)

// RowLabel maps a 0-based row index to its letter.
func RowLabel(row int) (string, error) {
	if row < 0 || row >= BoardSize {
		return "", fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	return rowLabels[row : row+1], nil
}

// RowIndex maps a row letter (case-insensitive) to its 0-based index.
func RowIndex(label string) (int, error) {
	if len(label) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRow, label)
	}
	i := strings.Index(rowLabels, strings.ToUpper(label))
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRow, label)
	}
	return i, nil
}

// ParsePosition reads notation such as "c4": a row letter and a 1-based column.
func ParsePosition(text string) (Position, error) {
	text = strings.TrimSpace(text)
	if len(text) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}
	row, err := RowIndex(text[:1])
	if err != nil {
		return Position{}, err
	}
	col := int(text[1] - '1')
	if col < 0 || col >= BoardSize {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidColumn, text[1:])
	}
	return Position{Row: row, Col: col}, nil
}

// ParseMove reads a move for the player. The move is not checked against any board.
func ParseMove(p Player, text string) (Move, error) {
	pos, err := ParsePosition(text)
	if err != nil {
		return Move{}, err
	}
	return Move{Row: pos.Row, Col: pos.Col, Player: p}, nil
}

// Notation renders a position as a row letter and a 1-based column.
func Notation(pos Position) string {
	if !pos.inBounds() {
		return fmt.Sprintf("(%d,%d)", pos.Row, pos.Col)
	}
	return fmt.Sprintf("%c%d", rowLabels[pos.Row], pos.Col+1)
}
