package ui

import (
	"fmt"
	"isolation/game"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// renderBoard draws the board in the same layout as game.Board.String, with
// each player and the used squares in their own colour.
func renderBoard(out *termenv.Output, b game.Board) string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 1; col <= game.BoardSize; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteString("\n")
	for row := 0; row < game.BoardSize; row++ {
		label, _ := game.RowLabel(row)
		sb.WriteString(label)
		for col := 0; col < game.BoardSize; col++ {
			sb.WriteString(" ")
			sb.WriteString(renderCell(out, b.Cell(row, col)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderCell(out *termenv.Output, c game.Cell) string {
	style := out.String(c.String())
	switch c {
	case game.OccupiedA:
		style = style.Foreground(out.Color("1")).Bold()
	case game.OccupiedB:
		style = style.Foreground(out.Color("4")).Bold()
	case game.Used:
		style = style.Faint()
	}
	return style.String()
}

// sideBySide places right next to left, separated by gap columns.
func sideBySide(left, right string, gap int) string {
	left = strings.TrimRight(left, "\n")
	right = strings.TrimRight(right, "\n")
	if right == "" {
		return left + "\n"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right) + "\n"
}
