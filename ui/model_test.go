package ui

import (
	"io"
	"isolation/game"
	"isolation/searcher/agent"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

type fixedRandom float64

func (f fixedRandom) Float64() float64 {
	return float64(f)
}

func plainOutput() *termenv.Output {
	return termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.Ascii))
}

// newTestModel plays the computer with a mover that always takes its first legal move.
func newTestModel(budgets *[]time.Duration) Model {
	return New(plainOutput(), func(budget time.Duration) agent.Agent {
		if budgets != nil {
			*budgets = append(*budgets, budget)
		}
		return agent.NewRandomAgent(fixedRandom(0))
	})
}

func typeLine(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

// runComputer executes the pending search and feeds its result back.
func runComputer(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd, "Computer turn should start a search")
	next, _ := m.Update(cmd())
	return next.(Model)
}

func TestModelSetup(t *testing.T) {
	t.Run("invalid first player is rejected", func(t *testing.T) {
		m, _ := typeLine(t, newTestModel(nil), "z")

		require.Equal(t, chooseFirst, m.stage)
		require.Contains(t, m.View(), "invalid player selection")
	})

	t.Run("invalid time limit is rejected", func(t *testing.T) {
		m, _ := typeLine(t, newTestModel(nil), "o")
		m, _ = typeLine(t, m, "-1")

		require.Equal(t, chooseBudget, m.stage)
		require.Contains(t, m.View(), "not a valid number")
	})

	t.Run("human first waits for input with a clamped budget", func(t *testing.T) {
		var budgets []time.Duration
		m, _ := typeLine(t, newTestModel(&budgets), "o")
		m, cmd := typeLine(t, m, "0.1")

		require.Nil(t, cmd)
		require.Equal(t, humanTurn, m.stage)
		require.Equal(t, []time.Duration{500 * time.Millisecond}, budgets)
		require.Contains(t, m.View(), "It is now Player O's turn!")
	})

	t.Run("computer first starts thinking", func(t *testing.T) {
		m, _ := typeLine(t, newTestModel(nil), "X")
		m, cmd := typeLine(t, m, "1.5")

		require.Equal(t, computerTurn, m.stage)
		require.Equal(t, 1500*time.Millisecond, m.game.Budget())
		require.Contains(t, m.View(), "Player X is thinking...")

		m = runComputer(t, m, cmd)

		require.Equal(t, humanTurn, m.stage)
		require.Contains(t, m.View(), "Computer's move is: B1", "First legal move from A1 is straight down")
	})
}

func TestModelPlay(t *testing.T) {
	start := func(t *testing.T) Model {
		m, _ := typeLine(t, newTestModel(nil), "o")
		m, _ = typeLine(t, m, "1")
		return m
	}

	t.Run("malformed entry keeps the turn", func(t *testing.T) {
		m, cmd := typeLine(t, start(t), "J9")

		require.Nil(t, cmd)
		require.Equal(t, humanTurn, m.stage)
		require.Contains(t, m.View(), "Invalid entry, please try again.")
	})

	t.Run("illegal move keeps the turn", func(t *testing.T) {
		m, _ := typeLine(t, start(t), "H8")

		require.Equal(t, humanTurn, m.stage)
		require.Contains(t, m.View(), "That is an invalid move - please try again.")
	})

	t.Run("valid move hands the turn to the computer", func(t *testing.T) {
		m, cmd := typeLine(t, start(t), "b2")

		require.Equal(t, computerTurn, m.stage)
		require.Equal(t, game.OccupiedB, m.game.Board().Cell(1, 1))

		m = runComputer(t, m, cmd)

		require.Equal(t, humanTurn, m.stage)
		require.Len(t, m.game.History(game.PlayerA), 1)
		require.Contains(t, m.View(), "Computer vs. Opponent")
	})

	t.Run("keys are ignored while the computer thinks", func(t *testing.T) {
		m, _ := typeLine(t, start(t), "b2")
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c3")})

		require.Nil(t, cmd)
		require.Empty(t, next.(Model).input)
	})

	t.Run("backspace removes a whole multi-byte rune", func(t *testing.T) {
		next, _ := start(t).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c3é")})
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyBackspace})

		require.Equal(t, "c3", next.(Model).input)
		require.True(t, utf8.ValidString(next.(Model).input))

		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		require.Empty(t, next.(Model).input, "Backspace on empty input is a no-op")
	})

	t.Run("backspace edits the input", func(t *testing.T) {
		next, _ := start(t).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c34")})
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyBackspace})

		require.Equal(t, "c3", next.(Model).input)
	})

	t.Run("quit ends the game", func(t *testing.T) {
		m, cmd := typeLine(t, start(t), "quit")

		require.Equal(t, gameOver, m.stage)
		require.IsType(t, tea.QuitMsg{}, cmd())
		require.Contains(t, m.View(), "Thanks for playing!")
	})

	t.Run("game plays out to a winner", func(t *testing.T) {
		m := start(t)
		for turn := 0; m.stage != gameOver && turn < 64; turn++ {
			moves := m.game.Board().LegalMoves(game.PlayerB)
			require.NotEmpty(t, moves)

			var cmd tea.Cmd
			m, cmd = typeLine(t, m, moves[len(moves)-1].String())
			if m.stage == computerTurn {
				m = runComputer(t, m, cmd)
			}
		}

		require.Equal(t, gameOver, m.stage)
		view := m.View()
		require.Contains(t, view, "GAME OVER")
		require.True(t, strings.Contains(view, "Player X wins!!!") || strings.Contains(view, "Player O wins!!!"))
		require.Contains(t, view, "Final moves list:")
	})
}

func TestRenderBoard(t *testing.T) {
	board := game.NewBoard(game.PlayerA).Play(game.Move{Row: 2, Col: 2, Player: game.PlayerA})

	t.Run("plain profile matches the board text", func(t *testing.T) {
		require.Equal(t, board.String(), renderBoard(plainOutput(), board))
	})

	t.Run("colour profile styles the players", func(t *testing.T) {
		out := termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.ANSI))

		rendered := renderBoard(out, board)

		require.Contains(t, rendered, "\x1b[")
		require.NotEqual(t, board.String(), rendered)
	})
}

func TestSideBySide(t *testing.T) {
	t.Run("shorter block is padded", func(t *testing.T) {
		got := sideBySide("ab\ncd\n", "1\n2\n3\n", 2)

		require.Equal(t, "ab  1\ncd  2\n    3\n", got)
	})

	t.Run("empty right block leaves the left alone", func(t *testing.T) {
		require.Equal(t, "ab\n", sideBySide("ab\n", "", 2))
	})

	t.Run("colour codes do not shift the right block", func(t *testing.T) {
		board := game.NewBoard(game.PlayerA)
		record := "Moves\n1. C3\n2. D4\n"
		coloured := strings.Split(sideBySide(renderBoard(termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.ANSI)), board), record, 3), "\n")
		plain := strings.Split(sideBySide(board.String(), record, 3), "\n")

		require.Len(t, coloured, len(plain))
		for i := range plain {
			require.Equal(t, lipgloss.Width(plain[i]), lipgloss.Width(coloured[i]), "Line %d should have the same visible width", i)
		}
		require.True(t, strings.HasSuffix(plain[0], "   Moves"), "Record starts three columns after the board")
	})
}
