package ui

import (
	"context"
	"errors"
	"fmt"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/gamemaster"
	"isolation/searcher"
	"isolation/searcher/agent"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
)

// The computer always plays X and the human O.
const (
	computer = game.PlayerA
	human    = game.PlayerB
)

type stage int

const (
	chooseFirst stage = iota
	chooseBudget
	humanTurn
	computerTurn
	gameOver
)

// AgentFactory builds the computer's agent once the time limit is known.
type AgentFactory func(budget time.Duration) agent.Agent

type moveMsg struct {
	move   game.Move
	metric metrics.SearchMetric
	err    error
}

// Model is the bubbletea model for one interactive game against the computer.
type Model struct {
	out      *termenv.Output
	newAgent AgentFactory
	agent    agent.Agent
	first    game.Player
	game     *gamemaster.Game
	stage    stage
	input    string
	message  string
	quit     bool
}

func New(out *termenv.Output, newAgent AgentFactory) Model {
	return Model{out: out, newAgent: newAgent, stage: chooseFirst}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.stage == computerTurn {
				return m, nil
			}
			input := strings.TrimSpace(m.input)
			m.input = ""
			return m.submit(input)
		case tea.KeyBackspace:
			_, size := utf8.DecodeLastRuneInString(m.input)
			m.input = m.input[:len(m.input)-size]
		case tea.KeyRunes, tea.KeySpace:
			if m.stage != computerTurn {
				m.input += string(msg.Runes)
			}
		}
		return m, nil

	case moveMsg:
		return m.computerMoved(msg)
	}
	return m, nil
}

func (m Model) submit(input string) (tea.Model, tea.Cmd) {
	switch m.stage {
	case chooseFirst:
		switch strings.ToUpper(input) {
		case computer.String():
			m.first = computer
		case human.String():
			m.first = human
		default:
			m.message = "That is an invalid player selection. Please try again."
			return m, nil
		}
		m.message = ""
		m.stage = chooseBudget
		return m, nil

	case chooseBudget:
		budget, err := parseSeconds(input)
		if err != nil {
			m.message = "That is not a valid number - please only enter a positive value."
			return m, nil
		}
		m.message = ""
		m.game = gamemaster.NewGame(m.first, budget)
		m.agent = m.newAgent(m.game.Budget())
		log.Debug().Str("first", m.first.String()).Dur("budget", m.game.Budget()).Msg("game started")
		return m.nextTurn()

	case humanTurn:
		if strings.EqualFold(input, "quit") {
			m.quit = true
			m.stage = gameOver
			return m, tea.Quit
		}
		err := m.game.PlayNotation(input)
		switch {
		case errors.Is(err, gamemaster.ErrIllegalMove):
			m.message = "That is an invalid move - please try again."
			return m, nil
		case err != nil:
			m.message = "Invalid entry, please try again."
			return m, nil
		}
		m.message = "Move made"
		return m.nextTurn()

	case gameOver:
		return m, tea.Quit
	}
	return m, nil
}

// nextTurn moves to the game over screen or hands the turn to the side to move.
func (m Model) nextTurn() (tea.Model, tea.Cmd) {
	if _, over := m.game.Winner(); over {
		m.stage = gameOver
		return m, nil
	}
	if m.game.Turn() == human {
		m.stage = humanTurn
		return m, nil
	}
	m.stage = computerTurn
	return m, m.think()
}

// think runs the search off the event loop and reports back with a moveMsg.
func (m Model) think() tea.Cmd {
	board, a := m.game.Board(), m.agent
	return func() tea.Msg {
		move, metric, err := a.FindMove(context.Background(), board, computer)
		return moveMsg{move: move, metric: metric, err: err}
	}
}

func (m Model) computerMoved(msg moveMsg) (tea.Model, tea.Cmd) {
	err := msg.err
	if err == nil {
		err = m.game.Play(msg.move)
	}
	if err != nil {
		log.Error().Err(err).Msg("computer failed to move")
		m.message = fmt.Sprintf("AI FAILURE: %v", err)
		m.stage = gameOver
		return m, nil
	}

	log.Debug().Str("move", msg.move.String()).Int("depth", msg.metric.Depth).Int64("nodes", msg.metric.Nodes).Msg("computer moved")
	m.message = ""
	return m.nextTurn()
}

// parseSeconds reads a non-negative decimal number of seconds. The game
// raises anything below the minimum budget.
func parseSeconds(input string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, err
	}
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("time limit out of range: %v", seconds)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

func (m Model) View() string {
	var sb strings.Builder

	switch m.stage {
	case chooseFirst:
		sb.WriteString("Welcome to the Isolation game!\n\n")
		sb.WriteString("Please enter who is playing first.\n")
		sb.WriteString("Player X is the computer, and player O is the human player. Enter X or O now:\n")
	case chooseBudget:
		sb.WriteString("Now please enter the turn time limit the AI will have to abide by. ")
		fmt.Fprintf(&sb, "Note that the minimum time is %v seconds.\n", searcher.MinBudget.Seconds())
		sb.WriteString("Please enter time limit in number of seconds now:\n")
	case humanTurn, computerTurn:
		sb.WriteString(m.renderGame())
		sb.WriteString("\n")
		if last, ok := m.game.LastMove(); ok && last.Player == computer {
			fmt.Fprintf(&sb, "Computer's move is: %s\n", last)
		}
		fmt.Fprintf(&sb, "It is now Player %s's turn!\n", m.game.Turn())
		if m.stage == computerTurn {
			sb.WriteString("Player X is thinking...\n")
		} else {
			sb.WriteString("Player O, please enter a letter and number combination to indicate your move (such as A2).\n")
			sb.WriteString("To quit the game, type quit\n")
		}
	case gameOver:
		return m.renderGameOver()
	}

	if m.message != "" {
		sb.WriteString("\n")
		sb.WriteString(m.message)
		sb.WriteString("\n")
	}
	if m.stage != computerTurn {
		fmt.Fprintf(&sb, "> %s", m.input)
	}
	return sb.String()
}

func (m Model) renderGame() string {
	return sideBySide(renderBoard(m.out, m.game.Board()), m.game.Record(), 3)
}

func (m Model) renderGameOver() string {
	var sb strings.Builder
	sb.WriteString("GAME OVER\n")
	if m.quit {
		sb.WriteString("Thanks for playing!\n")
	} else if winner, over := m.game.Winner(); over {
		fmt.Fprintf(&sb, "Player %s wins!!!\n", winner)
	}
	if m.message != "" {
		sb.WriteString(m.message)
		sb.WriteString("\n")
	}
	sb.WriteString("Final moves list:\n")
	sb.WriteString(m.game.Record())
	sb.WriteString("Final game board:\n")
	sb.WriteString(renderBoard(m.out, m.game.Board()))
	sb.WriteString("\nPress enter to exit.\n")
	return sb.String()
}
