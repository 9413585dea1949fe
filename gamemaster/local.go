package gamemaster

import (
	"errors"
	"fmt"
	"isolation/game"
	"isolation/searcher"
	"isolation/utils"
	"strings"
	"time"
)

var (
	ErrNotYourTurn = errors.New("not this player's turn")
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// Game is the authoritative state of one match: the board, whose turn it is
// and the moves played so far. Every move, human or computer, goes through Play.
type Game struct {
	board  game.Board
	first  game.Player
	turn   game.Player
	budget time.Duration
	moves  []game.Move
}

// NewGame starts a match. The computer's budget is raised to the searcher's minimum.
func NewGame(first game.Player, budget time.Duration) *Game {
	return &Game{
		board:  game.NewBoard(first),
		first:  first,
		turn:   first,
		budget: searcher.ClampBudget(budget),
	}
}

func (g *Game) Board() game.Board {
	return g.board
}

func (g *Game) Turn() game.Player {
	return g.turn
}

func (g *Game) First() game.Player {
	return g.first
}

func (g *Game) Budget() time.Duration {
	return g.budget
}

// Play validates and applies a move for the player to move.
func (g *Game) Play(m game.Move) error {
	if _, over := g.Winner(); over {
		return ErrGameOver
	}
	if m.Player != g.turn {
		return fmt.Errorf("%w: %s moved but %s is to play", ErrNotYourTurn, m.Player, g.turn)
	}
	if !utils.Contains(g.board.LegalMoves(m.Player), m) {
		return fmt.Errorf("%w: %s to %s", ErrIllegalMove, m.Player, m)
	}

	g.board = g.board.Play(m)
	g.moves = append(g.moves, m)
	g.turn = g.turn.Opponent()
	return nil
}

// PlayNotation plays a move such as "C4" for the player to move.
func (g *Game) PlayNotation(text string) error {
	m, err := game.ParseMove(g.turn, text)
	if err != nil {
		return err
	}
	return g.Play(m)
}

// Winner reports the winner once a player is boxed in. The side to move is
// checked first since a move can only strand the opponent.
func (g *Game) Winner() (game.Player, bool) {
	for _, p := range []game.Player{g.turn, g.turn.Opponent()} {
		if g.board.HasLost(p) {
			return p.Opponent(), true
		}
	}
	return 0, false
}

func (g *Game) Moves() []game.Move {
	return append([]game.Move(nil), g.moves...)
}

func (g *Game) LastMove() (game.Move, bool) {
	if len(g.moves) == 0 {
		return game.Move{}, false
	}
	return g.moves[len(g.moves)-1], true
}

// History lists one player's moves in notation, oldest first.
func (g *Game) History(p game.Player) []string {
	var history []string
	for _, m := range g.moves {
		if m.Player == p {
			history = append(history, m.String())
		}
	}
	return history
}

// Record prints the move list with the computer (X) in the first column and
// the opponent (O) in the second, one numbered line per round.
func (g *Game) Record() string {
	computer, opponent := g.History(game.PlayerA), g.History(game.PlayerB)
	var sb strings.Builder
	sb.WriteString("Computer vs. Opponent\n")
	for i := 0; i < max(len(computer), len(opponent)); i++ {
		fmt.Fprintf(&sb, "%d. ", i+1)
		if i < len(computer) {
			sb.WriteString(computer[i])
		}
		sb.WriteString("\t\t")
		if i < len(opponent) {
			sb.WriteString(opponent[i])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
