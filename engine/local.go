package engine

import (
	"context"
	"fmt"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/gamemaster"
	"isolation/meta"
	"isolation/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

type LocalEngine struct {
	first    game.Player
	agents   map[game.Player]agent.Agent
	budget   time.Duration
	maxTurns int
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithBudget sets the budget recorded on the game. Agents keep their own.
func WithBudget(budget time.Duration) Option {
	return func(e *LocalEngine) {
		if budget > 0 {
			e.budget = budget
		}
	}
}

func NewLocalEngine(first game.Player, agents map[game.Player]agent.Agent, options ...Option) *LocalEngine {
	if agents[game.PlayerA] == nil || agents[game.PlayerB] == nil {
		panic("need an agent for each player")
	}

	e := &LocalEngine{
		first:    first,
		agents:   agents,
		budget:   meta.DefaultTimeBudget,
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found. Every agent move
// is validated by the game master exactly like a human move.
func (e *LocalEngine) Run(ctx context.Context) (Result, error) {
	g := gamemaster.NewGame(e.first, e.budget)
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.first.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.first)

	winner, over := g.Winner()
	for turn := 1; !over && turn <= e.maxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		player := g.Turn()
		move, searchMetric, err := e.agents[player].FindMove(ctx, g.Board(), player)
		if err != nil {
			return Result{}, fmt.Errorf("turn %d: player %s failed to find a move: %w", turn, player, err)
		}
		if err := g.Play(move); err != nil {
			return Result{}, fmt.Errorf("turn %d: %w", turn, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("turn", turn).Str("player", player.String()).Str("move", move.String()).Msg("move played")

		winner, over = g.Winner()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if over {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("game ended with winner %s after %d moves", winner, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	return Result{
		Winner:   winner,
		Finished: over,
		Record:   g.Record(),
		Game:     gameMetric,
		Moves:    moveMetrics,
	}, nil
}
