package agent

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
)

type searchAgent struct {
	searcher *searcher.AlphaBeta
}

// NewSearchAgent returns an agent that plays the alpha-beta searcher's choice.
func NewSearchAgent(s *searcher.AlphaBeta) Agent {
	if s == nil {
		panic("search agent needs a searcher")
	}
	return searchAgent{searcher: s}
}

// FindMove checks the context only before the search starts; the search
// itself is bounded by the searcher's time budget.
func (a searchAgent) FindMove(ctx context.Context, board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return a.searcher.FindMove(board, player)
}
