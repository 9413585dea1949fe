package searcher

import (
	"errors"
	"isolation/experiments/metrics"
	"isolation/game"
	"math"
)

const (
	NegInfinity = math.MinInt
	Infinity    = math.MaxInt
)

var ErrNoLegalMoves = errors.New("player has no legal moves")

type Searcher interface {
	FindMove(board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error)
}

// Random is the source for tie-breaking between equally scored moves.
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type Random interface {
	Float64() float64
}
