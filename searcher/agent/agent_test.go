package agent

import (
	"context"
	"isolation/game"
	"isolation/searcher"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type fixedRandom float64

func (f fixedRandom) Float64() float64 {
	return float64(f)
}

func TestSearchAgent(t *testing.T) {
	t.Run("returns a legal move", func(t *testing.T) {
		board := game.NewBoard(game.PlayerA)
		a := NewSearchAgent(searcher.NewAlphaBeta(searcher.WithMaxDepth(2), searcher.WithDuration(time.Minute), searcher.WithMetrics()))

		move, metric, err := a.FindMove(context.Background(), board, game.PlayerA)

		require.NoError(t, err)
		require.Contains(t, board.LegalMoves(game.PlayerA), move)
		require.Equal(t, 2, metric.Depth)
	})

	t.Run("cancelled context skips the search", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		a := NewSearchAgent(searcher.NewAlphaBeta())

		_, _, err := a.FindMove(ctx, game.NewBoard(game.PlayerA), game.PlayerA)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("nil searcher panics", func(t *testing.T) {
		require.Panics(t, func() { NewSearchAgent(nil) })
	})
}

func TestRandomAgent(t *testing.T) {
	board := game.NewBoard(game.PlayerB)
	moves := board.LegalMoves(game.PlayerB)

	t.Run("sample bounds map to first and last move", func(t *testing.T) {
		low, _, err := NewRandomAgent(fixedRandom(0)).FindMove(context.Background(), board, game.PlayerB)
		require.NoError(t, err)
		high, _, err := NewRandomAgent(fixedRandom(0.999999)).FindMove(context.Background(), board, game.PlayerB)
		require.NoError(t, err)

		require.Equal(t, moves[0], low)
		require.Equal(t, moves[len(moves)-1], high)
	})

	t.Run("moves are always legal", func(t *testing.T) {
		a := NewRandomAgent(rand.New(rand.NewSource(3)))
		for i := 0; i < 100; i++ {
			move, _, err := a.FindMove(context.Background(), board, game.PlayerB)
			require.NoError(t, err)
			require.Contains(t, moves, move)
		}
	})

	t.Run("boxed in player is reported", func(t *testing.T) {
		stuck, err := game.ParseBoard(`
X # - - - - - -
# # - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - O
`)
		require.NoError(t, err)

		_, _, err = NewRandomAgent(nil).FindMove(context.Background(), stuck, game.PlayerA)

		require.ErrorIs(t, err, searcher.ErrNoLegalMoves)
	})
}
