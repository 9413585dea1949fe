package searcher

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(a *AlphaBeta)

// AlphaBeta picks moves with iteratively deepened minimax and alpha-beta
// pruning under a wall-clock budget. A value is not safe for concurrent searches.
type AlphaBeta struct {
	duration time.Duration
	maxDepth int
	tieBreak float64
	pruning  bool
	random   Random
	evaluate game.Evaluate
	metrics  metrics.Collector
}

type rootBest struct {
	move  game.Move
	score int
}

func WithDuration(duration time.Duration) Option {
	return func(a *AlphaBeta) {
		if duration > 0 {
			a.duration = duration
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(a *AlphaBeta) {
		if depth > 0 {
			a.maxDepth = depth
		}
	}
}

// WithTieBreak sets the chance that an equally scored root move replaces the
// current best. Zero makes move selection deterministic.
func WithTieBreak(probability float64) Option {
	return func(a *AlphaBeta) {
		if probability >= 0 && probability <= 1 {
			a.tieBreak = probability
		}
	}
}

func WithRandom(random Random) Option {
	return func(a *AlphaBeta) {
		if random != nil {
			a.random = random
		}
	}
}

func WithSeed(seed uint64) Option {
	return WithRandom(rand.New(rand.NewSource(seed)))
}

// WithPruningDisabled searches the full minimax tree. Only useful for checking
// that pruning never changes the chosen move.
func WithPruningDisabled() Option {
	return func(a *AlphaBeta) {
		a.pruning = false
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(a *AlphaBeta) {
		if evaluate != nil {
			a.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		duration: meta.DefaultTimeBudget,
		maxDepth: meta.MaxDepth,
		tieBreak: meta.TieBreak,
		pruning:  true,
		evaluate: game.EvaluateMobility,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	if a.random == nil {
		a.random = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return a
}

// Budget is the time a search is given once clamped to MinBudget.
func (a *AlphaBeta) Budget() time.Duration {
	return ClampBudget(a.duration)
}

// FindMove returns the best move for the player found before the time budget
// runs out. The overrun past the budget is bounded by one recursion chain
// unwinding, not by preemption. The player must have a legal move.
func (a *AlphaBeta) FindMove(board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	timer := NewTimer(a.duration)
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, ErrNoLegalMoves
	}

	a.metrics.Start(timer.Budget(), a.maxDepth)
	best := a.deepen(board, player, moves, timer)
	metric := a.metrics.Complete(best.score)

	log.Debug().
		Str("player", player.String()).
		Str("move", best.move.String()).
		Int("score", best.score).
		Dur("elapsed", timer.Elapsed()).
		Msg("search finished")

	return best.move, metric, nil
}

// SearchDepth runs a single root iteration at a fixed depth with no time limit.
func (a *AlphaBeta) SearchDepth(board game.Board, player game.Player, depth int) (game.Move, int, error) {
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.Move{}, 0, ErrNoLegalMoves
	}

	best := rootBest{move: moves[0], score: NegInfinity}
	a.searchRoot(board, player, moves, depth, never{}, &best)
	return best.move, best.score, nil
}

// deepen searches depth 1, 2, ... until the deadline or the depth cap. The best
// move and score carry over between iterations, so an interrupted iteration
// still returns the best answer seen so far.
func (a *AlphaBeta) deepen(board game.Board, player game.Player, moves []game.Move, d deadline) rootBest {
	best := rootBest{move: moves[0], score: NegInfinity}
	for depth := 1; depth <= a.maxDepth && !d.Expired(); depth++ {
		if !a.searchRoot(board, player, moves, depth, d, &best) {
			break
		}
		a.metrics.CompleteDepth(depth)
		log.Debug().Int("depth", depth).Str("best", best.move.String()).Int("score", best.score).Msg("depth completed")
	}
	return best
}

// searchRoot scans the root moves at one depth and reports whether the scan
// ran to completion (or to a cut) rather than stopping on the deadline.
func (a *AlphaBeta) searchRoot(board game.Board, player game.Player, moves []game.Move, depth int, d deadline, best *rootBest) bool {
	alpha, beta := NegInfinity, Infinity
	for _, move := range moves {
		if d.Expired() {
			return false
		}

		score := a.minValue(board.Play(move), player, depth-1, alpha, beta, d)
		if score > best.score {
			best.move, best.score = move, score
		} else if score == best.score && a.acceptTie() {
			best.move = move
			a.metrics.AddTieBreak()
		}

		if a.pruning && best.score >= beta {
			a.metrics.AddCutoff()
			break
		}
		alpha = max(alpha, best.score)
	}
	return true
}

func (a *AlphaBeta) acceptTie() bool {
	return a.tieBreak > 0 && a.random.Float64() < a.tieBreak
}

// maxValue scores a position where the root player is to move. Scores are
// always from the root player's point of view.
func (a *AlphaBeta) maxValue(board game.Board, player game.Player, depth, alpha, beta int, d deadline) int {
	a.metrics.AddNode()
	if a.isCutoff(board, depth, d) {
		return a.evaluate(board, player)
	}

	value := NegInfinity
	for i, move := range board.LegalMoves(player) {
		// isCutoff just polled the timer, so the first child always runs and
		// value never leaves this node as its infinite starting bound.
		if i > 0 && d.Expired() {
			break
		}

		value = max(value, a.minValue(board.Play(move), player, depth-1, alpha, beta, d))
		if a.pruning && value >= beta {
			a.metrics.AddCutoff()
			break
		}
		alpha = max(alpha, value)
	}
	return value
}

// minValue scores a position where the root player's opponent is to move.
func (a *AlphaBeta) minValue(board game.Board, player game.Player, depth, alpha, beta int, d deadline) int {
	a.metrics.AddNode()
	if a.isCutoff(board, depth, d) {
		return a.evaluate(board, player)
	}

	value := Infinity
	for i, move := range board.LegalMoves(player.Opponent()) {
		// isCutoff just polled the timer, so the first child always runs and
		// value never leaves this node as its infinite starting bound.
		if i > 0 && d.Expired() {
			break
		}

		value = min(value, a.maxValue(board.Play(move), player, depth-1, alpha, beta, d))
		if a.pruning && value <= alpha {
			a.metrics.AddCutoff()
			break
		}
		beta = min(beta, value)
	}
	return value
}

// isCutoff holds at the depth limit, when either side is boxed in, or once time is up.
func (a *AlphaBeta) isCutoff(board game.Board, depth int, d deadline) bool {
	return depth <= 0 ||
		board.HasLost(game.PlayerA) ||
		board.HasLost(game.PlayerB) ||
		d.Expired()
}
