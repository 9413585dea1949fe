package game

import "math"

const (
	LossScore = math.MinInt // Player has no moves left
	WinScore  = math.MaxInt // Opponent has no moves left
)

// Evaluate scores the position for the player: a guaranteed-worst sentinel if
// the player is boxed in, a guaranteed-best sentinel if the opponent is, and
// otherwise the player's mobility minus twice the opponent's.
func (b Board) Evaluate(p Player) int {
	opponent := p.Opponent()
	if b.HasLost(p) {
		return LossScore
	}
	if b.HasLost(opponent) {
		return WinScore
	}
	return b.Mobility(p) - 2*b.Mobility(opponent)
}

// EvaluateMobility is Board.Evaluate as an Evaluate function, the searcher default.
func EvaluateMobility(b Board, p Player) int {
	return b.Evaluate(p)
}
