// meta/meta.go
package meta

import "time"

// DefaultTimeBudget is the thinking time per automated move.
const DefaultTimeBudget = 2 * time.Second

// MaxDepth caps iterative deepening in sparse late-game trees.
const MaxDepth = 200

// TieBreak is the chance that an equally scored root move replaces the incumbent.
const TieBreak = 0.25

// MaxTurns bounds a game: every move uses up one of the 62 free squares.
const MaxTurns = 64
