// bot.go
package bots

import "github.com/notnil/chess"

// ChessBot is implemented by every move-choosing agent.
type ChessBot interface {
	BestMove(game *chess.Game) *chess.Move
	Name() string
}

// PositionEvaluator scores a position from White's point of view.
type PositionEvaluator interface {
	Evaluate(pos *chess.Position) int
}

// Roster returns the bots a front end can cycle through, strongest last.
func Roster(depth int, options ...Option) []ChessBot {
	return []ChessBot{
		NewNewbornBot(),
		NewRandomBot(),
		NewNegamaxBot(depth, options...),
	}
}
