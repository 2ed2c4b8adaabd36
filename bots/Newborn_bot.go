package bots

import "github.com/notnil/chess"

// NewbornBot knows the rules and nothing else: it plays whatever move the
// generator lists first. Useful as a predictable sparring partner.
type NewbornBot struct{}

func NewNewbornBot() *NewbornBot {
	return &NewbornBot{}
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}

func (b *NewbornBot) BestMove(game *chess.Game) *chess.Move {
	if game == nil {
		return nil
	}
	return b.Move(game.Position())
}

// Move returns the first legal move in pos, or nil once the game is over.
func (b *NewbornBot) Move(pos *chess.Position) *chess.Move {
	if !ongoing(pos) {
		return nil
	}
	return pos.ValidMoves()[0]
}
