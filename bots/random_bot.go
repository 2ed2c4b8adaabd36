package bots

import (
	"time"

	"github.com/notnil/chess"
	"golang.org/x/exp/rand"
)

// RandomBot plays a uniformly random legal move.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot() *RandomBot {
	return NewSeededRandomBot(uint64(time.Now().UnixNano()))
}

func NewSeededRandomBot(seed uint64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) BestMove(game *chess.Game) *chess.Move {
	if game == nil {
		return nil
	}
	moves := game.ValidMoves()
	if len(moves) == 0 {
		return nil
	}
	return moves[b.rng.Intn(len(moves))]
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
