package bots

import (
	"fmt"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
)

type Option func(b *NegamaxBot)

// WithEvaluator replaces the default evaluator.
func WithEvaluator(evaluator PositionEvaluator) Option {
	return func(b *NegamaxBot) {
		if evaluator != nil {
			b.evaluator = evaluator
		}
	}
}

// WithMobility sets the mobility weight of the default evaluator. A custom
// evaluator installed with WithEvaluator is left as is.
func WithMobility(weight int) Option {
	return func(b *NegamaxBot) {
		if e, ok := b.evaluator.(DefaultEvaluator); ok {
			e.MobilityWeight = weight
			b.evaluator = e
		}
	}
}

// NegamaxBot picks moves with a fixed-depth negamax search.
type NegamaxBot struct {
	Depth     int
	evaluator PositionEvaluator
}

func NewNegamaxBot(depth int, options ...Option) *NegamaxBot {
	b := &NegamaxBot{
		Depth:     min(max(depth, 1), MaxDepth),
		evaluator: DefaultEvaluator{},
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *NegamaxBot) Name() string {
	return fmt.Sprintf("Negamax Bot (depth %d)", b.Depth)
}

func (b *NegamaxBot) BestMove(game *chess.Game) *chess.Move {
	if game == nil {
		return nil
	}
	_, move := b.Search(game.Position())
	return move
}

// Search returns the White-relative score of pos and the chosen move.
func (b *NegamaxBot) Search(pos *chess.Position) (int, *chess.Move) {
	log.Debug().Int("depth", b.Depth).Str("fen", pos.String()).Msg("searching for move")

	start := time.Now()
	score, move, nodes := NewSearcher(b.evaluator).BestMove(pos, b.Depth)

	if move == nil {
		log.Info().Int("score", score).Msg("no move possible")
		return score, nil
	}
	event := log.Info().
		Str("move", move.String()).
		Int("score", score).
		Int("nodes", nodes).
		Dur("took", time.Since(start))
	if IsMateScore(score) {
		event = event.Int("mate_in", MateValue-abs(score)+1)
	}
	event.Msg("move chosen")
	return score, move
}
