package bots

import (
	"math"

	"github.com/notnil/chess"
)

const (
	// MateValue is the score of a position where White has mated. It sits
	// below math.MaxInt32 so that negation and the per-ply decrement never
	// overflow.
	MateValue = math.MaxInt32 - 2

	// Infinity bounds the alpha-beta window.
	Infinity = MateValue + 1

	// MaxDepth caps the root depth. Mate scores shrink by at most one per
	// ply, so they stay within [MateValue-MaxDepth, MateValue].
	MaxDepth = 64
)

// Result is what a negamax call returns. Score is relative to the side the
// call was made for.
type Result struct {
	Score int
	Move  *chess.Move
	Nodes int
}

// Searcher is a fixed-depth negamax search with alpha-beta pruning and
// captures-first move ordering.
type Searcher struct {
	evaluator PositionEvaluator
}

func NewSearcher(evaluator PositionEvaluator) *Searcher {
	if evaluator == nil {
		evaluator = DefaultEvaluator{}
	}
	return &Searcher{evaluator: evaluator}
}

// BestMove searches pos to the given depth and returns the score from
// White's point of view, the best move and the number of leaves visited.
// The move is nil only when pos has no legal moves.
func (s *Searcher) BestMove(pos *chess.Position, depth int) (int, *chess.Move, int) {
	perspective := objective(pos.Turn())
	res := s.Search(pos, depth, -Infinity, Infinity, perspective)
	return perspective * res.Score, res.Move, res.Nodes
}

// Search runs negamax from pos. perspective is +1 when maximising for White
// and -1 for Black. The call is treated as the root: mate distances are
// measured against its depth.
func (s *Searcher) Search(pos *chess.Position, depth, alpha, beta, perspective int) Result {
	depth = min(depth, MaxDepth)
	return s.negamax(pos, depth, alpha, beta, perspective, mateThreshold(depth))
}

// mateThreshold is the lowest raw child score still recognised as a forced
// mate for a search rooted at depth.
func mateThreshold(depth int) int {
	return MateValue - 1 - depth
}

// IsMateScore reports whether a score encodes a forced mate.
func IsMateScore(score int) bool {
	return abs(score) >= MateValue-MaxDepth
}

func (s *Searcher) negamax(pos *chess.Position, depth, alpha, beta, perspective, threshold int) Result {
	if depth <= 0 || !ongoing(pos) {
		return Result{Score: perspective * s.evaluator.Evaluate(pos), Nodes: 1}
	}

	best := Result{Score: -Infinity}
	for _, m := range orderMoves(pos, pos.ValidMoves()) {
		child := s.negamax(pos.Update(m), depth-1, -beta, -alpha, -perspective, threshold)
		best.Nodes += child.Nodes

		// Prefer the shortest mate and the longest defence.
		score := -child.Score
		if child.Score >= threshold {
			score = -(child.Score - 1)
		}

		if score > best.Score {
			best.Score = score
			best.Move = m
		}
		alpha = max(alpha, best.Score)
		if alpha >= beta {
			break
		}
	}
	return best
}
