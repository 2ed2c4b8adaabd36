package bots

import (
	"github.com/notnil/chess"
)

// Material values in centipawns.
const (
	PawnValue   = 100
	KnightValue = 3 * PawnValue
	BishopValue = 3 * PawnValue
	RookValue   = 5 * PawnValue
	QueenValue  = 9 * PawnValue

	// TotalPieceValue is one side's material in the starting position.
	TotalPieceValue = 8*PawnValue + 2*(RookValue+BishopValue+KnightValue) + QueenValue

	NoPawnsPenalty = -PawnValue / 2
	BishopPair     = PawnValue / 2
	KnightPair     = -PawnValue / 10
	RookPair       = -PawnValue / 10

	// MaxPhase is the game phase of a full board.
	MaxPhase = 24
)

// DefaultEvaluator blends material, tapered piece-square tables and an
// endgame term that drives a weak king to the edge.
//
// MobilityWeight adds weight * number of legal moves for the side to move.
// Zero, the default, turns the term off.
type DefaultEvaluator struct {
	MobilityWeight int
}

// material holds per-side piece counts and the raw material sum.
type material struct {
	pawns, knights, bishops, rooks, queens int
}

func (m material) value() int {
	return m.pawns*PawnValue +
		m.knights*KnightValue +
		m.bishops*BishopValue +
		m.rooks*RookValue +
		m.queens*QueenValue
}

// adjusted applies the flat pair and pawn bonuses and the endgame pawn boost.
func (m material) adjusted() int {
	v := m.value()
	endgameFactor := TotalPieceValue - v
	if m.pawns == 0 {
		v += NoPawnsPenalty
	}
	if m.knights == 2 {
		v += KnightPair
	}
	if m.bishops == 2 {
		v += BishopPair
	}
	if m.rooks == 2 {
		v += RookPair
	}
	return v + (m.pawns*endgameFactor*PawnValue)/TotalPieceValue
}

// Evaluate returns the score of pos, positive when White is better.
func (e DefaultEvaluator) Evaluate(pos *chess.Position) int {
	switch pos.Status() {
	case chess.Stalemate:
		return 0
	case chess.Checkmate:
		if pos.Turn() == chess.Black {
			return MateValue
		}
		return -MateValue
	}

	board := pos.Board()
	var mat [2]material
	var mg, eg int
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		s := side(piece.Color())
		switch piece.Type() {
		case chess.Pawn:
			mat[s].pawns++
		case chess.Knight:
			mat[s].knights++
		case chess.Bishop:
			mat[s].bishops++
		case chess.Rook:
			mat[s].rooks++
		case chess.Queen:
			mat[s].queens++
		}

		idx, sign := sq, 1
		if s == 1 {
			idx, sign = mirror(sq), -1
		}
		tables := pst[pstIndex(piece.Type())]
		mg += sign * tables[0][idx]
		eg += sign * tables[1][idx]
	}

	white, black := mat[0].value(), mat[1].value()
	if white == 0 && black == 0 {
		return 0
	}

	mgPhase := gamePhase(mat)
	egPhase := MaxPhase - mgPhase
	tapered := (mg*mgPhase + eg*egPhase) / MaxPhase

	score := mat[0].adjusted() - mat[1].adjusted() + tapered
	score += kingToCorner(board, TotalPieceValue-white, TotalPieceValue-black)
	return score + e.mobility(pos)
}

// gamePhase counts minor pieces once, rooks twice and queens four times,
// capped at MaxPhase for early promotions.
func gamePhase(mat [2]material) int {
	phase := 0
	for _, m := range mat {
		phase += m.knights + m.bishops + 2*m.rooks + 4*m.queens
	}
	if phase > MaxPhase {
		return MaxPhase
	}
	return phase
}

// centerDistance is the file plus rank distance of sq from the central
// 2x2 block.
func centerDistance(sq chess.Square) int {
	file, rank := int(sq.File()), int(sq.Rank())
	return max(3-file, file-4) + max(3-rank, rank-4)
}

// kingToCorner rewards each side for the distance of the opponent's king
// from the centre, scaled by how little material the opponent has left.
func kingToCorner(board *chess.Board, whiteFactor, blackFactor int) int {
	wk, okW := kingSquare(board, chess.White)
	bk, okB := kingSquare(board, chess.Black)
	if !okW || !okB {
		return 0
	}
	return centerDistance(bk)*blackFactor*2/PawnValue -
		centerDistance(wk)*whiteFactor*2/PawnValue
}

func (e DefaultEvaluator) mobility(pos *chess.Position) int {
	if e.MobilityWeight == 0 {
		return 0
	}
	return objective(pos.Turn()) * e.MobilityWeight * len(pos.ValidMoves())
}
