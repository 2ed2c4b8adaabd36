package bots

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
)

const (
	startFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	scholarsMate = "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4"
	foolsMate    = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemate    = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

func position(t *testing.T, fen string) *chess.Position {
	t.Helper()
	opt, err := chess.FEN(fen)
	require.NoError(t, err)
	return chess.NewGame(opt).Position()
}

func TestEvaluateTerminal(t *testing.T) {
	e := DefaultEvaluator{}

	t.Run("black is mated", func(t *testing.T) {
		pos := position(t, scholarsMate)
		require.Equal(t, chess.Checkmate, pos.Status())
		require.Equal(t, MateValue, e.Evaluate(pos))
	})

	t.Run("white is mated", func(t *testing.T) {
		pos := position(t, foolsMate)
		require.Equal(t, chess.Checkmate, pos.Status())
		require.Equal(t, -MateValue, e.Evaluate(pos))
	})

	t.Run("stalemate is a draw", func(t *testing.T) {
		pos := position(t, stalemate)
		require.Equal(t, chess.Stalemate, pos.Status())
		require.Equal(t, 0, e.Evaluate(pos))
	})

	t.Run("bare kings are a draw", func(t *testing.T) {
		require.Equal(t, 0, e.Evaluate(position(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")))
	})
}

func TestEvaluateSymmetry(t *testing.T) {
	e := DefaultEvaluator{}

	require.Equal(t, 0, e.Evaluate(position(t, startFEN)), "Starting position should be balanced")

	white := position(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	black := position(t, "4k3/4p3/8/8/8/8/8/4K3 b - - 0 1")
	require.Equal(t, -e.Evaluate(white), e.Evaluate(black), "Mirrored positions should score opposite")
	require.Positive(t, e.Evaluate(white))
}

func TestEvaluateMaterial(t *testing.T) {
	e := DefaultEvaluator{}

	extraQueen := position(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.Greater(t, e.Evaluate(extraQueen), QueenValue/2)

	extraRook := position(t, "rnbqkbn1/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQq - 0 1")
	require.Less(t, e.Evaluate(extraRook), e.Evaluate(extraQueen))
}

func TestMaterialAdjusted(t *testing.T) {
	full := material{pawns: 8, knights: 2, bishops: 2, rooks: 2, queens: 1}
	require.Equal(t, TotalPieceValue, full.value())
	require.Equal(t, TotalPieceValue+BishopPair+KnightPair+RookPair, full.adjusted())

	bare := material{queens: 1}
	require.Equal(t, QueenValue+NoPawnsPenalty, bare.adjusted())

	// One pawn left: its value grows with the missing material.
	lone := material{pawns: 1}
	require.Equal(t, PawnValue+(TotalPieceValue-PawnValue)*PawnValue/TotalPieceValue, lone.adjusted())
}

func TestGamePhase(t *testing.T) {
	full := material{pawns: 8, knights: 2, bishops: 2, rooks: 2, queens: 1}
	require.Equal(t, MaxPhase, gamePhase([2]material{full, full}))
	require.Equal(t, 0, gamePhase([2]material{{pawns: 3}, {}}))
	require.Equal(t, 6, gamePhase([2]material{{rooks: 1, queens: 1}, {}}))

	promoted := material{queens: 5, rooks: 2}
	require.Equal(t, MaxPhase, gamePhase([2]material{promoted, full}), "Phase should be capped")
}

func TestCenterDistance(t *testing.T) {
	for sq, want := range map[chess.Square]int{
		chess.E4: 0,
		chess.D5: 0,
		chess.A1: 6,
		chess.H8: 6,
		chess.E1: 3,
		chess.C6: 2,
		chess.B6: 3,
		chess.C7: 3,
	} {
		require.Equal(t, want, centerDistance(sq), "square %s", sq)
	}
}

func TestPieceSquareLayout(t *testing.T) {
	// g2 is the pawn shield square PeSTO rewards most on rank 2.
	require.Equal(t, 38, pst[pstIndex(chess.Pawn)][0][chess.G2])
	require.Equal(t, 0, mgPawn[chess.G1], "Pawns never stand on rank 1")
	require.Equal(t, chess.G2, mirror(chess.G7))
	require.Equal(t, chess.A8, mirror(chess.A1))
}

func TestKingToCorner(t *testing.T) {
	pos := position(t, "k7/8/8/8/8/8/8/4K2Q w - - 0 1")
	whiteFactor := TotalPieceValue - QueenValue
	blackFactor := TotalPieceValue

	// a8 is 6 from the centre, e1 is 3.
	want := 6*blackFactor*2/PawnValue - 3*whiteFactor*2/PawnValue
	require.Equal(t, want, kingToCorner(pos.Board(), whiteFactor, blackFactor))
	require.Equal(t, 288, want)
}

func TestMobility(t *testing.T) {
	pos := position(t, startFEN)

	require.Equal(t, 0, DefaultEvaluator{}.mobility(pos), "Mobility should be off by default")
	require.Equal(t, 20, DefaultEvaluator{MobilityWeight: 1}.Evaluate(pos))

	black := position(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	require.Equal(t, -20, DefaultEvaluator{MobilityWeight: 1}.mobility(black))
}
