package bots

import (
	"github.com/notnil/chess"
	"golang.org/x/exp/constraints"
)

// ongoing reports whether the side to move is neither mated nor stalemated.
func ongoing(pos *chess.Position) bool {
	return pos.Status() == chess.NoMethod
}

// side maps a colour to 0 for White and 1 for Black.
func side(c chess.Color) int {
	if c == chess.Black {
		return 1
	}
	return 0
}

// objective is +1 when White is to move and -1 when Black is.
func objective(c chess.Color) int {
	if c == chess.Black {
		return -1
	}
	return 1
}

// kingSquare scans the board for the king of the given colour.
func kingSquare(board *chess.Board, c chess.Color) (chess.Square, bool) {
	king := chess.NewPiece(chess.King, c)
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if board.Piece(sq) == king {
			return sq, true
		}
	}
	return chess.NoSquare, false
}

// isCapture reports whether the move lands on a square held by the opponent.
// En passant does not count: the destination square is empty.
func isCapture(pos *chess.Position, m *chess.Move) bool {
	target := pos.Board().Piece(m.S2())
	return target != chess.NoPiece && target.Color() == pos.Turn().Other()
}

// orderMoves puts captures first and keeps the generator's order inside each
// group.
func orderMoves(pos *chess.Position, moves []*chess.Move) []*chess.Move {
	ordered := make([]*chess.Move, 0, len(moves))
	for _, m := range moves {
		if isCapture(pos, m) {
			ordered = append(ordered, m)
		}
	}
	for _, m := range moves {
		if !isCapture(pos, m) {
			ordered = append(ordered, m)
		}
	}
	return ordered
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
