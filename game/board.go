package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/notnil/chess"
)

var pieceLetters = map[chess.PieceType]string{
	chess.Pawn:   "p",
	chess.Knight: "n",
	chess.Bishop: "b",
	chess.Rook:   "r",
	chess.Queen:  "q",
	chess.King:   "k",
}

// PieceLetter is the lowercase letter of a black piece and the uppercase
// letter of a white one.
func PieceLetter(p chess.Piece) string {
	l := pieceLetters[p.Type()]
	if p.Color() == chess.White {
		return strings.ToUpper(l)
	}
	return l
}

// PrintBoard draws the board with rank 8 on top.
func PrintBoard(w io.Writer, board *chess.Board) {
	const rule = "  -------------------------"
	fmt.Fprintln(w, rule)
	for rank := 7; rank >= 0; rank-- {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d |", rank+1)
		for file := 0; file < 8; file++ {
			p := board.Piece(chess.NewSquare(chess.File(file), chess.Rank(rank)))
			if p == chess.NoPiece {
				sb.WriteString("  ")
			} else {
				sb.WriteString(PieceLetter(p) + " ")
			}
			sb.WriteString("|")
		}
		fmt.Fprintln(w, sb.String())
		fmt.Fprintln(w, rule)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
}
