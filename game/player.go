package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"chessbot/bots"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
)

var (
	// ErrQuit is returned when a human resigns or input runs out.
	ErrQuit = errors.New("player quit")
	// ErrNoMove is returned when a bot has nothing to play in an ongoing game.
	ErrNoMove = errors.New("no move possible")
)

type Kind int

const (
	Human Kind = iota
	Bot
)

func (k Kind) String() string {
	if k == Bot {
		return "bot"
	}
	return "human"
}

type Player struct {
	Kind  Kind
	Color chess.Color
	Bot   bots.ChessBot

	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(color chess.Color, in *bufio.Scanner, out io.Writer) *Player {
	return &Player{Kind: Human, Color: color, in: in, out: out}
}

func NewBot(color chess.Color, bot bots.ChessBot) *Player {
	return &Player{Kind: Bot, Color: color, Bot: bot}
}

func (p *Player) Name() string {
	if p.Kind == Bot && p.Bot != nil {
		return p.Bot.Name()
	}
	return "Human"
}

// NextMove asks the player for a move in the current position of g.
func (p *Player) NextMove(g *chess.Game) (*chess.Move, error) {
	if p.Kind == Bot {
		move := p.Bot.BestMove(g)
		if move == nil {
			return nil, fmt.Errorf("%s: %w", p.Bot.Name(), ErrNoMove)
		}
		return move, nil
	}
	return p.readMove(g.Position())
}

func (p *Player) readMove(pos *chess.Position) (*chess.Move, error) {
	fmt.Fprintln(p.out, "Enter the next move (in SAN): ")
	for p.in.Scan() {
		input := strings.TrimSpace(p.in.Text())
		switch input {
		case "":
			continue
		case "quit", "resign":
			return nil, ErrQuit
		}
		move, err := ParseMove(pos, input)
		if err == nil {
			return move, nil
		}
		log.Debug().Err(err).Str("input", input).Msg("rejected move")
		printSANHelp(p.out)
	}
	if err := p.in.Err(); err != nil {
		return nil, fmt.Errorf("reading move: %w", err)
	}
	return nil, ErrQuit
}

// ParseMove decodes SAN, falling back to UCI notation, and returns the
// matching legal move.
func ParseMove(pos *chess.Position, s string) (*chess.Move, error) {
	m, err := chess.AlgebraicNotation{}.Decode(pos, s)
	if err != nil {
		var uciErr error
		m, uciErr = chess.UCINotation{}.Decode(pos, s)
		if uciErr != nil {
			return nil, fmt.Errorf("decoding %q: %w", s, err)
		}
	}
	for _, legal := range pos.ValidMoves() {
		if legal.S1() == m.S1() && legal.S2() == m.S2() && legal.Promo() == m.Promo() {
			return legal, nil
		}
	}
	return nil, fmt.Errorf("illegal move %q", s)
}

// FindMove returns the legal move from one square to another, promoting to
// a queen when the move is a promotion. It returns nil if there is none.
func FindMove(pos *chess.Position, from, to chess.Square) *chess.Move {
	var found *chess.Move
	for _, m := range pos.ValidMoves() {
		if m.S1() != from || m.S2() != to {
			continue
		}
		if m.Promo() == chess.NoPieceType || m.Promo() == chess.Queen {
			return m
		}
		found = m
	}
	return found
}

func printSANHelp(w io.Writer) {
	fmt.Fprint(w, `-------------------------------------------------------
Please enter a valid move in SAN format, e.g. e4 or Nf3.
Capture: exd5 or Nxc6
Promotion: add =Q at the end, replace Q with the
piece you want to promote to
To disambiguate between two pieces, e.g. both rooks
could take on c1: Raxc1 to specify the rook on the a file
Castle kingside / queenside: O-O / O-O-O
UCI coordinates such as e2e4 are accepted too.
Type quit to resign.
-------------------------------------------------------
`)
}
