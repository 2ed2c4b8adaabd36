package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chessbot/bots"
	"chessbot/config"

	"github.com/notnil/chess"
)

var ErrInvalidInput = errors.New("invalid input")

type Visual int

const (
	CommandLine Visual = iota
	GUI
)

type setup struct {
	in  *bufio.Scanner
	out io.Writer
	cfg *config.Config
}

// CommandLineSetup asks for both players, the starting position and the
// front end.
func CommandLineSetup(in io.Reader, out io.Writer, cfg *config.Config) (*Session, Visual, error) {
	s := &setup{in: bufio.NewScanner(in), out: out, cfg: cfg}

	fmt.Fprintln(out, "Select player 1: human or bot.")
	white, err := s.player(chess.White)
	if err != nil {
		return nil, CommandLine, fmt.Errorf("player 1: %w", err)
	}

	fmt.Fprintln(out, "Select player 2: human or bot.")
	black, err := s.player(chess.Black)
	if err != nil {
		return nil, CommandLine, fmt.Errorf("player 2: %w", err)
	}

	g, err := s.position()
	if err != nil {
		return nil, CommandLine, err
	}

	visual, err := s.visual()
	if err != nil {
		return nil, CommandLine, err
	}

	return NewSession(g, white, black, out), visual, nil
}

func (s *setup) readLine() string {
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *setup) player(color chess.Color) (*Player, error) {
	switch answer := s.readLine(); answer {
	case "human":
		return NewHuman(color, s.in, s.out), nil
	case "bot":
		return NewBot(color, s.bot()), nil
	default:
		return nil, fmt.Errorf("%w: %q should be 'human' or 'bot'", ErrInvalidInput, answer)
	}
}

func (s *setup) bot() bots.ChessBot {
	fmt.Fprintln(s.out, "--- BOT setup ---")
	fmt.Fprintln(s.out, "Search depth: ")
	depth, err := strconv.Atoi(s.readLine())
	if err != nil || depth < 1 || depth > bots.MaxDepth {
		depth = s.cfg.Engine.Depth
	}
	fmt.Fprintln(s.out, "-----------------")
	return bots.NewNegamaxBot(depth, bots.WithMobility(s.cfg.Engine.MobilityWeight))
}

func (s *setup) position() (*chess.Game, error) {
	fmt.Fprintln(s.out, "Do you want to play from the default starting position or a specific FEN?")
	if s.readLine() == "default" {
		return NewGame(s.cfg.Game.FEN)
	}
	fmt.Fprintln(s.out, "Enter FEN:")
	return NewGame(s.readLine())
}

func (s *setup) visual() (Visual, error) {
	fmt.Fprintln(s.out, "Do you want to play in the commandline or gui?")
	switch answer := s.readLine(); answer {
	case "commandline":
		return CommandLine, nil
	case "gui":
		return GUI, nil
	default:
		return CommandLine, fmt.Errorf("%w: %q should be 'commandline' or 'gui'", ErrInvalidInput, answer)
	}
}
