package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// NewGame starts from fen, or from the standard position when fen is empty.
func NewGame(fen string) (*chess.Game, error) {
	if fen == "" {
		return chess.NewGame(), nil
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return chess.NewGame(opt), nil
}

// Session is a game between two players, White first.
type Session struct {
	Game    *chess.Game
	Players [2]*Player

	out io.Writer
}

func NewSession(g *chess.Game, white, black *Player, out io.Writer) *Session {
	return &Session{Game: g, Players: [2]*Player{white, black}, out: out}
}

// PlayerToMove returns the player whose turn it is.
func (s *Session) PlayerToMove() *Player {
	if s.Game.Position().Turn() == chess.Black {
		return s.Players[1]
	}
	return s.Players[0]
}

// Step asks the player to move and plays the move.
func (s *Session) Step() error {
	p := s.PlayerToMove()
	move, err := p.NextMove(s.Game)
	if err != nil {
		return err
	}
	if err := s.Game.Move(move); err != nil {
		return fmt.Errorf("%s played %s: %w", p.Name(), move, err)
	}
	log.Debug().Str("player", p.Name()).Str("move", move.String()).Msg("move played")
	return nil
}

// Run plays until the game has an outcome. A human quitting resigns.
func (s *Session) Run() (chess.Outcome, error) {
	log.Info().
		Str("white", s.Players[0].Name()).
		Str("black", s.Players[1].Name()).
		Str("fen", s.Game.Position().String()).
		Msg("game started")

	for s.Game.Outcome() == chess.NoOutcome {
		PrintBoard(s.out, s.Game.Position().Board())
		err := s.Step()
		if errors.Is(err, ErrQuit) {
			s.Game.Resign(s.PlayerToMove().Color)
			break
		}
		if err != nil {
			return s.Game.Outcome(), err
		}
	}

	PrintBoard(s.out, s.Game.Position().Board())
	fmt.Fprintln(s.out, ResultMessage(s.Game))
	log.Info().
		Str("outcome", s.Game.Outcome().String()).
		Str("method", fmt.Sprint(s.Game.Method())).
		Int("moves", len(s.Game.Moves())).
		Msg("game over")
	return s.Game.Outcome(), nil
}

// ResultMessage describes how the game ended.
func ResultMessage(g *chess.Game) string {
	switch g.Method() {
	case chess.Checkmate:
		if g.Outcome() == chess.WhiteWon {
			return "Checkmate! Winner: White"
		}
		return "Checkmate! Winner: Black"
	case chess.Stalemate:
		return "Stalemate!"
	case chess.Resignation:
		if g.Outcome() == chess.WhiteWon {
			return "Black resigned. Winner: White"
		}
		return "White resigned. Winner: Black"
	}
	if g.Outcome() == chess.Draw {
		return "Draw!"
	}
	return "GAME OVER"
}
