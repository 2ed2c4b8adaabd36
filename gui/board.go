package gui

import (
	"fmt"
	"image/color"
	"sync"

	"chessbot/bots"
	"chessbot/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
)

const (
	squareSize   = 100
	boardSize    = squareSize * 8
	statusHeight = 40
	pieceInset   = 20
)

var (
	lightColor    = color.RGBA{240, 217, 181, 255}
	darkColor     = color.RGBA{181, 136, 99, 255}
	selectedColor = color.RGBA{240, 60, 140, 255}
	targetColor   = color.RGBA{200, 80, 80, 255}
	checkColor    = color.RGBA{100, 6, 5, 255}
	whitePiece    = color.RGBA{250, 250, 250, 255}
	blackPiece    = color.RGBA{30, 30, 30, 255}
)

// Board is an ebiten front end for a game session. Humans move by clicking
// or dragging, bots think on a goroutine.
type Board struct {
	session *game.Session
	roster  []bots.ChessBot

	// pov is the colour shown at the bottom.
	pov          chess.Color
	selected     chess.Square
	hasSelection bool
	targets      map[chess.Square]bool
	dragging     bool
	dragX, dragY int

	mu          sync.Mutex
	botThinking bool
	lastErr     error

	tiles  map[color.RGBA]*ebiten.Image
	pieces map[color.RGBA]*ebiten.Image
}

func NewBoard(session *game.Session, roster []bots.ChessBot) *Board {
	b := &Board{
		session: session,
		roster:  roster,
		pov:     chess.White,
		targets: make(map[chess.Square]bool),
		tiles:   make(map[color.RGBA]*ebiten.Image),
		pieces:  make(map[color.RGBA]*ebiten.Image),
	}
	// Face the human when only Black is played by one.
	if session.Players[0].Kind == game.Bot && session.Players[1].Kind == game.Human {
		b.pov = chess.Black
	}
	for _, c := range []color.RGBA{lightColor, darkColor, selectedColor, targetColor, checkColor} {
		img := ebiten.NewImage(squareSize, squareSize)
		img.Fill(c)
		b.tiles[c] = img
	}
	for _, c := range []color.RGBA{whitePiece, blackPiece} {
		img := ebiten.NewImage(squareSize-2*pieceInset, squareSize-2*pieceInset)
		img.Fill(c)
		b.pieces[c] = img
	}
	return b
}

// squareAt maps screen coordinates to a board square.
func (b *Board) squareAt(x, y int) (chess.Square, bool) {
	y -= statusHeight
	if x < 0 || x >= boardSize || y < 0 || y >= boardSize {
		return chess.NoSquare, false
	}
	col, row := x/squareSize, y/squareSize
	file, rank := col, 7-row
	if b.pov == chess.Black {
		file, rank = 7-col, row
	}
	return chess.NewSquare(chess.File(file), chess.Rank(rank)), true
}

// origin is the top left screen corner of a square.
func (b *Board) origin(sq chess.Square) (int, int) {
	col, row := int(sq.File()), 7-int(sq.Rank())
	if b.pov == chess.Black {
		col, row = 7-int(sq.File()), int(sq.Rank())
	}
	return col * squareSize, row*squareSize + statusHeight
}

func (b *Board) deselect() {
	b.hasSelection = false
	b.dragging = false
	b.targets = make(map[chess.Square]bool)
}

func (b *Board) selectSquare(pos *chess.Position, sq chess.Square) bool {
	piece := pos.Board().Piece(sq)
	if piece == chess.NoPiece || piece.Color() != pos.Turn() {
		return false
	}
	b.deselect()
	b.selected, b.hasSelection = sq, true
	for _, m := range pos.ValidMoves() {
		if m.S1() == sq {
			b.targets[m.S2()] = true
		}
	}
	return true
}

// tryMove plays the selected piece to sq if that is legal.
func (b *Board) tryMove(sq chess.Square) bool {
	if !b.hasSelection || !b.targets[sq] {
		return false
	}
	g := b.session.Game
	move := game.FindMove(g.Position(), b.selected, sq)
	if move == nil {
		return false
	}
	if err := g.Move(move); err != nil {
		log.Warn().Err(err).Str("move", move.String()).Msg("move rejected")
		return false
	}
	b.deselect()
	return true
}

func (b *Board) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		b.pov = b.pov.Other()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		b.cycleBots()
	}
	if b.session.Game.Outcome() != chess.NoOutcome {
		return nil
	}

	player := b.session.PlayerToMove()
	if player.Kind == game.Bot {
		if !b.botThinking {
			b.botThinking = true
			go b.makeBotMove(player.Bot, b.session.Game.Clone())
		}
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		b.deselect()
	}

	pos := b.session.Game.Position()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if sq, ok := b.squareAt(x, y); ok && !b.tryMove(sq) {
			if b.selectSquare(pos, sq) {
				b.dragging = true
				b.dragX, b.dragY = x, y
			}
		}
	}

	if b.dragging {
		b.dragX, b.dragY = ebiten.CursorPosition()
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			b.dragging = false
			if sq, ok := b.squareAt(b.dragX, b.dragY); ok && sq != b.selected {
				b.tryMove(sq)
			}
		}
	}
	return nil
}

// makeBotMove searches on a copy of the game so drawing never waits on it.
func (b *Board) makeBotMove(bot bots.ChessBot, snapshot *chess.Game) {
	move := bot.BestMove(snapshot)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.botThinking = false
	if move == nil {
		b.lastErr = fmt.Errorf("%s: %w", bot.Name(), game.ErrNoMove)
		log.Error().Err(b.lastErr).Msg("bot failed to move")
		return
	}
	if err := b.session.Game.Move(move); err != nil {
		b.lastErr = err
		log.Error().Err(err).Str("move", move.String()).Msg("bot move rejected")
	}
}

// cycleBots moves every bot-controlled side to the next bot in the roster.
func (b *Board) cycleBots() {
	if len(b.roster) == 0 {
		return
	}
	for _, p := range b.session.Players {
		if p.Kind != game.Bot {
			continue
		}
		next := 0
		for i, bot := range b.roster {
			if bot.Name() == p.Bot.Name() {
				next = (i + 1) % len(b.roster)
				break
			}
		}
		p.Bot = b.roster[next]
		log.Info().Str("color", p.Color.Name()).Str("bot", p.Bot.Name()).Msg("bot switched")
	}
}

func (b *Board) Draw(screen *ebiten.Image) {
	b.mu.Lock()
	defer b.mu.Unlock()

	g := b.session.Game
	pos := g.Position()
	board := pos.Board()

	checked := chess.NoSquare
	if moves := g.Moves(); len(moves) > 0 && moves[len(moves)-1].HasTag(chess.Check) {
		king := chess.NewPiece(chess.King, pos.Turn())
		for sq := chess.A1; sq <= chess.H8; sq++ {
			if board.Piece(sq) == king {
				checked = sq
			}
		}
	}

	for sq := chess.A1; sq <= chess.H8; sq++ {
		tile := lightColor
		if (int(sq.File())+int(sq.Rank()))%2 == 0 {
			tile = darkColor
		}
		switch {
		case b.hasSelection && sq == b.selected:
			tile = selectedColor
		case b.targets[sq]:
			tile = targetColor
		case sq == checked:
			tile = checkColor
		}
		x, y := b.origin(sq)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(b.tiles[tile], op)

		piece := board.Piece(sq)
		if piece == chess.NoPiece || (b.dragging && sq == b.selected) {
			continue
		}
		b.drawPiece(screen, piece, x, y)
	}

	if b.dragging {
		b.drawPiece(screen, board.Piece(b.selected), b.dragX-squareSize/2, b.dragY-squareSize/2)
	}

	ebitenutil.DebugPrintAt(screen, b.status(), 20, 12)
	players := fmt.Sprintf("White: %s  Black: %s", b.session.Players[0].Name(), b.session.Players[1].Name())
	ebitenutil.DebugPrintAt(screen, players, boardSize/2, 12)
}

func (b *Board) drawPiece(screen *ebiten.Image, piece chess.Piece, x, y int) {
	fill := whitePiece
	if piece.Color() == chess.Black {
		fill = blackPiece
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x+pieceInset), float64(y+pieceInset))
	screen.DrawImage(b.pieces[fill], op)
	ebitenutil.DebugPrintAt(screen, game.PieceLetter(piece), x+squareSize/2-3, y+squareSize/2-8)
}

func (b *Board) status() string {
	g := b.session.Game
	switch {
	case g.Outcome() != chess.NoOutcome:
		return "Result: " + game.ResultMessage(g)
	case b.lastErr != nil:
		return "Error: " + b.lastErr.Error()
	case b.botThinking:
		return "Bot thinking..."
	default:
		return fmt.Sprintf("%s to move (F flips, B switches bot)", b.session.PlayerToMove().Color.Name())
	}
}

func (b *Board) Layout(outsideWidth, outsideHeight int) (int, int) {
	return boardSize, boardSize + statusHeight
}

// Run opens the window and blocks until it is closed.
func Run(session *game.Session, roster []bots.ChessBot) error {
	ebiten.SetWindowSize(boardSize, boardSize+statusHeight)
	ebiten.SetWindowTitle("Chess")
	return ebiten.RunGame(NewBoard(session, roster))
}
