package xiangqi

import (
	"io"
	"log"
)

type Status int8

const (
	StatusPlaying Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "playing"
}

// Game 回合状态机：Playing(side) -> Playing(opposite) / GameOver(winner)
type Game struct {
	board     *Board
	validator *Validator
	status    Status
	turn      Side
	winner    Side
	moves     int
	logger    *log.Logger
}

// NewGame 开局，红先
func NewGame() *Game {
	return NewGameFrom(NewBoard(), Red)
}

// NewGameFrom 用给定棋盘开始（残局、测试）。若某方的将已经不在，直接进入 GameOver。
func NewGameFrom(b *Board, side Side) *Game {
	g := &Game{
		board:     b,
		validator: NewValidator(b),
		status:    StatusPlaying,
		turn:      side,
		winner:    NoSide,
		logger:    log.New(io.Discard, "", 0),
	}
	g.checkKings()
	return g
}

func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	g.logger = l
}

func (g *Game) Board() *Board  { return g.board }
func (g *Game) Status() Status { return g.status }
func (g *Game) Turn() Side     { return g.turn }
func (g *Game) Moves() int     { return g.moves }
func (g *Game) IsOver() bool   { return g.status == StatusGameOver }

func (g *Game) Winner() (Side, bool) {
	if g.status != StatusGameOver {
		return NoSide, false
	}
	return g.winner, true
}

// Submit 一个完整回合：校验 -> 落子 -> 判胜负 -> 换边。
// 被拒时状态与棋盘都不变。
func (g *Game) Submit(from, to Pos) error {
	if g.status == StatusGameOver {
		return &MoveError{Move: Move{From: from, To: to}, Err: ErrGameOver}
	}
	if err := g.validator.Validate(from.X, from.Y, to.X, to.Y, g.turn); err != nil {
		g.logger.Printf("%s rejected: %v", g.turn, err)
		return err
	}

	g.board.MovePiece(from.X, from.Y, to.X, to.Y)
	g.moves++
	g.logger.Printf("%s %s -> %s", g.turn, from, to)

	if g.checkKings() {
		g.logger.Printf("game over, winner %s", g.winner)
		return nil
	}
	g.turn = g.turn.Opposite()
	return nil
}

func (g *Game) SubmitMove(m Move) error { return g.Submit(m.From, m.To) }

// checkKings 任意一方没有将则进入 GameOver，胜方为仍有将的一方
func (g *Game) checkKings() bool {
	red, black := g.board.HasKing(Red), g.board.HasKing(Black)
	if red && black {
		return false
	}
	g.status = StatusGameOver
	switch {
	case red:
		g.winner = Red
	case black:
		g.winner = Black
	default:
		g.winner = NoSide
	}
	return true
}
