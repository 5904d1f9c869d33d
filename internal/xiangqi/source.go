package xiangqi

import (
	"errors"
	"io"
)

// MoveSource 提供下一步棋。返回 io.EOF 表示输入结束。
type MoveSource interface {
	NextMove() (Move, error)
}

type MoveSourceFunc func() (Move, error)

func (f MoveSourceFunc) NextMove() (Move, error) { return f() }

// ScriptSource 按顺序吐出预先写好的走法
type ScriptSource struct {
	moves []Move
	next  int
}

func NewScriptSource(moves ...Move) *ScriptSource {
	return &ScriptSource{moves: moves}
}

func (s *ScriptSource) NextMove() (Move, error) {
	if s.next >= len(s.moves) {
		return Move{}, io.EOF
	}
	m := s.moves[s.next]
	s.next++
	return m, nil
}

// Observer 对局过程回调，字段都可以为 nil
type Observer struct {
	OnTurn     func(g *Game)
	OnMove     func(g *Game, side Side, m Move)
	OnReject   func(g *Game, m Move, err error)
	OnGameOver func(g *Game, winner Side)
}

// Play 从 src 读棋直到分出胜负或输入结束。
// 非法走法交给 OnReject 后继续等下一步；输入结束返回 nil，其他读取错误原样返回。
func (g *Game) Play(src MoveSource, obs Observer) error {
	for !g.IsOver() {
		if obs.OnTurn != nil {
			obs.OnTurn(g)
		}
		m, err := src.NextMove()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		side := g.turn
		if err := g.SubmitMove(m); err != nil {
			if obs.OnReject != nil {
				obs.OnReject(g, m, err)
			}
			continue
		}
		if obs.OnMove != nil {
			obs.OnMove(g, side, m)
		}
	}
	if obs.OnGameOver != nil {
		obs.OnGameOver(g, g.winner)
	}
	return nil
}
