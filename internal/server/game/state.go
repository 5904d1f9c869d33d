package game

import (
	"sync"
	"time"

	"xiangqi/internal/xiangqi"
)

type GameState struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *xiangqi.Game
	updatedAt time.Time
}

// Snapshot 某一时刻的只读视图
type Snapshot struct {
	ID         string
	Position   string
	ToMove     xiangqi.Side
	Status     xiangqi.Status
	Winner     xiangqi.Side
	Moves      int
	LegalMoves []xiangqi.Move
	UpdatedAt  time.Time
}

// Play 在锁内完成一整轮“校验 -> 落子 -> 判胜负”，棋盘不会被看到中间态
func (g *GameState) Play(from, to xiangqi.Pos) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.game.Submit(from, to); err != nil {
		return g.snapshotLocked(), err
	}
	g.updatedAt = time.Now()
	return g.snapshotLocked(), nil
}

func (g *GameState) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *GameState) snapshotLocked() Snapshot {
	b := g.game.Board()
	s := Snapshot{
		ID:        g.ID,
		Position:  xiangqi.EncodePosition(b, g.game.Turn()),
		ToMove:    g.game.Turn(),
		Status:    g.game.Status(),
		Winner:    xiangqi.NoSide,
		Moves:     g.game.Moves(),
		UpdatedAt: g.updatedAt,
	}
	if w, over := g.game.Winner(); over {
		s.Winner = w
	} else {
		s.LegalMoves = xiangqi.LegalMoves(b, g.game.Turn())
	}
	return s
}
