package xiangqi

import "fmt"

// Pos 棋盘坐标：x 为列 [0,8]，y 为行 [0,9]，y 向下增大；黑方在上（y 小），红方在下。
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewPos(x, y int) (Pos, error) {
	p := Pos{X: x, Y: y}
	if !p.Valid() {
		return Pos{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return p, nil
}

func (p Pos) Valid() bool { return onBoard(p.X, p.Y) }

func (p Pos) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// HasKing 线性扫描，判断 side 的将/帅是否还在棋盘上。
// 这是唯一的胜负信号：将被吃掉即输。
func (b *Board) HasKing(side Side) bool {
	for _, pc := range b.cells {
		if pc != 0 && pc.Type() == General && pc.Side() == side {
			return true
		}
	}
	return false
}

// Count 统计 side 在棋盘上的棋子数
func (b *Board) Count(side Side) int {
	n := 0
	for _, pc := range b.cells {
		if pc != 0 && pc.Side() == side {
			n++
		}
	}
	return n
}

// IsGameOver 有一方将被吃掉时返回胜方
func IsGameOver(b *Board) (Side, bool) {
	red, black := b.HasKing(Red), b.HasKing(Black)
	switch {
	case red && !black:
		return Red, true
	case black && !red:
		return Black, true
	}
	return NoSide, false
}
