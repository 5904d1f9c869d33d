package xiangqi

import (
	"strings"
)

const (
	Cols     = 9
	Rows     = 10
	NumCells = Rows * Cols

	RiverRow = 5 // 河界在第 4、5 行之间：黑方 y<=4，红方 y>=5
)

func indexOf(x, y int) int { return y*Cols + x }

func onBoard(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func pawnDir(side Side) int {
	switch side {
	case Red:
		return -1
	case Black:
		return +1
	}
	return 0
}

// 是否已经过河
func pawnCrossedRiver(side Side, y int) bool {
	switch side {
	case Red:
		return y < RiverRow
	case Black:
		return y >= RiverRow
	}
	return false
}

// 是否在本方一侧（象不能过河）
func onOwnHalf(side Side, y int) bool {
	switch side {
	case Red:
		return y >= RiverRow
	case Black:
		return y < RiverRow
	}
	return false
}

// 是否在九宫：x 3..5；黑 y 0..2，红 y 7..9
func inPalace(side Side, x, y int) bool {
	if x < 3 || x > 5 {
		return false
	}
	switch side {
	case Black:
		return y >= 0 && y <= 2
	case Red:
		return y >= Rows-3 && y <= Rows-1
	}
	return false
}

// Board 9x10 棋盘。只负责摆放，不懂规则。
type Board struct {
	cells [NumCells]Piece
}

// NewBoard 返回已摆好开局的棋盘
func NewBoard() *Board {
	b := &Board{}
	b.Initialize()
	return b
}

// NewEmptyBoard 返回空棋盘，测试和残局摆子用
func NewEmptyBoard() *Board {
	return &Board{}
}

// 标准开局：上黑下红
const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

var initialCells = parseInitialBoard()

func parseInitialBoard() [NumCells]Piece {
	var cells [NumCells]Piece
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString 行数不为 10")
	}
	for y := 0; y < Rows; y++ {
		if len(lines[y]) != Cols {
			panic("initialBoardString 列数不为 9")
		}
		for x, ch := range lines[y] {
			if ch == '.' {
				continue
			}
			pc, ok := pieceFromLetter(ch)
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			cells[indexOf(x, y)] = pc
		}
	}
	return cells
}

// Initialize 清空并摆好 32 个棋子
func (b *Board) Initialize() {
	b.cells = initialCells
}

func (b *Board) Clear() {
	b.cells = [NumCells]Piece{}
}

// Get 越界返回空，方便边界附近的调用方
func (b *Board) Get(x, y int) Piece {
	if !onBoard(x, y) {
		return 0
	}
	return b.cells[indexOf(x, y)]
}

func (b *Board) At(p Pos) Piece { return b.Get(p.X, p.Y) }

// Set 直接摆子（越界忽略），不做任何规则检查
func (b *Board) Set(x, y int, pc Piece) {
	if !onBoard(x, y) {
		return
	}
	b.cells[indexOf(x, y)] = pc
}

func (b *Board) Remove(x, y int) { b.Set(x, y, 0) }

// MovePiece 无条件搬子：终点原有的子被覆盖（即吃子），起点清空。
// 只应在 Validator 通过之后调用。
func (b *Board) MovePiece(fromX, fromY, toX, toY int) {
	if !onBoard(fromX, fromY) || !onBoard(toX, toY) {
		return
	}
	pc := b.cells[indexOf(fromX, fromY)]
	b.cells[indexOf(toX, toY)] = pc
	b.cells[indexOf(fromX, fromY)] = 0
}

func (b *Board) IsValidPosition(x, y int) bool { return onBoard(x, y) }

func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.cells == o.cells
}
