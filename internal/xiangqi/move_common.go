package xiangqi

// 将：目标在本方九宫内，上下左右一格（不处理“对将”规则）
func checkGeneral(b *Board, pc Piece, fromX, fromY, toX, toY int) error {
	if !inPalace(pc.Side(), toX, toY) {
		return reject(fromX, fromY, toX, toY, ErrPalaceViolation, "general must stay inside the palace")
	}
	dx, dy := abs(toX-fromX), abs(toY-fromY)
	if dx+dy != 1 {
		return reject(fromX, fromY, toX, toY, ErrShapeViolation, "general moves one step orthogonally")
	}
	return nil
}

// 士：九宫内斜走一格
func checkAdvisor(b *Board, pc Piece, fromX, fromY, toX, toY int) error {
	if !inPalace(pc.Side(), toX, toY) {
		return reject(fromX, fromY, toX, toY, ErrPalaceViolation, "advisor must stay inside the palace")
	}
	if abs(toX-fromX) != 1 || abs(toY-fromY) != 1 {
		return reject(fromX, fromY, toX, toY, ErrShapeViolation, "advisor moves one step diagonally")
	}
	return nil
}

// 象：田字 + 不过河 + 塞象眼
func checkElephant(b *Board, pc Piece, fromX, fromY, toX, toY int) error {
	if !onOwnHalf(pc.Side(), toY) {
		return reject(fromX, fromY, toX, toY, ErrRiverViolation, "elephant cannot cross the river")
	}
	dx, dy := toX-fromX, toY-fromY
	if abs(dx) != 2 || abs(dy) != 2 {
		return reject(fromX, fromY, toX, toY, ErrShapeViolation, "elephant moves exactly two points diagonally")
	}
	if b.Get(fromX+dx/2, fromY+dy/2) != 0 {
		return reject(fromX, fromY, toX, toY, ErrEyeBlocked, "elephant eye is occupied")
	}
	return nil
}

// 车：横竖随便走，中间不能有子
func checkChariot(b *Board, fromX, fromY, toX, toY int) error {
	if !straightLine(fromX, fromY, toX, toY) {
		return reject(fromX, fromY, toX, toY, ErrShapeViolation, "chariot moves along a rank or file")
	}
	if countBetween(b, fromX, fromY, toX, toY) > 0 {
		return reject(fromX, fromY, toX, toY, ErrPathBlocked, "chariot path is blocked")
	}
	return nil
}

// 炮：不吃子时同车；吃子时中间必须正好一个炮架
func checkCannon(b *Board, fromX, fromY, toX, toY int) error {
	if !straightLine(fromX, fromY, toX, toY) {
		return reject(fromX, fromY, toX, toY, ErrShapeViolation, "cannon moves along a rank or file")
	}
	n := countBetween(b, fromX, fromY, toX, toY)
	if b.Get(toX, toY) == 0 {
		if n != 0 {
			return reject(fromX, fromY, toX, toY, ErrScreenCountInvalid, "cannon cannot jump when not capturing")
		}
		return nil
	}
	if n != 1 {
		return reject(fromX, fromY, toX, toY, ErrScreenCountInvalid, "cannon captures over exactly one screen")
	}
	return nil
}

// 只有一个方向变化（同行或同列）且不是原地
func straightLine(fromX, fromY, toX, toY int) bool {
	return (fromX == toX) != (fromY == toY)
}

// countBetween 起点和终点之间（不含两端）的棋子数，要求两点同行或同列
func countBetween(b *Board, fromX, fromY, toX, toY int) int {
	stepX, stepY := sign(toX-fromX), sign(toY-fromY)
	n := 0
	for x, y := fromX+stepX, fromY+stepY; x != toX || y != toY; x, y = x+stepX, y+stepY {
		if b.Get(x, y) != 0 {
			n++
		}
	}
	return n
}
