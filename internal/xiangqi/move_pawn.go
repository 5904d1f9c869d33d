package xiangqi

// 兵：一次一格；不能后退；过河前只能向前，过河后可左右
func checkSoldier(b *Board, pc Piece, fromX, fromY, toX, toY int) error {
	dx, dy := toX-fromX, toY-fromY
	if !((abs(dx) == 1 && dy == 0) || (dx == 0 && abs(dy) == 1)) {
		return reject(fromX, fromY, toX, toY, ErrShapeViolation, "soldier moves one step at a time")
	}

	side := pc.Side()
	if dy != 0 && dy != pawnDir(side) {
		return reject(fromX, fromY, toX, toY, ErrBackwardMovement, "soldier cannot move backward")
	}

	// 横走看起点是否已过河
	if dx != 0 && !pawnCrossedRiver(side, fromY) {
		return reject(fromX, fromY, toX, toY, ErrRiverViolation, "soldier cannot move sideways before crossing the river")
	}
	return nil
}
