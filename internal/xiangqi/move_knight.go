package xiangqi

// 马的 8 种“日”字：终点 + 马腿
var horseLegMoves = [8]struct {
	Dx, Dy int // 终点
	Lx, Ly int // 马腿
}{
	{-1, -2, 0, -1},
	{+1, -2, 0, -1},
	{-2, -1, -1, 0},
	{+2, -1, +1, 0},
	{-2, +1, -1, 0},
	{+2, +1, +1, 0},
	{-1, +2, 0, +1},
	{+1, +2, 0, +1},
}

// 马：走日字，长边方向紧挨起点的一格有子即“蹩马腿”
func checkHorse(b *Board, fromX, fromY, toX, toY int) error {
	dx, dy := toX-fromX, toY-fromY
	for _, m := range horseLegMoves {
		if m.Dx != dx || m.Dy != dy {
			continue
		}
		if b.Get(fromX+m.Lx, fromY+m.Ly) != 0 {
			return reject(fromX, fromY, toX, toY, ErrLegBlocked, "horse leg is blocked")
		}
		return nil
	}
	return reject(fromX, fromY, toX, toY, ErrShapeViolation, "horse moves in an L shape")
}
