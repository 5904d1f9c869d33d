package xiangqi

// LegalMovesFrom 列出 from 上的棋子所有能通过 Validate 的走法。
// 空位返回 nil。
func LegalMovesFrom(b *Board, from Pos) []Move {
	pc := b.At(from)
	if pc == 0 {
		return nil
	}
	v := NewValidator(b)
	side := pc.Side()
	var moves []Move
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if v.Validate(from.X, from.Y, x, y, side) == nil {
				moves = append(moves, Move{From: from, To: Pos{X: x, Y: y}})
			}
		}
	}
	return moves
}

// LegalMoves 列出 side 的全部合法走法（不考虑被将军，与 Validate 同一套规则）
func LegalMoves(b *Board, side Side) []Move {
	var moves []Move
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			pc := b.cells[indexOf(x, y)]
			if pc == 0 || pc.Side() != side {
				continue
			}
			moves = append(moves, LegalMovesFrom(b, Pos{X: x, Y: y})...)
		}
	}
	return moves
}
