package xiangqi

// Validator 针对某个棋盘判断走法是否合法。只读，不改棋盘。
type Validator struct {
	board *Board
}

func NewValidator(b *Board) *Validator {
	return &Validator{board: b}
}

func (v *Validator) Board() *Board { return v.board }

// Validate 合法返回 nil，否则返回 *MoveError（可用 errors.Is 匹配具体原因）。
// 校验顺序：边界 -> 起点有子 -> 己方棋子 -> 不吃己方 -> 按棋子类型校验。
func (v *Validator) Validate(fromX, fromY, toX, toY int, side Side) error {
	b := v.board
	if !b.IsValidPosition(fromX, fromY) {
		return reject(fromX, fromY, toX, toY, ErrOutOfBounds, "source outside the board")
	}
	if !b.IsValidPosition(toX, toY) {
		return reject(fromX, fromY, toX, toY, ErrOutOfBounds, "destination outside the board")
	}

	pc := b.Get(fromX, fromY)
	if pc == 0 {
		return reject(fromX, fromY, toX, toY, ErrEmptySource, "no piece at source")
	}
	if pc.Side() != side {
		return reject(fromX, fromY, toX, toY, ErrWrongSide, "not your piece")
	}
	if dst := b.Get(toX, toY); dst != 0 && dst.Side() == side {
		return reject(fromX, fromY, toX, toY, ErrFriendlyCapture, "cannot capture your own piece")
	}

	switch pc.Type() {
	case General:
		return checkGeneral(b, pc, fromX, fromY, toX, toY)
	case Advisor:
		return checkAdvisor(b, pc, fromX, fromY, toX, toY)
	case Elephant:
		return checkElephant(b, pc, fromX, fromY, toX, toY)
	case Chariot:
		return checkChariot(b, fromX, fromY, toX, toY)
	case Horse:
		return checkHorse(b, fromX, fromY, toX, toY)
	case Cannon:
		return checkCannon(b, fromX, fromY, toX, toY)
	case Soldier:
		return checkSoldier(b, pc, fromX, fromY, toX, toY)
	}
	return reject(fromX, fromY, toX, toY, ErrShapeViolation, "unknown piece type")
}

// ValidateMove 同 Validate，参数为 Move
func (v *Validator) ValidateMove(m Move, side Side) error {
	return v.Validate(m.From.X, m.From.Y, m.To.X, m.To.Y, side)
}

// SubmitMove 校验通过后在 b 上落子；被拒时棋盘不变
func SubmitMove(b *Board, from, to Pos, side Side) error {
	if err := NewValidator(b).Validate(from.X, from.Y, to.X, to.Y, side); err != nil {
		return err
	}
	b.MovePiece(from.X, from.Y, to.X, to.Y)
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
