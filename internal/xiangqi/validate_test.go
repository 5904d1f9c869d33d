package xiangqi

import (
	"errors"
	"testing"
)

type placed struct {
	x, y int
	pc   Piece
}

func boardWith(pieces ...placed) *Board {
	b := NewEmptyBoard()
	for _, p := range pieces {
		b.Set(p.x, p.y, p.pc)
	}
	return b
}

func expectValidate(t *testing.T, b *Board, fromX, fromY, toX, toY int, side Side, want error) {
	t.Helper()
	err := NewValidator(b).Validate(fromX, fromY, toX, toY, side)
	if want == nil {
		if err != nil {
			t.Fatalf("(%d,%d)->(%d,%d) %v: unexpected rejection: %v", fromX, fromY, toX, toY, side, err)
		}
		return
	}
	if !errors.Is(err, want) {
		t.Fatalf("(%d,%d)->(%d,%d) %v: got %v want %v", fromX, fromY, toX, toY, side, err, want)
	}
}

func TestValidatePipeline(t *testing.T) {
	b := NewBoard()
	expectValidate(t, b, -1, 0, 0, 0, Red, ErrOutOfBounds)
	expectValidate(t, b, 0, 9, 0, 10, Red, ErrOutOfBounds)
	expectValidate(t, b, 4, 4, 4, 5, Red, ErrEmptySource)
	expectValidate(t, b, 0, 0, 0, 1, Red, ErrWrongSide)
	expectValidate(t, b, 0, 9, 0, 6, Red, ErrFriendlyCapture)
	expectValidate(t, b, 0, 9, 0, 9, Red, ErrFriendlyCapture)
	expectValidate(t, b, 0, 9, 0, 7, Red, nil)
}

func TestValidateReturnsMoveError(t *testing.T) {
	err := NewValidator(NewBoard()).Validate(4, 4, 4, 5, Red)
	var me *MoveError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MoveError, got %T", err)
	}
	if me.Move.From != (Pos{X: 4, Y: 4}) || me.Move.To != (Pos{X: 4, Y: 5}) {
		t.Fatalf("move not recorded: %+v", me.Move)
	}
}

func TestGeneralMoves(t *testing.T) {
	red := MakePiece(Red, General)
	black := MakePiece(Black, General)

	b := boardWith(placed{4, 9, red}, placed{4, 0, black})
	expectValidate(t, b, 4, 9, 4, 8, Red, nil)
	expectValidate(t, b, 4, 9, 3, 9, Red, nil)
	expectValidate(t, b, 4, 9, 3, 8, Red, ErrShapeViolation)
	expectValidate(t, b, 4, 9, 4, 7, Red, ErrShapeViolation)
	expectValidate(t, b, 4, 0, 4, 1, Black, nil)

	b = boardWith(placed{3, 7, red}, placed{4, 2, black})
	expectValidate(t, b, 3, 7, 2, 7, Red, ErrPalaceViolation)
	expectValidate(t, b, 3, 7, 3, 6, Red, ErrPalaceViolation)
	expectValidate(t, b, 4, 2, 4, 3, Black, ErrPalaceViolation)
}

func TestGeneralNeverLeavesPalace(t *testing.T) {
	for _, side := range []Side{Red, Black} {
		for fy := 0; fy < Rows; fy++ {
			for fx := 0; fx < Cols; fx++ {
				b := boardWith(placed{fx, fy, MakePiece(side, General)})
				v := NewValidator(b)
				for ty := 0; ty < Rows; ty++ {
					for tx := 0; tx < Cols; tx++ {
						if v.Validate(fx, fy, tx, ty, side) == nil && !inPalace(side, tx, ty) {
							t.Fatalf("%v general (%d,%d)->(%d,%d) left the palace", side, fx, fy, tx, ty)
						}
					}
				}
			}
		}
	}
}

func TestAdvisorMoves(t *testing.T) {
	b := boardWith(placed{3, 9, MakePiece(Red, Advisor)}, placed{5, 7, MakePiece(Red, Advisor)}, placed{3, 0, MakePiece(Black, Advisor)})
	expectValidate(t, b, 3, 9, 4, 8, Red, nil)
	expectValidate(t, b, 3, 9, 3, 8, Red, ErrShapeViolation)
	expectValidate(t, b, 5, 7, 6, 6, Red, ErrPalaceViolation)
	expectValidate(t, b, 5, 7, 3, 7, Red, ErrShapeViolation)
	expectValidate(t, b, 3, 0, 4, 1, Black, nil)
	expectValidate(t, b, 3, 0, 2, 1, Black, ErrPalaceViolation)
}

func TestElephantEye(t *testing.T) {
	b := boardWith(placed{2, 0, MakePiece(Black, Elephant)}, placed{1, 1, MakePiece(Red, Soldier)})
	expectValidate(t, b, 2, 0, 0, 2, Black, ErrEyeBlocked)

	b.Remove(1, 1)
	expectValidate(t, b, 2, 0, 0, 2, Black, nil)
}

func TestElephantRiverAndShape(t *testing.T) {
	b := boardWith(placed{2, 5, MakePiece(Red, Elephant)}, placed{2, 4, MakePiece(Black, Elephant)})
	expectValidate(t, b, 2, 5, 4, 3, Red, ErrRiverViolation)
	expectValidate(t, b, 2, 5, 4, 7, Red, nil)
	expectValidate(t, b, 2, 5, 3, 6, Red, ErrShapeViolation)
	expectValidate(t, b, 2, 4, 4, 6, Black, ErrRiverViolation)
	expectValidate(t, b, 2, 4, 0, 2, Black, nil)
}

func TestChariotMoves(t *testing.T) {
	b := boardWith(
		placed{0, 0, MakePiece(Red, Chariot)},
		placed{0, 5, MakePiece(Black, Horse)},
		placed{4, 0, MakePiece(Black, Soldier)},
	)
	expectValidate(t, b, 0, 0, 0, 4, Red, nil)
	expectValidate(t, b, 0, 0, 0, 5, Red, nil)
	expectValidate(t, b, 0, 0, 0, 6, Red, ErrPathBlocked)
	expectValidate(t, b, 0, 0, 3, 0, Red, nil)
	expectValidate(t, b, 0, 0, 4, 0, Red, nil)
	expectValidate(t, b, 0, 0, 5, 0, Red, ErrPathBlocked)
	expectValidate(t, b, 0, 0, 1, 1, Red, ErrShapeViolation)

	initial := NewBoard()
	expectValidate(t, initial, 0, 9, 0, 5, Red, ErrPathBlocked)
}

func TestHorseLeg(t *testing.T) {
	b := boardWith(placed{1, 0, MakePiece(Black, Horse)}, placed{1, 1, MakePiece(Black, Soldier)})
	expectValidate(t, b, 1, 0, 2, 2, Black, ErrLegBlocked)
	expectValidate(t, b, 1, 0, 0, 2, Black, ErrLegBlocked)
	expectValidate(t, b, 1, 0, 3, 1, Black, nil)

	b.Remove(1, 1)
	expectValidate(t, b, 1, 0, 2, 2, Black, nil)

	b.Set(2, 0, MakePiece(Red, Soldier))
	expectValidate(t, b, 1, 0, 3, 1, Black, ErrLegBlocked)
	expectValidate(t, b, 1, 0, 1, 2, Black, ErrShapeViolation)
	expectValidate(t, b, 1, 0, 3, 2, Black, ErrShapeViolation)
}

func TestCannonScreen(t *testing.T) {
	newBoard := func(screens ...int) *Board {
		b := boardWith(placed{1, 2, MakePiece(Black, Cannon)}, placed{1, 7, MakePiece(Red, Cannon)})
		for _, y := range screens {
			b.Set(1, y, MakePiece(Red, Soldier))
		}
		return b
	}

	expectValidate(t, newBoard(), 1, 2, 1, 7, Black, ErrScreenCountInvalid)
	expectValidate(t, newBoard(4), 1, 2, 1, 7, Black, nil)
	expectValidate(t, newBoard(4, 5), 1, 2, 1, 7, Black, ErrScreenCountInvalid)
	expectValidate(t, newBoard(3, 4, 6), 1, 2, 1, 7, Black, ErrScreenCountInvalid)

	// 不吃子时同车
	expectValidate(t, newBoard(), 1, 2, 1, 6, Black, nil)
	expectValidate(t, newBoard(4), 1, 2, 1, 6, Black, ErrScreenCountInvalid)
	expectValidate(t, newBoard(), 1, 2, 2, 3, Black, ErrShapeViolation)
}

func TestCannonFromInitialPosition(t *testing.T) {
	b := NewBoard()
	// 1 列 (1,7) 到 (1,2) 之间无子，(1,2) 是黑砲：吃子缺炮架
	expectValidate(t, b, 1, 7, 1, 2, Red, ErrScreenCountInvalid)
	// 隔黑砲打马
	expectValidate(t, b, 1, 7, 1, 0, Red, nil)
	expectValidate(t, b, 1, 7, 4, 7, Red, nil)
}

func TestSoldierMoves(t *testing.T) {
	red := MakePiece(Red, Soldier)
	black := MakePiece(Black, Soldier)
	b := boardWith(placed{0, 6, red}, placed{4, 4, red}, placed{0, 3, black}, placed{8, 5, black})

	// 红兵未过河
	expectValidate(t, b, 0, 6, 0, 5, Red, nil)
	expectValidate(t, b, 0, 6, 1, 6, Red, ErrRiverViolation)
	expectValidate(t, b, 0, 6, 0, 7, Red, ErrBackwardMovement)
	expectValidate(t, b, 0, 6, 0, 4, Red, ErrShapeViolation)
	expectValidate(t, b, 0, 6, 1, 5, Red, ErrShapeViolation)

	// 红兵已过河
	expectValidate(t, b, 4, 4, 3, 4, Red, nil)
	expectValidate(t, b, 4, 4, 5, 4, Red, nil)
	expectValidate(t, b, 4, 4, 4, 3, Red, nil)
	expectValidate(t, b, 4, 4, 4, 5, Red, ErrBackwardMovement)

	// 黑卒
	expectValidate(t, b, 0, 3, 0, 4, Black, nil)
	expectValidate(t, b, 0, 3, 1, 3, Black, ErrRiverViolation)
	expectValidate(t, b, 0, 3, 0, 2, Black, ErrBackwardMovement)
	expectValidate(t, b, 8, 5, 7, 5, Black, nil)
	expectValidate(t, b, 8, 5, 8, 6, Black, nil)
	expectValidate(t, b, 8, 5, 8, 4, Black, ErrBackwardMovement)
}

func TestRedSoldierSidewaysAfterCrossing(t *testing.T) {
	g := NewGameFrom(boardWith(
		placed{0, 6, MakePiece(Red, Soldier)},
		placed{4, 9, MakePiece(Red, General)},
		placed{4, 0, MakePiece(Black, General)},
	), Red)

	expectValidate(t, g.Board(), 0, 6, 1, 6, Red, ErrRiverViolation)

	steps := []Move{
		{Pos{0, 6}, Pos{0, 5}}, {Pos{4, 0}, Pos{4, 1}},
		{Pos{0, 5}, Pos{0, 4}}, {Pos{4, 1}, Pos{4, 0}},
	}
	for _, m := range steps {
		if err := g.SubmitMove(m); err != nil {
			t.Fatalf("move %v: %v", m, err)
		}
	}
	expectValidate(t, g.Board(), 0, 4, 1, 4, Red, nil)
}

func TestSubmitMoveRejectionLeavesBoardUntouched(t *testing.T) {
	b := NewBoard()
	before := b.Clone()

	illegal := []Move{
		{Pos{1, 7}, Pos{1, 2}},
		{Pos{0, 9}, Pos{0, 5}},
		{Pos{4, 9}, Pos{4, 7}},
		{Pos{0, 0}, Pos{0, 1}},
		{Pos{4, 4}, Pos{4, 5}},
		{Pos{9, 9}, Pos{8, 9}},
	}
	for _, m := range illegal {
		if err := SubmitMove(b, m.From, m.To, Red); err == nil {
			t.Fatalf("move %v should be rejected", m)
		}
		if !b.Equal(before) {
			t.Fatalf("board mutated by rejected move %v", m)
		}
	}

	if err := SubmitMove(b, Pos{7, 7}, Pos{4, 7}, Red); err != nil {
		t.Fatalf("legal move rejected: %v", err)
	}
	if b.Get(4, 7) != MakePiece(Red, Cannon) || b.Get(7, 7) != 0 {
		t.Fatalf("legal move not applied")
	}
}

func TestLegalMovesInitial(t *testing.T) {
	b := NewBoard()
	// 标准开局红方 44 种走法
	if n := len(LegalMoves(b, Red)); n != 44 {
		t.Fatalf("red legal moves: got %d want 44", n)
	}
	if n := len(LegalMoves(b, Black)); n != 44 {
		t.Fatalf("black legal moves: got %d want 44", n)
	}
	if moves := LegalMovesFrom(b, Pos{4, 4}); moves != nil {
		t.Fatalf("empty cell should have no moves, got %v", moves)
	}
}
