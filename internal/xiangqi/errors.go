package xiangqi

import (
	"errors"
	"fmt"
)

// 走子被拒的原因。都是正常结果，不是异常。
var (
	ErrOutOfBounds        = errors.New("out of bounds")
	ErrEmptySource        = errors.New("empty source")
	ErrWrongSide          = errors.New("wrong side")
	ErrFriendlyCapture    = errors.New("friendly capture")
	ErrShapeViolation     = errors.New("shape violation")
	ErrPathBlocked        = errors.New("path blocked")
	ErrPalaceViolation    = errors.New("palace violation")
	ErrRiverViolation     = errors.New("river violation")
	ErrBackwardMovement   = errors.New("backward movement")
	ErrEyeBlocked         = errors.New("elephant eye blocked")
	ErrLegBlocked         = errors.New("horse leg blocked")
	ErrScreenCountInvalid = errors.New("cannon screen count invalid")

	ErrGameOver = errors.New("game over")
)

// MoveError 带上具体的走法和一句说明，errors.Is 可匹配到上面的哨兵错误
type MoveError struct {
	Move   Move
	Reason string
	Err    error
}

func (e *MoveError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("move %s: %v", e.Move, e.Err)
	}
	return fmt.Sprintf("move %s: %v: %s", e.Move, e.Err, e.Reason)
}

func (e *MoveError) Unwrap() error { return e.Err }

func reject(fromX, fromY, toX, toY int, err error, reason string) error {
	return &MoveError{
		Move:   Move{From: Pos{X: fromX, Y: fromY}, To: Pos{X: toX, Y: toY}},
		Reason: reason,
		Err:    err,
	}
}
