package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"xiangqi/internal/xiangqi"
)

var ErrBadInput = errors.New("bad input, want x1,y1 x2,y2")

// ParseMove 解析 "x1,y1 x2,y2"。只管格式，坐标范围交给 Validator。
func ParseMove(line string) (xiangqi.Move, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return xiangqi.Move{}, ErrBadInput
	}
	from, err := parsePos(parts[0])
	if err != nil {
		return xiangqi.Move{}, err
	}
	to, err := parsePos(parts[1])
	if err != nil {
		return xiangqi.Move{}, err
	}
	return xiangqi.Move{From: from, To: to}, nil
}

func parsePos(s string) (xiangqi.Pos, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return xiangqi.Pos{}, fmt.Errorf("%w: %q", ErrBadInput, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return xiangqi.Pos{}, fmt.Errorf("%w: %q", ErrBadInput, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return xiangqi.Pos{}, fmt.Errorf("%w: %q", ErrBadInput, s)
	}
	return xiangqi.Pos{X: x, Y: y}, nil
}
