package console

import (
	"bufio"
	"io"
	"strings"

	"xiangqi/internal/xiangqi"
)

// LineSource 从文本流逐行读取走法，实现 xiangqi.MoveSource。
// 空行跳过；格式错误的行交给 onBad 后继续读下一行。
type LineSource struct {
	sc    *bufio.Scanner
	onBad func(line string, err error)
}

func NewLineSource(r io.Reader, onBad func(line string, err error)) *LineSource {
	return &LineSource{sc: bufio.NewScanner(r), onBad: onBad}
}

func (s *LineSource) NextMove() (xiangqi.Move, error) {
	for s.sc.Scan() {
		line := strings.TrimSpace(s.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m, err := ParseMove(line)
		if err != nil {
			if s.onBad != nil {
				s.onBad(line, err)
			}
			continue
		}
		return m, nil
	}
	if err := s.sc.Err(); err != nil {
		return xiangqi.Move{}, err
	}
	return xiangqi.Move{}, io.EOF
}
