package console

import (
	"strconv"
	"strings"

	"xiangqi/internal/xiangqi"
)

const emptyCell = "┼"

// Render 纯文本棋盘：首行列号，每行行号 + 棋子汉字，空位用“┼”
func Render(b *xiangqi.Board) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < xiangqi.Cols; x++ {
		sb.WriteString(strconv.Itoa(x))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for y := 0; y < xiangqi.Rows; y++ {
		sb.WriteString(strconv.Itoa(y))
		sb.WriteByte(' ')
		for x := 0; x < xiangqi.Cols; x++ {
			if pc := b.Get(x, y); pc != 0 {
				sb.WriteString(pc.Symbol())
			} else {
				sb.WriteString(emptyCell)
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
