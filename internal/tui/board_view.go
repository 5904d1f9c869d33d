package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"xiangqi/internal/xiangqi"
)

var (
	redPieceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	blackPieceStyle = lipgloss.NewStyle().Bold(true)
	emptyStyle      = lipgloss.NewStyle().Faint(true)
	riverStyle      = lipgloss.NewStyle().Faint(true)
)

// RenderBoard 列号 0..8 在上，行号 0..9 在左；第 4、5 行之间画河界。
// 棋子汉字是双宽字符，空位用两格宽的 "··" 保持对齐。
func RenderBoard(b *xiangqi.Board) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < xiangqi.Cols; x++ {
		sb.WriteString(strconv.Itoa(x))
		sb.WriteString("  ")
	}
	sb.WriteByte('\n')

	for y := 0; y < xiangqi.Rows; y++ {
		if y == xiangqi.RiverRow {
			sb.WriteString(riverStyle.Render("   ~~~~~~ 楚河    汉界 ~~~~~~"))
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.Itoa(y))
		sb.WriteString("  ")
		for x := 0; x < xiangqi.Cols; x++ {
			sb.WriteString(cell(b.Get(x, y)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cell(pc xiangqi.Piece) string {
	switch pc.Side() {
	case xiangqi.Red:
		return redPieceStyle.Render(pc.Symbol())
	case xiangqi.Black:
		return blackPieceStyle.Render(pc.Symbol())
	}
	return emptyStyle.Render("··")
}
