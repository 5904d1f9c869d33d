package console

import (
	"fmt"
	"io"

	"xiangqi/internal/xiangqi"
)

const banner = `============================================
        欢迎来到简单象棋游戏!
============================================
规则说明:
1. 输入格式: x1,y1 x2,y2
2. 例如: 4,9 4,8 表示将(4,9)位置的棋子移动到(4,8)
3. 吃掉对方将帅即获胜
============================================
`

const prompt = "请输入移动(格式: x1,y1 x2,y2): "

// Options 控制台对局参数
type Options struct {
	Quiet bool // 不打印棋盘和提示，只输出结果（脚本回放用）
}

// Run 控制台对局：从 in 读走法，向 out 打印棋盘与结果，直到分出胜负或输入结束。
func Run(in io.Reader, out io.Writer, opts Options) (*xiangqi.Game, error) {
	g := xiangqi.NewGame()
	if !opts.Quiet {
		fmt.Fprint(out, banner)
		fmt.Fprintln(out)
	}

	src := NewLineSource(in, func(line string, err error) {
		fmt.Fprintf(out, "输入格式错误,请重新输入: %v\n\n", err)
		if !opts.Quiet {
			fmt.Fprint(out, prompt)
		}
	})

	err := g.Play(src, xiangqi.Observer{
		OnTurn: func(g *xiangqi.Game) {
			if opts.Quiet {
				return
			}
			fmt.Fprintln(out, Render(g.Board()))
			fmt.Fprintf(out, "当前玩家: %s\n", g.Turn().DisplayName())
			fmt.Fprint(out, prompt)
		},
		OnReject: func(_ *xiangqi.Game, m xiangqi.Move, err error) {
			fmt.Fprintf(out, "移动不合法: %v\n\n", err)
		},
		OnMove: func(_ *xiangqi.Game, side xiangqi.Side, m xiangqi.Move) {
			if opts.Quiet {
				fmt.Fprintf(out, "%s %s\n", side, m)
				return
			}
			fmt.Fprintln(out, "移动成功!")
			fmt.Fprintln(out)
		},
		OnGameOver: func(g *xiangqi.Game, winner xiangqi.Side) {
			if !opts.Quiet {
				fmt.Fprintln(out, Render(g.Board()))
			}
			fmt.Fprintln(out, "============================================")
			fmt.Fprintf(out, "    游戏结束! %s获胜!\n", winner.DisplayName())
			fmt.Fprintln(out, "============================================")
		},
	})
	return g, err
}
