package main

import (
	"fmt"

	"xiangqi/internal/console"
	"xiangqi/internal/xiangqi"
)

func main() {
	b := xiangqi.NewBoard()
	fmt.Println("FEN:", xiangqi.EncodePosition(b, xiangqi.Red))
	fmt.Print(console.Render(b))
	for _, side := range []xiangqi.Side{xiangqi.Red, xiangqi.Black} {
		fmt.Printf("%s legal moves: %d\n", side, len(xiangqi.LegalMoves(b, side)))
	}
}
