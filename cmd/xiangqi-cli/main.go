package main

import (
	"flag"
	"io"
	"log"
	"os"

	"xiangqi/internal/console"
)

func main() {
	script := flag.String("script", "", "read moves from this file instead of stdin")
	quiet := flag.Bool("quiet", false, "print only moves and the result")
	flag.Parse()

	var in io.Reader = os.Stdin
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			log.Fatalf("open script: %v", err)
		}
		defer f.Close()
		in = f
	}

	g, err := console.Run(in, os.Stdout, console.Options{Quiet: *quiet})
	if err != nil {
		log.Fatal(err)
	}
	if !g.IsOver() {
		log.Printf("input ended after %d moves, %s to move", g.Moves(), g.Turn())
	}
}
