package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:2888", "listen address")
	quiet := flag.Bool("quiet", false, "do not log individual moves")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	gameLogger := logger
	if *quiet {
		gameLogger = nil
	}

	srv := httpserver.NewServer(game.NewManager(gameLogger), logger)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal(err)
	}
}
