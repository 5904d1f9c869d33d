package httpserver

import (
	"log"
	"net/http"

	"xiangqi/internal/server/game"
)

// Server 把 /api/ 交给 Handler，其余路径 404
type Server struct {
	mux *http.ServeMux
	h   *Handler
}

func NewServer(m *game.Manager, logger *log.Logger) *Server {
	h := NewHandler(m, logger)
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	return &Server{mux: mux, h: h}
}

func (s *Server) Handler() *Handler { return s.h }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
