package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games  *game.Manager
	logger *log.Logger
}

func NewHandler(m *game.Manager, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if m == nil {
		m = game.NewManager(logger)
	}
	return &Handler{games: m, logger: logger}
}

func (h *Handler) Games() *game.Manager { return h.games }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/validate":
		h.handleValidate(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := h.games.NewGame()
	h.logger.Printf("new game %s", g.ID)
	writeJSON(w, http.StatusOK, snapshotToResponse(g.Snapshot()))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	mv := dtoToMove(req.Move)
	snap, err := g.Play(mv.From, mv.To)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, xiangqi.ErrGameOver) {
			status = http.StatusConflict
		}
		writeJSON(w, status, rejectionToResponse(err))
		return
	}
	if snap.Status == xiangqi.StatusGameOver {
		h.logger.Printf("game %s over, winner %s", g.ID, snap.Winner)
	}
	writeJSON(w, http.StatusOK, snapshotToResponse(snap))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, snapshotToResponse(g.Snapshot()))
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	b, side, err := xiangqi.DecodePosition(req.Position)
	if err != nil {
		http.Error(w, "invalid position", http.StatusBadRequest)
		return
	}
	if req.ToMove != nil {
		side = intToSide(*req.ToMove)
	}

	resp := ValidateResponse{Legal: true}
	if err := xiangqi.NewValidator(b).ValidateMove(dtoToMove(req.Move), side); err != nil {
		rej := rejectionToResponse(err)
		resp = ValidateResponse{Legal: false, Error: rej.Error, Reason: rej.Reason}
	}
	writeJSON(w, http.StatusOK, resp)
}

func rejectionToResponse(err error) ErrorResponse {
	var me *xiangqi.MoveError
	if errors.As(err, &me) {
		return ErrorResponse{Error: me.Err.Error(), Reason: me.Reason}
	}
	return ErrorResponse{Error: err.Error()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
