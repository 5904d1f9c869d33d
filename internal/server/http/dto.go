package httpserver

import (
	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

type PosDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// 前端用的招法结构
type MoveDTO struct {
	From PosDTO `json:"from"`
	To   PosDTO `json:"to"`
}

func dtoToMove(m MoveDTO) xiangqi.Move {
	return xiangqi.Move{
		From: xiangqi.Pos{X: m.From.X, Y: m.From.Y},
		To:   xiangqi.Pos{X: m.To.X, Y: m.To.Y},
	}
}

func moveToDTO(m xiangqi.Move) MoveDTO {
	return MoveDTO{
		From: PosDTO{X: m.From.X, Y: m.From.Y},
		To:   PosDTO{X: m.To.X, Y: m.To.Y},
	}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// 0=红, 1=黑, -1=无
func sideToInt(s xiangqi.Side) int {
	switch s {
	case xiangqi.Red:
		return 0
	case xiangqi.Black:
		return 1
	default:
		return -1
	}
}

func intToSide(v int) xiangqi.Side {
	if v == 1 {
		return xiangqi.Black
	}
	return xiangqi.Red
}

// GameResponse new_game / play / state 共用
type GameResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"`    // FEN 字符串
	ToMove     int       `json:"to_move"`     // 0=红(w),1=黑(b)
	LegalMoves []MoveDTO `json:"legal_moves"` // 当前所有可走棋，终局为空
	Status     string    `json:"status"`      // "playing" / "game_over"
	Winner     int       `json:"winner"`      // 终局时胜方，否则 -1
	Moves      int       `json:"moves"`
}

func snapshotToResponse(s game.Snapshot) GameResponse {
	return GameResponse{
		GameID:     s.ID,
		Position:   s.Position,
		ToMove:     sideToInt(s.ToMove),
		LegalMoves: movesToDTO(s.LegalMoves),
		Status:     s.Status.String(),
		Winner:     sideToInt(s.Winner),
		Moves:      s.Moves,
	}
}

// Play 请求
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// Validate 请求：不依赖对局，直接对给定局面判一步棋
type ValidateRequest struct {
	Position string  `json:"position"`
	ToMove   *int    `json:"to_move,omitempty"` // 省略时用 FEN 里的走子方
	Move     MoveDTO `json:"move"`
}

type ValidateResponse struct {
	Legal  bool   `json:"legal"`
	Error  string `json:"error,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// ErrorResponse 走法被拒等情况
type ErrorResponse struct {
	Error  string `json:"error"`            // 哨兵错误文本，如 "path blocked"
	Reason string `json:"reason,omitempty"` // 具体说明
}
