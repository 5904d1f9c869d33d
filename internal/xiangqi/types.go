package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

// DisplayName 用于控制台/界面展示
func (s Side) DisplayName() string {
	switch s {
	case Red:
		return "红方"
	case Black:
		return "黑方"
	}
	return "无"
}

type PieceType int8

const (
	PieceNone PieceType = iota
	General             // 将 / 帅
	Advisor             // 士 / 仕
	Elephant            // 象 / 相
	Chariot             // 车 / 車
	Horse               // 马 / 馬
	Cannon              // 砲 / 炮
	Soldier             // 卒 / 兵
)

var pieceTypeNames = [...]string{
	PieceNone: "none",
	General:   "general",
	Advisor:   "advisor",
	Elephant:  "elephant",
	Chariot:   "chariot",
	Horse:     "horse",
	Cannon:    "cannon",
	Soldier:   "soldier",
}

func (pt PieceType) String() string {
	if pt < 0 || int(pt) >= len(pieceTypeNames) {
		return "unknown"
	}
	return pieceTypeNames[pt]
}

type Piece int8 // 0=空；>0 红；<0 黑；abs=PieceType

func MakePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

func (p Piece) IsEmpty() bool { return p == 0 }

var (
	redSymbols   = [...]string{"", "帅", "仕", "相", "車", "馬", "炮", "兵"}
	blackSymbols = [...]string{"", "将", "士", "象", "车", "马", "砲", "卒"}
)

// Symbol 返回棋子的传统汉字写法，空位返回空串
func (p Piece) Symbol() string {
	pt := p.Type()
	if p == 0 || int(pt) >= len(redSymbols) {
		return ""
	}
	if p.Side() == Red {
		return redSymbols[pt]
	}
	return blackSymbols[pt]
}

func (p Piece) String() string {
	if p == 0 {
		return "empty"
	}
	return p.Side().String() + " " + p.Type().String()
}

// Move 一步棋：起点 -> 终点
type Move struct {
	From Pos `json:"from"`
	To   Pos `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + " " + m.To.String()
}
