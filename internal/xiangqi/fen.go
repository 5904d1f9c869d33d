package xiangqi

import (
	"errors"
	"strings"
	"unicode"
)

var letterToPieceType = map[rune]PieceType{
	'r': Chariot,  // 车
	'n': Horse,    // 马
	'b': Elephant, // 象
	'a': Advisor,  // 士
	'k': General,  // 将
	'c': Cannon,   // 砲
	'p': Soldier,  // 卒
}

var pieceTypeToLetter = map[PieceType]rune{
	Chariot:  'r',
	Horse:    'n',
	Elephant: 'b',
	Advisor:  'a',
	General:  'k',
	Cannon:   'c',
	Soldier:  'p',
}

func pieceFromLetter(ch rune) (Piece, bool) {
	pt, ok := letterToPieceType[unicode.ToLower(ch)]
	if !ok {
		return 0, false
	}
	side := Black
	if unicode.IsUpper(ch) {
		side = Red
	}
	return MakePiece(side, pt), true
}

// Letter FEN 字母，红方大写，空位 '.'
func (p Piece) Letter() rune {
	if p == 0 {
		return '.'
	}
	base, ok := pieceTypeToLetter[p.Type()]
	if !ok {
		return '.'
	}
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

var ErrInvalidFEN = errors.New("invalid FEN")

// Encode 简单 FEN：10 行用“/”隔开（从 y=0 黑方底线开始），空位用数字压缩
func (b *Board) Encode() string {
	var sb strings.Builder
	for y := 0; y < Rows; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < Cols; x++ {
			pc := b.cells[indexOf(x, y)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

func DecodeBoard(s string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != Rows {
		return nil, ErrInvalidFEN
	}
	b := NewEmptyBoard()
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			if x >= Cols {
				return nil, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				x += int(ch - '0')
				continue
			}
			if ch == '.' {
				x++
				continue
			}
			pc, ok := pieceFromLetter(ch)
			if !ok {
				return nil, ErrInvalidFEN
			}
			b.cells[indexOf(x, y)] = pc
			x++
		}
		if x != Cols {
			return nil, ErrInvalidFEN
		}
	}
	return b, nil
}

// EncodePosition 棋盘 + 空格 + w/b 表示轮到谁走
func EncodePosition(b *Board, side Side) string {
	if side == Black {
		return b.Encode() + " b"
	}
	return b.Encode() + " w"
}

func DecodePosition(s string) (*Board, Side, error) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return nil, NoSide, ErrInvalidFEN
	}
	b, err := DecodeBoard(parts[0])
	if err != nil {
		return nil, NoSide, err
	}
	switch parts[1] {
	case "w", "r":
		return b, Red, nil
	case "b":
		return b, Black, nil
	}
	return nil, NoSide, ErrInvalidFEN
}
