package bitchess

import (
	"strconv"
	"strings"
)

// ParsePosition parses the standard six-field position string (§4.5/§6):
// piece placement / side / castling / en-passant / halfmove / fullmove.
// The halfmove and fullmove fields are optional on parse (default 0 and 1).
// On success, Hash and Checkers are populated so every invariant in §3
// holds; on failure a distinguished error is returned and no partial
// Position is exposed.
func ParsePosition(fen string) (Position, error) {
	var pos Position
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, ErrMissingFields
	}

	if err := parsePlacement(&pos, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		pos.Turn = White
	case "b":
		pos.Turn = Black
	default:
		return Position{}, ErrBadSide
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return Position{}, err
	}
	pos.Castling = castling

	pos.EPSquare, err = parseEPSquare(fields[3])
	if err != nil {
		return Position{}, err
	}

	pos.HalfmoveClock = 0
	pos.FullmoveNumber = 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Position{}, ErrBadHalfmove
		}
		pos.HalfmoveClock = uint8(n)
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Position{}, ErrBadFullmove
		}
		pos.FullmoveNumber = uint16(n)
	}

	whiteKings := (pos.Pieces[King] & pos.Colors[White]).Count()
	blackKings := (pos.Pieces[King] & pos.Colors[Black]).Count()
	if whiteKings == 0 || blackKings == 0 {
		return Position{}, ErrMissingKing
	}
	if whiteKings > 1 || blackKings > 1 {
		return Position{}, ErrDuplicateKing
	}

	pos.recomputeCheckers()
	pos.Hash = recomputeHash(&pos)
	return pos, nil
}

func parsePlacement(pos *Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return ErrBadPlacement
	}
	// Field order is rank 8 down to rank 1.
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		file := File(0)
		for _, ch := range rankStr {
			if file > 7 {
				return ErrBadPlacement
			}
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				continue
			}
			piece, color, ok := pieceFromLetter(byte(ch))
			if !ok {
				return ErrBadPlacement
			}
			sq := NewSquare(file, r)
			pos.Pieces[piece] |= SquareMask(sq)
			pos.Colors[color] |= SquareMask(sq)
			file++
		}
		if file != 8 {
			return ErrBadPlacement
		}
	}
	return nil
}

func pieceFromLetter(ch byte) (Piece, Color, bool) {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
	}
	for p := Pawn; p <= King; p++ {
		if p.Letter(color) == ch {
			return p, color, true
		}
	}
	return NoPiece, White, false
}

func parseCastling(field string) (CastleRights, error) {
	if field == "-" {
		return 0, nil
	}
	var rights CastleRights
	for _, ch := range field {
		switch ch {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		default:
			return 0, ErrBadCastling
		}
	}
	return rights, nil
}

func parseEPSquare(field string) (Square, error) {
	if field == "-" {
		return NoSquare, nil
	}
	if len(field) != 2 {
		return NoSquare, ErrBadEPSquare
	}
	f, r := field[0], field[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, ErrBadEPSquare
	}
	rank := Rank(r - '1')
	if rank != 2 && rank != 5 {
		return NoSquare, ErrBadEPSquare
	}
	return NewSquare(File(f-'a'), rank), nil
}

// String renders pos as a position string; round-trips through ParsePosition
// up to castling letter ordering, which is always emitted "KQkq".
func (pos *Position) String() string {
	var b strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := NewSquare(File(f), Rank(r))
			piece, color := pos.PieceAt(sq)
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteByte(piece.Letter(color))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r != 0 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(pos.Turn.String())
	b.WriteByte(' ')
	b.WriteString(pos.Castling.String())
	b.WriteByte(' ')
	b.WriteString(pos.EPSquare.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(pos.HalfmoveClock)))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(pos.FullmoveNumber)))
	return b.String()
}

// StartPosition is the standard chess starting position string.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
