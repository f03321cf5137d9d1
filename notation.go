package bitchess

// ParseMoveText parses minimal move notation (from + to + optional promotion
// letter) against pos's generated legal move list, per §4.5: the parser
// never constructs a Move from intrinsic parsing alone — legality, and the
// exact flag (quiet vs capture, single vs double push, en-passant), is
// established only by matching the generated list.
func ParseMoveText(pos *Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NullMove, ErrBadMoveLength
	}
	from, okFrom := parseSquareText(s[0:2])
	to, okTo := parseSquareText(s[2:4])
	if !okFrom || !okTo {
		return NullMove, ErrBadMoveSquare
	}
	var promo Piece = NoPiece
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NullMove, ErrBadPromotion
		}
	}

	list := pos.GenerateLegalMoves()
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Flag().IsPromotion() {
			if promo == m.Flag().PromotionPiece() {
				return m, nil
			}
			continue
		}
		if promo == NoPiece {
			return m, nil
		}
	}
	return NullMove, ErrMoveNotLegal
}

func parseSquareText(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	f, r := s[0], s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, false
	}
	return NewSquare(File(f-'a'), Rank(r-'1')), true
}
