package bitchess

// UndoInfo carries everything needed to reverse a single MakeMove call.
// FullmoveNumber is deliberately absent: it is recoverable from the mover's
// color alone (decrement exactly when undoing a move Black just made),
// exactly as the teacher's Board.Undo recomputes it without storing it.
type UndoInfo struct {
	Castling      CastleRights
	EPSquare      Square
	HalfmoveClock uint8
	Hash          uint64
	Checkers      Bitboard
	Captured      Piece
}

func castleRookSquares(c Color, kingside bool) (from, to Square) {
	switch {
	case c == White && kingside:
		return 7, 5
	case c == White && !kingside:
		return 0, 3
	case c == Black && kingside:
		return 63, 61
	default:
		return 56, 59
	}
}

// MakeMove applies m to pos, maintaining the Zobrist hash, and returns the
// UndoInfo needed to reverse it with UnmakeMove. Assumes m was produced by
// GenerateLegalMoves() for pos; passing an arbitrary move is caller error.
func (pos *Position) MakeMove(m Move) UndoInfo {
	return pos.makeMove(m, true)
}

// MakeMoveFast is the no-hash-maintenance counterpart used internally by
// the perft path, where the hash is never queried.
func (pos *Position) MakeMoveFast(m Move) UndoInfo {
	return pos.makeMove(m, false)
}

func (pos *Position) makeMove(m Move, hashed bool) UndoInfo {
	undo := UndoInfo{
		Castling:      pos.Castling,
		EPSquare:      pos.EPSquare,
		HalfmoveClock: pos.HalfmoveClock,
		Hash:          pos.Hash,
		Checkers:      pos.Checkers,
		Captured:      NoPiece,
	}

	if hashed {
		if pos.EPSquare != NoSquare {
			pos.Hash ^= epFileKeys[pos.EPSquare.File()]
		}
		pos.Hash ^= castlingKeys[pos.Castling]
	}
	pos.EPSquare = NoSquare

	from, to := m.From(), m.To()
	us := pos.Turn
	them := us.Other()
	flag := m.Flag()
	piece, _ := pos.PieceAt(from)

	move := func(from, to Square, p Piece, c Color) {
		if hashed {
			pos.movePiece(from, to, p, c)
		} else {
			pos.movePieceFast(from, to, p, c)
		}
	}
	add := func(sq Square, p Piece, c Color) {
		if hashed {
			pos.addPiece(sq, p, c)
		} else {
			pos.addPieceFast(sq, p, c)
		}
	}
	remove := func(sq Square, p Piece, c Color) {
		if hashed {
			pos.removePiece(sq, p, c)
		} else {
			pos.removePieceFast(sq, p, c)
		}
	}
	setEP := func(sq Square) {
		pos.EPSquare = sq
		if hashed {
			pos.Hash ^= epFileKeys[sq.File()]
		}
	}

	switch flag {
	case Quiet:
		move(from, to, piece, us)
	case DoublePawnPush:
		move(from, to, piece, us)
		if us == White {
			setEP(to - 8)
		} else {
			setEP(to + 8)
		}
	case Capture:
		capturedPiece, _ := pos.PieceAt(to)
		remove(to, capturedPiece, them)
		move(from, to, piece, us)
		undo.Captured = capturedPiece
	case EnPassant:
		var capSq Square
		if us == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		remove(capSq, Pawn, them)
		move(from, to, Pawn, us)
		undo.Captured = Pawn
	case KingCastle:
		move(from, to, King, us)
		rf, rt := castleRookSquares(us, true)
		move(rf, rt, Rook, us)
	case QueenCastle:
		move(from, to, King, us)
		rf, rt := castleRookSquares(us, false)
		move(rf, rt, Rook, us)
	default: // promotions, quiet or capturing
		promo := flag.PromotionPiece()
		if flag.IsCapture() {
			capturedPiece, _ := pos.PieceAt(to)
			remove(to, capturedPiece, them)
			undo.Captured = capturedPiece
		}
		remove(from, Pawn, us)
		add(to, promo, us)
	}

	pos.Castling &= castleUpdateMask[from] & castleUpdateMask[to]
	if hashed {
		pos.Hash ^= castlingKeys[pos.Castling]
	}

	if flag.IsCapture() || piece == Pawn {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if us == Black {
		pos.FullmoveNumber++
	}

	pos.Turn = them
	if hashed {
		pos.Hash ^= sideToMoveKey
	}
	pos.recomputeCheckers()

	return undo
}

// UnmakeMove reverses a MakeMove/MakeMoveFast call. m and undo must be the
// exact pair returned by the matching Make call; this is caller discipline,
// not something the type system enforces.
func (pos *Position) UnmakeMove(m Move, undo UndoInfo) {
	them := pos.Turn
	us := them.Other()
	from, to := m.From(), m.To()
	flag := m.Flag()

	switch flag {
	case Quiet, DoublePawnPush:
		piece, _ := pos.PieceAt(to)
		pos.movePieceFast(to, from, piece, us)
	case Capture:
		piece, _ := pos.PieceAt(to)
		pos.movePieceFast(to, from, piece, us)
		pos.addPieceFast(to, undo.Captured, them)
	case EnPassant:
		pos.movePieceFast(to, from, Pawn, us)
		var capSq Square
		if us == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		pos.addPieceFast(capSq, Pawn, them)
	case KingCastle:
		pos.movePieceFast(to, from, King, us)
		rf, rt := castleRookSquares(us, true)
		pos.movePieceFast(rt, rf, Rook, us)
	case QueenCastle:
		pos.movePieceFast(to, from, King, us)
		rf, rt := castleRookSquares(us, false)
		pos.movePieceFast(rt, rf, Rook, us)
	default: // promotions
		promo := flag.PromotionPiece()
		pos.removePieceFast(to, promo, us)
		pos.addPieceFast(from, Pawn, us)
		if flag.IsCapture() {
			pos.addPieceFast(to, undo.Captured, them)
		}
	}

	if us == Black {
		pos.FullmoveNumber--
	}
	pos.Turn = us
	pos.Castling = undo.Castling
	pos.EPSquare = undo.EPSquare
	pos.HalfmoveClock = undo.HalfmoveClock
	pos.Hash = undo.Hash
	pos.Checkers = undo.Checkers
}

// MakeMoveNew returns a fresh Position with m applied, leaving pos
// untouched and producing no UndoInfo. Hash is not maintained on this path
// (§4.3); callers that need Hash after a copy-on-make should recompute it
// via RecomputeHash.
func (pos *Position) MakeMoveNew(m Move) Position {
	next := pos.Clone()
	from, to := m.From(), m.To()
	us := next.Turn
	them := us.Other()
	flag := m.Flag()
	piece, _ := next.PieceAt(from)

	next.EPSquare = NoSquare

	switch flag {
	case Quiet:
		next.movePieceFast(from, to, piece, us)
	case DoublePawnPush:
		next.movePieceFast(from, to, piece, us)
		if us == White {
			next.EPSquare = to - 8
		} else {
			next.EPSquare = to + 8
		}
	case Capture:
		capturedPiece, _ := next.PieceAt(to)
		next.removePieceFast(to, capturedPiece, them)
		next.movePieceFast(from, to, piece, us)
	case EnPassant:
		var capSq Square
		if us == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		next.removePieceFast(capSq, Pawn, them)
		next.movePieceFast(from, to, Pawn, us)
	case KingCastle:
		next.movePieceFast(from, to, King, us)
		rf, rt := castleRookSquares(us, true)
		next.movePieceFast(rf, rt, Rook, us)
	case QueenCastle:
		next.movePieceFast(from, to, King, us)
		rf, rt := castleRookSquares(us, false)
		next.movePieceFast(rf, rt, Rook, us)
	default:
		promo := flag.PromotionPiece()
		if flag.IsCapture() {
			capturedPiece, _ := next.PieceAt(to)
			next.removePieceFast(to, capturedPiece, them)
		}
		next.removePieceFast(from, Pawn, us)
		next.addPieceFast(to, promo, us)
	}

	next.Castling &= castleUpdateMask[from] & castleUpdateMask[to]
	if flag.IsCapture() || piece == Pawn {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if us == Black {
		next.FullmoveNumber++
	}
	next.Turn = them
	next.recomputeCheckers()
	return next
}

// RecomputeHash rebuilds Hash from scratch; used after MakeMoveNew, and by
// tests asserting the "hash equals a fresh recomputation" invariant.
func (pos *Position) RecomputeHash() uint64 {
	pos.Hash = recomputeHash(pos)
	return pos.Hash
}
