package bitchess

// GenerateMoves is the single generator entry point, parameterised over a
// Sink so a counting caller (perft) pays no list-storage cost while a
// listing caller gets a MoveList — both run the exact same code path.
//
// Dispatch follows popcount(Checkers): double check emits king moves only;
// single check restricts every piece to capturing the checker or blocking
// its ray; no check emits the full move set. Pinned pieces are additionally
// restricted to the line between the king and their pinner (computePins),
// except en-passant, whose legality is settled by its own occupancy
// simulation because generic pin analysis cannot see the discovered
// horizontal pin created by removing two pawns from one rank at once.
func GenerateMoves(pos *Position, sink Sink) {
	us := pos.Turn
	numCheckers := pos.Checkers.Count()

	if numCheckers >= 2 {
		genKingMoves(pos, us, sink)
		return
	}

	targetMask := Universe
	if numCheckers == 1 {
		king := pos.KingSquare(us)
		checkerSq := pos.Checkers.Lsb()
		targetMask = SquareMask(checkerSq) | between[king][checkerSq]
	}

	_, restrict := pos.computePins(us)

	genPawnMoves(pos, us, restrict, targetMask, sink)
	genKnightMoves(pos, us, restrict, targetMask, sink)
	genSliderMoves(pos, us, Bishop, restrict, targetMask, sink)
	genSliderMoves(pos, us, Rook, restrict, targetMask, sink)
	genSliderMoves(pos, us, Queen, restrict, targetMask, sink)
	genKingMoves(pos, us, sink)
	if numCheckers == 0 {
		genCastling(pos, us, sink)
	}
	genEnPassant(pos, us, targetMask, sink)
}

// GenerateLegalMoves returns every legal move for the side to move.
func (pos *Position) GenerateLegalMoves() MoveList {
	var list MoveList
	GenerateMoves(pos, ListSink{List: &list})
	return list
}

// CountLegalMoves counts legal moves without materializing them, the bulk
// counter perft uses at its leaf depth.
func (pos *Position) CountLegalMoves() uint64 {
	var count uint64
	GenerateMoves(pos, CountSink{Count: &count})
	return count
}

// IsLegal reports whether m is among the position's legal moves.
func (pos *Position) IsLegal(m Move) bool {
	list := pos.GenerateLegalMoves()
	return list.Contains(m)
}

// computePins implements §4.4.1: for every enemy slider that could attack
// the king on an empty board, the squares strictly between them are
// intersected with the actual occupancy; exactly one of our own pieces
// there is pinned to the king-slider line.
func (pos *Position) computePins(us Color) (pinnedMask Bitboard, restrict [64]Bitboard) {
	for i := range restrict {
		restrict[i] = Universe
	}
	them := us.Other()
	king := pos.KingSquare(us)
	occ := pos.Occupied()

	scan := func(dirs [4]Direction, enemySliders Bitboard) {
		for _, dir := range dirs {
			sliders := rayAttacks[dir][king] & enemySliders
			sliders.Iterate(func(sliderSq Square) {
				seg := between[king][sliderSq] & occ
				if seg.ExactlyOne() && seg&pos.Colors[us] != 0 {
					pinnedSq := seg.Lsb()
					pinnedMask |= SquareMask(pinnedSq)
					restrict[pinnedSq] = line[king][sliderSq]
				}
			})
		}
	}
	scan(diagDirs, (pos.Pieces[Bishop]|pos.Pieces[Queen])&pos.Colors[them])
	scan(orthoDirs, (pos.Pieces[Rook]|pos.Pieces[Queen])&pos.Colors[them])
	return
}

func emitTargets(pos *Position, us Color, from Square, targets Bitboard) func(Sink) {
	return func(sink Sink) {
		targets.Iterate(func(to Square) {
			flag := Quiet
			if pos.Colors[us.Other()].Has(to) {
				flag = Capture
			}
			sink.Push(NewMove(from, to, flag))
		})
	}
}

func genKnightMoves(pos *Position, us Color, restrict [64]Bitboard, targetMask Bitboard, sink Sink) {
	notOwn := ^pos.Colors[us]
	(pos.Pieces[Knight] & pos.Colors[us]).Iterate(func(from Square) {
		targets := KnightAttacks(from) & notOwn & targetMask & restrict[from]
		emitTargets(pos, us, from, targets)(sink)
	})
}

func genSliderMoves(pos *Position, us Color, piece Piece, restrict [64]Bitboard, targetMask Bitboard, sink Sink) {
	occ := pos.Occupied()
	notOwn := ^pos.Colors[us]
	(pos.Pieces[piece] & pos.Colors[us]).Iterate(func(from Square) {
		var attacks Bitboard
		switch piece {
		case Bishop:
			attacks = BishopAttacks(from, occ)
		case Rook:
			attacks = RookAttacks(from, occ)
		default:
			attacks = QueenAttacks(from, occ)
		}
		targets := attacks & notOwn & targetMask & restrict[from]
		emitTargets(pos, us, from, targets)(sink)
	})
}

// genKingMoves computes a hypothetical occupancy with the king removed and
// the candidate destination occupied, so attacks revealed along the king's
// own current ray are visible — the discovered-attack check a naive
// attackers_to(dest, occupied) would miss.
func genKingMoves(pos *Position, us Color, sink Sink) {
	them := us.Other()
	kingSq := pos.KingSquare(us)
	notOwn := ^pos.Colors[us]
	occWithoutKing := pos.Occupied() &^ SquareMask(kingSq)

	(KingAttacks(kingSq) & notOwn).Iterate(func(dest Square) {
		hypoOcc := occWithoutKing | SquareMask(dest)
		if pos.AttackersTo(dest, hypoOcc, them) != 0 {
			return
		}
		flag := Quiet
		if pos.Colors[them].Has(dest) {
			flag = Capture
		}
		sink.Push(NewMove(kingSq, dest, flag))
	})
}

// genCastling emits castling moves only when not currently in check; the
// empty-path and not-attacked-through conditions cover the rest of §4.4.4.
func genCastling(pos *Position, us Color, sink Sink) {
	if pos.InCheck() {
		return
	}
	occ := pos.Occupied()
	them := us.Other()
	kingSq := pos.KingSquare(us)

	var ksRight, qsRight CastleRights
	var ksPath, qsPath Bitboard
	var ksSquares, qsSquares [2]Square
	var ksTo, qsTo Square
	if us == White {
		ksRight, qsRight = WhiteKingside, WhiteQueenside
		ksPath = SquareMask(5) | SquareMask(6)
		qsPath = SquareMask(1) | SquareMask(2) | SquareMask(3)
		ksSquares = [2]Square{5, 6}
		qsSquares = [2]Square{3, 2}
		ksTo, qsTo = 6, 2
	} else {
		ksRight, qsRight = BlackKingside, BlackQueenside
		ksPath = SquareMask(61) | SquareMask(62)
		qsPath = SquareMask(57) | SquareMask(58) | SquareMask(59)
		ksSquares = [2]Square{61, 62}
		qsSquares = [2]Square{59, 58}
		ksTo, qsTo = 62, 58
	}

	if pos.Castling&ksRight != 0 && occ&ksPath == 0 &&
		pos.AttackersTo(ksSquares[0], occ, them) == 0 && pos.AttackersTo(ksSquares[1], occ, them) == 0 {
		sink.Push(NewMove(kingSq, ksTo, KingCastle))
	}
	if pos.Castling&qsRight != 0 && occ&qsPath == 0 &&
		pos.AttackersTo(qsSquares[0], occ, them) == 0 && pos.AttackersTo(qsSquares[1], occ, them) == 0 {
		sink.Push(NewMove(kingSq, qsTo, QueenCastle))
	}
}

func genPawnMoves(pos *Position, us Color, restrict [64]Bitboard, targetMask Bitboard, sink Sink) {
	them := us.Other()
	occ := pos.Occupied()

	var pushDir int
	var startRank, promoRank Bitboard
	if us == White {
		pushDir = 8
		startRank = RankMask(1)
		promoRank = RankMask(6)
	} else {
		pushDir = -8
		startRank = RankMask(6)
		promoRank = RankMask(1)
	}

	emitAdvance := func(from, to Square, capture bool) {
		allowed := targetMask & restrict[from]
		if allowed&SquareMask(to) == 0 {
			return
		}
		if promoRank.Has(from) {
			for _, p := range [4]Piece{Knight, Bishop, Rook, Queen} {
				sink.Push(NewMove(from, to, promoFlag(p, capture)))
			}
			return
		}
		flag := Quiet
		if capture {
			flag = Capture
		}
		sink.Push(NewMove(from, to, flag))
	}

	(pos.Pieces[Pawn] & pos.Colors[us]).Iterate(func(from Square) {
		pushSq := Square(int(from) + pushDir)
		if !occ.Has(pushSq) {
			emitAdvance(from, pushSq, false)
			if startRank.Has(from) {
				doubleSq := Square(int(from) + 2*pushDir)
				if !occ.Has(doubleSq) && targetMask&restrict[from]&SquareMask(doubleSq) != 0 {
					sink.Push(NewMove(from, doubleSq, DoublePawnPush))
				}
			}
		}
		(pawnAttacks[us][from] & pos.Colors[them]).Iterate(func(capSq Square) {
			emitAdvance(from, capSq, true)
		})
	})
}

// genEnPassant is the one place generic pin analysis is insufficient: it
// simulates the capture (removing both the moving pawn and the captured
// pawn from the board) and tests for a newly revealed rank or diagonal
// attack on the king before emitting the move.
func genEnPassant(pos *Position, us Color, targetMask Bitboard, sink Sink) {
	if pos.EPSquare == NoSquare {
		return
	}
	them := us.Other()
	king := pos.KingSquare(us)
	var capSq Square
	if us == White {
		capSq = pos.EPSquare - 8
	} else {
		capSq = pos.EPSquare + 8
	}

	attackers := pawnAttacks[them][pos.EPSquare] & pos.Pieces[Pawn] & pos.Colors[us]
	attackers.Iterate(func(from Square) {
		if pos.Checkers != 0 {
			evades := (SquareMask(capSq) | SquareMask(pos.EPSquare)) & pos.Checkers
			blocks := SquareMask(pos.EPSquare) & targetMask
			if evades == 0 && blocks == 0 {
				return
			}
		}
		occAfter := (pos.Occupied() &^ SquareMask(from) &^ SquareMask(capSq)) | SquareMask(pos.EPSquare)
		sliders := pos.AttackersTo(king, occAfter, them) & (pos.Pieces[Rook] | pos.Pieces[Bishop] | pos.Pieces[Queen])
		if sliders != 0 {
			return
		}
		sink.Push(NewMove(from, pos.EPSquare, EnPassant))
	})
}
