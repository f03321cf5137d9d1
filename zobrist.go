package bitchess

import "math/rand/v2"

// Zobrist keys, generated once at process start. The scheme follows
// treepeck/chego's zobrist.go (pieceKeys/epKeys/castlingKeys/colorKey,
// built with math/rand/v2), except the en-passant key table is indexed by
// file (8 entries), not by square, matching this package's Position, whose
// hash XORs in the ep-*file* key rather than a per-square one.
var pieceSquareKeys [6][2][64]uint64
var epFileKeys [8]uint64
var castlingKeys [16]uint64
var sideToMoveKey uint64

func init() {
	for p := Pawn; p <= King; p++ {
		for c := White; c <= Black; c++ {
			for sq := 0; sq < 64; sq++ {
				pieceSquareKeys[p][c][sq] = rand.Uint64()
			}
		}
	}
	for f := 0; f < 8; f++ {
		epFileKeys[f] = rand.Uint64()
	}
	for i := range castlingKeys {
		castlingKeys[i] = rand.Uint64()
	}
	sideToMoveKey = rand.Uint64()
}

func pieceKey(p Piece, c Color, sq Square) uint64 { return pieceSquareKeys[p][c][sq] }

// recomputeHash rebuilds the Zobrist hash from scratch, used to validate
// the incrementally maintained Position.Hash (§8's "hash equals a fresh
// recomputation" testable property).
func recomputeHash(p *Position) uint64 {
	var h uint64
	for piece := Pawn; piece <= King; piece++ {
		for c := White; c <= Black; c++ {
			bb := p.Pieces[piece] & p.Colors[c]
			bb.Iterate(func(sq Square) {
				h ^= pieceKey(piece, c, sq)
			})
		}
	}
	if p.Turn == Black {
		h ^= sideToMoveKey
	}
	h ^= castlingKeys[p.Castling]
	if p.EPSquare != NoSquare {
		h ^= epFileKeys[p.EPSquare.File()]
	}
	return h
}
