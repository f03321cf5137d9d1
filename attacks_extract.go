package bitchess

import "golang.org/x/sys/cpu"

// Portable alternative to the magic-multiply lookup: a software emulation of
// a hardware parallel-bit-extract instruction. Go exposes no PEXT intrinsic
// without cgo or assembly, so this compresses the masked occupancy bits one
// at a time; it trades the magic multiply's single instruction for a
// popcount(mask)-length loop, but produces byte-identical attack sets and
// lets this package honor the "expose both and let configuration choose"
// requirement without a hardware dependency.
var extractMovesBishop [64][]Bitboard
var extractMovesRook [64][]Bitboard

func pextEmulate(x, mask uint64) uint64 {
	var result uint64
	var bit uint64 = 1
	for m := mask; m != 0; m &= m - 1 {
		lsb := m & -m
		if x&lsb != 0 {
			result |= bit
		}
		bit <<= 1
	}
	return result
}

func init() {
	for sq := 0; sq < 64; sq++ {
		s := Square(sq)
		extractMovesBishop[sq] = make([]Bitboard, 1<<bishopBitCount[sq])
		extractMovesRook[sq] = make([]Bitboard, 1<<rookBitCount[sq])
		fillExtractTable(s, bishopBlockerMasks[sq], diagDirs, extractMovesBishop[sq])
		fillExtractTable(s, rookBlockerMasks[sq], orthoDirs, extractMovesRook[sq])
	}
}

func fillExtractTable(sq Square, mask Bitboard, dirs [4]Direction, table []Bitboard) {
	subset := Bitboard(0)
	for {
		idx := pextEmulate(uint64(subset), uint64(mask))
		table[idx] = raySliderAttack(sq, subset, dirs)
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}
}

func extractBishopAttacks(sq Square, occ Bitboard) Bitboard {
	blockers := uint64(bishopBlockerMasks[sq] & occ)
	idx := pextEmulate(blockers, uint64(bishopBlockerMasks[sq]))
	return extractMovesBishop[sq][idx]
}

func extractRookAttacks(sq Square, occ Bitboard) Bitboard {
	blockers := uint64(rookBlockerMasks[sq] & occ)
	idx := pextEmulate(blockers, uint64(rookBlockerMasks[sq]))
	return extractMovesRook[sq][idx]
}

// SliderStrategy selects which of the two interchangeable slider-attack
// lookups RookAttacks/BishopAttacks/QueenAttacks dispatch to. Both
// implementations are built from the same relevant-occupancy masks and
// agree on every occupancy; see magic_test.go.
type SliderStrategy int

const (
	// StrategyMagic uses the magic-multiply perfect hash. Fastest on a
	// plain Go build, since the emulated extract below costs a
	// popcount(mask)-length loop instead of one instruction.
	StrategyMagic SliderStrategy = iota
	// StrategyExtract uses the portable parallel-bit-extract emulation.
	StrategyExtract
)

// activeStrategy defaults to magic bitboards and changes only through
// SetSliderStrategy: without cgo/assembly access to the real BMI2 PEXT
// instruction, the software emulation is never actually faster on this
// host, only an equivalent, separately-verifiable code path. The default is
// not chosen from cpu.X86.HasBMI2; that flag is only reported by
// CPUHasBMI2, so a caller can opt into the extract path on hardware that
// could run a real PEXT.
var activeStrategy = StrategyMagic

// CPUHasBMI2 reports whether the host CPU advertises the BMI2 extension
// (and therefore a real PEXT instruction an assembly implementation could
// use, though this package's extract path is always the portable emulation).
func CPUHasBMI2() bool { return cpu.X86.HasBMI2 }

// SetSliderStrategy selects the slider-attack lookup strategy used by
// RookAttacks/BishopAttacks/QueenAttacks for the lifetime of the process.
func SetSliderStrategy(s SliderStrategy) { activeStrategy = s }

// RookAttacks returns the squares a rook on sq attacks given occ, including
// the first blocker in each direction (a potential capture).
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	if activeStrategy == StrategyExtract {
		return extractRookAttacks(sq, occ)
	}
	return magicRookAttacks(sq, occ)
}

// BishopAttacks returns the squares a bishop on sq attacks given occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	if activeStrategy == StrategyExtract {
		return extractBishopAttacks(sq, occ)
	}
	return magicBishopAttacks(sq, occ)
}

// QueenAttacks returns the union of rook and bishop attacks from sq.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}
