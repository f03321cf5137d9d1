package bitchess

import "testing"

// perft enumerates every legal move sequence to depth and returns the leaf
// count, the standard cross-check for move-generator correctness (§8).
func perft(pos *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if depth == 1 {
		return pos.CountLegalMoves()
	}
	list := pos.GenerateLegalMoves()
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		undo := pos.MakeMoveFast(m)
		nodes += perft(pos, depth-1)
		pos.UnmakeMove(m, undo)
	}
	return nodes
}

func TestPerftReferenceValues(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"startpos d1", StartPosition, 1, 20},
		{"startpos d4", StartPosition, 4, 197281},
		{"kiwipete d4", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
		{"endgame d5", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5, 674624},
		{"promotion d4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4, 422333},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos := mustParse(t, c.fen)
			if got := perft(&pos, c.depth); got != c.want {
				t.Errorf("perft(%q, %d) = %d, want %d", c.fen, c.depth, got, c.want)
			}
		})
	}
}

// TestPerftReferenceValueDeep is the start-position depth-5 case of the
// reference table, expensive enough to skip under -short.
func TestPerftReferenceValueDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft under -short")
	}
	pos := mustParse(t, StartPosition)
	const want = 4865609
	if got := perft(&pos, 5); got != want {
		t.Errorf("perft(startpos, 5) = %d, want %d", got, want)
	}
}

func TestPerftAgreesAcrossSliderStrategies(t *testing.T) {
	prev := activeStrategy
	defer func() { activeStrategy = prev }()

	pos := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	SetSliderStrategy(StrategyMagic)
	magicNodes := perft(&pos, 3)

	pos = mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	SetSliderStrategy(StrategyExtract)
	extractNodes := perft(&pos, 3)

	if magicNodes != extractNodes {
		t.Errorf("magic perft = %d, extract perft = %d, strategies disagree", magicNodes, extractNodes)
	}
}
