// Command perftcli runs a performance test (perft) against a position and
// reports the leaf count and elapsed time. It is a debugging/benchmarking
// collaborator, not part of the library's public surface.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/kavehmz/bitchess"
)

func perft(pos *bitchess.Position, depth int) uint64 {
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

// perftDivide prints, per root move, the subtree leaf count — the standard
// way to localize a discrepancy against a reference perft value.
func perftDivide(pos *bitchess.Position, depth int) uint64 {
	list := pos.GenerateLegalMoves()
	var total uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		undo := pos.MakeMoveFast(m)
		n := perft(pos, depth-1)
		pos.UnmakeMove(m, undo)
		log.Printf("%s %d", m.String(), n)
		total += n
	}
	return total
}

func main() {
	fen := flag.String("fen", bitchess.StartPosition, "position string to start from")
	depth := flag.Int("depth", 1, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move leaf counts")
	extract := flag.Bool("extract", false, "use the parallel-bit-extract slider strategy instead of magic bitboards")
	cpuprofile := flag.String("cpuprofile", "", "file to write a cpu profile to")
	flag.Parse()

	if *extract {
		bitchess.SetSliderStrategy(bitchess.StrategyExtract)
	}

	pos, err := bitchess.ParsePosition(*fen)
	if err != nil {
		log.Fatalf("parse position: %v", err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	var nodes uint64
	if *divide {
		nodes = perftDivide(&pos, *depth)
	} else {
		nodes = perft(&pos, *depth)
	}
	elapsed := time.Since(start)

	log.Printf("nodes: %d", nodes)
	log.Printf("elapsed: %s", elapsed)
}
