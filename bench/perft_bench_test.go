package bench

import (
	"testing"

	"github.com/kjellberg/chesscore/board"
	"github.com/kjellberg/chesscore/fen"
)

func perft(s *board.State, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, a := range board.Actions(s) {
		nodes += perft(board.Result(s, a), depth-1)
	}
	return nodes
}

func benchPerft(b *testing.B, fenString string, depth int) {
	pos, err := fen.Parse(fenString)
	if err != nil {
		b.Fatalf("Parse: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = perft(pos.State, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, fen.StartPos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3)
}
