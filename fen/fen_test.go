package fen

import (
	"testing"

	"github.com/kjellberg/chesscore/board"
)

func TestParseStartPos(t *testing.T) {
	pos, err := Parse(StartPos)
	if err != nil {
		t.Fatalf("Parse(StartPos) = %v", err)
	}
	want := board.NewInitialState()
	if !pos.State.Equal(want) {
		t.Fatalf("Parse(StartPos) did not reproduce the standard initial position")
	}
	if pos.HalfmoveClock != 0 || pos.FullmoveNumber != 1 {
		t.Fatalf("Parse(StartPos) counters = %d/%d, want 0/1", pos.HalfmoveClock, pos.FullmoveNumber)
	}
}

func TestFormatStartPos(t *testing.T) {
	pos, err := Parse(StartPos)
	if err != nil {
		t.Fatalf("Parse(StartPos) = %v", err)
	}
	if got := Format(pos); got != StartPos {
		t.Fatalf("Format(Parse(StartPos)) = %q, want %q", got, StartPos)
	}
}

func TestRoundTripAfterMoves(t *testing.T) {
	pos, err := Parse(StartPos)
	if err != nil {
		t.Fatalf("Parse(StartPos) = %v", err)
	}
	s := pos.State
	for i := 0; i < 4; i++ {
		actions := board.Actions(s)
		if len(actions) == 0 {
			t.Fatalf("ran out of legal moves at ply %d", i)
		}
		s = board.Result(s, actions[0])
	}

	encoded := Format(&Position{State: s, HalfmoveClock: 4, FullmoveNumber: 3})
	reparsed, err := Parse(encoded)
	if err != nil {
		t.Fatalf("Parse(%q) = %v", encoded, err)
	}
	if !reparsed.State.Equal(s) {
		t.Fatalf("FEN round trip did not preserve the position")
	}
}

func TestParseCastlingRights(t *testing.T) {
	pos, err := Parse("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	want := board.CastleWhiteKingside | board.CastleWhiteQueenside | board.CastleBlackKingside | board.CastleBlackQueenside
	if pos.State.Castling != want {
		t.Fatalf("Castling = %v, want all four rights", pos.State.Castling)
	}
}

func TestParseEnPassantTarget(t *testing.T) {
	pos, err := Parse("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if pos.State.EPTarget == 0 {
		t.Fatalf("expected a non-zero EPTarget")
	}
}

func TestParseRejectsMalformedBoard(t *testing.T) {
	if _, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1"); err == nil {
		t.Fatalf("expected an error for a FEN with only 7 ranks")
	}
}

func TestParseRejectsBadSideToMove(t *testing.T) {
	if _, err := Parse("8/8/8/8/8/8/8/8 x - - 0 1"); err == nil {
		t.Fatalf("expected an error for an invalid side-to-move field")
	}
}
