package search

import (
	"testing"
	"time"

	"github.com/kjellberg/chesscore/board"
	"github.com/kjellberg/chesscore/history"
)

func TestHistoryTableDefaultsToZero(t *testing.T) {
	table := HistoryTable{}
	a := board.NewAction(board.ActionParams{Color: board.White, From: 8, To: 16, Piece: board.Pawn})
	if table.Score(a) != 0 {
		t.Fatalf("an unrecorded action should score 0")
	}
	table.Add(a)
	table.Add(a)
	if table.Score(a) != 2 {
		t.Fatalf("Score() = %d after two Add() calls, want 2", table.Score(a))
	}
}

func TestMoveReturnsALegalAction(t *testing.T) {
	s := board.NewInitialState()
	h := history.NewWindow()
	legal := board.Actions(s)

	chosen := Move(s, h, 200*time.Millisecond, false, 1)

	found := false
	for _, a := range legal {
		if a == chosen {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("Move() returned %s, which is not among the position's legal actions", chosen.String())
	}
}

func TestMoveRespectsMaxDepthOfOne(t *testing.T) {
	s := board.NewInitialState()
	h := history.NewWindow()
	start := time.Now()
	Move(s, h, 5*time.Second, false, 1)
	if time.Since(start) > 4*time.Second {
		t.Fatalf("Move() with maxDepth=1 should return promptly rather than using its whole time budget")
	}
}

func TestDepthLimitedMinimaxPrefersCapture(t *testing.T) {
	s := &board.State{SideToMove: board.White}
	s.Whites[board.King] = board.FromIndex(4)
	s.Whites[board.Rook] = board.FromIndex(0)
	s.Blacks[board.King] = board.FromIndex(60)
	s.Blacks[board.Queen] = board.FromIndex(8) // A2, hanging to the rook on A1
	s.SyncOccupancy()

	table := HistoryTable{}
	h := history.NewWindow()
	deadline := time.Now().Add(time.Second)

	move, ok := DepthLimitedMinimax(1, QuiescenceBudget, deadline, s, board.White, false, table, h)
	if !ok {
		t.Fatalf("DepthLimitedMinimax() reported timeout")
	}
	if !move.WasCapture() || move.CapturedKind() != board.Queen {
		t.Fatalf("DepthLimitedMinimax() chose %s, want the rook capturing the hanging queen", move.String())
	}
}
