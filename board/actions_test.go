package board

import "testing"

func TestActionsStartingPositionCount(t *testing.T) {
	s := NewInitialState()
	actions := Actions(s)
	if len(actions) != 20 {
		t.Fatalf("Actions() on the starting position returned %d moves, want 20", len(actions))
	}
}

func TestActionsAreSortedByKey(t *testing.T) {
	s := NewInitialState()
	actions := Actions(s)
	for i := 1; i < len(actions); i++ {
		if actions[i-1].Key() > actions[i].Key() {
			t.Fatalf("Actions() is not sorted ascending by Key() at index %d", i)
		}
	}
}

// Stalemate: White to move, king on H8 with no other white material. Black's
// queen on G6 covers every square the king could step to (G7, G8 via the
// G-file, H7 via the diagonal) without itself being reachable or giving
// check.
func TestActionsStalemateHasNoLegalMoves(t *testing.T) {
	s := &State{SideToMove: White}
	s.Whites[King] = FromIndex(63)  // H8
	s.Blacks[King] = FromIndex(0)   // A1
	s.Blacks[Queen] = FromIndex(46) // G6
	s.SyncOccupancy()

	if InCheck(s, White) {
		t.Fatalf("this position should not be check")
	}
	if got := len(Actions(s)); got != 0 {
		t.Fatalf("Actions() = %d moves, want 0 (stalemate)", got)
	}
}

// Checkmate: White king on H8, in check from a black queen on G7 that is
// defended by the black king on F6, so the king has no flight square and
// cannot capture the checking piece.
func TestActionsCheckmateHasNoLegalMoves(t *testing.T) {
	s := &State{SideToMove: White}
	s.Whites[King] = FromIndex(63)  // H8
	s.Blacks[King] = FromIndex(45)  // F6
	s.Blacks[Queen] = FromIndex(54) // G7
	s.SyncOccupancy()

	if !InCheck(s, White) {
		t.Fatalf("this position should be check")
	}
	if got := len(Actions(s)); got != 0 {
		t.Fatalf("Actions() = %d moves, want 0 (checkmate)", got)
	}
}

// A bishop pinned to its king along a file has no legal diagonal moves at
// all: every one of them would expose the king to the pinning rook.
func TestActionsFiltersPinnedPiece(t *testing.T) {
	s := &State{SideToMove: White}
	s.Whites[King] = FromIndex(4)    // E1
	s.Whites[Bishop] = FromIndex(12) // E2
	s.Blacks[King] = FromIndex(56)   // A8
	s.Blacks[Rook] = FromIndex(60)   // E8
	s.SyncOccupancy()

	if InCheck(s, White) {
		t.Fatalf("the bishop should currently be blocking the check, not failing to")
	}
	for _, a := range Actions(s) {
		if a.Piece() == Bishop {
			t.Fatalf("pinned bishop should have no legal moves, found %s", a.String())
		}
	}
}

func TestActionsEnPassantCapture(t *testing.T) {
	s := &State{SideToMove: White}
	s.Whites[King] = FromIndex(4)
	s.Blacks[King] = FromIndex(60)
	s.Whites[Pawn] = FromIndex(36) // E5
	s.Blacks[Pawn] = FromIndex(37) // F5, just double-pushed from F7
	s.EPTarget = FromIndex(37)     // the double-pushed pawn's own square
	s.SyncOccupancy()

	found := false
	for _, a := range Actions(s) {
		if a.Piece() == Pawn && a.WasEnPassant() {
			found = true
			if a.To() != 45 {
				t.Errorf("en-passant capture should land on F6 (45), got %d", a.To())
			}
		}
	}
	if !found {
		t.Fatalf("expected an en-passant capture among Actions()")
	}
}

func TestActionsPromotionFanOut(t *testing.T) {
	s := &State{SideToMove: White}
	s.Whites[King] = FromIndex(4)
	s.Blacks[King] = FromIndex(56) // A8, clear of the promotion square
	s.Whites[Pawn] = FromIndex(52) // E7
	s.SyncOccupancy()

	promos := map[PieceKind]bool{}
	for _, a := range Actions(s) {
		if a.Piece() == Pawn && a.To() == 60 {
			promos[a.PromotedTo()] = true
		}
	}
	for _, want := range []PieceKind{Queen, Rook, Bishop, Knight} {
		if !promos[want] {
			t.Errorf("missing promotion to %v among Actions()", want)
		}
	}
	if len(promos) != 4 {
		t.Errorf("got %d distinct promotion targets, want exactly 4", len(promos))
	}
}

func TestResultFlipsSideToMove(t *testing.T) {
	s := NewInitialState()
	a := Actions(s)[0]
	next := Result(s, a)
	if next.SideToMove == s.SideToMove {
		t.Fatalf("Result() did not flip SideToMove")
	}
}

func TestResultLeavesOriginalUntouched(t *testing.T) {
	s := NewInitialState()
	before := *s
	a := Actions(s)[0]
	_ = Result(s, a)
	if *s != before {
		t.Fatalf("Result() mutated its input State")
	}
}

func TestResultKeepsOccupancyConsistent(t *testing.T) {
	s := NewInitialState()
	for _, a := range Actions(s) {
		next := Result(s, a)
		if err := next.Validate(); err != nil {
			t.Fatalf("Result(%s) produced an invalid state: %v", a.String(), err)
		}
	}
}
