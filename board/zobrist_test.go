package board

import "testing"

func TestHashDeterministic(t *testing.T) {
	a := NewInitialState()
	b := NewInitialState()
	if a.Hash() != b.Hash() {
		t.Fatalf("two freshly built initial states should hash identically")
	}
}

func TestHashChangesWithSideToMove(t *testing.T) {
	s := NewInitialState()
	h1 := s.Hash()
	s.SideToMove = Black
	if s.Hash() == h1 {
		t.Fatalf("flipping SideToMove should change the hash")
	}
}

func TestHashChangesAfterMove(t *testing.T) {
	s := NewInitialState()
	h1 := s.Hash()
	next := Result(s, Actions(s)[0])
	if next.Hash() == h1 {
		t.Fatalf("playing a move should change the hash")
	}
}

func TestHashMatchesOnEqualStates(t *testing.T) {
	s := NewInitialState()
	next := Result(s, Actions(s)[0])
	clone := next.Clone()
	if next.Hash() != clone.Hash() {
		t.Fatalf("clones of the same state must hash identically")
	}
}
