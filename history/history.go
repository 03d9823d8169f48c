// Package history implements the bounded percept-sequence window: the last
// eight positions plus the two half-move counters that drive the draw
// rules in the rules package. It carries no search logic of its own.
package history

import "github.com/kjellberg/chesscore/board"

// WindowSize is the number of trailing states the window retains.
const WindowSize = 8

// Window is a FIFO deque of at most WindowSize states, plus the running
// counters of half-moves since the last capture and since the last pawn
// move. The source clones this structure at every search frame before
// appending (see §9's note on percept-sequence copies); Clone exists for
// exactly that purpose.
type Window struct {
	states             []*board.State
	MovesSinceCapture  int
	MovesSincePawnMove int
}

// NewWindow returns an empty window with both counters at zero.
func NewWindow() *Window {
	return &Window{states: make([]*board.State, 0, WindowSize)}
}

// Push appends s, the position reached after playing a, to the window,
// evicting the oldest state once the window exceeds WindowSize, and
// updates the two counters. A capture resets MovesSinceCapture to 0 and
// otherwise it increments; a pawn move resets MovesSincePawnMove to 0 and
// otherwise it increments. The two counters are independent of one
// another.
func (w *Window) Push(s *board.State, a board.Action) {
	if a.WasCapture() {
		w.MovesSinceCapture = 0
	} else {
		w.MovesSinceCapture++
	}
	if a.Piece() == board.Pawn {
		w.MovesSincePawnMove = 0
	} else {
		w.MovesSincePawnMove++
	}

	w.states = append(w.states, s)
	if len(w.states) > WindowSize {
		w.states = w.states[len(w.states)-WindowSize:]
	}
}

// Len reports how many states the window currently holds (0..WindowSize).
func (w *Window) Len() int { return len(w.states) }

// Clone returns a deep-enough copy: a new backing slice of the same
// states (States themselves are treated as immutable once built) and a
// copy of both counters. Safe to mutate independently of w.
func (w *Window) Clone() *Window {
	return &Window{
		states:             append([]*board.State(nil), w.states...),
		MovesSinceCapture:  w.MovesSinceCapture,
		MovesSincePawnMove: w.MovesSincePawnMove,
	}
}

// Repeated implements the engine's bespoke "eightfold repetition" draw
// test: the window must hold exactly WindowSize states, the first four
// must pairwise equal the last four, and no capture or pawn move may have
// occurred anywhere in the window. This is not threefold repetition; it
// is preserved bit-for-bit as a known bespoke approximation (see §9).
func (w *Window) Repeated() bool {
	if len(w.states) < WindowSize {
		return false
	}
	if w.MovesSinceCapture < WindowSize || w.MovesSincePawnMove < WindowSize {
		return false
	}
	for i := 0; i < WindowSize/2; i++ {
		a, b := w.states[i], w.states[i+WindowSize/2]
		if a.Hash() != b.Hash() || !a.Equal(b) {
			return false
		}
	}
	return true
}

// FiftyMoveRule reports whether the strict variant of the fifty-move rule
// has been reached: MovesSinceCapture at least 50 AND MovesSincePawnMove
// strictly greater than 50. The asymmetric inequality is intentional and
// preserved from the source (see §9).
func (w *Window) FiftyMoveRule() bool {
	return w.MovesSinceCapture >= 50 && w.MovesSincePawnMove > 50
}
