// Package rules implements the terminal test, the material-balance
// heuristic, and the utility function the searcher evaluates leaves with.
// It has no notion of search depth or time budgets; those live in search.
package rules

import (
	"math"

	"github.com/kjellberg/chesscore/board"
	"github.com/kjellberg/chesscore/history"
)

// Outcome is the result of TerminalTest.
type Outcome int

const (
	Nonterminal Outcome = iota
	Draw
	// Loss means the side to move in the tested state has no legal moves
	// and is in check (checkmated).
	Loss
	// Win exists for symmetry with Loss; TerminalTest never returns it
	// directly — it only appears from Utility's perspective flip.
	Win
)

// TerminalTest classifies s, consulting the recent-position window h for
// the repetition and fifty-move draw rules. Check order follows §4.6
// exactly: no-moves first, then repetition, then insufficient material,
// then the fifty-move rule.
func TerminalTest(s *board.State, h *history.Window) Outcome {
	if len(board.Actions(s)) == 0 {
		if board.InCheck(s, s.SideToMove) {
			return Loss
		}
		return Draw
	}
	if h.Repeated() {
		return Draw
	}
	if InsufficientMaterial(s) {
		return Draw
	}
	if h.FiftyMoveRule() {
		return Draw
	}
	return Nonterminal
}

// InsufficientMaterial reports whether s is one of the drawn-by-material
// configurations this design recognizes: king vs king, king vs king and a
// lone knight, or king vs king and a lone bishop, on either side. Pawns,
// rooks, and queens on either side always rule this out, as does either
// side holding two or more minor pieces.
func InsufficientMaterial(s *board.State) bool {
	whiteBare := s.Whites[board.Rook] == 0 && s.Whites[board.Queen] == 0 && s.Whites[board.Pawn] == 0
	blackBare := s.Blacks[board.Rook] == 0 && s.Blacks[board.Queen] == 0 && s.Blacks[board.Pawn] == 0
	if !whiteBare || !blackBare {
		return false
	}

	whiteMinors := s.Whites[board.Knight].PopCount() + s.Whites[board.Bishop].PopCount()
	blackMinors := s.Blacks[board.Knight].PopCount() + s.Blacks[board.Bishop].PopCount()
	if whiteMinors > 1 || blackMinors > 1 {
		return false
	}
	// At most one side may hold that single minor piece; king vs king
	// with a minor on each side is not one of the recognized draws.
	return whiteMinors == 0 || blackMinors == 0
}

// pieceWeights mirrors the source's material table: pawn=1, knight=3,
// bishop=3, rook=5, queen=9. Kings are excluded.
var pieceWeights = map[board.PieceKind]int{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  9,
}

// UtilityHeuristic returns the material balance from friendly's point of
// view: Σ weight × (friendly_count − enemy_count). Worst negates the sign
// — a debug toggle that never affects terminal utilities.
func UtilityHeuristic(s *board.State, friendly board.Color, worst bool) float64 {
	var value float64
	for kind, weight := range pieceWeights {
		friendlyCount := s.Pieces(friendly)[kind].PopCount()
		enemyCount := s.Pieces(friendly.Opposite())[kind].PopCount()
		value += float64(weight) * float64(friendlyCount-enemyCount)
	}
	if worst {
		value = -value
	}
	return value
}

// Utility returns +Inf on a friendly win, -Inf on a friendly loss, 0 on a
// draw, consulting TerminalTest. s is assumed terminal; callers check
// TerminalTest themselves before calling Utility (see search.MaxValue).
func Utility(s *board.State, friendly board.Color, h *history.Window) float64 {
	terminal := TerminalTest(s, h)

	outcome := terminal
	if s.SideToMove != friendly {
		switch terminal {
		case Loss:
			outcome = Win
		case Win:
			outcome = Loss
		}
	}

	switch outcome {
	case Win:
		return math.Inf(1)
	case Loss:
		return math.Inf(-1)
	default:
		return 0
	}
}
