// Package search implements the iterative-deepening alpha-beta minimax
// searcher: DepthLimitedMinimax, MaxValue/MinValue with quiescence folded
// into the depth<=0 base case, and the history-heuristic move ordering
// table. Move is the package's single external entry point.
package search

import (
	"math"
	"sort"
	"time"

	"github.com/kjellberg/chesscore/board"
	"github.com/kjellberg/chesscore/history"
	"github.com/kjellberg/chesscore/rules"
)

// QuiescenceBudget is the number of extra plies the search may descend
// past its nominal depth, provided every extra ply begins with a
// non-quiet action (capture, promotion, or check-giving — though the
// check-giving flag is never set in this design, see §9).
const QuiescenceBudget = 4

// HistoryTable counts, per Action, how many times it has produced a
// cutoff or been the best move at a search node. It is keyed by the raw
// 32-bit encoding rather than the Action type itself so the zero-default
// lookup (an action that has never been recorded scores 0) falls out of
// plain map semantics. Scoped to a single call to Move.
type HistoryTable map[uint32]int

// Score returns t's count for a, defaulting to 0.
func (t HistoryTable) Score(a board.Action) int { return t[a.Key()] }

// Add increments t's count for a. Counts are monotone and never
// decremented.
func (t HistoryTable) Add(a board.Action) { t[a.Key()]++ }

// Move runs iterative deepening from depth 1 until the time budget is
// exhausted, returning the best move found by the last iteration to
// complete. If not even the first iteration completes before the
// deadline, the first legal move in codec order is returned. A position
// with zero legal moves returns the zero Action as a "no move" sentinel;
// callers should check rules.TerminalTest first.
//
// maxDepth, if positive, additionally caps the number of iterations —
// used by the demo CLI's --depth flag for deterministic runs; the Engine
// facade passes its SetMaxDepth value, 0 (unbounded, time governs depth
// alone) by default.
func Move(s *board.State, h *history.Window, budget time.Duration, worst bool, maxDepth int) board.Action {
	friendly := s.SideToMove
	actions := board.Actions(s)
	if len(actions) == 0 {
		return board.Action(0)
	}
	best := actions[0]

	deadline := time.Now().Add(budget)
	table := HistoryTable{}

	for depth, quiescence := 1, QuiescenceBudget; maxDepth <= 0 || depth <= maxDepth; depth++ {
		iterStart := time.Now()
		move, ok := DepthLimitedMinimax(depth, quiescence, deadline, s, friendly, worst, table, h)
		if ok {
			best = move
		}
		if time.Now().Add(time.Since(iterStart)).After(deadline) {
			break
		}
	}
	return best
}

// DepthLimitedMinimax enumerates s's legal moves, sorted by codec order,
// and returns the one maximizing MinValue at depth-1. It reports ok=false
// if the time budget expired partway through, in which case the caller
// must discard the partial result.
func DepthLimitedMinimax(
	depth, quiescence int,
	deadline time.Time,
	s *board.State,
	friendly board.Color,
	worst bool,
	table HistoryTable,
	h *history.Window,
) (board.Action, bool) {
	actions := board.Actions(s)

	alpha, beta := math.Inf(-1), math.Inf(1)

	best := actions[0]
	bestValue, ok := MinValue(depth-1, quiescence, deadline, board.Result(s, best), best, alpha, beta, friendly, worst, table, h)
	if !ok {
		return board.Action(0), false
	}

	for _, a := range actions[1:] {
		value, ok := MinValue(depth-1, quiescence, deadline, board.Result(s, a), a, alpha, beta, friendly, worst, table, h)
		if !ok {
			return board.Action(0), false
		}
		if value > bestValue {
			bestValue = value
			best = a
		}
	}
	return best, true
}

// MaxValue is the maximizing half of the minimax recursion.
func MaxValue(
	depth, quiescence int,
	deadline time.Time,
	s *board.State,
	last board.Action,
	alpha, beta float64,
	friendly board.Color,
	worst bool,
	table HistoryTable,
	h *history.Window,
) (float64, bool) {
	if rules.TerminalTest(s, h) != rules.Nonterminal {
		return rules.Utility(s, friendly, h), true
	}
	if time.Now().After(deadline) {
		return 0, false
	}
	if depth <= 0 {
		if quiescence > 0 && isNonQuiet(last) {
			quiescence--
		} else {
			return rules.UtilityHeuristic(s, friendly, worst), true
		}
	}

	actions := orderedActions(s, table)
	value := math.Inf(-1)
	var best board.Action

	for _, a := range actions {
		next := board.Result(s, a)
		nextHistory := h.Clone()
		nextHistory.Push(next, a)

		childValue, ok := MinValue(depth-1, quiescence, deadline, next, a, alpha, beta, friendly, worst, table, nextHistory)
		if !ok {
			return 0, false
		}
		if childValue > value {
			value = childValue
			best = a
		}
		if value >= beta {
			table.Add(a)
			return value, true
		}
		alpha = math.Max(alpha, value)
	}

	table.Add(best)
	return value, true
}

// MinValue is the minimizing half of the minimax recursion.
func MinValue(
	depth, quiescence int,
	deadline time.Time,
	s *board.State,
	last board.Action,
	alpha, beta float64,
	friendly board.Color,
	worst bool,
	table HistoryTable,
	h *history.Window,
) (float64, bool) {
	if rules.TerminalTest(s, h) != rules.Nonterminal {
		return rules.Utility(s, friendly, h), true
	}
	if time.Now().After(deadline) {
		return 0, false
	}
	if depth <= 0 {
		if quiescence > 0 && isNonQuiet(last) {
			quiescence--
		} else {
			return rules.UtilityHeuristic(s, friendly, worst), true
		}
	}

	actions := orderedActions(s, table)
	value := math.Inf(1)
	var best board.Action

	for _, a := range actions {
		next := board.Result(s, a)
		nextHistory := h.Clone()
		nextHistory.Push(next, a)

		childValue, ok := MaxValue(depth-1, quiescence, deadline, next, a, alpha, beta, friendly, worst, table, nextHistory)
		if !ok {
			return 0, false
		}
		if childValue < value {
			value = childValue
			best = a
		}
		if value <= alpha {
			table.Add(a)
			return value, true
		}
		beta = math.Min(beta, value)
	}

	table.Add(best)
	return value, true
}

// isNonQuiet reports whether a is a capture, a promotion, or check-giving.
// The check-giving flag is never set by the generator in this design (see
// §9's open question), so in practice this reduces to capture-or-promotion.
func isNonQuiet(a board.Action) bool {
	return a.WasCapture() || a.WasPromotion() || a.EnemyInCheck()
}

// orderedActions returns s's legal moves sorted descending by history
// table score, ties broken by ascending codec order (board.Actions
// already returns codec order, and sort.SliceStable preserves it for
// equal scores).
func orderedActions(s *board.State, table HistoryTable) []board.Action {
	actions := board.Actions(s)
	sort.SliceStable(actions, func(i, j int) bool {
		return table.Score(actions[i]) > table.Score(actions[j])
	})
	return actions
}
