// Package engine is the facade tying board, fen, history, rules, search,
// and timing together into the object a consumer actually drives: New,
// UpdateTimer, UpdateMove, Move.
package engine

import (
	"fmt"
	"time"

	"github.com/kjellberg/chesscore/board"
	"github.com/kjellberg/chesscore/fen"
	"github.com/kjellberg/chesscore/history"
	"github.com/kjellberg/chesscore/rules"
	"github.com/kjellberg/chesscore/search"
	"github.com/kjellberg/chesscore/timing"
)

// Engine holds one in-progress game from the perspective of the side it
// plays. There is no persisted state beyond this struct; every Move call
// starts from the current in-memory position (§6).
type Engine struct {
	state          *board.State
	history        *history.Window
	self           board.Color
	halfMoveNumber int
	timeRemaining  float64
	worst          bool
	maxDepth       int
}

// New constructs an Engine from a FEN string. The side to move in the FEN
// becomes the engine's own colour.
func New(fenString string) (*Engine, error) {
	pos, err := fen.Parse(fenString)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return &Engine{
		state:         pos.State,
		history:       history.NewWindow(),
		self:          pos.State.SideToMove,
		timeRemaining: 0,
	}, nil
}

// Self returns the colour this engine instance plays.
func (e *Engine) Self() board.Color { return e.self }

// SetMaxDepth caps the iterative-deepening loop at depth plies, for
// deterministic demos and perft-style sanity checks; 0 (the default)
// means unbounded, governed by the time budget alone.
func (e *Engine) SetMaxDepth(depth int) { e.maxDepth = depth }

// SetWorstMode toggles the debug heuristic-sign-negation mode described
// in §4.7. It never affects terminal utilities, only UtilityHeuristic.
func (e *Engine) SetWorstMode(worst bool) { e.worst = worst }

// UpdateTimer sets the engine's clock.
func (e *Engine) UpdateTimer(seconds float64) { e.timeRemaining = seconds }

// UpdateMove commits action — played by either side — applying Result and
// appending the resulting state to the history window.
func (e *Engine) UpdateMove(action board.Action) {
	e.state = board.Result(e.state, action)
	e.history.Push(e.state, action)
	e.halfMoveNumber++
}

// State returns the engine's current position. Exposed mainly for tests
// and the demo CLI, not part of the search/move contract itself.
func (e *Engine) State() *board.State { return e.state }

// Terminal reports the outcome of the current position from the side to
// move's perspective.
func (e *Engine) Terminal() rules.Outcome { return rules.TerminalTest(e.state, e.history) }

// Move runs the search for the engine's own colour, commits the chosen
// action, subtracts the elapsed time from the clock, and returns the
// action. The caller must ensure the position is not already terminal.
func (e *Engine) Move() board.Action {
	budget := timing.Budget(e.halfMoveNumber, e.timeRemaining)
	if budget <= 0 {
		budget = time.Millisecond.Seconds()
	}

	start := time.Now()
	action := search.Move(e.state, e.history, secondsToDuration(budget), e.worst, e.maxDepth)
	elapsed := time.Since(start)

	e.state = board.Result(e.state, action)
	e.history.Push(e.state, action)
	e.halfMoveNumber++
	e.timeRemaining -= elapsed.Seconds()

	return action
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
