// Command chesscore is a thin, non-UCI demo binary: it loads a position,
// runs the search for one or more moves, and prints a status line after
// each, in the teacher's plain fmt.Println style rather than a UCI frame.
// It is not part of the core package contract — see spec.md §6.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	eng "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"

	"github.com/kjellberg/chesscore/board"
	"github.com/kjellberg/chesscore/engine"
	"github.com/kjellberg/chesscore/fen"
	"github.com/kjellberg/chesscore/rules"
)

func main() {
	worst := flag.Bool("worst", false, "negate the heuristic sign (debug mode)")
	depth := flag.Int("depth", 0, "cap the iterative-deepening loop at this many plies (0 = unbounded, time governs depth alone)")
	moves := flag.Int("moves", 1, "number of Move() iterations to run before exiting")
	seconds := flag.Float64("seconds", 5, "clock time in seconds; each move's budget is derived from it by timing.Budget, not set directly")
	perftDepth := flag.Int("perft-cross-check", 0, "if > 0, cross-check Actions() move counts against dragontoothmg and GooseEngineMG at this depth and exit")
	flag.Parse()

	startFEN := fen.StartPos
	if flag.NArg() > 0 {
		startFEN = flag.Arg(0)
	}

	if *perftDepth > 0 {
		if err := crossCheckPerft(startFEN, *perftDepth); err != nil {
			fmt.Fprintln(os.Stderr, "perft cross-check failed:", err)
			os.Exit(1)
		}
		return
	}

	e, err := engine.New(startFEN)
	if err != nil {
		fmt.Fprintln(os.Stderr, "chesscore:", err)
		os.Exit(1)
	}
	e.SetWorstMode(*worst)
	e.SetMaxDepth(*depth)
	e.UpdateTimer(*seconds)

	for i := 0; i < *moves; i++ {
		if e.Terminal() != rules.Nonterminal {
			fmt.Println("info terminal", terminalName(e.Terminal()))
			break
		}
		start := time.Now()
		a := e.Move()
		fmt.Printf("info move %s time %.3fs\n%s\n", a.String(), time.Since(start).Seconds(), e.State().String())
	}
}

func terminalName(o rules.Outcome) string {
	switch o {
	case rules.Draw:
		return "draw"
	case rules.Loss:
		return "loss"
	case rules.Win:
		return "win"
	default:
		return "nonterminal"
	}
}

// crossCheckPerft compares our Actions() move counts against two
// independently implemented move generators — dragontoothmg (the
// teacher's original bitboard library) and GooseEngineMG (the teacher's
// published successor) — at a shallow depth, the same oracle role
// CounterGo-style engines give an external perft reference during
// development.
func crossCheckPerft(fenString string, depth int) error {
	pos, err := fen.Parse(fenString)
	if err != nil {
		return err
	}

	ours := perftOurs(pos.State, depth)

	dtBoard, err := dragontoothmg.ParseFen(fenString)
	if err != nil {
		return fmt.Errorf("dragontoothmg: %w", err)
	}
	dtNodes := perftDragontoothmg(&dtBoard, depth)

	gooseBoard, err := eng.ParseFEN(fenString)
	if err != nil {
		return fmt.Errorf("GooseEngineMG: %w", err)
	}
	gooseNodes := eng.Perft(gooseBoard, depth)

	fmt.Printf("perft depth=%d ours=%d dragontoothmg=%d gooseenginemg=%d\n", depth, ours, dtNodes, gooseNodes)
	if ours != dtNodes || ours != gooseNodes {
		return fmt.Errorf("node count mismatch at depth %d: ours=%d dragontoothmg=%d gooseenginemg=%d", depth, ours, dtNodes, gooseNodes)
	}
	return nil
}

func perftOurs(s *board.State, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, a := range board.Actions(s) {
		nodes += perftOurs(board.Result(s, a), depth-1)
	}
	return nodes
}

func perftDragontoothmg(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += perftDragontoothmg(b, depth-1)
		unapply()
	}
	return nodes
}
