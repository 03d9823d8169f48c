// Package fen parses and formats Forsyth-Edwards Notation, the external
// representation Engine.New consumes and the format UpdateMove's committed
// positions can be round-tripped through for testing.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kjellberg/chesscore/board"
)

// StartPos is the FEN string for the standard initial chess position.
const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position bundles the parsed State with the two counters FEN carries that
// State itself has no room for: the halfmove clock (plies since the last
// capture or pawn move) and the fullmove number.
type Position struct {
	State          *board.State
	HalfmoveClock  int
	FullmoveNumber int
}

func charFromKind(k board.PieceKind, c board.Color) byte {
	var ch byte
	switch k {
	case board.Pawn:
		ch = 'P'
	case board.Knight:
		ch = 'N'
	case board.Bishop:
		ch = 'B'
	case board.Rook:
		ch = 'R'
	case board.Queen:
		ch = 'Q'
	case board.King:
		ch = 'K'
	default:
		return '?'
	}
	if c == board.Black {
		ch += 'a' - 'A'
	}
	return ch
}

func kindFromChar(ch byte) (board.PieceKind, board.Color, error) {
	color := board.White
	upper := ch
	if ch >= 'a' && ch <= 'z' {
		color = board.Black
		upper = ch - ('a' - 'A')
	}
	switch upper {
	case 'P':
		return board.Pawn, color, nil
	case 'N':
		return board.Knight, color, nil
	case 'B':
		return board.Bishop, color, nil
	case 'R':
		return board.Rook, color, nil
	case 'Q':
		return board.Queen, color, nil
	case 'K':
		return board.King, color, nil
	default:
		return board.NoPieceKind, color, fmt.Errorf("fen: unrecognized piece character %q", ch)
	}
}

// Parse parses a FEN string into a Position. The board portion is walked
// rank 8 first (top of the string) down to rank 1 (bottom), translating to
// bottom-left bit indexing where A1 is square 0 — see §6's collaborator
// contract.
func Parse(s string) (*Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return nil, errors.New("fen: expected at least 4 space-separated fields")
	}

	st := &board.State{}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return nil, fmt.Errorf("fen: rank %d overflows 8 files", rank+1)
			}
			kind, color, err := kindFromChar(ch)
			if err != nil {
				return nil, err
			}
			sq := rank*8 + file
			st.Pieces(color)[kind] |= board.FromIndex(sq)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("fen: rank %d has %d files, want 8", rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		st.SideToMove = board.White
	case "b":
		st.SideToMove = board.Black
	default:
		return nil, fmt.Errorf("fen: side to move must be 'w' or 'b', got %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				st.Castling |= board.CastleWhiteKingside
			case 'Q':
				st.Castling |= board.CastleWhiteQueenside
			case 'k':
				st.Castling |= board.CastleBlackKingside
			case 'q':
				st.Castling |= board.CastleBlackQueenside
			default:
				return nil, fmt.Errorf("fen: invalid castling rights character %q", ch)
			}
		}
	}

	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, err
		}
		st.EPTarget = board.FromIndex(sq)
	}

	st.SyncOccupancy()
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	pos := &Position{State: st, HalfmoveClock: 0, FullmoveNumber: 1}
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid halfmove clock: %w", err)
		}
		pos.HalfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid fullmove number: %w", err)
		}
		pos.FullmoveNumber = n
	}
	return pos, nil
}

func parseSquare(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("fen: invalid square %q", s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, fmt.Errorf("fen: square %q out of range", s)
	}
	return int(rank-'1')*8 + int(file-'a'), nil
}

// Format renders pos as a FEN string.
func Format(pos *Position) string {
	s := pos.State
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			kind, color, ok := s.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromKind(kind, color))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if s.SideToMove == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if s.Castling == 0 {
		sb.WriteByte('-')
	} else {
		if s.Castling&board.CastleWhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if s.Castling&board.CastleWhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if s.Castling&board.CastleBlackKingside != 0 {
			sb.WriteByte('k')
		}
		if s.Castling&board.CastleBlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if s.EPTarget == 0 {
		sb.WriteByte('-')
	} else {
		sq := s.EPTarget.Square()
		sb.WriteByte('a' + byte(sq%8))
		sb.WriteByte('1' + byte(sq/8))
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))
	return sb.String()
}
