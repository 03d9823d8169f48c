package board

import "strings"

// String renders a bitboard as an 8x8 ASCII grid, rank 8 on top, for use in
// test failures and debug logging. It is not used on any hot path.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			if b&FromIndex(sq) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Describe returns the algebraic square names of every set bit, in
// ascending index order, mirroring BitStringToDescription in the reference
// implementation.
func (b Bitboard) Describe() []string {
	indices := b.ToIndices()
	out := make([]string, len(indices))
	for i, sq := range indices {
		out[i] = squareName(sq)
	}
	return out
}

// String renders the full board position as an 8x8 ASCII grid, one
// character per square, using upper-case letters for white pieces and
// lower-case for black; '.' marks an empty square.
func (s *State) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			kind, color, ok := s.PieceAt(sq)
			if !ok {
				sb.WriteByte('.')
			} else {
				ch := kind.String()[0]
				if color == Black {
					ch = strings.ToLower(string(ch))[0]
				}
				sb.WriteByte(ch)
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
