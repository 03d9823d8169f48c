package board

import "golang.org/x/exp/slices"

// Actions returns the sorted list of legal moves available to s.SideToMove.
// "Legal" means pseudo-legal per pieces.go plus the king-safety filter: a
// move is rejected if it would leave the mover's own king attacked.
//
// The implementation classifies each pseudo-legal target into a full
// Action, applies Result speculatively, and checks king safety on the
// resulting position — equivalent to, but simpler than, hand-rolling the
// hypothetical-occupancy bookkeeping described in §4.4.
func Actions(s *State) []Action {
	self := s.SideToMove
	white := self == White
	own := s.Own()
	enemyOcc := s.Enemy()
	ownPieces := s.Pieces(self)
	enemyPieces := s.Pieces(self.Opposite())

	var out []Action

	type generator struct {
		kind PieceKind
		gen  func(piece, own, enemy Bitboard) Bitboard
	}
	generators := []generator{
		{King, func(p, own, enemy Bitboard) Bitboard { return KingMoves(p, own) }},
		{Knight, func(p, own, enemy Bitboard) Bitboard { return KnightMoves(p, own) }},
		{Bishop, BishopMoves},
		{Rook, RookMoves},
		{Queen, QueenMoves},
	}

	for _, g := range generators {
		for _, piece := range ownPieces[g.kind].Separated() {
			from := piece.Square()
			for _, to := range g.gen(piece, own, enemyOcc).ToIndices() {
				out = appendIfLegal(out, s, self, ActionParams{
					Color:    self,
					From:     from,
					To:       to,
					Piece:    g.kind,
					Captured: capturedKindAt(enemyPieces, to),
				})
			}
		}
	}

	for _, piece := range ownPieces[Pawn].Separated() {
		from := piece.Square()
		for _, to := range PawnMoves(piece, own, enemyOcc, white).ToIndices() {
			captured := capturedKindAt(enemyPieces, to)

			if (white && to >= 56) || (!white && to < 8) {
				for _, promo := range [4]PieceKind{Queen, Rook, Bishop, Knight} {
					out = appendIfLegal(out, s, self, ActionParams{
						Color:     self,
						From:      from,
						To:        to,
						Piece:     Pawn,
						Captured:  captured,
						Promotion: promo,
					})
				}
				continue
			}

			out = appendIfLegal(out, s, self, ActionParams{
				Color:          self,
				From:           from,
				To:             to,
				Piece:          Pawn,
				Captured:       captured,
				DoublePawnPush: abs(to-from) == 16,
			})
		}
	}

	if s.EPTarget != 0 {
		dir := South
		if white {
			dir = North
		}
		dest := Move(s.EPTarget, dir)
		for _, piece := range EnpassantMoves(s.EPTarget, ownPieces[Pawn]).Separated() {
			out = appendIfLegal(out, s, self, ActionParams{
				Color:     self,
				From:      piece.Square(),
				To:        dest.Square(),
				Piece:     Pawn,
				Captured:  Pawn,
				EnPassant: true,
			})
		}
	}

	// Castling is generated as a rook move (§4.3): the from-square is the
	// rook's original square, the to-square its post-castle square.
	for _, rookOrigin := range CastlingMoves(s.Castling, s.AllWhites, s.AllBlacks).Separated() {
		if !sameSideRook(rookOrigin, self) {
			continue
		}
		queenSide := rookOrigin == CastleWhiteQueenside || rookOrigin == CastleBlackQueenside
		out = appendIfLegal(out, s, self, ActionParams{
			Color:           self,
			From:            rookOrigin.Square(),
			To:              CastleRookDestination(rookOrigin).Square(),
			Piece:           Rook,
			QueenSideCastle: queenSide,
			KingSideCastle:  !queenSide,
		})
	}

	slices.SortFunc(out, func(a, b Action) bool {
		return a.Key() < b.Key()
	})
	return out
}

func sameSideRook(rookOrigin Bitboard, c Color) bool {
	if c == White {
		return rookOrigin == CastleWhiteQueenside || rookOrigin == CastleWhiteKingside
	}
	return rookOrigin == CastleBlackQueenside || rookOrigin == CastleBlackKingside
}

// appendIfLegal builds the Action described by p, applies it, and appends
// it to out unless doing so leaves mover's own king attacked.
func appendIfLegal(out []Action, s *State, mover Color, p ActionParams) []Action {
	a := NewAction(p)
	if kingSafeAfter(Result(s, a), mover) {
		return append(out, a)
	}
	return out
}

func kingSafeAfter(s *State, mover Color) bool {
	kingBB := s.Pieces(mover)[King]
	return AttacksOf(s, mover.Opposite())&kingBB == 0
}

// AttacksOf returns the union of c's pseudo-legal move bitboards across all
// of c's pieces, given s's occupancy. This is the "enemy attack union" of
// §4.4.c, used both by the king-safety filter and by callers (e.g.
// TerminalTest) that need to know whether a particular king is in check.
func AttacksOf(s *State, c Color) Bitboard {
	pieces := s.Pieces(c)
	var own, enemyOcc Bitboard
	if c == White {
		own, enemyOcc = s.AllWhites, s.AllBlacks
	} else {
		own, enemyOcc = s.AllBlacks, s.AllWhites
	}
	var u Bitboard
	u |= KingMoves(pieces[King], own)
	u |= KnightMoves(pieces[Knight], own)
	u |= BishopMoves(pieces[Bishop], own, enemyOcc)
	u |= RookMoves(pieces[Rook], own, enemyOcc)
	u |= QueenMoves(pieces[Queen], own, enemyOcc)
	u |= PawnMoves(pieces[Pawn], own, enemyOcc, c == White)
	return u
}

func capturedKindAt(pieces *[7]Bitboard, sq int) PieceKind {
	bit := FromIndex(sq)
	for k := King; k <= Queen; k++ {
		if pieces[k]&bit != 0 {
			return k
		}
	}
	return NoPieceKind
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// InCheck reports whether c's king is attacked in s.
func InCheck(s *State, c Color) bool {
	return AttacksOf(s, c.Opposite())&s.Pieces(c)[King] != 0
}
