package board

// Result returns the state obtained by applying a to s. It does not mutate
// s; callers that need to "undo" a move should simply keep the original
// State value around (State is small and copied by value throughout this
// package, following the source's copy-per-edge design — see §9's note on
// State copies vs undo-move).
func Result(s *State, a Action) *State {
	next := s.Clone()
	mover := a.Color()
	enemy := mover.Opposite()

	moverPieces := next.Pieces(mover)
	enemyPieces := next.Pieces(enemy)

	from := FromIndex(a.From())
	to := FromIndex(a.To())

	moverPieces[a.Piece()] &^= from
	if promo := a.PromotedTo(); promo != NoPieceKind {
		moverPieces[promo] |= to
	} else {
		moverPieces[a.Piece()] |= to
	}

	if a.WasEnPassant() {
		enemyPieces[Pawn] &^= s.EPTarget
	} else if captured := a.CapturedKind(); captured != NoPieceKind {
		enemyPieces[captured] &^= to
	}

	if a.IsCastle() {
		kingFrom := FromIndex(kingHomeSquare(mover))
		kingTo := KingLocationAfterCastling(from)
		moverPieces[King] &^= kingFrom
		moverPieces[King] |= kingTo
	}

	// Castling rights are cleared only when a rook moves, never when a
	// king moves — a known simplification the source carries and this
	// design preserves rather than silently fixing (§9).
	if a.Piece() == Rook {
		next.Castling &^= from
	}

	if a.DoublePawnPush() {
		next.EPTarget = to
	} else {
		next.EPTarget = 0
	}

	next.recompute()
	next.SideToMove = enemy
	return next
}

func kingHomeSquare(c Color) int {
	if c == White {
		return 4
	}
	return 60
}
