package board

// This file holds the pure per-piece pseudo-legal move generators. Each
// takes the moving piece's bitboard plus friendly/enemy occupancy and
// returns a bitboard of pseudo-legal destination squares — no knowledge of
// whose turn it is, castling rights, or king safety lives here.

// KingMoves returns the king's pseudo-legal destinations: one step in each
// of the eight directions, excluding squares held by a friendly piece.
func KingMoves(king, self Bitboard) Bitboard {
	return Move(king, North).
		Or(Move(king, South)).
		Or(Move(king, East)).
		Or(Move(king, West)).
		Or(Move(king, Northeast)).
		Or(Move(king, Northwest)).
		Or(Move(king, Southeast)).
		Or(Move(king, Southwest)).
		And(self.Not())
}

// Knight jump file masks, preventing a jump from wrapping around a rank.
const (
	fileAB Bitboard = 0xfcfcfcfcfcfcfcfc // not A or B file
	fileGH Bitboard = 0x3f3f3f3f3f3f3f3f // not G or H file
)

// KnightMoves returns the knight's pseudo-legal destinations.
func KnightMoves(knight, self Bitboard) Bitboard {
	return knight.Shl(17).And(FileA.Not()).
		Or(knight.Shr(15).And(FileA.Not())).
		Or(knight.Shl(15).And(FileH.Not())).
		Or(knight.Shr(17).And(FileH.Not())).
		Or(knight.Shl(10).And(fileAB)).
		Or(knight.Shr(6).And(fileAB)).
		Or(knight.Shr(10).And(fileGH)).
		Or(knight.Shl(6).And(fileGH)).
		And(self.Not())
}

// RookMoves returns the rook's pseudo-legal destinations given friendly and
// enemy occupancy, per the blocker-inverse formula in §4.2.
func RookMoves(rook, self, enemy Bitboard) Bitboard {
	notSelf := self.Not()

	result := rayWithBlockers(rook, North, notSelf.And(Move(enemy, North).Not())).
		Or(rayWithBlockers(rook, South, notSelf.And(Move(enemy, South).Not()))).
		Or(rayWithBlockers(rook, West, notSelf.And(Move(enemy, West).Not()))).
		Or(rayWithBlockers(rook, East, notSelf.And(Move(enemy, East).Not())))
	return result.Xor(rook)
}

// BishopMoves returns the bishop's pseudo-legal destinations.
func BishopMoves(bishop, self, enemy Bitboard) Bitboard {
	notSelf := self.Not()

	result := rayWithBlockers(bishop, Northeast, notSelf.And(Move(enemy, Northeast).Not())).
		Or(rayWithBlockers(bishop, Northwest, notSelf.And(Move(enemy, Northwest).Not()))).
		Or(rayWithBlockers(bishop, Southeast, notSelf.And(Move(enemy, Southeast).Not()))).
		Or(rayWithBlockers(bishop, Southwest, notSelf.And(Move(enemy, Southwest).Not())))
	return result.Xor(bishop)
}

// QueenMoves returns the queen's pseudo-legal destinations: the union of
// the rook and bishop rays.
func QueenMoves(queen, self, enemy Bitboard) Bitboard {
	notSelf := self.Not()

	result := rayWithBlockers(queen, North, notSelf.And(Move(enemy, North).Not())).
		Or(rayWithBlockers(queen, South, notSelf.And(Move(enemy, South).Not()))).
		Or(rayWithBlockers(queen, West, notSelf.And(Move(enemy, West).Not()))).
		Or(rayWithBlockers(queen, East, notSelf.And(Move(enemy, East).Not()))).
		Or(rayWithBlockers(queen, Northeast, notSelf.And(Move(enemy, Northeast).Not()))).
		Or(rayWithBlockers(queen, Northwest, notSelf.And(Move(enemy, Northwest).Not()))).
		Or(rayWithBlockers(queen, Southeast, notSelf.And(Move(enemy, Southeast).Not()))).
		Or(rayWithBlockers(queen, Southwest, notSelf.And(Move(enemy, Southwest).Not())))
	return result.Xor(queen)
}

// PawnMoves returns white or black pawn pseudo-legal destinations: one step
// forward onto an empty square, two steps forward from the starting rank
// with both intermediate and target empty, and diagonal captures onto
// enemy-occupied squares.
func PawnMoves(pawn, self, enemy Bitboard, white bool) Bitboard {
	notSelf := self.Not()
	notEnemy := enemy.Not()
	empty := notSelf.And(notEnemy)

	if white {
		oneStep := pawnStepWithBlocker(pawn, North, empty)
		twoStep := pawnDoubleStepWithBlocker(pawn.And(Rank2), North, empty)
		capEast := Move(pawn, Northeast).And(enemy)
		capWest := Move(pawn, Northwest).And(enemy)
		return oneStep.Or(twoStep).Or(capEast).Or(capWest).Xor(pawn)
	}

	oneStep := pawnStepWithBlocker(pawn, South, empty)
	twoStep := pawnDoubleStepWithBlocker(pawn.And(Rank7), South, empty)
	capEast := Move(pawn, Southeast).And(enemy)
	capWest := Move(pawn, Southwest).And(enemy)
	return oneStep.Or(twoStep).Or(capEast).Or(capWest).Xor(pawn)
}

func pawnStepWithBlocker(pawn Bitboard, dir Direction, blockerInverse Bitboard) Bitboard {
	result := pawn
	step := stepRaw(pawn, dir).And(blockerInverse)
	result = result.Or(step)
	return result
}

func pawnDoubleStepWithBlocker(pawn Bitboard, dir Direction, blockerInverse Bitboard) Bitboard {
	result := pawn
	step := stepRaw(pawn, dir).And(blockerInverse)
	result = result.Or(step)
	step = stepRaw(step, dir).And(blockerInverse)
	result = result.Or(step)
	return result
}

// EnpassantMoves returns the friendly pawn(s) adjacent to the enemy's
// en-passant target square, i.e. the pawns eligible to capture en passant.
func EnpassantMoves(enemyEPTarget, selfPawns Bitboard) Bitboard {
	return Move(enemyEPTarget, East).And(selfPawns).Or(Move(enemyEPTarget, West).And(selfPawns))
}

// Castling rook-origin bits, per §3's layout.
const (
	CastleWhiteQueenside Bitboard = 0x01               // A1
	CastleWhiteKingside  Bitboard = 0x80               // H1
	CastleBlackQueenside Bitboard = 0x0100000000000000 // A8
	CastleBlackKingside  Bitboard = 0x8000000000000000 // H8
)

// castleObstacleMasks gives the squares that must be empty (between king
// and rook) for each castling right to be available, keyed by the rook's
// origin bit.
var castleObstacleMasks = map[Bitboard]Bitboard{
	CastleWhiteQueenside: 0x0e,
	CastleWhiteKingside:  0x60,
	CastleBlackQueenside: 0x0e00000000000000,
	CastleBlackKingside:  0x6000000000000000,
}

// CastlingMoves returns the subset of castlingRights whose obstacle squares
// (between king and rook) are all empty. King-transit attack safety is not
// checked here — see §4.3's documented omission.
func CastlingMoves(castlingRights, allWhite, allBlack Bitboard) Bitboard {
	occupied := allWhite.Or(allBlack)
	var available Bitboard
	for rookOrigin, obstacles := range castleObstacleMasks {
		if castlingRights&rookOrigin == 0 {
			continue
		}
		if occupied&obstacles == 0 {
			available |= rookOrigin
		}
	}
	return available
}

// CastleRookDestination returns the rook's post-castle square (as a
// single-bit bitboard) for a rook-origin bit, and KingLocationAfterCastling
// returns the king's post-castle square for the same rook-origin bit.
func CastleRookDestination(rookOrigin Bitboard) Bitboard {
	switch rookOrigin {
	case CastleWhiteQueenside:
		return 0x08
	case CastleWhiteKingside:
		return 0x20
	case CastleBlackQueenside:
		return 0x0800000000000000
	case CastleBlackKingside:
		return 0x2000000000000000
	default:
		return 0
	}
}

// KingLocationAfterCastling returns the king's destination square for the
// castle identified by the rook's origin bit.
func KingLocationAfterCastling(rookOrigin Bitboard) Bitboard {
	switch rookOrigin {
	case CastleWhiteQueenside:
		return 0x04
	case CastleWhiteKingside:
		return 0x40
	case CastleBlackQueenside:
		return 0x0400000000000000
	case CastleBlackKingside:
		return 0x4000000000000000
	default:
		return 0
	}
}
