package board

import "fmt"

// PieceKind identifies one of the six piece types, independent of colour.
type PieceKind uint8

const (
	NoPieceKind PieceKind = 0
	King        PieceKind = 1
	Pawn        PieceKind = 2
	Bishop      PieceKind = 3
	Knight      PieceKind = 4
	Rook        PieceKind = 5
	Queen       PieceKind = 6
)

func (k PieceKind) String() string {
	switch k {
	case King:
		return "K"
	case Pawn:
		return "P"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	default:
		return "-"
	}
}

// Color is one of the two sides.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Action is a 32-bit packed move encoding. Bit layout (LSB = bit 0):
//
//	0      colour moved (0=white, 1=black)
//	1-6    from-square index (0-63)
//	7-12   to-square index (0-63)
//	16-18  piece kind moved
//	19     double-pawn-push flag
//	20     queen-side castle flag
//	21     king-side castle flag
//	22     opponent-in-check flag (reserved, never set)
//	23-25  captured piece kind (0 = no capture)
//	26     en-passant capture flag
//	27     equal-piece capture flag
//	28-30  promotion target (0 = none)
//	31     captured-a-king sentinel (used only to disambiguate no-capture)
//
// Actions compare by unsigned 32-bit value; this ordering is a byproduct of
// the layout, not a semantic ranking, but it is load-bearing for
// move-ordering stability (see Actions, DepthLimitedMinimax).
type Action uint32

const (
	bitColor        = 0
	bitFrom         = 1
	bitTo           = 7
	bitPiece        = 16
	bitDoublePush   = 19
	bitCastleQueen  = 20
	bitCastleKing   = 21
	bitEnemyInCheck = 22
	bitCaptured     = 23
	bitEnPassant    = 26
	bitEqualCapture = 27
	bitPromotion    = 28
	bitCapturedKing = 31
)

// ActionParams gathers the fields needed to encode an Action. Zero-value
// CapturedKind means "no capture"; zero-value Promotion means "no
// promotion".
type ActionParams struct {
	Color           Color
	From, To        int
	Piece           PieceKind
	DoublePawnPush  bool
	QueenSideCastle bool
	KingSideCastle  bool
	Captured        PieceKind
	EnPassant       bool
	Promotion       PieceKind
}

// NewAction packs p into a 32-bit Action encoding.
func NewAction(p ActionParams) Action {
	var a uint32
	if p.Color == Black {
		a |= 1 << bitColor
	}
	a |= uint32(p.From) << bitFrom
	a |= uint32(p.To) << bitTo
	a |= uint32(p.Piece) << bitPiece
	if p.DoublePawnPush {
		a |= 1 << bitDoublePush
	}
	if p.QueenSideCastle {
		a |= 1 << bitCastleQueen
	}
	if p.KingSideCastle {
		a |= 1 << bitCastleKing
	}
	if p.Captured != NoPieceKind {
		a |= uint32(p.Captured) << bitCaptured
		if p.Captured == King {
			a |= 1 << bitCapturedKing
		}
		if p.Captured == p.Piece {
			a |= 1 << bitEqualCapture
		}
	}
	if p.EnPassant {
		a |= 1 << bitEnPassant
	}
	if p.Promotion != NoPieceKind {
		a |= uint32(p.Promotion) << bitPromotion
	}
	return Action(a)
}

// Key returns the raw 32-bit encoding, usable as a map key.
func (a Action) Key() uint32 { return uint32(a) }

// Color returns the side that made the move.
func (a Action) Color() Color { return Color((a >> bitColor) & 1) }

// From returns the origin square index.
func (a Action) From() int { return int((uint32(a) >> bitFrom) & 0x3f) }

// To returns the destination square index.
func (a Action) To() int { return int((uint32(a) >> bitTo) & 0x3f) }

// Piece returns the kind of piece that moved. For a castle, this is the
// rook (castling is encoded as a rook move — see §4.3).
func (a Action) Piece() PieceKind { return PieceKind((a >> bitPiece) & 0x7) }

// DoublePawnPush reports whether the move was a two-square pawn advance.
func (a Action) DoublePawnPush() bool { return (a>>bitDoublePush)&1 != 0 }

// QueenSideCastle reports whether the move was a queen-side castle.
func (a Action) QueenSideCastle() bool { return (a>>bitCastleQueen)&1 != 0 }

// KingSideCastle reports whether the move was a king-side castle.
func (a Action) KingSideCastle() bool { return (a>>bitCastleKing)&1 != 0 }

// IsCastle reports whether the move was either castle.
func (a Action) IsCastle() bool { return a.QueenSideCastle() || a.KingSideCastle() }

// WasCapture reports whether the move captured a piece.
func (a Action) WasCapture() bool {
	return (a>>bitCaptured)&0x7 != 0 || (a>>bitCapturedKing)&1 != 0
}

// CapturedKind returns the kind of piece captured, or NoPieceKind.
func (a Action) CapturedKind() PieceKind {
	if (a>>bitCapturedKing)&1 != 0 {
		return King
	}
	return PieceKind((a >> bitCaptured) & 0x7)
}

// WasEnPassant reports whether the move was an en-passant capture.
func (a Action) WasEnPassant() bool { return (a>>bitEnPassant)&1 != 0 }

// WasEqualCapture reports whether the captured piece's kind equals the
// moving piece's kind.
func (a Action) WasEqualCapture() bool { return (a>>bitEqualCapture)&1 != 0 }

// WasPromotion reports whether the move promotes a pawn.
func (a Action) WasPromotion() bool { return a.PromotedTo() != NoPieceKind }

// PromotedTo returns the promotion target, or NoPieceKind.
func (a Action) PromotedTo() PieceKind { return PieceKind((a >> bitPromotion) & 0x7) }

// EnemyInCheck is always false in this design — the generator never sets
// the reserved check flag (see §4.3 "Not checked in pseudo-legal" and the
// open question on check-giving detection in §9).
func (a Action) EnemyInCheck() bool { return (a>>bitEnemyInCheck)&1 != 0 }

// squareName renders a 0-63 square index as algebraic notation.
func squareName(sq int) string {
	file := byte('A' + sq%8)
	rank := byte('1' + sq/8)
	return string([]byte{file, rank})
}

// String renders the move in simple algebraic form, e.g. "E2E4" or
// "E7E8Q" for a promotion.
func (a Action) String() string {
	s := squareName(a.From()) + squareName(a.To())
	if promo := a.PromotedTo(); promo != NoPieceKind {
		s += promo.String()
	}
	return s
}

// GoString supports %#v for debugging.
func (a Action) GoString() string {
	return fmt.Sprintf("Action(%s, %s moves %s)", a.Color(), a.Piece(), a.String())
}
