/*
move.go implements the packed 16-bit Move representation described by the
wire format: bits 0-5 hold the source square, bits 6-9 hold the move kind
(and, for promotions, which piece), bits 10-15 hold the destination square.

Two illegal-sentinel values live at the top of the encoding space so that
is_illegal collapses to a single unsigned comparison: both sentinels carry
kind=MoveIllegal and dst=H8 (63), which forces dst's 6 bits to their
maximum; src distinguishes "no candidate" from "more than one candidate".
*/

package chess

// MoveKind is the 4-bit type-and-promotion nibble packed into a Move.
type MoveKind int

const (
	MovePawnAdvance   MoveKind = 0
	MovePawnCapture   MoveKind = 1
	MoveKnight        MoveKind = 2
	MoveBishop        MoveKind = 3
	MoveRook          MoveKind = 4
	MoveQueen         MoveKind = 5
	MoveKing          MoveKind = 6
	MoveEnPassant     MoveKind = 7
	MoveCastleShort   MoveKind = 8
	MoveCastleLong    MoveKind = 9
	MovePromoKnight   MoveKind = 10
	MovePromoBishop   MoveKind = 11
	MovePromoRook     MoveKind = 12
	MovePromoQueen    MoveKind = 13
	moveKindReserved  MoveKind = 14
	MoveIllegal       MoveKind = 15
)

// Move is a packed chess move: src(0..6) | kind(6..10) | dst(10..16).
type Move uint16

const (
	moveSrcMask  = 0x3F
	moveKindMask = 0xF
	moveDstMask  = 0x3F
)

// NewMove packs a source square, destination square, and kind into a Move.
func NewMove(src, dst Square, kind MoveKind) Move {
	return Move(uint16(src)&moveSrcMask | (uint16(kind)&moveKindMask)<<6 | (uint16(dst)&moveDstMask)<<10)
}

// NewCastlingMove packs a castling move: src is the king's start square,
// dst is the castling rook's current square (Chess960/FRC-compatible).
func NewCastlingMove(kingStart, rookSquare Square, short bool) Move {
	kind := MoveCastleLong
	if short {
		kind = MoveCastleShort
	}
	return NewMove(kingStart, rookSquare, kind)
}

// NewPromotionMove packs a promotion move; promo must be one of
// Knight, Bishop, Rook, Queen.
func NewPromotionMove(src, dst Square, promo Piece) Move {
	var kind MoveKind
	switch promo {
	case Knight:
		kind = MovePromoKnight
	case Bishop:
		kind = MovePromoBishop
	case Rook:
		kind = MovePromoRook
	default:
		kind = MovePromoQueen
	}
	return NewMove(src, dst, kind)
}

// IllegalNoMove is the sentinel for "the SAN disambiguator matched zero
// legal moves".
var IllegalNoMove = NewMove(A1, H8, MoveIllegal)

// IllegalAmbiguousMove is the sentinel for "the SAN disambiguator matched
// more than one legal move".
var IllegalAmbiguousMove = NewMove(A2, H8, MoveIllegal)

func (m Move) Src() Square    { return Square(m & moveSrcMask) }
func (m Move) Dst() Square    { return Square((m >> 10) & moveDstMask) }
func (m Move) Kind() MoveKind { return MoveKind((m >> 6) & moveKindMask) }

// IsIllegal reports whether m is one of the illegal-sentinel tokens. The
// packing guarantees every legal move's kind is < 14, so comparing the raw
// encoding against the lowest sentinel value is sufficient and branch-free.
func (m Move) IsIllegal() bool { return m >= NewMove(A1, H8, MoveIllegal) }

// IsAmbiguous reports whether m is specifically the "more than one
// candidate" sentinel.
func (m Move) IsAmbiguous() bool { return m == IllegalAmbiguousMove }

func (m Move) IsRegular() bool {
	switch m.Kind() {
	case MovePawnAdvance, MovePawnCapture, MoveKnight, MoveBishop, MoveRook, MoveQueen, MoveKing:
		return true
	}
	return false
}

func (m Move) IsCastling() bool {
	return m.Kind() == MoveCastleShort || m.Kind() == MoveCastleLong
}

func (m Move) IsPromotion() bool {
	switch m.Kind() {
	case MovePromoKnight, MovePromoBishop, MovePromoRook, MovePromoQueen:
		return true
	}
	return false
}

func (m Move) IsEnPassant() bool { return m.Kind() == MoveEnPassant }

// IsCapture reports whether the move is known (from its kind alone, not
// board state) to be a capture. Promotions may or may not capture; callers
// that need that distinction should consult the destination occupancy.
func (m Move) IsCapture() bool {
	return m.Kind() == MovePawnCapture || m.Kind() == MoveEnPassant
}

// PromotionPiece returns the piece a promotion move upgrades to. Only
// meaningful when IsPromotion() is true.
func (m Move) PromotionPiece() Piece {
	switch m.Kind() {
	case MovePromoKnight:
		return Knight
	case MovePromoBishop:
		return Bishop
	case MovePromoRook:
		return Rook
	default:
		return Queen
	}
}

// shortCastleKingFile / shortCastleRookFile / longCastleKingFile /
// longCastleRookFile give the king/rook destination files on the king's
// rank for Chess960-compatible castling (src=king start, dst=rook square
// for a castling Move; the actual king/rook destinations are derived from
// these constants, not from the Move's dst field directly).
const (
	shortCastleKingFile = 6 // g-file
	shortCastleRookFile = 5 // f-file
	longCastleKingFile  = 2 // c-file
	longCastleRookFile  = 3 // d-file
)
