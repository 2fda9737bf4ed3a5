/*
board.go defines Board, the value-type chessboard state, and the
invariants that must hold after every mutation and every load. Boards are
cheap to copy, compare, and store -- the PGN reader keeps two live boards
(current and previous) to support variation stacking, and perft/do_move
recursion passes boards by value.
*/

package chess

// Board owns the complete, packed state of a chess position.
type Board struct {
	occupancy     SquareSet
	turnColorMask SquareSet // occupied squares whose piece belongs to the side to move

	pawns   SquareSet
	knights SquareSet
	bishops SquareSet // bishop-or-queen plane
	rooks   SquareSet // rook-or-queen plane
	kings   SquareSet

	checkers     SquareSet
	pinnedPieces SquareSet

	// castlingRooks holds the current castling-rook squares, indexed by
	// castling side: {white-long, white-short, black-long, black-short}.
	// NoSquare means that castling right is gone.
	castlingRooks [4]Square

	epSquare Square

	halfMoveClock byte // saturates at 255
	plyNum        int  // 0 = White's first move

	kingSquareInTurn   Square
	kingSquareOpponent Square

	spec specialization
}

// Castling-side indices into castlingRooks.
const (
	castleWhiteLong = iota
	castleWhiteShort
	castleBlackLong
	castleBlackShort
)

// castlingIndex returns the castlingRooks index for (color, short).
func castlingIndex(c Color, short bool) int {
	idx := c.colorBit() * 2
	if short {
		idx++
	}
	return idx
}

// turnColor returns the side to move, derived from ply parity.
func (b *Board) turnColor() Color {
	if b.plyNum%2 == 0 {
		return White
	}
	return Black
}

// MoveNumber returns the full-move number (1 = White's first move).
func (b *Board) MoveNumber() int { return 1 + b.plyNum/2 }

// colorMask returns the set of occupied squares belonging to c.
func (b *Board) colorMask(c Color) SquareSet {
	if c == b.turnColor() {
		return b.turnColorMask
	}
	return b.occupancy &^ b.turnColorMask
}

func (b *Board) getBishops() SquareSet { return b.bishops &^ b.rooks }
func (b *Board) getRooks() SquareSet   { return b.rooks &^ b.bishops }
func (b *Board) getQueens() SquareSet  { return b.bishops & b.rooks }

func (b *Board) kingSquare(c Color) Square {
	if c == b.turnColor() {
		return b.kingSquareInTurn
	}
	return b.kingSquareOpponent
}

// PieceAt returns the piece (and its color) standing on sq, or
// NoPieceAndColor if sq is empty.
func (b *Board) PieceAt(sq Square) PieceAndColor {
	mask := squareOf(sq)
	if b.occupancy&mask == 0 {
		return NoPieceAndColor
	}
	var c Color
	if b.turnColorMask&mask != 0 {
		c = b.turnColor()
	} else {
		c = b.turnColor().Opposite()
	}
	switch {
	case b.pawns&mask != 0:
		return PieceAndColor{Pawn, c}
	case b.knights&mask != 0:
		return PieceAndColor{Knight, c}
	case b.kings&mask != 0:
		return PieceAndColor{King, c}
	case b.bishops&mask != 0 && b.rooks&mask != 0:
		return PieceAndColor{Queen, c}
	case b.bishops&mask != 0:
		return PieceAndColor{Bishop, c}
	case b.rooks&mask != 0:
		return PieceAndColor{Rook, c}
	}
	return NoPieceAndColor
}

// CheckerCount returns how many enemy pieces currently check the side to
// move's king: 0, 1, or 2 (any higher count is clamped -- triple-plus
// check is not representable/possible under legal chess rules).
func (b *Board) CheckerCount() int {
	n := b.checkers.PopCount()
	if n > 2 {
		return 2
	}
	return n
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool { return b.checkers != 0 }

// specialization selects which move-generation code path applies, cached
// on the board and refreshed after every do_move and every load so that
// every call into a generator is a single branch on this small int plus
// the fast inlined generator body (see movegen.go).
type specialization int

const (
	specNoCheck specialization = iota
	specSingleCheck
	specDoubleCheck
)

func (b *Board) selectSpecialization() {
	switch b.CheckerCount() {
	case 0:
		b.spec = specNoCheck
	case 1:
		b.spec = specSingleCheck
	default:
		b.spec = specDoubleCheck
	}
}

// EPSquare returns the current en-passant target square, or NoSquare.
func (b *Board) EPSquare() Square { return b.epSquare }

// CanCastle reports whether the given castling right is currently held
// (the rook is where it needs to be); it does not check path/attack
// legality, which is computed fresh by the generator every call.
func (b *Board) CanCastle(c Color, short bool) bool {
	return b.castlingRooks[castlingIndex(c, short)] != NoSquare
}

// HalfMoveClock / Ply expose the raw counters for FEN serialization and
// draw-rule checks.
func (b *Board) HalfMoveClock() int { return int(b.halfMoveClock) }
func (b *Board) Ply() int           { return b.plyNum }

// bumpHalfMoveClock saturating-increments the clock (never above 255, per
// §3.3: "half_move_clock: 0…255 (saturating)").
func (b *Board) bumpHalfMoveClock() {
	if b.halfMoveClock < 255 {
		b.halfMoveClock++
	}
}
