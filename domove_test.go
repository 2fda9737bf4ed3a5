package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoMovePawnAdvanceLeavesEnPassantSquareUnsetWithoutAdjacentPawn(t *testing.T) {
	// No Black pawn stands adjacent to e4, so the conditional EP rule
	// (only set ep_square when an enemy pawn could actually capture)
	// leaves it unset here.
	b, err := LoadFEN(startingFEN)
	assert.NoError(t, err)
	b.DoMove(NewMove(E2, E4, MovePawnAdvance))
	assert.Equal(t, NoSquare, b.EPSquare())
	assert.Equal(t, Black, b.turnColor())
	assert.Equal(t, PieceAndColor{Pawn, White}, b.PieceAt(E4))
	assert.Equal(t, NoPieceAndColor, b.PieceAt(E2))
	assert.Equal(t, 0, b.HalfMoveClock())
}

func TestDoMovePawnAdvanceSetsEnPassantSquareWhenAdjacentEnemyPawnExists(t *testing.T) {
	// 1.e4 a6 2.e5 d5: Black's d5 push lands beside White's e5 pawn, which
	// can capture en passant on d6, so ep_square must be set this time.
	b, err := LoadFEN(startingFEN)
	assert.NoError(t, err)
	b.DoMove(NewMove(E2, E4, MovePawnAdvance))
	b.DoMove(NewMove(A7, A6, MovePawnAdvance))
	b.DoMove(NewMove(E4, E5, MovePawnAdvance))
	b.DoMove(NewMove(D7, D5, MovePawnAdvance))
	assert.Equal(t, D6, b.EPSquare())
}

func TestDoMoveEnPassantCapture(t *testing.T) {
	b, err := LoadFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	b.DoMove(NewMove(E5, D6, MoveEnPassant))
	assert.Equal(t, PieceAndColor{Pawn, White}, b.PieceAt(D6))
	assert.Equal(t, NoPieceAndColor, b.PieceAt(D5))
	assert.Equal(t, NoPieceAndColor, b.PieceAt(E5))
	assert.Equal(t, 0, b.HalfMoveClock())
}

func TestDoMoveShortCastleMovesBothPieces(t *testing.T) {
	b, err := LoadFEN("rnbqk2r/pppp1ppp/5n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	assert.NoError(t, err)
	b.DoMove(NewCastlingMove(E1, H1, true))
	assert.Equal(t, PieceAndColor{King, White}, b.PieceAt(G1))
	assert.Equal(t, PieceAndColor{Rook, White}, b.PieceAt(F1))
	assert.Equal(t, NoPieceAndColor, b.PieceAt(E1))
	assert.Equal(t, NoPieceAndColor, b.PieceAt(H1))
	assert.False(t, b.CanCastle(White, true))
	assert.False(t, b.CanCastle(White, false))
}

func TestDoMoveLongCastleMovesBothPieces(t *testing.T) {
	b, err := LoadFEN("r3kbnr/pppqpppp/2n5/3p1b2/3P1B2/2N5/PPPQPPPP/R3KBNR w KQkq - 6 5")
	assert.NoError(t, err)
	b.DoMove(NewCastlingMove(E1, A1, false))
	assert.Equal(t, PieceAndColor{King, White}, b.PieceAt(C1))
	assert.Equal(t, PieceAndColor{Rook, White}, b.PieceAt(D1))
	assert.Equal(t, NoPieceAndColor, b.PieceAt(E1))
	assert.Equal(t, NoPieceAndColor, b.PieceAt(A1))
}

func TestDoMovePromotionReplacesPawn(t *testing.T) {
	b, err := LoadFEN("8/4P1k1/8/8/8/8/6K1/8 w - - 0 1")
	assert.NoError(t, err)
	b.DoMove(NewPromotionMove(E7, E8, Queen))
	assert.Equal(t, PieceAndColor{Queen, White}, b.PieceAt(E8))
	assert.Equal(t, NoPieceAndColor, b.PieceAt(E7))
}

func TestDoMoveRookMoveClearsCastlingRight(t *testing.T) {
	b, err := LoadFEN("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	assert.NoError(t, err)
	assert.True(t, b.CanCastle(White, false))
	b.DoMove(NewMove(A1, A2, MoveRook))
	assert.False(t, b.CanCastle(White, false))
}

func TestDoMoveCaptureResetsHalfMoveClock(t *testing.T) {
	b, err := LoadFEN("4k3/8/8/3n4/4B3/8/8/4K3 w - - 12 10")
	assert.NoError(t, err)
	b.DoMove(NewMove(E4, D5, MoveBishop))
	assert.Equal(t, 0, b.HalfMoveClock())
}

func TestDoMoveQuietMoveIncrementsHalfMoveClock(t *testing.T) {
	b, err := LoadFEN("4k3/8/8/8/8/8/8/4KB2 w - - 12 10")
	assert.NoError(t, err)
	b.DoMove(NewMove(F1, E2, MoveBishop))
	assert.Equal(t, 13, b.HalfMoveClock())
}
