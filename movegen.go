/*
movegen.go implements the check-state-specialized legal move generator:
no-check, single-check, and double-check, each polymorphic over a
Collector (collector.go). Every phase writes moves directly -- no
copy-make, no trial do_move/undo -- using the precomputed checkers/pins
(attacks.go) and pin-restriction masks (attacks.go's pinRestriction) to
filter illegal candidates before they're ever emitted.

This departs deliberately from the teacher's GenLegalMoves, which
generates pseudo-legal moves and filters them by playing each one and
re-counting checks (copy-make). The teacher's own doc comment names this
tradeoff ("using copy-make approach"); we generate legal moves directly
against precomputed pins/checkers instead, since that is the only way to
make the check-state specialization (no-check/single-check/double-check)
meaningful -- a copy-make generator gains nothing from knowing the
checker count ahead of time.
*/

package chess

// GenerateMoves writes every legal move in the current position into c,
// dispatching on the board's cached check-state specialization.
func GenerateMoves[C Collector](b *Board, c C) {
	switch b.spec {
	case specNoCheck:
		genNoCheck(b, c)
	case specSingleCheck:
		genSingleCheck(b, c)
	default:
		genDoubleCheck(b, c)
	}
}

// HasLegalMove reports whether the side to move has at least one legal
// move, using the early-exiting detector collector.
func (b *Board) HasLegalMove() bool {
	var d DetectorCollector
	GenerateMoves(b, &d)
	return d.Found
}

// LegalMoves returns every legal move in the current position.
func (b *Board) LegalMoves() []Move {
	var l ListCollector
	GenerateMoves(b, &l)
	return l.Moves
}

func genNoCheck[C Collector](b *Board, c C) {
	if genPawnMoves(b, c, All(), true) {
		return
	}
	if genKnightMoves(b, c, All()) {
		return
	}
	if genSliderMoves(b, c, Bishop, All()) {
		return
	}
	if genSliderMoves(b, c, Rook, All()) {
		return
	}
	if genSliderMoves(b, c, Queen, All()) {
		return
	}
	if genKingMoves(b, c) {
		return
	}
	genCastlingMoves(b, c)
}

func genSingleCheck[C Collector](b *Board, c C) {
	if genKingMoves(b, c) {
		return
	}
	us := b.turnColor()
	king := b.kingSquare(us)
	checker := b.checkers.FirstSquare()
	legalDst := interceptTable[checker][king] | squareOf(checker)

	if genPawnMoves(b, c, legalDst, false) {
		return
	}
	if genKnightMoves(b, c, legalDst) {
		return
	}
	if genSliderMoves(b, c, Bishop, legalDst) {
		return
	}
	if genSliderMoves(b, c, Rook, legalDst) {
		return
	}
	genSliderMoves(b, c, Queen, legalDst)
}

func genDoubleCheck[C Collector](b *Board, c C) {
	genKingMoves(b, c)
}

// genKnightMoves emits moves for every non-pinned knight (a pinned knight
// never has a legal move: it cannot move and stay on the pin line, since
// a knight's move never stays on a line through its own square).
func genKnightMoves[C Collector](b *Board, c C, legalDst SquareSet) bool {
	us := b.turnColor()
	own := b.colorMask(us)
	knights := b.knights & own &^ b.pinnedPieces

	for set := knights; set != 0; {
		src := set.PopFirstSquare()
		dests := knightAttacks[src] &^ own & legalDst
		for d := dests; d != 0; {
			dst := d.PopFirstSquare()
			if emit(c, NewMove(src, dst, MoveKnight)) {
				return true
			}
		}
	}
	return false
}

// genSliderMoves emits moves for bishops, rooks, or queens (selected by
// piece). Unpinned pieces move freely within legalDst; pinned pieces are
// further restricted to their pin line.
func genSliderMoves[C Collector](b *Board, c C, piece Piece, legalDst SquareSet) bool {
	us := b.turnColor()
	own := b.colorMask(us)
	occ := b.occupancy
	king := b.kingSquare(us)
	pinned := b.pinnedPieces

	var pieces SquareSet
	var kind MoveKind
	var attacksFn func(Square, SquareSet) SquareSet
	switch piece {
	case Bishop:
		pieces, kind, attacksFn = b.getBishops(), MoveBishop, bishopAttacks
	case Rook:
		pieces, kind, attacksFn = b.getRooks(), MoveRook, rookAttacks
	default:
		pieces, kind, attacksFn = b.getQueens(), MoveQueen, queenAttacks
	}
	pieces &= own

	for set := pieces; set != 0; {
		src := set.PopFirstSquare()
		restrict := All()
		if pinned.Contains(src) {
			restrict = pinRestriction(king, src, pinned)
		}
		dests := attacksFn(src, occ) &^ own & legalDst & restrict
		for d := dests; d != 0; {
			dst := d.PopFirstSquare()
			if emit(c, NewMove(src, dst, kind)) {
				return true
			}
		}
	}
	return false
}

// genKingMoves emits every legal king move (not castling). The king is
// removed from occupancy while computing enemy attacks so squares
// "behind" it along a slider ray still count as attacked.
func genKingMoves[C Collector](b *Board, c C) bool {
	us := b.turnColor()
	them := us.Opposite()
	own := b.colorMask(us)
	king := b.kingSquare(us)

	occWithoutKing := b.occupancy &^ squareOf(king)
	attacked := b.attackedSquares(them, occWithoutKing)

	dests := kingAttacks[king] &^ own &^ attacked
	for d := dests; d != 0; {
		dst := d.PopFirstSquare()
		if emit(c, NewMove(king, dst, MoveKing)) {
			return true
		}
	}
	return false
}
