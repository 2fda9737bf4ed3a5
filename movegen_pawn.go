/*
movegen_pawn.go implements pawn move generation: single/double advances,
promotions, captures (including promoting captures), pinned-pawn handling,
and en-passant. Pawn logic is kept separate from movegen.go's
piece-by-piece loop because it operates on whole-bitboard shifts rather
than a per-square attack-table lookup, matching the teacher's own
genPawnMoves/genPawnAttacks split in spirit (the teacher shifts whole
bitboards too; see its NOT_A_FILE/NOT_H_FILE masks in movegen.go).
*/

package chess

// genPawnMoves emits every legal pawn move. legalDst restricts
// non-en-passant destinations (the single-check intercept mask, or
// All() when not in check). handlePinned controls whether pinned pawns
// are processed at all: per the no-check/single-check split, a pinned
// pawn can never resolve a check (it would have to leave its pin line to
// block or capture a piece not on that line), so check specializations
// skip pinned pawns entirely rather than passing a pin restriction.
func genPawnMoves[C Collector](b *Board, c C, legalDst SquareSet, handlePinned bool) bool {
	us := b.turnColor()
	occ := b.occupancy
	enemy := b.colorMask(us.Opposite())
	allPawns := b.pawns & b.colorMask(us)
	pinned := b.pinnedPieces
	unpinned := allPawns &^ pinned

	promRank := Row(7)
	startRank := Row(1)
	if us == Black {
		promRank = Row(0)
		startRank = Row(6)
	}

	if genPawnAdvancesAndCaptures(c, unpinned, us, occ, enemy, promRank, startRank, legalDst) {
		return true
	}

	if handlePinned {
		king := b.kingSquare(us)
		for set := allPawns & pinned; set != 0; {
			sq := set.PopFirstSquare()
			restrict := pinRestriction(king, sq, pinned)
			if genPawnAdvancesAndCaptures(c, squareOf(sq), us, occ, enemy, promRank, startRank, legalDst&restrict) {
				return true
			}
		}
	}

	return genEnPassant(b, c, legalDst)
}

// genPawnAdvancesAndCaptures generates every non-en-passant pawn move for
// the source squares in pawns, restricting destinations to destMask.
// Whole-bitboard shifts work identically whether pawns holds many pawns
// (the unpinned group) or exactly one (a pinned pawn handled individually
// against its own pin-line-restricted destMask).
func genPawnAdvancesAndCaptures[C Collector](c C, pawns SquareSet, us Color, occ, enemy, promRank, startRank, destMask SquareSet) bool {
	adv := us.pawnAdvance()

	singleTargets := pawns.Shift(adv) &^ occ
	onStart := pawns & startRank
	doubleTargets := (onStart.Shift(adv) &^ occ).Shift(adv) &^ occ

	nonPromoSingle := singleTargets &^ promRank & destMask
	promoSingle := singleTargets & promRank & destMask
	doubleTargets &= destMask

	leftDelta, rightDelta := adv-1, adv+1
	leftTargets := (pawns &^ Column(0)).Shift(leftDelta) & enemy
	rightTargets := (pawns &^ Column(7)).Shift(rightDelta) & enemy

	leftNonPromo := leftTargets &^ promRank & destMask
	leftPromo := leftTargets & promRank & destMask
	rightNonPromo := rightTargets &^ promRank & destMask
	rightPromo := rightTargets & promRank & destMask

	for set := doubleTargets; set != 0; {
		dst := set.PopFirstSquare()
		src := Square(int(dst) - 2*adv)
		if emit(c, NewMove(src, dst, MovePawnAdvance)) {
			return true
		}
	}
	for set := nonPromoSingle; set != 0; {
		dst := set.PopFirstSquare()
		src := Square(int(dst) - adv)
		if emit(c, NewMove(src, dst, MovePawnAdvance)) {
			return true
		}
	}
	if emitPromotions(c, promoSingle, adv) {
		return true
	}
	for set := leftNonPromo; set != 0; {
		dst := set.PopFirstSquare()
		src := Square(int(dst) - leftDelta)
		if emit(c, NewMove(src, dst, MovePawnCapture)) {
			return true
		}
	}
	for set := rightNonPromo; set != 0; {
		dst := set.PopFirstSquare()
		src := Square(int(dst) - rightDelta)
		if emit(c, NewMove(src, dst, MovePawnCapture)) {
			return true
		}
	}
	if emitPromotions(c, leftPromo, leftDelta) {
		return true
	}
	return emitPromotions(c, rightPromo, rightDelta)
}

// emitPromotions emits the four promotion moves (queen, rook, bishop,
// knight, matching move_to_san's disambiguation-irrelevant but
// conventional ordering) for every destination in targets, whose source
// is delta squares behind the destination.
func emitPromotions[C Collector](c C, targets SquareSet, delta int) bool {
	for set := targets; set != 0; {
		dst := set.PopFirstSquare()
		src := Square(int(dst) - delta)
		for _, promo := range [4]Piece{Queen, Rook, Bishop, Knight} {
			if emit(c, NewPromotionMove(src, dst, promo)) {
				return true
			}
		}
	}
	return false
}

// genEnPassant emits the en-passant capture(s) available from
// b.epSquare, if any. b.epSquare is already known to be pin-safe with
// respect to at least one capturer (computeCheckersAndPins guarantees
// this), but with two candidate capturers it's possible one is safe and
// the other isn't, so every candidate is individually re-simulated here.
func genEnPassant[C Collector](b *Board, c C, legalDst SquareSet) bool {
	if b.epSquare == NoSquare {
		return false
	}
	us := b.turnColor()
	them := us.Opposite()
	king := b.kingSquare(us)
	capturedSq := Square(int(b.epSquare) - us.pawnAdvance())

	// A pawn check can only be resolved by capturing the checking pawn
	// itself; capturing en passant never blocks a check (the destination
	// square is never the one between checker and king for a pawn
	// checker). So the move is only in scope for single-check when the
	// captured pawn is in fact the checker.
	if b.spec == specSingleCheck && !b.checkers.Contains(capturedSq) {
		return false
	}
	if b.spec == specDoubleCheck {
		return false
	}

	capturers := pawnAttacks[them.colorBit()][b.epSquare] & b.pawns & b.colorMask(us)
	for set := capturers; set != 0; {
		src := set.PopFirstSquare()
		occAfter := b.occupancy &^ squareOf(src) &^ squareOf(capturedSq) | squareOf(b.epSquare)
		if b.attackersTo(king, them, occAfter)&^squareOf(capturedSq) != 0 {
			continue
		}
		if emit(c, NewMove(src, b.epSquare, MoveEnPassant)) {
			return true
		}
	}
	return false
}
