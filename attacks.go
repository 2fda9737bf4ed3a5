/*
attacks.go implements non-slider attack tables (knight, king, pawn),
ray-scan slider attacks, attacker queries, attacked-square aggregation, and
the joint checkers/pins computation that every do_move and every generator
specialization dispatch on.
*/

package chess

// knightAttacks, kingAttacks are indexed by origin square.
var knightAttacks [64]SquareSet
var kingAttacks [64]SquareSet

// pawnAttacks is indexed by [color][origin square].
var pawnAttacks [2][64]SquareSet

var knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingDeltas = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

func initNonSliderAttacks() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq&7, sq>>3

		var knight, king SquareSet
		for _, d := range knightDeltas {
			f, r := file+d[0], rank+d[1]
			if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				knight |= squareOf(NewSquare(f, r))
			}
		}
		for _, d := range kingDeltas {
			f, r := file+d[0], rank+d[1]
			if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				king |= squareOf(NewSquare(f, r))
			}
		}
		knightAttacks[sq] = knight
		kingAttacks[sq] = king

		var whitePawn, blackPawn SquareSet
		for _, f := range [2]int{file - 1, file + 1} {
			if f < 0 || f > 7 {
				continue
			}
			if rank+1 <= 7 {
				whitePawn |= squareOf(NewSquare(f, rank+1))
			}
			if rank-1 >= 0 {
				blackPawn |= squareOf(NewSquare(f, rank-1))
			}
		}
		pawnAttacks[White.colorBit()][sq] = whitePawn
		pawnAttacks[Black.colorBit()][sq] = blackPawn
	}
}

// rayAttack computes the squares a slider on sq attacks along direction d
// given the current occupancy, including the first blocker (if any). This
// is the ray-scan / "isolate the nearest blocker" algorithm: for forward
// directions the nearest blocker is the lowest set bit on the ray
// intersected with occupancy; for backward directions it's the highest,
// found by OR-ing in a sentinel bit at square 0 so the formula degrades
// correctly to "no blocker -> full ray" without a branch.
func rayAttack(sq Square, d Direction, occupancy SquareSet) SquareSet {
	ray := rayTable[sq][d]
	blockers := ray & occupancy
	if isForwardDirection(d) {
		hit := uint64(isolateLowBit(uint64(blockers)))
		return SquareSet(2*hit-1) & ray
	}
	hit := isolateHighBit(uint64(blockers) | 1)
	return SquareSet(-hit) & ray
}

// bishopAttacks / rookAttacks sum the 4 diagonal / 4 orthogonal rays.
func bishopAttacks(sq Square, occupancy SquareSet) SquareSet {
	var a SquareSet
	for _, d := range bishopDirections {
		a |= rayAttack(sq, d, occupancy)
	}
	return a
}

func rookAttacks(sq Square, occupancy SquareSet) SquareSet {
	var a SquareSet
	for _, d := range rookDirections {
		a |= rayAttack(sq, d, occupancy)
	}
	return a
}

func queenAttacks(sq Square, occupancy SquareSet) SquareSet {
	return bishopAttacks(sq, occupancy) | rookAttacks(sq, occupancy)
}

// attackersTo returns the set of pieces of color `by` that attack target,
// given the board's occupancy and piece planes.
func (b *Board) attackersTo(target Square, by Color, occupancy SquareSet) SquareSet {
	enemy := by.colorBit()
	var attackers SquareSet
	attackers |= knightAttacks[target] & b.knights & b.colorMask(by)
	attackers |= kingAttacks[target] & b.kings & b.colorMask(by)
	attackers |= pawnAttacks[1-enemy][target] & b.pawns & b.colorMask(by)
	attackers |= bishopAttacks(target, occupancy) & b.bishops & b.colorMask(by)
	attackers |= rookAttacks(target, occupancy) & b.rooks & b.colorMask(by)
	return attackers
}

// attackedSquares returns every square attacked by any piece of color `by`.
// The defending king (if any) should already be removed from occupancy by
// the caller when this is used to test the defending king's own
// destinations, so that squares "behind" the king along a slider ray are
// still considered attacked.
func (b *Board) attackedSquares(by Color, occupancy SquareSet) SquareSet {
	var attacked SquareSet
	ownPieces := b.colorMask(by)

	(b.pawns & ownPieces).Squares(func(sq Square) {
		attacked |= pawnAttacks[by.colorBit()][sq]
	})
	(b.knights & ownPieces).Squares(func(sq Square) {
		attacked |= knightAttacks[sq]
	})
	(b.kings & ownPieces).Squares(func(sq Square) {
		attacked |= kingAttacks[sq]
	})
	(b.getBishops() & ownPieces).Squares(func(sq Square) {
		attacked |= bishopAttacks(sq, occupancy)
	})
	(b.getQueens() & ownPieces).Squares(func(sq Square) {
		attacked |= queenAttacks(sq, occupancy)
	})
	(b.getRooks() & ownPieces).Squares(func(sq Square) {
		attacked |= rookAttacks(sq, occupancy)
	})
	return attacked
}

// computeCheckersAndPins recomputes b.checkers and b.pinnedPieces for the
// side to move's king, jointly: every enemy slider whose ray to the king
// passes through exactly one friendly piece pins that piece; through zero
// friendly pieces, the slider is a checker. Knights and pawns can check
// but never pin. Also handles the rare "pinned en-passant pawn" case: if
// capturing en passant would expose the king to a slider along the
// capturing pawn's rank, the capture is illegal and ep_square is cleared.
func (b *Board) computeCheckersAndPins() {
	us := b.turnColor()
	them := us.Opposite()
	king := b.kingSquare(us)
	occupancy := b.occupancy

	var checkers, pinned SquareSet

	checkers |= knightAttacks[king] & b.knights & b.colorMask(them)
	checkers |= pawnAttacks[us.colorBit()][king] & b.pawns & b.colorMask(them)

	enemySliders := (b.getBishops() | b.getQueens()) & b.colorMask(them) & sliderRayMask(king, true)
	enemySliders |= (b.getRooks() | b.getQueens()) & b.colorMask(them) & sliderRayMask(king, false)

	enemySliders.Squares(func(enemySq Square) {
		between := interceptTable[enemySq][king] &^ squareOf(king)
		blockers := between & occupancy
		switch blockers.PopCount() {
		case 0:
			checkers |= squareOf(enemySq)
		case 1:
			if (blockers & b.colorMask(us)) != 0 {
				pinned |= blockers
			}
		}
	})

	b.checkers = checkers
	b.pinnedPieces = pinned

	b.maybeClearPinnedEPSquare()
	b.selectSpecialization()
}

// sliderRayMask returns the set of squares from which a bishop (diag=true)
// or rook (diag=false) ray reaches sq, i.e. the squares that could
// possibly contain a relevant slider. It's a coarse geometric filter
// (any square sharing a rank/file for rook, a diagonal for bishop) applied
// before the more expensive intercept-table walk above.
func sliderRayMask(sq Square, diag bool) SquareSet {
	var mask SquareSet
	dirs := rookDirections[:]
	if diag {
		dirs = bishopDirections[:]
	}
	for _, d := range dirs {
		mask |= rayTable[sq][d]
	}
	return mask
}

// maybeClearPinnedEPSquare clears b.epSquare unless at least one pawn of
// the side to move can legally execute the en-passant capture. "Legal"
// here only ever turns on discovered check: simulate removing the
// capturing pawn from its square and the captured pawn from its square
// and adding the capturer at ep_square, then ask whether the king would
// be attacked. This subsumes the textbook rare case (a rook/queen pinning
// both pawns horizontally) as well as any other discovered-check
// configuration, without special-casing direction.
func (b *Board) maybeClearPinnedEPSquare() {
	if b.epSquare == NoSquare {
		return
	}
	us := b.turnColor()
	them := us.Opposite()
	king := b.kingSquare(us)
	capturedPawnSq := Square(int(b.epSquare) - us.pawnAdvance())

	capturers := pawnAttacks[them.colorBit()][b.epSquare] & b.pawns & b.colorMask(us)
	if capturers == 0 {
		log.Debugf("no pawn can capture en passant at %s, clearing ep square", b.epSquare)
		b.epSquare = NoSquare
		return
	}

	stillLegal := false
	capturers.Squares(func(capturerSq Square) {
		if stillLegal {
			return
		}
		occAfter := b.occupancy &^ squareOf(capturerSq) &^ squareOf(capturedPawnSq) | squareOf(b.epSquare)
		if b.attackersTo(king, them, occAfter)&^squareOf(capturedPawnSq) == 0 {
			stillLegal = true
		}
	})
	if !stillLegal {
		log.Debugf("en passant at %s would expose %s's king, clearing ep square", b.epSquare, us)
		b.epSquare = NoSquare
	}
}

// pinRestriction returns the king square plus the ray from the king through
// sq to the board edge when sq is pinned, or SquareSet.All() when it is not -- a pinned piece may only
// move along the line of its pin (including capturing the pinner), an
// unpinned piece has no such restriction.
func pinRestriction(king, sq Square, pinned SquareSet) SquareSet {
	if pinned&squareOf(sq) == 0 {
		return All()
	}
	return lineThrough[king][sq]
}
