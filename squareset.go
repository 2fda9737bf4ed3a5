package chess

import "math/bits"

// SquareSet is a 64-bit mask: bit i set means square i belongs to the set.
// It is the sole carrier of set-valued position data (occupancy, attacks,
// pin lines, candidate destinations, ...). The algebra below is total and
// branch-free; enumerating an empty set yields nothing and FirstSquare of
// an empty set returns NoSquare.
type SquareSet uint64

func squareOf(sq Square) SquareSet { return SquareSet(1) << uint(sq) }

// SquareMask returns a set containing only sq.
func SquareMask(sq Square) SquareSet { return squareOf(sq) }

// Row returns the set of all 8 squares on rank r (0-based).
func Row(r int) SquareSet { return SquareSet(0xFF) << uint(8*r) }

// Column returns the set of all 8 squares on file f (0-based).
func Column(f int) SquareSet { return SquareSet(0x0101010101010101) << uint(f) }

// All returns the full 64-square set.
func All() SquareSet { return ^SquareSet(0) }

// None returns the empty set.
func None() SquareSet { return SquareSet(0) }

func (s SquareSet) Union(o SquareSet) SquareSet        { return s | o }
func (s SquareSet) Intersect(o SquareSet) SquareSet    { return s & o }
func (s SquareSet) Difference(o SquareSet) SquareSet   { return s &^ o }
func (s SquareSet) Complement() SquareSet              { return ^s }
func (s SquareSet) Contains(sq Square) bool            { return s&squareOf(sq) != 0 }
func (s SquareSet) IsEmpty() bool                      { return s == 0 }
func (s SquareSet) Any() bool                          { return s != 0 }
func (s SquareSet) PopCount() int                      { return bits.OnesCount64(uint64(s)) }
func (s SquareSet) Shift(n int) SquareSet {
	if n >= 0 {
		return s << uint(n)
	}
	return s >> uint(-n)
}
func (s SquareSet) RotateLeft(n int) SquareSet  { return SquareSet(bits.RotateLeft64(uint64(s), n)) }
func (s SquareSet) RotateRight(n int) SquareSet { return SquareSet(bits.RotateLeft64(uint64(s), -n)) }

// FirstSquare returns the least-significant set square, or NoSquare if empty.
func (s SquareSet) FirstSquare() Square {
	if s == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(s)))
}

// LastSquare returns the most-significant set square, or NoSquare if empty.
func (s SquareSet) LastSquare() Square {
	if s == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(s)))
}

// PopFirstSquare removes and returns the least-significant set square.
func (s *SquareSet) PopFirstSquare() Square {
	sq := s.FirstSquare()
	if sq != NoSquare {
		*s &= *s - 1
	}
	return sq
}

// AllIfAny returns an all-ones mask if s is non-empty, or zero otherwise.
// Branchless idiom: -1 when any bit is set (via a bool->uint64 without a
// data-dependent branch), 0 otherwise.
func (s SquareSet) AllIfAny() SquareSet {
	var any uint64
	if s != 0 {
		any = 1
	}
	return SquareSet(-any)
}

// Squares calls fn for every set square in ascending index order.
func (s SquareSet) Squares(fn func(Square)) {
	for t := s; t != 0; {
		fn(t.PopFirstSquare())
	}
}

// ToSlice materializes the set as a slice of squares, ascending.
func (s SquareSet) ToSlice() []Square {
	out := make([]Square, 0, s.PopCount())
	s.Squares(func(sq Square) { out = append(out, sq) })
	return out
}
