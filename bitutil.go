/*
bitutil.go implements the low-level bit tricks the ray tables and slider
attack generator are built on: half-open index ranges, isolating the
lowest/highest set bit, and a portable PEXT/PDEP pair. Go has no BMI2
compiler intrinsic, so both are implemented with the textbook bit-by-bit
loop; correctness, not speed, is the point here, since the real slider
attack generator (see rays.go, attacks.go) uses the branch-free ray-scan
instead and does not call pext, pdep or subsetsOf.
*/

package chess

import "math/bits"

// bitsZeroToN returns a mask of the low n bits set (bits 0..n-1), for
// 0 <= n <= 64. Used to build half-open ranges like "all squares before X".
func bitsZeroToN(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}

// isolateLowBit returns a mask containing only the least significant set
// bit of v, or 0 if v is 0.
func isolateLowBit(v uint64) uint64 { return v & -v }

// isolateHighBit returns a mask containing only the most significant set
// bit of v, or 0 if v is 0.
func isolateHighBit(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	return uint64(1) << (63 - bits.LeadingZeros64(v))
}

// pext (parallel bit extract): gathers the bits of v selected by mask into
// the low-order bits of the result, in mask order from LSB to MSB. This is
// the portable fallback for the x86 BMI2 PEXT instruction.
func pext(v, mask uint64) uint64 {
	var result uint64
	var bitIndex uint
	for m := mask; m != 0; {
		bit := isolateLowBit(m)
		m &= m - 1
		if v&bit != 0 {
			result |= 1 << bitIndex
		}
		bitIndex++
	}
	return result
}

// pdep (parallel bit deposit): scatters the low-order bits of v into the
// positions selected by mask, in mask order from LSB to MSB. The portable
// fallback for the x86 BMI2 PDEP instruction; pdep(pext(v, mask), mask) ==
// v & mask.
func pdep(v, mask uint64) uint64 {
	var result uint64
	var bitIndex uint
	for m := mask; m != 0; {
		bit := isolateLowBit(m)
		m &= m - 1
		if v&(1<<bitIndex) != 0 {
			result |= bit
		}
		bitIndex++
	}
	return result
}

// subsetsOf enumerates every subset of mask (including the empty subset
// and mask itself), calling fn once per subset, by applying pdep to each
// index from 0 to 2^popcount(mask)-1.
func subsetsOf(mask uint64, fn func(subset uint64)) {
	bitCount := bits.OnesCount64(mask)
	for i := 0; i < 1<<bitCount; i++ {
		fn(pdep(uint64(i), mask))
	}
}
