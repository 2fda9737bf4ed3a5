package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsolateLowHighBit(t *testing.T) {
	assert.Equal(t, uint64(0b0100), isolateLowBit(0b0110_0100))
	assert.Equal(t, uint64(0), isolateLowBit(0))
	assert.Equal(t, uint64(0b0100_0000), isolateHighBit(0b0110_0100))
	assert.Equal(t, uint64(0), isolateHighBit(0))
}

func TestPextPdepRoundTrip(t *testing.T) {
	mask := uint64(0b1011_0100)
	v := uint64(0b1111_1111)
	extracted := pext(v, mask)
	assert.Equal(t, pdep(extracted, mask), v&mask)
}

func TestPextGathersInMaskOrder(t *testing.T) {
	// mask picks bits 2, 4, 7 (LSB to MSB); v has only bit 4 set.
	mask := uint64(1<<2 | 1<<4 | 1<<7)
	v := uint64(1 << 4)
	assert.Equal(t, uint64(0b010), pext(v, mask))
}

func TestSubsetsOfEnumeratesEveryCombination(t *testing.T) {
	mask := uint64(0b101) // 2 bits set -> 4 subsets
	seen := map[uint64]bool{}
	subsetsOf(mask, func(subset uint64) {
		assert.Equal(t, subset, subset&mask)
		seen[subset] = true
	})
	assert.Len(t, seen, 4)
	assert.True(t, seen[0])
	assert.True(t, seen[mask])
}

func TestBitsZeroToN(t *testing.T) {
	assert.Equal(t, uint64(0), bitsZeroToN(0))
	assert.Equal(t, uint64(0b111), bitsZeroToN(3))
	assert.Equal(t, ^uint64(0), bitsZeroToN(64))
}
