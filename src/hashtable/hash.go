package hashtable

import (
	"github.com/Blackdeer1524/chainhash/src/pkg/assert"
)

// SquareSumHasher accumulates the sum of the squares of the bytes written
// to it. The sum wraps around at 2^32.
type SquareSumHasher struct {
	sum uint32
}

// Reset clears the accumulated sum.
func (h *SquareSumHasher) Reset() {
	h.sum = 0
}

// Write mixes p into the sum. It never fails.
func (h *SquareSumHasher) Write(p []byte) int {
	for _, b := range p {
		c := uint32(b)
		h.sum += c * c
	}

	return len(p)
}

// WriteString is Write for strings, without the conversion to []byte.
func (h *SquareSumHasher) WriteString(s string) int {
	for i := 0; i < len(s); i++ {
		c := uint32(s[i])
		h.sum += c * c
	}

	return len(s)
}

// Sum32 returns the current sum.
func (h *SquareSumHasher) Sum32() uint32 {
	return h.sum
}

// Hash returns the bucket index of key in a table of slotCount slots.
// slotCount must be positive.
func Hash(key string, slotCount uint32) uint32 {
	assert.Assert(slotCount > 0, "hash into an empty table")

	var h SquareSumHasher
	h.WriteString(key)

	return h.Sum32() % slotCount
}
