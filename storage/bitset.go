package storage

import "math/bits"

// bitset tracks written slots.
type bitset struct {
	bits []uint64
}

func newBitset(n int) bitset {
	return bitset{bits: make([]uint64, (n+63)/64)}
}

func (b *bitset) set(i int) {
	b.bits[i/64] |= 1 << (uint(i) % 64)
}

func (b *bitset) has(i int) bool {
	return b.bits[i/64]&(1<<(uint(i)%64)) != 0
}

func (b *bitset) count() int {
	n := 0
	for _, w := range b.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// firstUnset returns the lowest index below n that is not set, or -1.
func (b *bitset) firstUnset(n int) int {
	for wi, w := range b.bits {
		if w == ^uint64(0) {
			continue
		}
		i := wi*64 + bits.TrailingZeros64(^w)
		if i < n {
			return i
		}
		return -1
	}
	return -1
}
