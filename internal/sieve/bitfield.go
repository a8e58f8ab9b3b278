package sieve

import "math/bits"

const wordBits = 64

// bitfield is a fixed-length packed bit array. Bits past length are always
// zero so that whole-word operations never see stray bits.
type bitfield struct {
	words  []uint64
	length int
}

// newBitfield returns a bitfield of length bits, all set.
func newBitfield(length int) *bitfield {
	b := &bitfield{
		words:  make([]uint64, (length+wordBits-1)/wordBits),
		length: length,
	}
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	if tail := length % wordBits; tail != 0 {
		b.words[len(b.words)-1] = (uint64(1) << tail) - 1
	}
	return b
}

func (b *bitfield) test(i int) bool {
	return b.words[i/wordBits]&(uint64(1)<<(uint(i)%wordBits)) != 0
}

// clearStride clears bits start, start+step, ... below length.
func (b *bitfield) clearStride(start, step int) {
	words := b.words
	for i := start; i < b.length; i += step {
		words[i/wordBits] &^= uint64(1) << (uint(i) % wordBits)
	}
}

// count returns the number of set bits.
func (b *bitfield) count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// each calls fn with the index of every set bit in ascending order until fn
// returns false.
func (b *bitfield) each(fn func(i int) bool) {
	for wi, w := range b.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			if !fn(wi*wordBits + tz) {
				return
			}
			w &= w - 1
		}
	}
}
