package filter

import "github.com/spaolacci/murmur3"

// hashPair computes the two 64-bit base hashes for an item by splitting a
// single 128-bit MurmurHash3 digest (x64 variant, seed 0): the low half is
// h1, the high half h2. Probe indices derive from the pair as h1 + i*h2
// (Kirsch-Mitzenmacher double hashing), with 64-bit wraparound.
//
// The low-half-as-h1 split is part of the wire contract: swapping the
// halves yields a structurally valid filter that is not cross-compatible
// with existing serialized filters.
func hashPair(item []byte) (h1, h2 uint64) {
	return murmur3.Sum128(item)
}
