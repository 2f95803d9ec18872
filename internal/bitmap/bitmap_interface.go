package bitmap

// Bitmap is an append-only set interface backed by a byte-addressed bit
// array. Bits can be set and tested but never cleared.
type Bitmap interface {
	// Set sets the bit at position i to 1.
	Set(i uint64)

	// Test returns true if the bit at position i is set.
	Test(i uint64) bool

	// Bytes returns the underlying byte array.
	Bytes() []byte

	// BitLen returns the total number of addressable bits.
	BitLen() uint64
}
