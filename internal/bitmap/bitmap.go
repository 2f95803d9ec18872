package bitmap

import "fmt"

// bitmapImpl is a concrete implementation of the Bitmap interface.
// Bit i lives in byte i/8 under mask 1 << (i % 8). Serialized filters
// depend on this layout byte-for-byte, so it must never change.
type bitmapImpl struct {
	data []byte // Backing storage: each byte stores 8 bits
}

// New creates a new bitmap spanning numBytes*8 bits.
// All bits are initialized to 0.
func New(numBytes int) Bitmap {
	return &bitmapImpl{
		data: make([]byte, numBytes),
	}
}

// FromBytes wraps an existing byte slice as a bitmap without copying.
// Useful when reconstructing a bitmap from serialized data.
func FromBytes(data []byte) Bitmap {
	return &bitmapImpl{
		data: data,
	}
}

// Set sets the bit at position i to 1.
func (b *bitmapImpl) Set(i uint64) {
	if i >= b.BitLen() {
		panic(fmt.Sprintf("bitmap: index %d out of range [0, %d)", i, b.BitLen()))
	}
	byteIdx := i / 8
	bitIdx := i % 8
	b.data[byteIdx] |= (1 << bitIdx)
}

// Test returns true if the bit at position i is set.
func (b *bitmapImpl) Test(i uint64) bool {
	if i >= b.BitLen() {
		panic(fmt.Sprintf("bitmap: index %d out of range [0, %d)", i, b.BitLen()))
	}
	byteIdx := i / 8
	bitIdx := i % 8
	return (b.data[byteIdx] & (1 << bitIdx)) != 0
}

// Bytes returns the backing byte array.
func (b *bitmapImpl) Bytes() []byte {
	return b.data
}

// BitLen returns the total number of addressable bits.
func (b *bitmapImpl) BitLen() uint64 {
	return uint64(len(b.data)) * 8
}
