// Package filter implements a Bloom filter with a portable binary wire
// format: a fixed-size bit array plus a hash-probe count, supporting
// probabilistic set membership testing with no false negatives.
//
// Two independently built processes sharing a serialized filter must get
// identical membership answers from identical bits, so the bit layout,
// hash split, and encoding are all part of the contract and pinned by
// tests.
package filter

import (
	"math"

	"bloomkit/internal/bitmap"
)

// Filter is a Bloom filter. It is a plain value with no internal locking;
// callers sharing one across goroutines must synchronize externally.
type Filter struct {
	bits      bitmap.Bitmap
	hashCount uint8 // number of hash probes per operation
}

// New creates a zero-filled filter with the given storage size in bytes
// and number of hash probes per operation.
func New(sizeBytes int, hashCount uint8) *Filter {
	return &Filter{
		bits:      bitmap.New(sizeBytes),
		hashCount: hashCount,
	}
}

// NewFromEntriesAndFP sizes a filter for an expected number of entries and
// a target false positive rate, computing the optimal bit count and hash
// probe count.
//
// The bit count is rounded up to a whole number of bytes; rounding down
// would push the realized false positive rate above the requested bound.
func NewFromEntriesAndFP(entries int, fpRate float64) (*Filter, error) {
	if entries <= 0 {
		return nil, ErrInvalidEntries
	}
	if fpRate <= 0 || fpRate >= 1 {
		return nil, ErrInvalidFPRate
	}

	// m: number of bits, rounded up to the nearest multiple of 8
	m := -float64(entries) * math.Log(fpRate) / (math.Ln2 * math.Ln2)
	m = math.Ceil(m/8.0) * 8.0
	size := int(m / 8)

	// k: number of hash probes
	k := math.Round((m / float64(entries)) * math.Ln2)

	return &Filter{
		bits:      bitmap.New(size),
		hashCount: uint8(k),
	}, nil
}

// NewFromEntriesAndSize sizes the probe count for an expected number of
// entries packed into an externally fixed byte budget.
func NewFromEntriesAndSize(entries, sizeBytes int) (*Filter, error) {
	if entries <= 0 {
		return nil, ErrInvalidEntries
	}
	if sizeBytes <= 0 {
		return nil, ErrInvalidSize
	}

	m := float64(sizeBytes * 8)
	k := math.Ceil((m / float64(entries)) * math.Ln2)

	return &Filter{
		bits:      bitmap.New(sizeBytes),
		hashCount: uint8(k),
	}, nil
}

// FromBits reconstructs a filter around an existing bit array, without
// copying. Useful when the bit array was stored outside the standard
// serialized form.
func FromBits(bits []byte, hashCount uint8) (*Filter, error) {
	if len(bits) == 0 {
		return nil, ErrEmptyBits
	}
	if hashCount == 0 {
		return nil, ErrZeroHashCount
	}
	return &Filter{
		bits:      bitmap.FromBytes(bits),
		hashCount: hashCount,
	}, nil
}

// Add inserts an item into the filter. Bits are only ever set, never
// cleared; inserting the same item again is a no-op.
func (f *Filter) Add(item []byte) {
	m := f.bits.BitLen()
	h1, h2 := hashPair(item)
	for i := uint64(0); i < uint64(f.hashCount); i++ {
		f.bits.Set((h1 + i*h2) % m)
	}
}

// Contains returns true if the item might be in the set.
// Returns false if the item is definitely NOT in the set.
func (f *Filter) Contains(item []byte) bool {
	m := f.bits.BitLen()
	h1, h2 := hashPair(item)
	for i := uint64(0); i < uint64(f.hashCount); i++ {
		if !f.bits.Test((h1 + i*h2) % m) {
			return false
		}
	}
	return true
}

// Size returns the bit-array storage size in bytes.
func (f *Filter) Size() int {
	return len(f.bits.Bytes())
}

// HashCount returns the number of hash probes per operation.
func (f *Filter) HashCount() uint8 {
	return f.hashCount
}
