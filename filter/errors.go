package filter

import "errors"

var (
	// ErrInvalidEntries is returned by the sizing constructors when the
	// expected entry count is not positive.
	ErrInvalidEntries = errors.New("filter: number of entries must be positive")

	// ErrInvalidFPRate is returned by NewFromEntriesAndFP when the target
	// false positive rate is outside the open interval (0, 1).
	ErrInvalidFPRate = errors.New("filter: false positive rate must be between 0 and 1")

	// ErrInvalidSize is returned by NewFromEntriesAndSize when the byte
	// budget is not positive.
	ErrInvalidSize = errors.New("filter: size must be positive")

	// ErrEmptyBits is returned by FromBits for an empty bit array.
	ErrEmptyBits = errors.New("filter: bits slice cannot be empty")

	// ErrZeroHashCount is returned by FromBits for a zero probe count.
	ErrZeroHashCount = errors.New("filter: number of hash probes must be positive")

	// ErrDecode wraps all FromSerialized failures: a malformed bin length
	// prefix, a truncated bit array, or a missing or invalid trailing
	// hash count.
	ErrDecode = errors.New("filter: malformed serialized filter")
)
