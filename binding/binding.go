// Package binding exposes the filter engine to a host runtime (for
// example a database engine calling in with column values) as stateless
// functions over raw byte buffers.
//
// Contains and Add are lenient: a filter that fails to decode is treated
// as "unknown means absent", reporting false or empty bytes instead of
// surfacing the error. Create is strict and fails loudly on invalid
// sizing parameters. Hosts rely on this asymmetry.
package binding

import "bloomkit/filter"

// Contains reports whether key might be present in the serialized filter.
// Filter bytes that fail to decode report false.
func Contains(filterBytes, key []byte) bool {
	f, err := filter.FromSerialized(filterBytes)
	if err != nil {
		return false
	}
	return f.Contains(key)
}

// Add inserts key into the serialized filter and returns the re-serialized
// bytes. Any failure at any stage returns nil, never the original bytes.
func Add(filterBytes, key []byte) []byte {
	f, err := filter.FromSerialized(filterBytes)
	if err != nil {
		return nil
	}
	f.Add(key)
	out, err := f.Serialize()
	if err != nil {
		return nil
	}
	return out
}

// Create builds a filter sized for the expected entry count at the target
// false positive rate and returns its serialized form. Invalid parameters
// propagate as errors.
func Create(entries int, fpRate float64) ([]byte, error) {
	f, err := filter.NewFromEntriesAndFP(entries, fpRate)
	if err != nil {
		return nil, err
	}
	return f.Serialize()
}
