package filter

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"bloomkit/internal/bitmap"
)

// Serialize encodes the filter as a MessagePack bin blob holding the raw
// bit-array bytes, immediately followed by a MessagePack uint8 holding the
// hash count. There is no framing around the pair; readers consume the two
// values back to back.
//
// The encoder picks the smallest bin form (bin8/bin16/bin32) that fits the
// byte count, so the output is byte-identical across implementations.
func (f *Filter) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeBytes(f.bits.Bytes()); err != nil {
		return nil, err
	}
	if err := enc.EncodeUint8(f.hashCount); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromSerialized reconstructs a filter from Serialize output. Structurally
// invalid input fails with an error wrapping ErrDecode.
func FromSerialized(data []byte) (*Filter, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	bits, err := dec.DecodeBytes()
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "bit array: %v", err)
	}
	hashCount, err := dec.DecodeUint8()
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "hash count: %v", err)
	}
	return &Filter{
		bits:      bitmap.FromBytes(bits),
		hashCount: hashCount,
	}, nil
}
