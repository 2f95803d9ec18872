package binding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bloomkit/filter"
)

func TestCreateAddContains(t *testing.T) {
	filterBytes, err := Create(1000, 0.01)
	require.NoError(t, err)
	require.NotEmpty(t, filterBytes)

	require.False(t, Contains(filterBytes, []byte("hello")), "empty filter should not contain anything")

	filterBytes = Add(filterBytes, []byte("hello"))
	require.NotEmpty(t, filterBytes)
	filterBytes = Add(filterBytes, []byte("world"))
	require.NotEmpty(t, filterBytes)

	require.True(t, Contains(filterBytes, []byte("hello")))
	require.True(t, Contains(filterBytes, []byte("world")))
	require.False(t, Contains(filterBytes, []byte("baz")))
}

func TestCreateStrict(t *testing.T) {
	// Creation fails loudly for invalid parameters, unlike the lenient
	// query and mutate paths.
	_, err := Create(0, 0.01)
	require.ErrorIs(t, err, filter.ErrInvalidEntries)

	_, err = Create(1000, 1.5)
	require.ErrorIs(t, err, filter.ErrInvalidFPRate)
}

func TestContainsLenientOnGarbage(t *testing.T) {
	require.False(t, Contains(nil, []byte("hello")))
	require.False(t, Contains([]byte{0x01, 0x02, 0x03}, []byte("hello")))
}

func TestAddLenientOnGarbage(t *testing.T) {
	require.Empty(t, Add(nil, []byte("hello")))
	require.Empty(t, Add([]byte{0x01, 0x02, 0x03}, []byte("hello")))
}

func TestBytesInterchangeableWithEngine(t *testing.T) {
	// A filter built through the engine directly must be queryable through
	// the binding, and vice versa.
	f, err := filter.NewFromEntriesAndFP(100, 0.01)
	require.NoError(t, err)
	f.Add([]byte("alpha"))
	data, err := f.Serialize()
	require.NoError(t, err)

	require.True(t, Contains(data, []byte("alpha")))

	data = Add(data, []byte("beta"))
	restored, err := filter.FromSerialized(data)
	require.NoError(t, err)
	require.True(t, restored.Contains([]byte("alpha")))
	require.True(t, restored.Contains([]byte("beta")))
}
