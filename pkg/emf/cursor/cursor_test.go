package cursor

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
)

func payload(words ...uint32) []byte {
	b := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}

func TestFixedReads(t *testing.T) {
	data := payload(0xFFFFFFFE, 0x00020001, math.Float32bits(1.5))
	c := New(data, uint32(len(data)))

	require.Equal(t, int32(-2), c.Int32(0))
	require.Equal(t, uint16(1), c.Uint16(4))
	require.Equal(t, int16(2), c.Int16(6))
	require.Equal(t, uint8(0xFE), c.Uint8(0))
	require.Equal(t, float32(1.5), c.Float32(8))
	require.NoError(t, c.Err())
}

func TestDeclaredSizeBoundsReads(t *testing.T) {
	data := payload(1, 2, 3)
	c := New(data, 8)

	require.Equal(t, 8, c.Len())
	require.Equal(t, uint32(2), c.Uint32(4))
	require.Equal(t, uint32(0), c.Uint32(8))
	require.True(t, errors.Is(c.Err(), emferrors.ErrTruncated))

	// the first failure sticks
	require.Equal(t, uint32(0), c.Uint32(0))
	require.ErrorContains(t, c.Err(), "offset 8")
}

func TestRequire(t *testing.T) {
	require.True(t, New(nil, 0).Require(0))
	require.False(t, New(nil, 4).Require(4))
	require.True(t, New(payload(1), 4).Require(4))
}

func TestCount(t *testing.T) {
	testCases := []struct {
		name    string
		data    []byte
		want    int
		wantErr bool
	}{
		{"empty", payload(0), 0, false},
		{"two points", payload(2, 1, 1, 2, 2), 2, false},
		{"short", payload(3, 1, 1), 0, true},
		{"overflow", payload(0xFFFFFFFF), 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.data, uint32(len(tc.data)))
			got := c.Count(0, 4, 8)
			require.Equal(t, tc.want, got)
			if tc.wantErr {
				require.True(t, errors.Is(c.Err(), emferrors.ErrTruncated))
			} else {
				require.NoError(t, c.Err())
			}
		})
	}
}

func TestEmbedded(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	c := New(data, 8)
	require.Equal(t, []byte{2, 3, 4}, c.Embedded(RecordPrefixSize+2, 3))
	require.Equal(t, []byte{}, c.Embedded(0, 0))
	require.NoError(t, c.Err())

	c = New(data, 8)
	require.Nil(t, c.Embedded(4, 2))
	require.True(t, errors.Is(c.Err(), emferrors.ErrBadOffset))

	c = New(data, 8)
	require.Nil(t, c.Embedded(RecordPrefixSize+6, 4))
	require.True(t, errors.Is(c.Err(), emferrors.ErrBadOffset))
}
