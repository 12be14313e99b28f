package simplicity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalRoundTrip(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 42, 255, 256, 1000, 65535, 1 << 20}

	for _, v := range values {
		var w BitWriter
		w.WriteNatural(v)

		r := NewBitReader(w.Bytes())
		got, err := r.ReadNatural(MaxNatural, "test")
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, v, got, "value %d", v)
		require.NoError(t, r.CloseBlock(), "value %d", v)
	}
}

func TestBitVectorRoundTrip(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	for _, width := range []int{1, 7, 8, 9, 15, 16, 31, 32} {
		var w BitWriter
		w.WriteBitVector(data, width)

		r := NewBitReader(w.Bytes())
		got, err := r.ReadBitVector(width, "test")
		require.NoError(t, err)

		r2 := NewBitReader(data)
		want, err := r2.ReadBitVector(width, "test")
		require.NoError(t, err)
		assert.Equal(t, want, got, "width %d", width)
	}
}

func TestReadPastEnd(t *testing.T) {
	r := NewBitReader([]byte{0xff})
	_, err := r.ReadBits(8, "first byte")
	require.NoError(t, err)
	_, err = r.ReadBit("past end")
	require.Error(t, err)
	var eof *ErrBitstreamEOF
	assert.ErrorAs(t, err, &eof)
}

func TestCloseBlockRejectsNonZeroPadding(t *testing.T) {
	r := NewBitReader([]byte{0b10000001})
	_, err := r.ReadBit("first")
	require.NoError(t, err)
	assert.Error(t, r.CloseBlock())
}
