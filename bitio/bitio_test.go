package bitio_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wxcodec/g2complex/bitio"
)

func TestPutBits_GetOne_RoundTrip(t *testing.T) {
	buf := make([]byte, 4)

	require.NoError(t, bitio.PutBits(buf, 0b1011, 3, 4))
	v, err := bitio.GetOne(buf, 3, 4)
	require.NoError(t, err)
	require.EqualValues(t, 0b1011, v)
}

func TestPutBits_ZeroWidthIsNoOp(t *testing.T) {
	buf := make([]byte, 2)
	orig := append([]byte(nil), buf...)

	require.NoError(t, bitio.PutBits(buf, 0xFFFF, 5, 0))
	require.Equal(t, orig, buf)
}

func TestPutBits_Adjacent(t *testing.T) {
	buf := make([]byte, 2)

	require.NoError(t, bitio.PutBits(buf, 5, 0, 4))  // 0101
	require.NoError(t, bitio.PutBits(buf, 10, 4, 4)) // 1010

	require.Equal(t, byte(0b01011010), buf[0])
}

func TestGetBits_StridedFields(t *testing.T) {
	buf := make([]byte, 8)
	// three 5-bit fields separated by 3 bits of padding each.
	require.NoError(t, bitio.PutBits(buf, 7, 0, 5))
	require.NoError(t, bitio.PutBits(buf, 12, 8, 5))
	require.NoError(t, bitio.PutBits(buf, 31, 16, 5))

	got, err := bitio.GetBits(buf, 0, 5, 3, 3)
	require.NoError(t, err)
	require.Equal(t, []uint32{7, 12, 31}, got)
}

func TestGetBits_ZeroWidth(t *testing.T) {
	out, err := bitio.GetBits(nil, 0, 0, 0, 5)
	require.NoError(t, err)
	require.Equal(t, make([]uint32, 5), out)
}

func TestPutBits_BufferOverrun(t *testing.T) {
	buf := make([]byte, 1)
	err := bitio.PutBits(buf, 1, 6, 4)
	require.Error(t, err)
}

func TestGetOne_BufferOverrun(t *testing.T) {
	buf := make([]byte, 1)
	_, err := bitio.GetOne(buf, 6, 4)
	require.Error(t, err)
}

func TestPutBits_MaxWidth32(t *testing.T) {
	buf := make([]byte, 5)
	require.NoError(t, bitio.PutBits(buf, 0xDEADBEEF, 3, 32))
	v, err := bitio.GetOne(buf, 3, 32)
	require.NoError(t, err)
	require.EqualValues(t, 0xDEADBEEF, v)
}

func TestByteLenAndPadToOctet(t *testing.T) {
	require.Equal(t, 0, bitio.ByteLen(0))
	require.Equal(t, 1, bitio.ByteLen(1))
	require.Equal(t, 2, bitio.ByteLen(9))
	require.Equal(t, 0, bitio.PadToOctet(0))
	require.Equal(t, 8, bitio.PadToOctet(1))
	require.Equal(t, 16, bitio.PadToOctet(9))
}
