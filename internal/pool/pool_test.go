package pool_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wxcodec/g2complex/internal/pool"
)

func TestByteBuffer_GrowAndWrite(t *testing.T) {
	bb := pool.NewByteBuffer(4)
	bb.MustWrite([]byte{1, 2, 3, 4, 5, 6})
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	bb := pool.GetPayloadBuffer()
	bb.MustWrite([]byte{9, 9, 9})
	pool.PutPayloadBuffer(bb)

	bb2 := pool.GetPayloadBuffer()
	require.Equal(t, 0, bb2.Len())
}

func TestGetInt64Slice_ExactLength(t *testing.T) {
	s, done := pool.GetInt64Slice(100)
	defer done()

	require.Len(t, s, 100)
	for _, v := range s {
		require.Zero(t, v)
	}
}

func TestGetFloat64Slice_ExactLength(t *testing.T) {
	s, done := pool.GetFloat64Slice(50)
	defer done()

	require.Len(t, s, 50)
}
