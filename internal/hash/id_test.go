package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_Deterministic(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	require.Equal(t, ID(payload), ID(payload))
	require.NotEqual(t, ID(payload), ID([]byte{0x05, 0x04, 0x03, 0x02, 0x01}))
}

func TestID_Empty(t *testing.T) {
	require.Equal(t, ID(nil), ID([]byte{}))
}

func TestCombine_PayloadSensitiveAndDeterministic(t *testing.T) {
	a := Combine(ID([]byte("desc1")), []byte("payload1"))
	b := Combine(ID([]byte("desc1")), []byte("payload2"))
	require.NotEqual(t, a, b)

	c := Combine(a, []byte("tail"))
	d := Combine(a, []byte("tail"))
	require.Equal(t, c, d)
}
