package digest

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA1EmptyInput(t *testing.T) {
	got := SHA1(nil)
	require.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", hex.EncodeToString(got[:]))
}

func TestSHA1KnownVector(t *testing.T) {
	got := SHA1([]byte("abc"))
	require.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", hex.EncodeToString(got[:]))
}

func TestSHA1HashInterfaceMatchesOneShot(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	want := SHA1(data)

	h := NewSHA1()
	require.Equal(t, 20, h.Size())
	require.Equal(t, 64, h.BlockSize())

	_, err := h.Write(data[:10])
	require.NoError(t, err)
	_, err = h.Write(data[10:])
	require.NoError(t, err)

	got := h.Sum(nil)
	require.Equal(t, want[:], got)
}
