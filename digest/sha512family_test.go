package digest

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA512EmptyInput(t *testing.T) {
	got := SHA512(nil)
	want := "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"
	require.Equal(t, want, hex.EncodeToString(got[:]))
}

func TestSHA512KnownVector(t *testing.T) {
	got := SHA512([]byte("abc"))
	want := "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39" +
		"a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"
	require.Equal(t, want, hex.EncodeToString(got[:]))
}

func TestSHA384KnownVector(t *testing.T) {
	got := SHA384([]byte("abc"))
	want := "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"
	require.Equal(t, want, hex.EncodeToString(got[:]))
}

func TestSHA512_256KnownVector(t *testing.T) {
	got := SHA512_256([]byte("abc"))
	want := "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23"
	require.Equal(t, want, hex.EncodeToString(got[:]))
}

func TestSHA512_224KnownVector(t *testing.T) {
	got := SHA512_224([]byte("abc"))
	want := "4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa"
	require.Equal(t, want, hex.EncodeToString(got[:]))
}

// TestDeriveSHA512tIVMatchesSHA512_256 checks that hashing the literal
// string "SHA-512/256" with the IV-generation seed reproduces the
// published SHA-512/256 initial value, per FIPS 180-4 §5.3.6.
func TestDeriveSHA512tIVMatchesSHA512_256(t *testing.T) {
	got := DeriveSHA512tIV(256)
	require.Equal(t, sha512_256IV, got)
}

func TestSHA512HashInterfaceMatchesOneShot(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, twice over")
	want := SHA512(data)

	h := NewSHA512()
	require.Equal(t, 64, h.Size())
	require.Equal(t, 128, h.BlockSize())

	_, err := h.Write(data[:20])
	require.NoError(t, err)
	_, err = h.Write(data[20:])
	require.NoError(t, err)

	got := h.Sum(nil)
	require.Equal(t, want[:], got)
}
