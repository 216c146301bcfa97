package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModExpSmallKnownResult(t *testing.T) {
	// 3^5 mod 7 = 243 mod 7 = 5.
	base, err := hexToUBigInt("03", 32)
	require.NoError(t, err)
	modulus, err := hexToUBigInt("07", 32)
	require.NoError(t, err)

	got := modExp(base, modulus, exponentBits([]byte{0x05}))
	require.Equal(t, "05", ubigintToHex(got))
}

func TestModExpExponentZeroIsOne(t *testing.T) {
	base, err := hexToUBigInt("11", 32)
	require.NoError(t, err)
	modulus, err := hexToUBigInt("07", 32)
	require.NoError(t, err)

	got := modExp(base, modulus, exponentBits([]byte{0x00}))
	require.Equal(t, "01", ubigintToHex(got))
}

func TestExponentBitsSkipsLeadingZeros(t *testing.T) {
	require.Equal(t, []bool{true, false, true}, exponentBits([]byte{0x05}))
	require.Equal(t, []bool{false}, exponentBits([]byte{0x00}))
	require.Equal(t, []bool{false}, exponentBits(nil))
}

func TestUBigIntHexRoundTrip(t *testing.T) {
	u, err := hexToUBigInt("deadbeef", 32)
	require.NoError(t, err)
	require.Equal(t, "deadbeef", ubigintToHex(u))
}
