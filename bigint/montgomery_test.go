package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeLimbNPrimeVector(t *testing.T) {
	nPrime := ComputeLimbNPrime(10437)
	require.Equal(t, uint32(0xFFFFFFFF), uint32(uint64(10437)*uint64(nPrime)))
}

func TestComputeLimbNPrimeAllOddInputs(t *testing.T) {
	// Checks the first 100000 odd n rather than all 2^31 values.
	for n := uint32(1); n < 200000; n += 2 {
		nPrime := ComputeLimbNPrime(n)
		got := uint32(uint64(n) * uint64(nPrime))
		require.Equalf(t, uint32(0xFFFFFFFF), got, "n=%d", n)
	}
}

func TestMontgomeryRoundTrip(t *testing.T) {
	n := []uint32{0xFFFFFFF1, 0, 0, 0} // an odd "modulus", 4 limbs wide
	rLimbs := 2

	for _, v := range []uint32{0, 1, 42, 0xDEADBEEF} {
		a := make([]uint32, 2*rLimbs)
		a[0] = v

		ToMontgomeryForm(a, rLimbs, n)
		FromMontgomeryForm(a, rLimbs, n)

		require.Equal(t, v, a[0], "round trip mismatch for v=%d", v)
		for i := 1; i < len(a); i++ {
			require.Zerof(t, a[i], "round trip left nonzero high limb at %d for v=%d", i, v)
		}
	}
}
