package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsZeroBits(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for New(0)")
		}
	}()
	New(0)
}

func TestNewBufferWidth(t *testing.T) {
	u := New(64)
	require.Len(t, u.Limbs(), 3) // 64/32 + 1
}

func TestSetU32AndCmp(t *testing.T) {
	a := New(64)
	a.SetU32(42)

	b := New(64)
	b.SetU32(42)

	require.True(t, a.Eq(b))

	b.SetU32(43)
	require.Equal(t, Less, a.Cmp(b))
	require.Equal(t, Greater, b.Cmp(a))
}

func TestCloneIsIndependent(t *testing.T) {
	a := New(64)
	a.SetU32(7)
	clone := a.Clone()
	clone.SetU32(8)

	require.Equal(t, uint32(7), a.Limbs()[0])
	require.Equal(t, uint32(8), clone.Limbs()[0])
}

func TestAddSubOnFacade(t *testing.T) {
	a := New(64)
	a.SetU32(100)
	b := New(64)
	b.SetU32(30)

	a.Add(b)
	require.Equal(t, uint32(130), a.Limbs()[0])

	a.Sub(b)
	require.Equal(t, uint32(100), a.Limbs()[0])
}

func TestReleaseZeroesBuffer(t *testing.T) {
	a := New(64)
	a.SetU32(0xDEADBEEF)
	a.Release()

	for _, l := range a.Limbs() {
		require.Zero(t, l)
	}
}

func TestMontgomeryFacadeRoundTrip(t *testing.T) {
	n := New(64)
	n.SetU32(0xFFFFFFF1) // odd modulus, fits in one of the two r_limbs

	a := New(64)
	a.SetU32(123456)

	mont := a.ConvertMontgomery(n)
	mont.ReduceMontgomery(n)

	require.Equal(t, uint32(123456), mont.Limbs()[0])
}

func TestMultiplyMontgomery(t *testing.T) {
	n := New(64)
	n.SetU32(0xFFFFFFF1)

	one := New(64)
	one.SetU32(1)
	oneMont := one.ConvertMontgomery(n)
	oneMontNarrow := New(64)
	oneMontNarrow.Set(oneMont)

	a := New(64)
	a.SetU32(999)
	aMont := a.ConvertMontgomery(n)
	aMontNarrow := New(64)
	aMontNarrow.Set(aMont)

	// a * 1 (mod n), both already in Montgomery form: the result should
	// be the same Montgomery representation of a.
	product := aMontNarrow.MultiplyMontgomery(oneMontNarrow, n)
	require.True(t, product.Eq(aMontNarrow))
}
