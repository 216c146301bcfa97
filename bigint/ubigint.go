package bigint

import (
	"runtime"

	"github.com/nazrhom/cryptonum/internal/zeroize"
)

// UBigInt is a fixed-width unsigned integer: a bit capacity fixed at
// construction time and an owned little-endian limb buffer one limb
// wider than that capacity, the extra high limb absorbing the
// intermediate overflow MulAdd, Montgomery conversion, and friends
// produce before a caller normalizes. The buffer itself is the
// canonical representation — there is no separate length field.
type UBigInt struct {
	bits  int
	limbs []uint32
}

// New allocates a zero UBigInt with the given bit capacity. bits must be
// positive.
func New(bits int) *UBigInt {
	if bits <= 0 {
		panic("bigint: UBigInt capacity must be positive")
	}
	u := &UBigInt{
		bits:  bits,
		limbs: make([]uint32, bits/LimbBits+1),
	}
	// Best-effort: if the caller lets a UBigInt go out of scope without
	// an explicit Release(), the finalizer still zeroes the buffer
	// before the GC reclaims it.
	runtime.SetFinalizer(u, (*UBigInt).Release)
	return u
}

// Release zeroes the limb buffer. It is safe (and a no-op beyond the
// zero-fill) to call more than once, and safe to call and then keep
// using the value — Release just re-zeroes.
func (u *UBigInt) Release() {
	zeroize.Limbs(u.limbs)
}

// Limbs returns the backing little-endian limb slice. Callers that need
// to pass a UBigInt into the package-level slice routines (Add, MulAdd,
// ToMontgomeryForm, ...) use this to get at the raw buffer.
func (u *UBigInt) Limbs() []uint32 {
	return u.limbs
}

// Bits returns the configured bit capacity.
func (u *UBigInt) Bits() int {
	return u.bits
}

// modulusLimbs returns r_limbs, the Montgomery limb count of a modulus
// with the given bit capacity (spec §4.5). Montgomery moduli are
// expected to be limb-aligned (bits a multiple of 32), which holds for
// every RSA-style modulus size in practice; a non-aligned bit capacity
// would silently drop its partial top limb here.
func modulusLimbs(bits int) int {
	return bits / LimbBits
}

// SetU32 sets self to v, zeroing the remaining limbs.
func (u *UBigInt) SetU32(v uint32) {
	u.limbs[0] = v
	for i := 1; i < len(u.limbs); i++ {
		u.limbs[i] = 0
	}
}

// Set copies the low min(len(u), len(other)) limbs from other into self,
// zeroing the rest.
func (u *UBigInt) Set(other *UBigInt) {
	n := copy(u.limbs, other.limbs)
	for i := n; i < len(u.limbs); i++ {
		u.limbs[i] = 0
	}
}

// Clone returns a new UBigInt with the same bit capacity and a verbatim
// copy of the limb buffer.
func (u *UBigInt) Clone() *UBigInt {
	c := New(u.bits)
	copy(c.limbs, u.limbs)
	return c
}

// Add sets self += a.
func (u *UBigInt) Add(a *UBigInt) {
	Add(u.limbs, a.limbs)
}

// Sub sets self -= a.
func (u *UBigInt) Sub(a *UBigInt) {
	Sub(u.limbs, a.limbs)
}

// MulAdd sets self += a*b.
func (u *UBigInt) MulAdd(a, b *UBigInt) {
	MulAdd(u.limbs, a.limbs, b.limbs)
}

// MulSub sets self -= a*b.
func (u *UBigInt) MulSub(a, b *UBigInt) {
	MulSub(u.limbs, a.limbs, b.limbs)
}

// Shl shifts self left by n bits in place.
func (u *UBigInt) Shl(n uint) {
	Shl(u.limbs, n)
}

// Shr shifts self right by n bits in place.
func (u *UBigInt) Shr(n uint) {
	Shr(u.limbs, n)
}

// DivMod sets out = self / divisor and self = self % divisor.
func (u *UBigInt) DivMod(divisor, out *UBigInt) {
	DivMod(out.limbs, u.limbs, divisor.limbs)
}

// PureMod sets self = self % m.
func (u *UBigInt) PureMod(m *UBigInt) {
	PureMod(u.limbs, m.limbs)
}

// Cmp performs a numeric three-way comparison against other.
func (u *UBigInt) Cmp(other *UBigInt) Ordering {
	return Compare(u.limbs, other.limbs)
}

// Eq reports whether self and other represent the same numeric value.
func (u *UBigInt) Eq(other *UBigInt) bool {
	return u.Cmp(other) == Equal
}

// ConvertMontgomery returns a new UBigInt of bit width 2*r_limbs*32
// (where r_limbs is n's bit capacity divided by 32, see modulusLimbs)
// holding self*R mod n, R =
// 2^(32*r_limbs). n must be odd.
func (u *UBigInt) ConvertMontgomery(n *UBigInt) *UBigInt {
	rLimbs := modulusLimbs(n.bits)
	result := New(2 * rLimbs * LimbBits)
	copy(result.limbs, u.limbs)
	ToMontgomeryForm(result.limbs, rLimbs, n.limbs)
	return result
}

// ReduceMontgomery performs Montgomery reduction on self in place: self
// <- self*R^-1 mod n. n must be odd.
func (u *UBigInt) ReduceMontgomery(n *UBigInt) {
	rLimbs := modulusLimbs(n.bits)
	FromMontgomeryForm(u.limbs, rLimbs, n.limbs)
}

// MultiplyMontgomery computes the Montgomery product of self and other
// modulo n (self and other are assumed already in Montgomery form) and
// returns it as a new UBigInt with self's bit capacity. n must be odd.
func (u *UBigInt) MultiplyMontgomery(other, n *UBigInt) *UBigInt {
	rLimbs := modulusLimbs(n.bits)
	wide := New(2 * rLimbs * LimbBits)
	wide.MulAdd(u, other)
	FromMontgomeryForm(wide.limbs, rLimbs, n.limbs)

	result := New(u.bits)
	copy(result.limbs, wide.limbs)
	return result
}
