// Package bigint implements fixed-width unsigned big-integer arithmetic:
// limb-level primitives, multi-limb slice operations, Karatsuba
// multiply-accumulate, bit-by-bit division, Montgomery modular
// arithmetic, and the UBigInt façade that ties them together.
//
// Every routine here is a pure function of its arguments: the mutable
// argument is the output. There is no global state, no allocation hidden
// inside a hot loop (Karatsuba's scratch buffer is the one explicit
// exception, documented where it is allocated), and no I/O.
package bigint

// LimbBits is the width of a single limb.
const LimbBits = 32

// limbMask covers the low 32 bits of a 64-bit intermediate.
const limbMask = 1<<32 - 1

// AddWithCarry computes acc + b + carry as a 33-bit sum, split into a
// 32-bit result and a 0/1 carry-out. The maximum possible sum
// (2^32-1)+(2^32-1)+1 fits in 64 bits with room to spare.
func AddWithCarry(acc, b, carry uint32) (sum, carryOut uint32) {
	t := uint64(acc) + uint64(b) + uint64(carry)
	return uint32(t & limbMask), uint32(t >> 32)
}

// SubWithBorrow computes acc - b - borrow, returning the low 32 bits of
// the result and a 0/1 borrow-out. The subtraction is performed in the
// 64-bit domain modulo 2^64 so that a negative result wraps the same way
// a two's-complement machine word would.
func SubWithBorrow(acc, b, borrow uint32) (diff, borrowOut uint32) {
	t := uint64(acc) - uint64(b) - uint64(borrow)
	return uint32(t & limbMask), uint32(-(t >> 32) & limbMask)
}

// MulAddWithCarry computes acc + b*c + carry, split into a 32-bit low
// result and a 32-bit carry-out. No 64-bit overflow is possible: the
// maximum value (2^32-1) + (2^32-1)^2 + (2^32-1) is still less than 2^64.
func MulAddWithCarry(acc, b, c, carry uint32) (lo, carryOut uint32) {
	t := uint64(acc) + uint64(b)*uint64(c) + uint64(carry)
	return uint32(t & limbMask), uint32(t >> 32)
}

// MulSubWithBorrow computes acc - b*c - borrow modulo 2^64, split into a
// 32-bit low result and a 32-bit borrow-out (the negated high word, so
// it is 0 when no borrow occurred and the two's-complement of the
// shortfall otherwise).
func MulSubWithBorrow(acc, b, c, borrow uint32) (lo, borrowOut uint32) {
	t := uint64(acc) - uint64(b)*uint64(c) - uint64(borrow)
	return uint32(t & limbMask), uint32(-(t >> 32) & limbMask)
}

// ShlWithCarry shifts acc left by n (0 <= n < 32) bits, OR-ing carry into
// the vacated low bits. The bits shifted off the top become the
// carry-out for the next limb up.
func ShlWithCarry(acc uint32, n uint, carry uint32) (shifted, carryOut uint32) {
	if n == 0 {
		return acc, 0
	}
	t := uint64(acc)<<n | uint64(carry)
	return uint32(t & limbMask), uint32(t >> 32)
}

// ShrWithCarry shifts acc right by n (0 <= n < 32) bits, OR-ing carry
// into the vacated high bits. The bits shifted off the bottom become the
// carry-out for the next limb down.
func ShrWithCarry(acc uint32, n uint, carry uint32) (shifted, carryOut uint32) {
	if n == 0 {
		return acc, 0
	}
	t := uint64(acc) | uint64(carry)<<32
	return uint32(t >> n), uint32(t & ((1 << n) - 1))
}
