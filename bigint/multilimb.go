package bigint

// limbAt returns s[i], or 0 if i is past the end of s. Multi-limb
// routines treat the shorter of two operand slices as zero-extended up
// to the length of the longer one.
func limbAt(s []uint32, i int) uint32 {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// Add computes acc += b in place, propagating carry across limbs. b may
// be shorter than acc; it is treated as zero-extended. The final carry
// must be zero — acc is required to be wide enough to hold the sum — and
// Add panics otherwise, since a silent truncation would corrupt whatever
// numeric value the caller is accumulating.
func Add(acc, b []uint32) {
	var carry uint32
	for i := range acc {
		acc[i], carry = AddWithCarry(acc[i], limbAt(b, i), carry)
	}
	if carry != 0 {
		panic("bigint: Add overflowed destination")
	}
}

// Sub computes acc -= b in place, propagating borrow across limbs. b may
// be shorter than acc. The final borrow must be zero; Sub panics
// otherwise (the caller sized acc incorrectly, or b > acc).
func Sub(acc, b []uint32) {
	var borrow uint32
	for i := range acc {
		acc[i], borrow = SubWithBorrow(acc[i], limbAt(b, i), borrow)
	}
	if borrow != 0 {
		panic("bigint: Sub underflowed destination")
	}
}

// LimbMulAdd computes acc += b*c in place, where c is a single limb and b
// may be shorter than acc. Final carry must be zero.
func LimbMulAdd(acc, b []uint32, c uint32) {
	var carry uint32
	for i := range acc {
		acc[i], carry = MulAddWithCarry(acc[i], limbAt(b, i), c, carry)
	}
	if carry != 0 {
		panic("bigint: LimbMulAdd overflowed destination")
	}
}

// LimbMulSub computes acc -= b*c in place, where c is a single limb and b
// may be shorter than acc. Final borrow must be zero.
func LimbMulSub(acc, b []uint32, c uint32) {
	var borrow uint32
	for i := range acc {
		acc[i], borrow = MulSubWithBorrow(acc[i], limbAt(b, i), c, borrow)
	}
	if borrow != 0 {
		panic("bigint: LimbMulSub underflowed destination")
	}
}

// Shl shifts the full slice acc left by n bits in place (n may be any
// non-negative value, not just n < LimbBits). Bits shifted out of the
// top of acc are discarded; Shl panics if any of them are nonzero, since
// that would silently truncate the value.
func Shl(acc []uint32, n uint) {
	whole := int(n / LimbBits)
	sub := n % LimbBits

	if whole >= len(acc) {
		for i := range acc {
			if acc[i] != 0 {
				panic("bigint: Shl overflowed destination")
			}
		}
		for i := range acc {
			acc[i] = 0
		}
		return
	}

	if whole > 0 {
		for _, v := range acc[len(acc)-whole:] {
			if v != 0 {
				panic("bigint: Shl overflowed destination")
			}
		}
		copy(acc[whole:], acc[:len(acc)-whole])
		for i := 0; i < whole; i++ {
			acc[i] = 0
		}
	}

	var carry uint32
	for i := whole; i < len(acc); i++ {
		acc[i], carry = ShlWithCarry(acc[i], sub, carry)
	}
	if carry != 0 {
		panic("bigint: Shl overflowed destination")
	}
}

// Shr shifts the full slice acc right by n bits in place (n may be any
// non-negative value). Bits shifted out of the bottom are discarded.
func Shr(acc []uint32, n uint) {
	whole := int(n / LimbBits)
	sub := n % LimbBits

	if whole >= len(acc) {
		for i := range acc {
			acc[i] = 0
		}
		return
	}

	if whole > 0 {
		copy(acc, acc[whole:])
		for i := len(acc) - whole; i < len(acc); i++ {
			acc[i] = 0
		}
	}

	var carry uint32
	for i := len(acc) - whole - 1; i >= 0; i-- {
		acc[i], carry = ShrWithCarry(acc[i], sub, carry)
	}
}

// Compare performs a total, numeric, constant-shape comparison of a and
// b. Both operands are walked in full regardless of where they first
// differ, so execution shape does not depend on the position of the
// first differing limb — only the *result* depends on operand values.
func Compare(a, b []uint32) Ordering {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	result := Equal
	for i := n - 1; i >= 0; i-- {
		av, bv := limbAt(a, i), limbAt(b, i)
		if result == Equal {
			switch {
			case av < bv:
				result = Less
			case av > bv:
				result = Greater
			}
		}
	}
	return result
}

// CompareShifted compares a to b<<shift (0 <= shift < LimbBits) without
// materializing the shifted value, by comparing each limb of a against
// the corresponding shifted limb of b computed on the fly.
func CompareShifted(a, b []uint32, shift uint) Ordering {
	n := len(a)
	if len(b)+1 > n {
		n = len(b) + 1
	}
	result := Equal
	for i := n - 1; i >= 0; i-- {
		av := limbAt(a, i)
		lo, _ := ShlWithCarry(limbAt(b, i), shift, 0)
		var hiCarry uint32
		if i > 0 {
			hiCarry = topBits(limbAt(b, i-1), shift)
		}
		bv := lo | hiCarry
		if result == Equal {
			switch {
			case av < bv:
				result = Less
			case av > bv:
				result = Greater
			}
		}
	}
	return result
}

// topBits returns the bits of limb that would carry into the next limb
// up after a left shift by n (0 <= n < LimbBits).
func topBits(limb uint32, n uint) uint32 {
	if n == 0 {
		return 0
	}
	return limb >> (LimbBits - n)
}
