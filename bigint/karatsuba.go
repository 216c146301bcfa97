package bigint

import "github.com/nazrhom/cryptonum/internal/zeroize"

// karatsubaCrossover is the limb-length threshold at or below which the
// schoolbook O(n*m) multiply beats the overhead of another recursive
// split.
const karatsubaCrossover = 4

// MulAdd computes acc += b*c in place using Karatsuba multiplication
// with a schoolbook base case. acc must be wide enough to hold the full
// product without final carry (the same contract Add/Sub enforce at
// every limb it touches).
func MulAdd(acc, b, c []uint32) {
	mulAcc(acc, b, c, true)
}

// MulSub computes acc -= b*c in place using Karatsuba multiplication.
func MulSub(acc, b, c []uint32) {
	mulAcc(acc, b, c, false)
}

// mulAcc is the shared recursive core of MulAdd/MulSub. x is the shorter
// of the two operands, y the longer; the crossover and recursive split
// are both performed on x's length.
func mulAcc(acc, bOp, cOp []uint32, isAdd bool) {
	x, y := bOp, cOp
	if len(x) > len(y) {
		x, y = y, x
	}

	if len(x) <= karatsubaCrossover {
		schoolbookAcc(acc, x, y, isAdd)
		return
	}

	half := len(x) / 2
	x0, x1 := x[:half], x[half:]
	y0, y1 := y[:half], y[half:]

	// x*y = x0*y0 + B^2*x1*y1 + B*((x0+x1)(y0+y1) - x0*y0 - x1*y1),
	// B = 2^(32*half). scratch holds the two half-size sums first, then
	// is reused for the x1*y1 and x0*y0 subproducts.
	scratch := make([]uint32, (len(x1)+1)+(len(y1)+1))
	defer zeroize.Limbs(scratch)

	sumX := scratch[:len(x1)+1]
	sumY := scratch[len(x1)+1:]

	if isAdd {
		copy(sumX, x0)
		Add(sumX, x1)
		copy(sumY, y0)
		Add(sumY, y1)
		mulAcc(acc[half:], sumX, sumY, true)

		zeroize.Limbs(scratch)
		hi := scratch[:len(x1)+len(y1)]
		mulAcc(hi, x1, y1, true)
		Add(acc[2*half:], hi)
		Sub(acc[half:], hi)

		zeroize.Limbs(scratch)
		lo := scratch[:len(x0)+len(y0)]
		mulAcc(lo, x0, y0, true)
		Add(acc, lo)
		Sub(acc[half:], lo)
		return
	}

	// mul_sub: process x0*y0 then x1*y1 before the sum-of-halves step,
	// so the unsigned accumulator never needs to hold a negative
	// intermediate value.
	lo := scratch[:len(x0)+len(y0)]
	mulAcc(lo, x0, y0, true)
	Sub(acc, lo)
	Add(acc[half:], lo)

	zeroize.Limbs(scratch)
	hi := scratch[:len(x1)+len(y1)]
	mulAcc(hi, x1, y1, true)
	Sub(acc[2*half:], hi)
	Add(acc[half:], hi)

	zeroize.Limbs(scratch)
	copy(sumX, x0)
	Add(sumX, x1)
	copy(sumY, y0)
	Add(sumY, y1)
	mulAcc(acc[half:], sumX, sumY, false)
}

// schoolbookAcc is the O(len(x)*len(y)) base case: for each limb of the
// shorter operand x, accumulate a single-limb multiply of the longer
// operand y, shifted into place by the limb index.
func schoolbookAcc(acc, x, y []uint32, isAdd bool) {
	for i, xi := range x {
		if isAdd {
			LimbMulAdd(acc[i:], y, xi)
		} else {
			LimbMulSub(acc[i:], y, xi)
		}
	}
}
