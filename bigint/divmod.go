package bigint

// DivMod computes out = a / b and overwrites a with a mod b. b must be
// nonzero; a zero divisor is a numerical contract violation (spec §7.2)
// and produces an undefined (not panicking) result rather than being
// checked here, since checking it would itself be a data-dependent
// branch on every call in the hot path.
//
// The algorithm walks each output limb from high to low and, within it,
// each bit from 31 down to 0, testing whether the remaining dividend is
// at least the divisor shifted into place. Both the taken and not-taken
// paths perform the same LimbMulSub call (with a factor of 0 or 1<<bit)
// so the control flow shape does not depend on the comparison outcome.
func DivMod(out, a, b []uint32) {
	divModCore(out, a, b, true)
}

// PureMod reduces a modulo b in place, without recording quotient bits.
func PureMod(a, b []uint32) {
	divModCore(nil, a, b, false)
}

func divModCore(out, a, b []uint32, recordQuotient bool) {
	// Every limb position of a is visited (capped at len(out) when the
	// quotient is recorded), so a divisor as wide as a still reduces it.
	positions := len(a)
	if recordQuotient && len(out) < positions {
		positions = len(out)
	}
	for i := positions - 1; i >= 0; i-- {
		var word uint32
		for bit := int(LimbBits - 1); bit >= 0; bit-- {
			fits := CompareShifted(a[i:], b, uint(bit)) != Less
			factor := uint32(0)
			if fits {
				factor = 1 << uint(bit)
				word |= factor
			}
			LimbMulSub(a[i:], b, factor)
		}
		if recordQuotient {
			out[i] = word
		}
	}
}
