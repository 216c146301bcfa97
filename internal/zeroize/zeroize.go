// Package zeroize provides a best-effort overwrite of sensitive byte and
// limb buffers before they are released.
package zeroize

// Bytes overwrites b with zeroes. The loop form (rather than a single
// clear/copy call) exists so the compiler has a harder time proving the
// write is dead and eliding it; this is still only best-effort, not a
// hardware-backed guarantee.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Limbs overwrites a uint32 limb slice with zeroes.
func Limbs(l []uint32) {
	for i := range l {
		l[i] = 0
	}
}
