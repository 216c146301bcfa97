package bigint

import "testing"

func TestAddSubRoundTrip(t *testing.T) {
	a := []uint32{1, 2, 3, 4}
	b := []uint32{4, 3, 2, 1}
	orig := append([]uint32(nil), a...)

	Add(a, b)
	Sub(a, b)

	for i := range a {
		if a[i] != orig[i] {
			t.Fatalf("Add/Sub round-trip mismatch at %d: got %d want %d", i, a[i], orig[i])
		}
	}
}

func TestAddCommutative(t *testing.T) {
	a := []uint32{1, 2, 3}
	b := []uint32{10, 20, 30}
	ab := append([]uint32(nil), a...)
	ba := append([]uint32(nil), b...)

	Add(ab, b)
	Add(ba, a)

	for i := range ab {
		if ab[i] != ba[i] {
			t.Fatalf("a+b != b+a at limb %d: %d vs %d", i, ab[i], ba[i])
		}
	}
}

func TestAddOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Add overflow")
		}
	}()
	acc := []uint32{0xFFFFFFFF}
	Add(acc, []uint32{1})
}

func TestShlShrRoundTrip(t *testing.T) {
	acc := []uint32{0x1, 0x0, 0x0, 0x0}
	Shl(acc, 40)
	Shr(acc, 40)
	if acc[0] != 1 || acc[1] != 0 || acc[2] != 0 || acc[3] != 0 {
		t.Fatalf("Shl/Shr round trip mismatch: %v", acc)
	}
}

func TestShlOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Shl overflow")
		}
	}()
	acc := []uint32{0, 1}
	Shl(acc, 32) // the 1 in the top limb gets shifted out entirely
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b []uint32
		want Ordering
	}{
		{[]uint32{1, 0}, []uint32{1, 0}, Equal},
		{[]uint32{1}, []uint32{1, 0, 0}, Equal},
		{[]uint32{0, 1}, []uint32{0xFFFFFFFF}, Greater},
		{[]uint32{0xFFFFFFFF}, []uint32{0, 1}, Less},
		{[]uint32{}, []uint32{0, 0}, Equal},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("Compare(%v,%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestCompareShifted(t *testing.T) {
	// b << shift where b = [1] and shift = 3 is 8: a = [8] compares Equal.
	if got := CompareShifted([]uint32{8}, []uint32{1}, 3); got != Equal {
		t.Fatalf("CompareShifted([8],[1],3) = %v, want Equal", got)
	}
	if got := CompareShifted([]uint32{7}, []uint32{1}, 3); got != Less {
		t.Fatalf("CompareShifted([7],[1],3) = %v, want Less", got)
	}
	if got := CompareShifted([]uint32{9}, []uint32{1}, 3); got != Greater {
		t.Fatalf("CompareShifted([9],[1],3) = %v, want Greater", got)
	}
	// Shift that carries into the next limb up.
	b := []uint32{0x80000000, 0}
	a := []uint32{0, 1} // b << 1 == [0, 1]
	if got := CompareShifted(a, b, 1); got != Equal {
		t.Fatalf("CompareShifted with carry = %v, want Equal", got)
	}
}
