package ge25519

import (
	"crypto/subtle"
)

// ScalarMultBase sets v = a * B, where a = a[0] + 256*a[1] + ... +
// 256^31*a[31] and B is the canonical base point, and returns v.
//
// a[31] must be at most 127. Callers are expected to clamp or reduce the
// scalar first; a larger value gives a wrong result, not a failure.
//
// ScalarMultBase runs in constant time with respect to a.
func (v *ExtendedPoint) ScalarMultBase(a *[32]byte) *ExtendedPoint {
	e := signedRadix16(a)

	var (
		r CompletedPoint
		s ProjectivePoint
		t PrecomputedPoint
		h ExtendedPoint
	)

	// a*B = sum(e[i] * 16^i * B). baseTable[i/2] holds multiples of
	// 256^(i/2)*B, so the odd digits are summed first and lifted by 16.
	h.Zero()
	for i := 1; i < 64; i += 2 {
		t.selectBase(i/2, e[i])
		r.AddPrecomputed(&h, &t)
		h.FromCompleted(&r)
	}

	r.DoubleExtended(&h)
	s.FromCompleted(&r)
	r.DoubleProjective(&s)
	s.FromCompleted(&r)
	r.DoubleProjective(&s)
	s.FromCompleted(&r)
	r.DoubleProjective(&s)
	h.FromCompleted(&r)

	for i := 0; i < 64; i += 2 {
		t.selectBase(i/2, e[i])
		r.AddPrecomputed(&h, &t)
		h.FromCompleted(&r)
	}

	*v = h
	return v
}

// signedRadix16 returns a as 64 digits e[i] in [-8, 8] with
// a = sum(e[i] * 16^i). a[31] must be at most 127.
func signedRadix16(a *[32]byte) [64]int8 {
	var e [64]int8
	for i, b := range a {
		e[2*i] = int8(b & 15)
		e[2*i+1] = int8(b>>4) & 15
	}

	// each e[i] is between 0 and 15, e[63] between 0 and 7
	var carry int8
	for i := 0; i < 63; i++ {
		e[i] += carry
		carry = (e[i] + 8) >> 4
		e[i] -= carry << 4
	}
	e[63] += carry
	return e
}

// selectBase sets v = b * 256^pos * B for b in [-8, 8], scanning every
// entry of baseTable[pos] so that neither the memory access pattern nor
// the instruction sequence depends on b.
func (v *PrecomputedPoint) selectBase(pos int, b int8) *PrecomputedPoint {
	bNegative := negative(b)
	bAbs := uint8(b - int8((-bNegative)&int(b))<<1)

	v.Zero()
	for j := range baseTable[pos] {
		v.Select(&baseTable[pos][j], v, subtle.ConstantTimeByteEq(bAbs, uint8(j+1)))
	}
	return v.CondNegate(bNegative)
}

// negative returns 1 if b < 0 and 0 otherwise, without branching.
func negative(b int8) int {
	return int(uint64(int64(b)) >> 63)
}
