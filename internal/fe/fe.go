// Package fe adapts filippo.io/edwards25519/field to the small set of
// GF(2^255-19) operations the group code needs, and holds the curve
// constants derived from it.
//
// Elements are value types. Every function writes its result into the
// receiver (or first argument) and never retains its inputs.
package fe

import (
	"crypto/subtle"

	"filippo.io/edwards25519/field"
)

// Element is an element of the field of integers modulo 2^255 - 19.
type Element = field.Element

var (
	// D is the curve constant -121665/121666.
	D = newD()

	// D2 is 2*D.
	D2 = new(Element).Add(D, D)

	// SqrtM1 is 2^((p-1)/4), a square root of -1.
	SqrtM1 = newSqrtM1()
)

func newD() *Element {
	one := new(Element).One()
	num := new(Element).Mult32(one, 121665)
	den := new(Element).Mult32(one, 121666)
	den.Invert(den)
	num.Multiply(num, den)
	return num.Negate(num)
}

func newSqrtM1() *Element {
	// 2^((p-5)/8) squared is 2^((p-5)/4); one more factor of 2 gives
	// 2^((p-1)/4).
	two := new(Element).Add(new(Element).One(), new(Element).One())
	r := new(Element).Pow22523(two)
	r.Square(r)
	return r.Multiply(r, two)
}

// Sq2 sets v = 2*u^2, and returns v.
func Sq2(v, u *Element) *Element {
	v.Square(u)
	return v.Add(v, v)
}

// CMove sets v = u if b == 1 and leaves v unchanged if b == 0. It runs in
// constant time with respect to b.
func CMove(v, u *Element, b int) *Element {
	return v.Select(u, v, b)
}

// IsNegative returns 1 if the canonical encoding of u is odd, and 0
// otherwise.
func IsNegative(u *Element) int {
	return u.IsNegative()
}

// IsNonZero returns 1 if u != 0, and 0 otherwise, in constant time.
func IsNonZero(u *Element) int {
	var zero [32]byte
	return 1 - subtle.ConstantTimeCompare(u.Bytes(), zero[:])
}

// FromBytes sets v to the element encoded by s in little-endian order.
// The most significant bit is ignored and values >= p are reduced.
func FromBytes(v *Element, s *[32]byte) *Element {
	// SetBytes only fails on a length mismatch, which the array type
	// rules out.
	if _, err := v.SetBytes(s[:]); err != nil {
		panic("fe: " + err.Error())
	}
	return v
}

// ToBytes returns the canonical 32-byte little-endian encoding of u.
func ToBytes(u *Element) [32]byte {
	var s [32]byte
	copy(s[:], u.Bytes())
	return s
}
