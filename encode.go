package ge25519

import (
	"errors"

	"github.com/noot/go-ge25519/internal/fe"
)

// ErrInvalidEncoding is returned when 32 bytes do not encode a point on
// the curve.
var ErrInvalidEncoding = errors.New("ge25519: invalid point encoding")

// Bytes returns the 32-byte compressed encoding of v: y in little-endian
// order with the sign of x in the top bit of the last byte.
func (v *ProjectivePoint) Bytes() [32]byte {
	return encode(&v.X, &v.Y, &v.Z)
}

// Bytes returns the 32-byte compressed encoding of v.
func (v *ExtendedPoint) Bytes() [32]byte {
	return encode(&v.X, &v.Y, &v.Z)
}

func encode(X, Y, Z *fe.Element) [32]byte {
	var recip, x, y fe.Element
	recip.Invert(Z)
	x.Multiply(X, &recip)
	y.Multiply(Y, &recip)

	s := fe.ToBytes(&y)
	s[31] ^= byte(fe.IsNegative(&x) << 7)
	return s
}

// SetBytes sets v to the point encoded by s, and returns v. If s is not a
// valid encoding, SetBytes returns nil and ErrInvalidEncoding, and v is
// left unchanged.
//
// Non-canonical encodings of y are accepted, as is an x of zero with the
// sign bit set. SetBytes runs in variable time and must only be used on
// public data.
func (v *ExtendedPoint) SetBytes(s *[32]byte) (*ExtendedPoint, error) {
	var p ExtendedPoint
	if !p.decompress(s) {
		return nil, ErrInvalidEncoding
	}
	if fe.IsNegative(&p.X) != int(s[31]>>7) {
		p.X.Negate(&p.X)
	}
	p.T.Multiply(&p.X, &p.Y)
	*v = p
	return v, nil
}

// SetBytesNegate sets v to the negation of the point encoded by s, and
// returns v. It is SetBytes followed by Negate at the cost of SetBytes,
// and exists for signature verification, which needs -A for a public key
// A. If s is not a valid encoding, SetBytesNegate returns nil and
// ErrInvalidEncoding, and v is left unchanged.
//
// SetBytesNegate runs in variable time and must only be used on public
// data.
func (v *ExtendedPoint) SetBytesNegate(s *[32]byte) (*ExtendedPoint, error) {
	var p ExtendedPoint
	if !p.decompress(s) {
		return nil, ErrInvalidEncoding
	}
	if fe.IsNegative(&p.X) == int(s[31]>>7) {
		p.X.Negate(&p.X)
	}
	p.T.Multiply(&p.X, &p.Y)
	*v = p
	return v, nil
}

// decompress sets v.Y and v.Z = 1 from s, and v.X to a square root of
// (y^2 - 1)/(d*y^2 + 1) with unspecified sign. It reports whether such a
// root exists. v.T is not set.
func (v *ExtendedPoint) decompress(s *[32]byte) bool {
	var u, vv, v3, vxx, check fe.Element

	fe.FromBytes(&v.Y, s)
	v.Z.One()

	u.Square(&v.Y)
	vv.Multiply(&u, fe.D)
	u.Subtract(&u, &v.Z) // u = y^2 - 1
	vv.Add(&vv, &v.Z)    // v = d*y^2 + 1

	v3.Square(&vv)
	v3.Multiply(&v3, &vv) // v3 = v^3
	v.X.Square(&v3)
	v.X.Multiply(&v.X, &vv)
	v.X.Multiply(&v.X, &u) // x = u*v^7
	v.X.Pow22523(&v.X)     // x = (u*v^7)^((p-5)/8)
	v.X.Multiply(&v.X, &v3)
	v.X.Multiply(&v.X, &u) // x = u*v^3*(u*v^7)^((p-5)/8)

	vxx.Square(&v.X)
	vxx.Multiply(&vxx, &vv)
	check.Subtract(&vxx, &u) // v*x^2 - u
	if fe.IsNonZero(&check) == 1 {
		check.Add(&vxx, &u) // v*x^2 + u
		if fe.IsNonZero(&check) == 1 {
			return false
		}
		v.X.Multiply(&v.X, fe.SqrtM1)
	}
	return true
}
