package ge25519

import (
	"github.com/noot/go-ge25519/internal/fe"
)

// BytesMontgomery returns the u-coordinate of v on the birationally
// equivalent Montgomery curve Curve25519, u = (1 + y) / (1 - y), in the
// 32-byte little-endian form used by X25519.
//
// The neutral element, which has no image, encodes as zero.
func (v *ExtendedPoint) BytesMontgomery() [32]byte {
	// u = (Z + Y) / (Z - Y) in projective terms.
	var n, d fe.Element
	n.Add(&v.Z, &v.Y)
	d.Subtract(&v.Z, &v.Y)
	d.Invert(&d)
	n.Multiply(&n, &d)
	return fe.ToBytes(&n)
}
