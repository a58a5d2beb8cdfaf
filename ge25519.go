// Package ge25519 implements group element arithmetic for the twisted
// Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2,   d = -121665/121666
//
// over GF(2^255-19), the curve used by Ed25519 and, through a birational
// map, by X25519.
//
// A point is held in one of five coordinate systems, each chosen to
// minimize field multiplications for the operation that consumes it:
//
//	ProjectivePoint   (X:Y:Z)        x = X/Z, y = Y/Z
//	ExtendedPoint     (X:Y:Z:T)      x = X/Z, y = Y/Z, x*y = T/Z
//	CompletedPoint    ((X:Z),(Y:T))  x = X/Z, y = Y/T
//	CachedPoint       (Y+X, Y-X, Z, 2d*T)
//	PrecomputedPoint  (y+x, y-x, 2d*x*y), Z = 1
//
// There are no implicit conversions between them. Each operation writes
// into its receiver, treats its arguments as read-only, and returns the
// receiver so calls can be chained.
//
// ScalarMultBase is constant time and may be used with secret scalars.
// VarTimeDoubleScalarBaseMult, SetBytes and SetBytesNegate are not, and
// must only be used with public inputs.
//
// Points given to any function are assumed to be on the curve. Nothing in
// this package checks it.
package ge25519

import (
	"github.com/noot/go-ge25519/internal/fe"
)

// ProjectivePoint is a point in projective coordinates, also known as P2.
type ProjectivePoint struct {
	X, Y, Z fe.Element
}

// ExtendedPoint is a point in extended coordinates, also known as P3.
// T*Z = X*Y holds for every value produced by this package.
type ExtendedPoint struct {
	X, Y, Z, T fe.Element
}

// CompletedPoint is the result of an addition or doubling, also known as
// P1xP1. It is converted into a ProjectivePoint or ExtendedPoint before
// any further use.
type CompletedPoint struct {
	X, Y, Z, T fe.Element
}

// CachedPoint is an ExtendedPoint prepared to be added repeatedly.
type CachedPoint struct {
	YplusX, YminusX, Z, T2d fe.Element
}

// PrecomputedPoint is an affine point prepared to be added, used for the
// base point tables.
type PrecomputedPoint struct {
	YplusX, YminusX, XY2d fe.Element
}

// Zero sets v to the neutral element, and returns v.
func (v *ProjectivePoint) Zero() *ProjectivePoint {
	v.X.Zero()
	v.Y.One()
	v.Z.One()
	return v
}

// Zero sets v to the neutral element, and returns v.
func (v *ExtendedPoint) Zero() *ExtendedPoint {
	v.X.Zero()
	v.Y.One()
	v.Z.One()
	v.T.Zero()
	return v
}

// Zero sets v to the neutral element, and returns v.
func (v *CachedPoint) Zero() *CachedPoint {
	v.YplusX.One()
	v.YminusX.One()
	v.Z.One()
	v.T2d.Zero()
	return v
}

// Zero sets v to the neutral element, and returns v.
func (v *PrecomputedPoint) Zero() *PrecomputedPoint {
	v.YplusX.One()
	v.YminusX.One()
	v.XY2d.Zero()
	return v
}

// NewBasePoint returns a new ExtendedPoint set to the canonical base
// point B, (x, 4/5) with x positive.
func NewBasePoint() *ExtendedPoint {
	p := basePoint
	return &p
}

// Set sets v = u, and returns v.
func (v *ExtendedPoint) Set(u *ExtendedPoint) *ExtendedPoint {
	*v = *u
	return v
}

// Negate sets v = -p, and returns v.
func (v *ExtendedPoint) Negate(p *ExtendedPoint) *ExtendedPoint {
	v.X.Negate(&p.X)
	v.Y.Set(&p.Y)
	v.Z.Set(&p.Z)
	v.T.Negate(&p.T)
	return v
}

// Equal returns 1 if v and u denote the same point, and 0 otherwise. It
// runs in constant time.
func (v *ExtendedPoint) Equal(u *ExtendedPoint) int {
	var t1, t2, t3, t4 fe.Element
	t1.Multiply(&v.X, &u.Z)
	t2.Multiply(&u.X, &v.Z)
	t3.Multiply(&v.Y, &u.Z)
	t4.Multiply(&u.Y, &v.Z)
	return t1.Equal(&t2) & t3.Equal(&t4)
}

// Select sets v to a if cond == 1 and to b if cond == 0, and returns v.
// It runs in constant time with respect to cond.
func (v *PrecomputedPoint) Select(a, b *PrecomputedPoint, cond int) *PrecomputedPoint {
	v.YplusX.Select(&a.YplusX, &b.YplusX, cond)
	v.YminusX.Select(&a.YminusX, &b.YminusX, cond)
	v.XY2d.Select(&a.XY2d, &b.XY2d, cond)
	return v
}

// CondNegate sets v = -v if cond == 1 and leaves it unchanged if
// cond == 0, and returns v. It runs in constant time with respect to cond.
func (v *PrecomputedPoint) CondNegate(cond int) *PrecomputedPoint {
	var minus PrecomputedPoint
	minus.YplusX.Set(&v.YminusX)
	minus.YminusX.Set(&v.YplusX)
	minus.XY2d.Negate(&v.XY2d)
	return v.Select(&minus, v, cond)
}
