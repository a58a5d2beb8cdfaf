package ge25519

import (
	"github.com/noot/go-ge25519/internal/fe"
)

// FromCompleted sets v = p, and returns v.
func (v *ProjectivePoint) FromCompleted(p *CompletedPoint) *ProjectivePoint {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	return v
}

// FromExtended sets v = p, and returns v. T is dropped.
func (v *ProjectivePoint) FromExtended(p *ExtendedPoint) *ProjectivePoint {
	v.X.Set(&p.X)
	v.Y.Set(&p.Y)
	v.Z.Set(&p.Z)
	return v
}

// FromCompleted sets v = p, and returns v.
func (v *ExtendedPoint) FromCompleted(p *CompletedPoint) *ExtendedPoint {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	v.T.Multiply(&p.X, &p.Y)
	return v
}

// FromProjective sets v = p, and returns v.
//
// (X:Y:Z) maps to (XZ:YZ:Z^2:XY), which restores T*Z = X*Y.
func (v *ExtendedPoint) FromProjective(p *ProjectivePoint) *ExtendedPoint {
	var x, y, z, t fe.Element
	x.Multiply(&p.X, &p.Z)
	y.Multiply(&p.Y, &p.Z)
	z.Square(&p.Z)
	t.Multiply(&p.X, &p.Y)
	v.X, v.Y, v.Z, v.T = x, y, z, t
	return v
}

// FromExtended sets v = p, and returns v.
func (v *CachedPoint) FromExtended(p *ExtendedPoint) *CachedPoint {
	v.YplusX.Add(&p.Y, &p.X)
	v.YminusX.Subtract(&p.Y, &p.X)
	v.Z.Set(&p.Z)
	v.T2d.Multiply(&p.T, fe.D2)
	return v
}

// FromExtended sets v = p, and returns v. It costs a field inversion and
// is only meant for building tables.
func (v *PrecomputedPoint) FromExtended(p *ExtendedPoint) *PrecomputedPoint {
	var recip, x, y fe.Element
	recip.Invert(&p.Z)
	x.Multiply(&p.X, &recip)
	y.Multiply(&p.Y, &recip)

	v.YplusX.Add(&y, &x)
	v.YminusX.Subtract(&y, &x)
	v.XY2d.Multiply(&x, &y)
	v.XY2d.Multiply(&v.XY2d, fe.D2)
	return v
}
