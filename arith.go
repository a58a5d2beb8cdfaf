package ge25519

import (
	"github.com/noot/go-ge25519/internal/fe"
)

// The formulas below are the "add-2008-hwcd-3" and "dbl-2008-hwcd" ones
// from Hisil, Wong, Carter and Dawson, "Twisted Edwards Curves Revisited",
// with a = -1, split so that the last multiplications are done by the
// conversion out of CompletedPoint.

// Add sets v = p + q, and returns v.
func (v *CompletedPoint) Add(p *ExtendedPoint, q *CachedPoint) *CompletedPoint {
	var YplusX, YminusX, PP, MM, TT2d, ZZ2 fe.Element

	YplusX.Add(&p.Y, &p.X)
	YminusX.Subtract(&p.Y, &p.X)

	PP.Multiply(&YplusX, &q.YplusX)
	MM.Multiply(&YminusX, &q.YminusX)
	TT2d.Multiply(&p.T, &q.T2d)
	ZZ2.Multiply(&p.Z, &q.Z)

	ZZ2.Add(&ZZ2, &ZZ2)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Add(&ZZ2, &TT2d)
	v.T.Subtract(&ZZ2, &TT2d)
	return v
}

// Sub sets v = p - q, and returns v.
func (v *CompletedPoint) Sub(p *ExtendedPoint, q *CachedPoint) *CompletedPoint {
	var YplusX, YminusX, PP, MM, TT2d, ZZ2 fe.Element

	YplusX.Add(&p.Y, &p.X)
	YminusX.Subtract(&p.Y, &p.X)

	PP.Multiply(&YplusX, &q.YminusX) // flipped sign
	MM.Multiply(&YminusX, &q.YplusX) // flipped sign
	TT2d.Multiply(&p.T, &q.T2d)
	ZZ2.Multiply(&p.Z, &q.Z)

	ZZ2.Add(&ZZ2, &ZZ2)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Subtract(&ZZ2, &TT2d) // flipped sign
	v.T.Add(&ZZ2, &TT2d)      // flipped sign
	return v
}

// AddPrecomputed sets v = p + q, and returns v.
func (v *CompletedPoint) AddPrecomputed(p *ExtendedPoint, q *PrecomputedPoint) *CompletedPoint {
	var YplusX, YminusX, PP, MM, TT2d, Z2 fe.Element

	YplusX.Add(&p.Y, &p.X)
	YminusX.Subtract(&p.Y, &p.X)

	PP.Multiply(&YplusX, &q.YplusX)
	MM.Multiply(&YminusX, &q.YminusX)
	TT2d.Multiply(&p.T, &q.XY2d)

	Z2.Add(&p.Z, &p.Z)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Add(&Z2, &TT2d)
	v.T.Subtract(&Z2, &TT2d)
	return v
}

// SubPrecomputed sets v = p - q, and returns v.
func (v *CompletedPoint) SubPrecomputed(p *ExtendedPoint, q *PrecomputedPoint) *CompletedPoint {
	var YplusX, YminusX, PP, MM, TT2d, Z2 fe.Element

	YplusX.Add(&p.Y, &p.X)
	YminusX.Subtract(&p.Y, &p.X)

	PP.Multiply(&YplusX, &q.YminusX) // flipped sign
	MM.Multiply(&YminusX, &q.YplusX) // flipped sign
	TT2d.Multiply(&p.T, &q.XY2d)

	Z2.Add(&p.Z, &p.Z)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Subtract(&Z2, &TT2d) // flipped sign
	v.T.Add(&Z2, &TT2d)      // flipped sign
	return v
}

// DoubleProjective sets v = 2 * p, and returns v.
func (v *CompletedPoint) DoubleProjective(p *ProjectivePoint) *CompletedPoint {
	var XX, YY, ZZ2, XplusYsq fe.Element

	XX.Square(&p.X)
	YY.Square(&p.Y)
	fe.Sq2(&ZZ2, &p.Z)
	XplusYsq.Add(&p.X, &p.Y)
	XplusYsq.Square(&XplusYsq)

	v.Y.Add(&YY, &XX)
	v.Z.Subtract(&YY, &XX)

	v.X.Subtract(&XplusYsq, &v.Y)
	v.T.Subtract(&ZZ2, &v.Z)
	return v
}

// DoubleExtended sets v = 2 * p, and returns v.
func (v *CompletedPoint) DoubleExtended(p *ExtendedPoint) *CompletedPoint {
	var q ProjectivePoint
	q.FromExtended(p)
	return v.DoubleProjective(&q)
}
