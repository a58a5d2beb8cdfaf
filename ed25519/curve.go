package ed25519

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/noot/go-ge25519"
	"github.com/noot/go-ge25519/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

// CurveImpl is the prime-order subgroup of edwards25519 generated by the
// canonical base point.
type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) CompressedPointSize() int {
	return 32
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: *ge25519.NewBasePoint(),
	}
}

func (c *CurveImpl) NewRandomScalar() Scalar {
	var b [64]byte
	_, err := rand.Read(b[:])
	if err != nil {
		panic(err)
	}

	s, err := edwards25519.NewScalar().SetUniformBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

// ScalarFromBytes decodes a canonical little-endian scalar.
func (c *CurveImpl) ScalarFromBytes(b [32]byte) (Scalar, error) {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode scalar: %w", err)
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) ScalarFromInt(in uint32) Scalar {
	var b [32]byte
	binary.LittleEndian.PutUint32(b[:4], in)

	s, err := c.ScalarFromBytes(b)
	if err != nil {
		panic(err)
	}

	return s
}

// HashToScalar reduces the SHA3-512 digest of in modulo the group order.
func (c *CurveImpl) HashToScalar(in []byte) Scalar {
	h := sha3.Sum512(in)
	s, err := edwards25519.NewScalar().SetUniformBytes(h[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

// ScalarBaseMul returns s*G in constant time.
func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss := mustScalar(s)

	p := &PointImpl{}
	p.inner.ScalarMultBase(ss.bytes())
	return p
}

// VarTimeDoubleScalarBaseMul returns a*A + b*G. It leaks a, A and b
// through timing.
func (c *CurveImpl) VarTimeDoubleScalarBaseMul(a Scalar, A Point, b Scalar) Point {
	aa, bb := mustScalar(a), mustScalar(b)
	pp := mustPoint(A)

	var r ge25519.ProjectivePoint
	r.VarTimeDoubleScalarBaseMult(aa.bytes(), &pp.inner, bb.bytes())

	p := &PointImpl{}
	p.inner.FromProjective(&r)
	return p
}

func (c *CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	if len(in) != 32 {
		return nil, fmt.Errorf("invalid point length %d", len(in))
	}

	var b [32]byte
	copy(b[:], in)

	p := &PointImpl{}
	if _, err := p.inner.SetBytes(&b); err != nil {
		return nil, err
	}

	return p, nil
}

func mustScalar(s Scalar) *ScalarImpl {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}
	return ss
}

func mustPoint(p Point) *PointImpl {
	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}
	return pp
}

type ScalarImpl struct {
	inner *edwards25519.Scalar
}

// bytes returns the canonical encoding, which is below 2^253 and so meets
// the input range of ScalarMultBase.
func (s *ScalarImpl) bytes() *[32]byte {
	var b [32]byte
	copy(b[:], s.inner.Bytes())
	return &b
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	return &ScalarImpl{
		inner: edwards25519.NewScalar().Add(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	return &ScalarImpl{
		inner: edwards25519.NewScalar().Subtract(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: edwards25519.NewScalar().Negate(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	return &ScalarImpl{
		inner: edwards25519.NewScalar().Multiply(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Encode() []byte {
	return s.inner.Bytes()
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	return s.inner.Equal(mustScalar(b).inner) == 1
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}

type PointImpl struct {
	inner ge25519.ExtendedPoint
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: p.inner,
	}
}

func (p *PointImpl) Add(b Point) Point {
	var q ge25519.CachedPoint
	var r ge25519.CompletedPoint
	q.FromExtended(&mustPoint(b).inner)
	r.Add(&p.inner, &q)

	res := &PointImpl{}
	res.inner.FromCompleted(&r)
	return res
}

func (p *PointImpl) Sub(b Point) Point {
	var q ge25519.CachedPoint
	var r ge25519.CompletedPoint
	q.FromExtended(&mustPoint(b).inner)
	r.Sub(&p.inner, &q)

	res := &PointImpl{}
	res.inner.FromCompleted(&r)
	return res
}

func (p *PointImpl) Negate() Point {
	res := &PointImpl{}
	res.inner.Negate(&p.inner)
	return res
}

func (p *PointImpl) Double() Point {
	var r ge25519.CompletedPoint
	r.DoubleExtended(&p.inner)

	res := &PointImpl{}
	res.inner.FromCompleted(&r)
	return res
}

func (p *PointImpl) Encode() []byte {
	b := p.inner.Bytes()
	return b[:]
}

func (p *PointImpl) IsZero() bool {
	var zero ge25519.ExtendedPoint
	zero.Zero()
	return p.inner.Equal(&zero) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	return p.inner.Equal(&mustPoint(other).inner) == 1
}
