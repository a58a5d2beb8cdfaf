package types

// Curve is a prime-order group with a fixed generator.
//
// ScalarBaseMul runs in constant time. VarTimeDoubleScalarBaseMul does not,
// and must only be given public values.
type Curve interface {
	CompressedPointSize() int
	BasePoint() Point
	NewRandomScalar() Scalar
	ScalarFromInt(uint32) Scalar
	ScalarFromBytes([32]byte) (Scalar, error)
	HashToScalar([]byte) Scalar
	ScalarBaseMul(Scalar) Point
	VarTimeDoubleScalarBaseMul(a Scalar, A Point, b Scalar) Point
	DecodeToPoint([]byte) (Point, error)
}

type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar
	Encode() []byte
	Eq(Scalar) bool
	IsZero() bool
}

type Point interface {
	Copy() Point
	Add(Point) Point
	Sub(Point) Point
	Negate() Point
	Double() Point
	Encode() []byte
	IsZero() bool
	Equals(other Point) bool
}
