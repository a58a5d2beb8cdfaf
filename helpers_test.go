package ge25519

import (
	"encoding/hex"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func decodeHex32(t testing.TB, s string) *[32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, 32)

	var out [32]byte
	copy(out[:], b)
	return &out
}

// scalarGen draws scalars reduced modulo the group order.
func scalarGen() *rapid.Generator[*edwards25519.Scalar] {
	return rapid.Custom(func(t *rapid.T) *edwards25519.Scalar {
		wide := rapid.SliceOfN(rapid.Byte(), 64, 64).Draw(t, "wide")
		s, err := edwards25519.NewScalar().SetUniformBytes(wide)
		if err != nil {
			t.Fatalf("SetUniformBytes: %v", err)
		}
		return s
	})
}

func scalarBytes(s *edwards25519.Scalar) *[32]byte {
	var out [32]byte
	copy(out[:], s.Bytes())
	return &out
}

// pointGen draws multiples of the base point.
func pointGen() *rapid.Generator[*ExtendedPoint] {
	return rapid.Custom(func(t *rapid.T) *ExtendedPoint {
		k := scalarGen().Draw(t, "k")
		return new(ExtendedPoint).ScalarMultBase(scalarBytes(k))
	})
}

// add returns p + q through the cached representation.
func add(p, q *ExtendedPoint) *ExtendedPoint {
	var c CachedPoint
	var r CompletedPoint
	c.FromExtended(q)
	r.Add(p, &c)
	return new(ExtendedPoint).FromCompleted(&r)
}

func sub(p, q *ExtendedPoint) *ExtendedPoint {
	var c CachedPoint
	var r CompletedPoint
	c.FromExtended(q)
	r.Sub(p, &c)
	return new(ExtendedPoint).FromCompleted(&r)
}

func double(p *ExtendedPoint) *ExtendedPoint {
	var r CompletedPoint
	r.DoubleExtended(p)
	return new(ExtendedPoint).FromCompleted(&r)
}

// reference converts p to a filippo.io/edwards25519 point through its
// encoding.
func reference(t require.TestingT, p *ExtendedPoint) *edwards25519.Point {
	b := p.Bytes()
	q, err := new(edwards25519.Point).SetBytes(b[:])
	require.NoError(t, err)
	return q
}
