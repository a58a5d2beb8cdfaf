package ge25519

import (
	"crypto/ed25519"
	"crypto/sha512"
	"math/big"
	"math/rand"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestScalarMultBaseSmall(t *testing.T) {
	var zero, one [32]byte
	one[0] = 1

	require.Equal(t, neutralBytes, new(ExtendedPoint).ScalarMultBase(&zero).Bytes())
	require.Equal(t, basePointBytes, new(ExtendedPoint).ScalarMultBase(&one).Bytes())

	B := NewBasePoint()
	acc := new(ExtendedPoint).Zero()
	for k := byte(1); k <= 40; k++ {
		acc = add(acc, B)
		s := [32]byte{k}
		require.Equal(t, acc.Bytes(), new(ExtendedPoint).ScalarMultBase(&s).Bytes(), "k=%d", k)
	}
}

// clamp derives an Ed25519 secret scalar from a seed.
func clamp(seed []byte) *[32]byte {
	h := sha512.Sum512(seed)
	var a [32]byte
	copy(a[:], h[:32])
	a[0] &= 248
	a[31] &= 127
	a[31] |= 64
	return &a
}

func TestScalarMultBaseMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 64; i++ {
		seed := make([]byte, ed25519.SeedSize)
		rng.Read(seed)
		pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)

		got := new(ExtendedPoint).ScalarMultBase(clamp(seed)).Bytes()
		require.Equal(t, []byte(pub), sliceOf(got))
	}
}

func TestScalarMultBaseMatchesReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := scalarGen().Draw(t, "k")
		want := new(edwards25519.Point).ScalarBaseMult(k)
		got := new(ExtendedPoint).ScalarMultBase(scalarBytes(k))
		require.Equal(t, want.Bytes(), sliceOf(got.Bytes()))
	})
}

func TestScalarMultBaseLinear(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := scalarGen().Draw(t, "a")
		b := scalarGen().Draw(t, "b")
		sum := edwards25519.NewScalar().Add(a, b)

		aB := new(ExtendedPoint).ScalarMultBase(scalarBytes(a))
		bB := new(ExtendedPoint).ScalarMultBase(scalarBytes(b))
		sumB := new(ExtendedPoint).ScalarMultBase(scalarBytes(sum))
		require.Equal(t, sumB.Bytes(), add(aB, bB).Bytes())
	})
}

func TestSignedRadix16(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var a [32]byte
		copy(a[:], rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(t, "a"))
		a[31] &= 127

		e := signedRadix16(&a)

		sum := new(big.Int)
		for i := len(e) - 1; i >= 0; i-- {
			require.GreaterOrEqual(t, e[i], int8(-8))
			require.LessOrEqual(t, e[i], int8(8))
			sum.Lsh(sum, 4)
			sum.Add(sum, big.NewInt(int64(e[i])))
		}
		require.Equal(t, 0, sum.Cmp(littleEndianInt(a[:])))
	})
}

func TestSelectBase(t *testing.T) {
	for _, pos := range []int{0, 1, 17, 31} {
		for b := int8(-8); b <= 8; b++ {
			var got PrecomputedPoint
			got.selectBase(pos, b)

			// want = b * 256^pos * B
			var s [32]byte
			abs := b
			if abs < 0 {
				abs = -abs
			}
			s[pos] = byte(abs)
			P := new(ExtendedPoint).ScalarMultBase(&s)
			if b < 0 {
				P.Negate(P)
			}
			var want PrecomputedPoint
			want.FromExtended(P)

			require.Equal(t, 1, want.YplusX.Equal(&got.YplusX), "pos=%d b=%d", pos, b)
			require.Equal(t, 1, want.YminusX.Equal(&got.YminusX), "pos=%d b=%d", pos, b)
			require.Equal(t, 1, want.XY2d.Equal(&got.XY2d), "pos=%d b=%d", pos, b)
		}
	}
}

func TestScalarMultBaseDoesNotAllocate(t *testing.T) {
	var p ExtendedPoint
	a := clamp([]byte("allocations"))
	allocs := testing.AllocsPerRun(10, func() {
		p.ScalarMultBase(a)
	})
	require.Zero(t, allocs)
}

func littleEndianInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}

func BenchmarkScalarMultBase(b *testing.B) {
	var p ExtendedPoint
	a := clamp([]byte("benchmark"))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.ScalarMultBase(a)
	}
}
