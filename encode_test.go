package ge25519

import (
	"crypto/ed25519"
	"math/rand"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/noot/go-ge25519/internal/fe"
)

// Public keys from RFC 8032, Section 7.1.
var rfc8032PublicKeys = []string{
	"d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
	"3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c",
}

func TestBasePointEncoding(t *testing.T) {
	require.Equal(t, basePointBytes, NewBasePoint().Bytes())
	require.Equal(t, edwards25519.NewGeneratorPoint().Bytes(), sliceOf(NewBasePoint().Bytes()))
}

func TestDecodePublicKeys(t *testing.T) {
	for _, pk := range rfc8032PublicKeys {
		s := decodeHex32(t, pk)

		p, err := new(ExtendedPoint).SetBytes(s)
		require.NoError(t, err)
		require.Equal(t, *s, p.Bytes())

		var proj ProjectivePoint
		require.Equal(t, *s, proj.FromExtended(p).Bytes())

		n, err := new(ExtendedPoint).SetBytesNegate(s)
		require.NoError(t, err)
		require.Equal(t, new(ExtendedPoint).Negate(p).Bytes(), n.Bytes())
	}
}

func TestDecodeNeutral(t *testing.T) {
	s := [32]byte{0x01}

	p, err := new(ExtendedPoint).SetBytesNegate(&s)
	require.NoError(t, err)

	// x = 0, so the negation is the neutral element itself.
	var zero, one [32]byte
	one[0] = 1
	require.Equal(t, zero, fe.ToBytes(&p.X))
	require.Equal(t, one, fe.ToBytes(&p.Y))
	require.Equal(t, one, fe.ToBytes(&p.Z))
	require.Equal(t, zero, fe.ToBytes(&p.T))
	require.Equal(t, s, p.Bytes())
}

func TestSetBytesNegateRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		P := pointGen().Draw(t, "P")
		enc := P.Bytes()

		n, err := new(ExtendedPoint).SetBytesNegate(&enc)
		require.NoError(t, err)
		require.Equal(t, new(ExtendedPoint).Negate(P).Bytes(), n.Bytes())

		p, err := new(ExtendedPoint).SetBytes(&enc)
		require.NoError(t, err)
		require.Equal(t, enc, p.Bytes())
		require.Equal(t, 1, p.Equal(P))
	})
}

func TestSignBitDoesNotAffectValidity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var s [32]byte
		copy(s[:], rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(t, "s"))
		flipped := s
		flipped[31] ^= 0x80

		p, errP := new(ExtendedPoint).SetBytes(&s)
		q, errQ := new(ExtendedPoint).SetBytes(&flipped)
		require.Equal(t, errP, errQ)
		if errP != nil {
			require.ErrorIs(t, errP, ErrInvalidEncoding)
			return
		}
		require.Equal(t, 1, new(ExtendedPoint).Negate(p).Equal(q))
	})
}

func TestSetBytesMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var valid, invalid int
	for i := 0; i < 1000; i++ {
		var s [32]byte
		rng.Read(s[:])

		want, wantErr := new(edwards25519.Point).SetBytes(s[:])
		got, err := new(ExtendedPoint).SetBytes(&s)
		if wantErr != nil {
			require.ErrorIs(t, err, ErrInvalidEncoding)
			invalid++
			continue
		}
		require.NoError(t, err)
		require.Equal(t, want.Bytes(), sliceOf(got.Bytes()))
		valid++
	}

	// Roughly half of all y have a matching x.
	require.NotZero(t, valid)
	require.NotZero(t, invalid)
}

func TestSetBytesFailureLeavesReceiver(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	var s [32]byte
	for {
		rng.Read(s[:])
		if _, err := new(edwards25519.Point).SetBytes(s[:]); err != nil {
			break
		}
	}

	p := NewBasePoint()
	res, err := p.SetBytes(&s)
	require.ErrorIs(t, err, ErrInvalidEncoding)
	require.Nil(t, res)
	require.Equal(t, *NewBasePoint(), *p)

	res, err = p.SetBytesNegate(&s)
	require.ErrorIs(t, err, ErrInvalidEncoding)
	require.Nil(t, res)
	require.Equal(t, *NewBasePoint(), *p)
}

func TestEncodingMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 32; i++ {
		seed := make([]byte, ed25519.SeedSize)
		rng.Read(seed)
		pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)

		var s [32]byte
		copy(s[:], pub)
		p, err := new(ExtendedPoint).SetBytes(&s)
		require.NoError(t, err)
		require.Equal(t, s, p.Bytes())
	}
}

func FuzzSetBytes(f *testing.F) {
	f.Add(basePointBytes[:])
	f.Add(neutralBytes[:])
	f.Fuzz(func(t *testing.T, b []byte) {
		if len(b) != 32 {
			return
		}
		var s [32]byte
		copy(s[:], b)

		p, err := new(ExtendedPoint).SetBytes(&s)
		n, errN := new(ExtendedPoint).SetBytesNegate(&s)
		_, wantErr := new(edwards25519.Point).SetBytes(b)
		require.Equal(t, wantErr == nil, err == nil)
		require.Equal(t, err, errN)
		if err != nil {
			return
		}
		require.Equal(t, 1, new(ExtendedPoint).Negate(p).Equal(n))

		// Re-encoding is canonical and stable.
		enc := p.Bytes()
		again, err := new(ExtendedPoint).SetBytes(&enc)
		require.NoError(t, err)
		require.Equal(t, enc, again.Bytes())
	})
}
