package helper

import (
	"encoding/hex"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/ryanuber/columnize"
)

var (
	errInvalidLength    = errors.New("expected 32 bytes of hex")
	errScalarOutOfRange = errors.New("scalar must be below 2^255; pass --reduce to reduce it first")
)

// FormatKV formats key value pairs:
//
// Key = Value
//
// Key = <none>
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}

// DecodeHex32 decodes exactly 32 bytes of hex.
func DecodeHex32(s string) (*[32]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("unable to decode hex: %w", err)
	}

	if len(b) != 32 {
		return nil, fmt.Errorf("%w, got %d", errInvalidLength, len(b))
	}

	var out [32]byte
	copy(out[:], b)

	return &out, nil
}

// ParseScalar decodes a little-endian scalar. With reduce set, the value is
// first reduced modulo the group order; otherwise it must be below 2^255,
// which is the range the multiplication routines accept.
func ParseScalar(s string, reduce bool) (*[32]byte, error) {
	a, err := DecodeHex32(s)
	if err != nil {
		return nil, err
	}

	if reduce {
		var wide [64]byte
		copy(wide[:], a[:])

		sc, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
		if err != nil {
			return nil, fmt.Errorf("unable to reduce scalar: %w", err)
		}

		copy(a[:], sc.Bytes())

		return a, nil
	}

	if a[31] > 127 {
		return nil, errScalarOutOfRange
	}

	return a, nil
}
