package doublemul

import (
	"errors"
	"fmt"

	"github.com/noot/go-ge25519"
	"github.com/noot/go-ge25519/command/helper"
)

const (
	reduceFlag = "reduce"
)

var (
	params = &doubleMulParams{}
)

var (
	errInvalidArgs = errors.New("expected <a> <A> <b>")
)

type doubleMulParams struct {
	reduce bool

	a     *[32]byte
	b     *[32]byte
	point ge25519.ExtendedPoint
}

func (p *doubleMulParams) initRawParams(args []string) error {
	if len(args) != 3 {
		return errInvalidArgs
	}

	var err error

	if p.a, err = helper.ParseScalar(args[0], p.reduce); err != nil {
		return fmt.Errorf("invalid scalar a: %w", err)
	}

	encoded, err := helper.DecodeHex32(args[1])
	if err != nil {
		return fmt.Errorf("invalid point A: %w", err)
	}

	if _, err = p.point.SetBytes(encoded); err != nil {
		return fmt.Errorf("invalid point A: %w", err)
	}

	if p.b, err = helper.ParseScalar(args[2], p.reduce); err != nil {
		return fmt.Errorf("invalid scalar b: %w", err)
	}

	return nil
}
