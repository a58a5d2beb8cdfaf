package basemul

import (
	"errors"

	"github.com/noot/go-ge25519/command/helper"
)

const (
	reduceFlag = "reduce"
)

var (
	params = &baseMulParams{}
)

var (
	errNoScalar = errors.New("no scalar passed in")
)

type baseMulParams struct {
	reduce bool

	scalar *[32]byte
}

func (p *baseMulParams) initRawParams(args []string) error {
	if len(args) == 0 {
		return errNoScalar
	}

	scalar, err := helper.ParseScalar(args[0], p.reduce)
	if err != nil {
		return err
	}

	p.scalar = scalar

	return nil
}
