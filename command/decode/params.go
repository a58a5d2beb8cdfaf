package decode

import (
	"errors"

	"github.com/noot/go-ge25519/command/helper"
)

const (
	negateFlag = "negate"
)

var (
	params = &decodeParams{}
)

var (
	errNoPoint = errors.New("no point passed in")
)

type decodeParams struct {
	negate bool

	encoded *[32]byte
}

func (p *decodeParams) initRawParams(args []string) error {
	if len(args) == 0 {
		return errNoPoint
	}

	encoded, err := helper.DecodeHex32(args[0])
	if err != nil {
		return err
	}

	p.encoded = encoded

	return nil
}
