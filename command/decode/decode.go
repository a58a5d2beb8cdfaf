package decode

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noot/go-ge25519"
	"github.com/noot/go-ge25519/command"
	"github.com/noot/go-ge25519/internal/fe"
)

func GetCommand() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:     "decode <point>",
		Short:   "Decodes a compressed point and prints its affine coordinates",
		Args:    cobra.ExactArgs(1),
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	setFlags(decodeCmd)

	return decodeCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(
		&params.negate,
		negateFlag,
		false,
		"decode the negation of the encoded point, as signature verification does",
	)
}

func runPreRun(_ *cobra.Command, args []string) error {
	return params.initRawParams(args)
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	logger := command.NewLogger(cmd)

	var (
		p   ge25519.ExtendedPoint
		err error
	)

	if params.negate {
		_, err = p.SetBytesNegate(params.encoded)
	} else {
		_, err = p.SetBytes(params.encoded)
	}

	if err != nil {
		logger.Debug("decoding failed", "input", hex.EncodeToString(params.encoded[:]))
		outputter.SetError(fmt.Errorf("unable to decode point: %w", err))

		return
	}

	var recip, x, y fe.Element
	recip.Invert(&p.Z)
	x.Multiply(&p.X, &recip)
	y.Multiply(&p.Y, &recip)

	enc := p.Bytes()

	outputter.SetCommandResult(&DecodeResult{
		Input:    hex.EncodeToString(params.encoded[:]),
		Negated:  params.negate,
		X:        hex.EncodeToString(x.Bytes()),
		Y:        hex.EncodeToString(y.Bytes()),
		Encoding: hex.EncodeToString(enc[:]),
	})
}
