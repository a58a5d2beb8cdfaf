package basemul

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/noot/go-ge25519"
	"github.com/noot/go-ge25519/command"
)

func GetCommand() *cobra.Command {
	baseMulCmd := &cobra.Command{
		Use:     "basemul <scalar>",
		Short:   "Multiplies the base point by a little-endian hex scalar and prints the encoded result",
		Args:    cobra.ExactArgs(1),
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	setFlags(baseMulCmd)

	return baseMulCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(
		&params.reduce,
		reduceFlag,
		false,
		"reduce the scalar modulo the group order before multiplying",
	)
}

func runPreRun(_ *cobra.Command, args []string) error {
	return params.initRawParams(args)
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	logger := command.NewLogger(cmd)
	logger.Debug("multiplying base point", "reduce", params.reduce)

	p := new(ge25519.ExtendedPoint).ScalarMultBase(params.scalar)
	enc := p.Bytes()

	outputter.SetCommandResult(&BaseMulResult{
		Scalar: hex.EncodeToString(params.scalar[:]),
		Point:  hex.EncodeToString(enc[:]),
	})
}
