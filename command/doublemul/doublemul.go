package doublemul

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/noot/go-ge25519"
	"github.com/noot/go-ge25519/command"
)

func GetCommand() *cobra.Command {
	doubleMulCmd := &cobra.Command{
		Use:     "doublemul <a> <A> <b>",
		Short:   "Computes a*A + b*B in variable time. Do not use with secret inputs",
		Args:    cobra.ExactArgs(3),
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	setFlags(doubleMulCmd)

	return doubleMulCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(
		&params.reduce,
		reduceFlag,
		false,
		"reduce both scalars modulo the group order before multiplying",
	)
}

func runPreRun(_ *cobra.Command, args []string) error {
	return params.initRawParams(args)
}

func runCommand(cmd *cobra.Command, args []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	logger := command.NewLogger(cmd)
	logger.Debug("running variable-time double scalar multiplication", "reduce", params.reduce)

	var r ge25519.ProjectivePoint
	r.VarTimeDoubleScalarBaseMult(params.a, &params.point, params.b)
	enc := r.Bytes()

	outputter.SetCommandResult(&DoubleMulResult{
		A:      hex.EncodeToString(params.a[:]),
		PointA: args[1],
		B:      hex.EncodeToString(params.b[:]),
		Point:  hex.EncodeToString(enc[:]),
	})
}
