package montgomery

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noot/go-ge25519"
	"github.com/noot/go-ge25519/command"
	"github.com/noot/go-ge25519/command/helper"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "montgomery <point>",
		Short: "Prints the X25519 u-coordinate of a compressed Edwards point",
		Args:  cobra.ExactArgs(1),
		Run:   runCommand,
	}
}

type MontgomeryResult struct {
	Point string `json:"point"`
	U     string `json:"u"`
}

func (r *MontgomeryResult) GetOutput() string {
	return helper.FormatKV([]string{
		fmt.Sprintf("Edwards point|%s", r.Point),
		fmt.Sprintf("Montgomery u|%s", r.U),
	})
}

func runCommand(cmd *cobra.Command, args []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	encoded, err := helper.DecodeHex32(args[0])
	if err != nil {
		outputter.SetError(err)

		return
	}

	var p ge25519.ExtendedPoint
	if _, err := p.SetBytes(encoded); err != nil {
		outputter.SetError(fmt.Errorf("unable to decode point: %w", err))

		return
	}

	command.NewLogger(cmd).Debug("mapping to montgomery form")

	u := p.BytesMontgomery()

	outputter.SetCommandResult(&MontgomeryResult{
		Point: args[0],
		U:     hex.EncodeToString(u[:]),
	})
}
