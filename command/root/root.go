package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/noot/go-ge25519/command"
	"github.com/noot/go-ge25519/command/basemul"
	"github.com/noot/go-ge25519/command/decode"
	"github.com/noot/go-ge25519/command/doublemul"
	"github.com/noot/go-ge25519/command/montgomery"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Use:   "ge25519",
			Short: "Inspects edwards25519 points: encoding, decoding and scalar multiplication",
		},
	}

	rootCommand.registerPersistentFlags()
	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerPersistentFlags() {
	rc.baseCmd.PersistentFlags().Bool(
		command.JSONOutputFlag,
		false,
		"get all outputs in json format (default false)",
	)
	rc.baseCmd.PersistentFlags().String(
		command.LogLevelFlag,
		command.DefaultLogLevel,
		"the log level for console output",
	)
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		basemul.GetCommand(),
		decode.GetCommand(),
		doublemul.GetCommand(),
		montgomery.GetCommand(),
	)
}

// Command returns the underlying cobra command.
func (rc *RootCommand) Command() *cobra.Command {
	return rc.baseCmd
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
