package command

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// NewLogger returns the command logger, writing to the command's error
// stream at the level given by the persistent log-level flag.
func NewLogger(cmd *cobra.Command) hclog.Logger {
	level := DefaultLogLevel
	if flag := cmd.Flag(LogLevelFlag); flag != nil {
		level = flag.Value.String()
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "ge25519",
		Level:  hclog.LevelFromString(level),
		Output: cmd.ErrOrStderr(),
	}).Named(cmd.Name())
}
