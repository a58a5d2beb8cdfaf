package command

import (
	"fmt"
)

type CLIOutput struct {
	commonOutputFormatter
}

func (cli *CLIOutput) WriteOutput() {
	if cli.errorOutput != nil {
		_, _ = fmt.Fprintln(cli.err, cli.getErrorOutput())

		return
	}

	_, _ = fmt.Fprintln(cli.out, cli.getCommandOutput())
}

func (cli *CLIOutput) getErrorOutput() string {
	return cli.errorOutput.Error()
}

func (cli *CLIOutput) getCommandOutput() string {
	return cli.commandOutput.GetOutput()
}
