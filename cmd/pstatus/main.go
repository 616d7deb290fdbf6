package main

import (
	"fmt"
	"os"

	"github.com/buildkite/pstatus/clicommand"
	"github.com/buildkite/pstatus/version"
	"github.com/urfave/cli"
)

var AppHelpTemplate = `pstatus splits process termination statuses into their exit code,
terminating signal and core dump flag.

Usage:

  {{.Name}} <command> [options...]

The commands are:

  {{range .Commands}}{{.Name}}{{with .ShortName}}, {{.}}{{end}}{{ "\t" }}{{.Usage}}
  {{end}}
Use "{{.Name}} help <command>" for more information about a command.

`

var CommandHelpTemplate = `{{.Description}}

Options:

   {{range .Flags}}{{.}}
   {{end}}
`

func main() {
	cli.AppHelpTemplate = AppHelpTemplate
	cli.CommandHelpTemplate = CommandHelpTemplate
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "%s version %s, build %s\n", c.App.Name, c.App.Version, version.BuildVersion())
	}

	app := cli.NewApp()
	app.Name = "pstatus"
	app.Version = version.Version()
	app.Commands = []cli.Command{
		clicommand.DecodeCommand,
		clicommand.SignalCommand,
	}

	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return clicommand.NewSilentExitError(1)
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(clicommand.PrintMessageAndReturnExitCode(err))
	}
}
