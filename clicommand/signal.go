package clicommand

import (
	"fmt"
	"io"
	"strconv"
	"syscall"

	"github.com/buildkite/pstatus"
	"github.com/buildkite/pstatus/logger"
	"github.com/urfave/cli"
)

const signalDescription = `Usage:

    pstatus signal <number>

Description:

Prints the conventional name of a signal number, such as SIGTERM for 15.
Numbers without a conventional name are printed back as they are.

Example:

    $ pstatus signal 9
    SIGKILL`

type SignalConfig struct {
	GlobalConfig

	Number string `cli:"arg:0" label:"signal number" validate:"required"`
}

var SignalCommand = cli.Command{
	Name:        "signal",
	Usage:       "Print the name of a signal number",
	Description: signalDescription,
	Flags:       globalFlags(),
	Action: func(c *cli.Context) error {
		cfg, l, err := setupLoggerAndConfig[SignalConfig](c)
		if err != nil {
			return err
		}

		return signalName(c.App.Writer, cfg, l)
	},
}

func signalName(w io.Writer, cfg SignalConfig, l logger.Logger) error {
	number, err := strconv.Atoi(cfg.Number)
	if err != nil {
		return NewExitError(2, fmt.Errorf("%q is not a signal number", cfg.Number))
	}

	l.Debug("Naming signal %d", number)

	_, err = fmt.Fprintln(w, pstatus.SignalString(syscall.Signal(number)))
	return err
}
