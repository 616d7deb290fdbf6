package clicommand

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/buildkite/pstatus"
	"github.com/buildkite/pstatus/logger"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

const decodeDescription = `Usage:

    pstatus decode [options...] [--] <status> [status...]

Description:

Splits raw process termination statuses into their exit code, terminating
signal and core dump flag, one line of output per status.

By default a status is treated as a native wait status, using the bit layout
produced by the wait family of system calls. Pass --simplified to treat
statuses as simplified return codes instead, where a negative value holds
the terminating signal and core dump information does not exist.

Negative statuses must follow a -- terminator so they aren't parsed as
flags.

Example:

    # Decodes a native wait status
    $ pstatus decode 35584

    # Decodes several statuses as JSON lines
    $ pstatus decode --format json 0 15 35584

    # Decodes a simplified return code
    $ pstatus decode --simplified -- -15`

type DecodeConfig struct {
	GlobalConfig

	Statuses   []string `cli:"arg:*" label:"status words" validate:"required"`
	Simplified bool     `cli:"simplified"`
	Format     string   `cli:"format" validate:"required"`
	ExitStatus bool     `cli:"exit-status"`
}

var DecodeCommand = cli.Command{
	Name:        "decode",
	Usage:       "Split termination statuses into exit code, signal and core dump flag",
	Description: decodeDescription,
	Flags: slices.Concat(globalFlags(), []cli.Flag{
		cli.BoolFlag{
			Name:   "simplified",
			Usage:  "Treat statuses as simplified return codes rather than native wait statuses",
			EnvVar: "PSTATUS_SIMPLIFIED",
		},
		cli.StringFlag{
			Name:   "format",
			Value:  "text",
			Usage:  "Output format to use (text, json, yaml)",
			EnvVar: "PSTATUS_FORMAT",
		},
		cli.BoolFlag{
			Name:   "exit-status",
			Usage:  "Exit with the shell exit code of the last status instead of 0",
			EnvVar: "PSTATUS_EXIT_STATUS",
		},
	}),
	Action: func(c *cli.Context) error {
		cfg, l, err := setupLoggerAndConfig[DecodeConfig](c)
		if err != nil {
			return err
		}

		return decodeStatuses(c.App.Writer, cfg, l)
	},
}

// decodedStatus is one row of --format json or yaml output. Absent parts of
// the status render as null rather than a sentinel value.
type decodedStatus struct {
	Status int   `json:"status" yaml:"status"`
	Exit   *int  `json:"exit" yaml:"exit"`
	Signal *int  `json:"signal" yaml:"signal"`
	Core   *bool `json:"core" yaml:"core"`
	OK     bool  `json:"ok" yaml:"ok"`
}

func newDecodedStatus(status int, s pstatus.Status) decodedStatus {
	d := decodedStatus{Status: status, OK: s.OK()}
	if exit, ok := s.Exit(); ok {
		d.Exit = &exit
	}
	if signal, ok := s.Signal(); ok {
		d.Signal = &signal
	}
	if core, ok := s.Core(); ok {
		d.Core = &core
	}
	return d
}

func decodeStatuses(w io.Writer, cfg DecodeConfig, l logger.Logger) error {
	mode := pstatus.Native
	if cfg.Simplified {
		mode = pstatus.Simplified
	}

	statuses := make([]int, 0, len(cfg.Statuses))
	for _, arg := range cfg.Statuses {
		status, err := strconv.Atoi(arg)
		if err != nil {
			return NewExitError(2, fmt.Errorf("%q is not an integer status", arg))
		}
		statuses = append(statuses, status)
	}

	l.Debug("Decoding %d statuses in %s mode", len(statuses), mode)

	switch cfg.Format {
	case "text":
		for _, status := range statuses {
			s := pstatus.Split(status, mode)
			if _, err := fmt.Fprintf(w, "%d: %s\n", status, s); err != nil {
				return err
			}
		}

	case "json":
		enc := json.NewEncoder(w)
		for _, status := range statuses {
			row := newDecodedStatus(status, pstatus.Split(status, mode))
			if err := enc.Encode(row); err != nil {
				return err
			}
		}

	case "yaml":
		rows := make([]decodedStatus, 0, len(statuses))
		for _, status := range statuses {
			rows = append(rows, newDecodedStatus(status, pstatus.Split(status, mode)))
		}
		b, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		if _, err := w.Write(b); err != nil {
			return err
		}

	default:
		return NewExitError(2, fmt.Errorf("unknown format %q, must be text, json or yaml", cfg.Format))
	}

	// Scripts can re-raise the decoded status with --exit-status, the way a
	// shell reports it: the exit code for a normal exit, 128 plus the signal
	// number for a signal death.
	if cfg.ExitStatus {
		last := pstatus.Split(statuses[len(statuses)-1], mode)
		if code := last.ShellExitCode(); code != 0 {
			return NewSilentExitError(code)
		}
	}

	return nil
}
