package clicommand

import (
	"fmt"
	"os"

	"github.com/buildkite/pstatus/cliconfig"
	"github.com/buildkite/pstatus/logger"
	"github.com/oleiade/reflections"
	"github.com/urfave/cli"
)

// setupLoggerAndConfig loads the config for the command from flags, args,
// the environment and any config file, then builds the logger the config
// asks for.
func setupLoggerAndConfig[T any](c *cli.Context) (cfg T, l logger.Logger, err error) {
	loader := cliconfig.Loader{
		CLI:                    c,
		Config:                 &cfg,
		DefaultConfigFilePaths: DefaultConfigFilePaths(),
	}
	if err := loader.Load(); err != nil {
		return cfg, nil, err
	}

	l = CreateLogger(&cfg)

	// Apply the log level if a LogLevel option is present
	if lvl, err := reflections.GetField(&cfg, "LogLevel"); err == nil {
		if s, ok := lvl.(string); ok && s != "" {
			level, err := logger.LevelFromString(s)
			if err != nil {
				return cfg, nil, err
			}
			l.SetLevel(level)
		}
	}

	// Enable debugging if a Debug option is present
	if debug, err := reflections.GetField(&cfg, "Debug"); err == nil && debug == true {
		l.SetLevel(logger.DEBUG)
	}

	return cfg, l, nil
}

// CreateLogger builds a logger from the LogFormat and NoColor fields of a
// config struct.
func CreateLogger(cfg any) logger.Logger {
	var printer logger.Printer

	logFormat := "text"
	if format, err := reflections.GetField(cfg, "LogFormat"); err == nil {
		if s, ok := format.(string); ok && s != "" {
			logFormat = s
		}
	}

	switch logFormat {
	case "text":
		textPrinter := logger.NewTextPrinter(os.Stderr)

		// Turn off colors if a NoColor option is present
		if noColor, err := reflections.GetField(cfg, "NoColor"); err == nil && noColor == true {
			textPrinter.Colors = false
		}

		printer = textPrinter

	case "json":
		printer = logger.NewJSONPrinter(os.Stderr)

	default:
		fmt.Fprintf(os.Stderr, "Unknown log-format %q, must be text or json\n", logFormat)
		os.Exit(1)
	}

	return logger.NewConsoleLogger(printer, os.Exit)
}
