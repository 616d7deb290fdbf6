package clicommand

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/urfave/cli"
)

var ConfigFlag = cli.StringFlag{
	Name:   "config",
	Value:  "",
	Usage:  "Path to a configuration file",
	EnvVar: "PSTATUS_CONFIG",
}

var DebugFlag = cli.BoolFlag{
	Name:   "debug",
	Usage:  "Enable debug mode",
	EnvVar: "PSTATUS_DEBUG",
}

var NoColorFlag = cli.BoolFlag{
	Name:   "no-color",
	Usage:  "Don't show colors in logging",
	EnvVar: "PSTATUS_NO_COLOR",
}

var LogLevelFlag = cli.StringFlag{
	Name:   "log-level",
	Value:  "notice",
	Usage:  "Set the log level, making the output more or less verbose (debug, notice, info, error, warn, fatal)",
	EnvVar: "PSTATUS_LOG_LEVEL",
}

var LogFormatFlag = cli.StringFlag{
	Name:   "log-format",
	Value:  "text",
	Usage:  "The format to use for the logger output (text, json)",
	EnvVar: "PSTATUS_LOG_FORMAT",
}

type GlobalConfig struct {
	Config    string `cli:"config" normalize:"filepath"`
	Debug     bool   `cli:"debug"`
	LogLevel  string `cli:"log-level"`
	LogFormat string `cli:"log-format" validate:"required"`
	NoColor   bool   `cli:"no-color"`
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		NoColorFlag,
		DebugFlag,
		LogLevelFlag,
		LogFormatFlag,
		ConfigFlag,
	}
}

func DefaultConfigFilePaths() (paths []string) {
	// Toggle between windows and *nix paths
	if runtime.GOOS == "windows" {
		paths = []string{
			"$USERPROFILE\\AppData\\Local\\pstatus\\pstatus.cfg",
		}
	} else {
		paths = []string{
			"$HOME/.pstatus/pstatus.cfg",
			"/usr/local/etc/pstatus/pstatus.cfg",
			"/etc/pstatus/pstatus.cfg",
		}
	}

	// Also check to see if there's a pstatus.cfg in the folder that the
	// binary is running in.
	pathToBinary, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err == nil {
		pathToRelativeConfig := filepath.Join(pathToBinary, "pstatus.cfg")
		paths = append([]string{pathToRelativeConfig}, paths...)
	}

	return
}
