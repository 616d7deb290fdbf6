package logger

import (
	"fmt"
	"strings"
)

type Level int

const (
	DEBUG Level = iota
	NOTICE
	INFO
	ERROR
	WARN
	FATAL
)

var levelNames = []string{
	"DEBUG",
	"NOTICE",
	"INFO",
	"ERROR",
	"WARN",
	"FATAL",
}

// String returns the string representation of a logging level.
func (p Level) String() string {
	return levelNames[p]
}

// LevelFromString converts a level string to a Level.
func LevelFromString(str string) (Level, error) {
	switch strings.ToLower(str) {
	case "debug":
		return DEBUG, nil
	case "notice":
		return NOTICE, nil
	case "info":
		return INFO, nil
	case "error":
		return ERROR, nil
	case "warn":
		return WARN, nil
	case "fatal":
		return FATAL, nil
	default:
		return FATAL, fmt.Errorf("invalid log level %q", str)
	}
}
