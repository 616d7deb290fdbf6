package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/term"
)

const (
	nocolor   = "0"
	red       = "31"
	yellow    = "33"
	green     = "38;5;48"
	gray      = "38;5;251"
	lightgray = "38;5;243"
	cyan      = "1;36"
)

const DateFormat = "2006-01-02 15:04:05"

var (
	mutex         = sync.Mutex{}
	windowsColors bool
)

// Logger is a logger with level filtering and structured fields.
type Logger interface {
	Debug(format string, v ...any)
	Error(format string, v ...any)
	Fatal(format string, v ...any)
	Notice(format string, v ...any)
	Warn(format string, v ...any)
	Info(format string, v ...any)

	WithFields(fields ...Field) Logger
	SetLevel(level Level)
	Level() Level
}

// ConsoleLogger is a Logger that formats messages through a Printer. After a
// Fatal message it hands the exit code 1 to its exit function rather than
// exiting itself, so callers control process death.
type ConsoleLogger struct {
	level   Level
	printer Printer
	fields  Fields
	exitFn  func(int)
}

func NewConsoleLogger(printer Printer, exitFn func(int)) Logger {
	return &ConsoleLogger{
		level:   NOTICE,
		printer: printer,
		exitFn:  exitFn,
	}
}

// WithFields returns a copy of the logger with the provided fields appended
func (l *ConsoleLogger) WithFields(fields ...Field) Logger {
	clone := *l
	clone.fields = append(Fields(nil), l.fields...)
	clone.fields.Add(fields...)
	return &clone
}

// SetLevel sets the minimum level that the logger will print
func (l *ConsoleLogger) SetLevel(level Level) {
	l.level = level
}

func (l *ConsoleLogger) Level() Level {
	return l.level
}

func (l *ConsoleLogger) Debug(format string, v ...any) {
	l.log(DEBUG, format, v...)
}

func (l *ConsoleLogger) Notice(format string, v ...any) {
	l.log(NOTICE, format, v...)
}

func (l *ConsoleLogger) Info(format string, v ...any) {
	l.log(INFO, format, v...)
}

func (l *ConsoleLogger) Error(format string, v ...any) {
	l.log(ERROR, format, v...)
}

func (l *ConsoleLogger) Warn(format string, v ...any) {
	l.log(WARN, format, v...)
}

func (l *ConsoleLogger) Fatal(format string, v ...any) {
	l.log(FATAL, format, v...)
	l.exitFn(1)
}

func (l *ConsoleLogger) log(level Level, format string, v ...any) {
	if level < l.level {
		return
	}
	l.printer.Print(level, fmt.Sprintf(format, v...), l.fields)
}

// Printer renders a single log message somewhere.
type Printer interface {
	Print(level Level, message string, fields Fields)
}

// TextPrinter prints log messages as text lines, colored when the output
// supports it.
type TextPrinter struct {
	Colors bool
	Writer io.Writer
}

func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{
		Colors: ColorsAvailable(),
		Writer: w,
	}
}

// ColorsAvailable returns whether or not colors can be shown
func ColorsAvailable() bool {
	// Color support for windows is set in init
	if runtime.GOOS == "windows" && !windowsColors {
		return false
	}

	// Colors can only be shown if STDOUT is a terminal
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func (p *TextPrinter) Print(level Level, message string, fields Fields) {
	now := time.Now().Format(DateFormat)

	suffix := ""
	for _, field := range fields {
		suffix += " " + field.Key() + "=" + field.String()
	}

	line := ""
	if p.Colors {
		levelColor := green
		messageColor := nocolor

		switch level {
		case DEBUG:
			levelColor = gray
			messageColor = gray
		case NOTICE:
			levelColor = cyan
		case WARN:
			levelColor = yellow
		case ERROR:
			levelColor = red
		case FATAL:
			levelColor = red
			messageColor = red
		}

		if suffix != "" {
			line = fmt.Sprintf("\x1b[%sm%s %-6s\x1b[0m \x1b[%sm%s\x1b[0m\x1b[%sm%s\x1b[0m\n", levelColor, now, level, messageColor, message, lightgray, suffix)
		} else {
			line = fmt.Sprintf("\x1b[%sm%s %-6s\x1b[0m \x1b[%sm%s\x1b[0m\n", levelColor, now, level, messageColor, message)
		}
	} else {
		line = fmt.Sprintf("%s %-6s %s%s\n", now, level, message, suffix)
	}

	// Make sure we're only outputting a line one at a time
	mutex.Lock()
	fmt.Fprint(p.Writer, line)
	mutex.Unlock()
}

// JSONPrinter prints log messages as single-line JSON objects with ts, level
// and msg keys, plus one key per field.
type JSONPrinter struct {
	Writer io.Writer
}

func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{
		Writer: w,
	}
}

func (p *JSONPrinter) Print(level Level, message string, fields Fields) {
	entry := map[string]string{
		"ts":    time.Now().Format(DateFormat),
		"level": level.String(),
		"msg":   message,
	}
	for _, field := range fields {
		entry[field.Key()] = field.String()
	}

	b, _ := json.Marshal(entry)

	mutex.Lock()
	fmt.Fprintf(p.Writer, "%s\n", b)
	mutex.Unlock()
}

// Discard is a Logger that throws everything away.
var Discard Logger = discarder{}

type discarder struct{}

func (discarder) Debug(string, ...any)         {}
func (discarder) Error(string, ...any)         {}
func (discarder) Fatal(string, ...any)         {}
func (discarder) Notice(string, ...any)        {}
func (discarder) Warn(string, ...any)          {}
func (discarder) Info(string, ...any)          {}
func (d discarder) WithFields(...Field) Logger { return d }
func (discarder) SetLevel(Level)               {}
func (discarder) Level() Level                 { return FATAL }
