package clicommand

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	"github.com/buildkite/pstatus/logger"
)

func TestSignalName(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("signal names differ on windows")
	}

	buf := &bytes.Buffer{}
	cfg := SignalConfig{Number: "15"}

	if err := signalName(buf, cfg, logger.NewBuffer()); err != nil {
		t.Fatalf("signalName(buf, %v, l) = %v", cfg, err)
	}

	if got, want := buf.String(), "SIGTERM\n"; got != want {
		t.Errorf("signalName output = %q, want %q", got, want)
	}
}

func TestSignalNameUnknown(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("signal names differ on windows")
	}

	buf := &bytes.Buffer{}
	cfg := SignalConfig{Number: "100"}

	if err := signalName(buf, cfg, logger.NewBuffer()); err != nil {
		t.Fatalf("signalName(buf, %v, l) = %v", cfg, err)
	}

	if got, want := buf.String(), "100\n"; got != want {
		t.Errorf("signalName output = %q, want %q", got, want)
	}
}

func TestSignalNameInvalidNumber(t *testing.T) {
	cfg := SignalConfig{Number: "fifteen"}

	err := signalName(&bytes.Buffer{}, cfg, logger.NewBuffer())
	if want := NewExitError(2, nil); !errors.Is(err, want) {
		t.Errorf("signalName(buf, %v, l) = %v, want exit code 2", cfg, err)
	}
}
