package clicommand

import (
	"errors"
	"fmt"
	"testing"
)

func TestPrintMessageAndReturnExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil",
			err:  nil,
			want: 0,
		},
		{
			name: "plain error",
			err:  errors.New("yeah nah"),
			want: 1,
		},
		{
			name: "exit error",
			err:  NewExitError(42, errors.New("nah yeah")),
			want: 42,
		},
		{
			name: "wrapped exit error",
			err:  fmt.Errorf("decoding: %w", NewExitError(2, errors.New("bad status"))),
			want: 2,
		},
		{
			name: "silent exit error",
			err:  NewSilentExitError(143),
			want: 143,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := PrintMessageAndReturnExitCode(test.err); got != test.want {
				t.Errorf("PrintMessageAndReturnExitCode(%v) = %d, want %d", test.err, got, test.want)
			}
		})
	}
}
