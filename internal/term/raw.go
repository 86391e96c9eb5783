//go:build !windows

package term

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// withRawMode runs fn with f in raw mode (no echo, no line buffering) and
// restores the previous state afterwards, even when fn fails.
func withRawMode(f *os.File, fn func() error) error {
	fd := int(f.Fd())
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	fnErr := fn()
	if err := term.Restore(fd, prev); err != nil && fnErr == nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return fnErr
}

// IsTerminal returns true if the file is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
