//go:build windows

package term

import (
	"errors"
	"os"
)

func withRawMode(f *os.File, fn func() error) error {
	return errors.New("raw mode not supported on Windows")
}

// IsTerminal always reports false on Windows, so keys are read line by line.
func IsTerminal(f *os.File) bool {
	return false
}
