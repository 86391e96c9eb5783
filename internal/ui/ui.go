// Package ui styles console text for the teller menu and prints user-facing
// warnings. Styling is only applied when the destination is a terminal and
// NO_COLOR is unset.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

var writer io.Writer = os.Stderr

// SetWriter overrides the warning writer (for testing). nil restores stderr.
func SetWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	writer = w
}

var colorOverride *bool

// SetColorEnabled forces styling on or off for every writer (for testing).
func SetColorEnabled(enabled bool) {
	colorOverride = &enabled
}

// ResetColor returns to per-writer terminal detection.
func ResetColor() {
	colorOverride = nil
}

// ColorEnabled reports whether text written to w should be styled.
func ColorEnabled(w io.Writer) bool {
	if colorOverride != nil {
		return *colorOverride
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return detectColor(f)
}

func detectColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Style applies ANSI styling when enabled.
type Style struct {
	color bool
}

// For returns the Style appropriate for w.
func For(w io.Writer) Style {
	return Style{color: ColorEnabled(w)}
}

func (s Style) ansi(code, text string) string {
	if !s.color {
		return text
	}
	return "\033[" + code + "m" + text + "\033[0m"
}

// Bold is used for the menu heading.
func (s Style) Bold(text string) string { return s.ansi("1", text) }

// Dim is used for input hints.
func (s Style) Dim(text string) string { return s.ansi("2", text) }

// Green is used for amounts.
func (s Style) Green(text string) string { return s.ansi("32", text) }

// Red is used for rejected operations.
func (s Style) Red(text string) string { return s.ansi("31", text) }

// Warn prints a user-facing warning.
func Warn(msg string) {
	fmt.Fprintf(writer, "%s %s\n", For(writer).ansi("33", "Warning:"), msg)
}

// Warnf prints a formatted user-facing warning.
func Warnf(format string, args ...any) {
	Warn(fmt.Sprintf(format, args...))
}
