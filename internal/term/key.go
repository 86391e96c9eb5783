// Package term reads single keystrokes from the console for menu selection.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// KeyInterrupt is Ctrl-C as delivered in raw mode.
	KeyInterrupt byte = 0x03
	// KeyEOF is Ctrl-D as delivered in raw mode.
	KeyEOF byte = 0x04
)

// InterruptError is returned when the user presses Ctrl-C while the terminal
// is in raw mode and the signal is not delivered to the process.
type InterruptError struct {
	Key byte
}

func (e InterruptError) Error() string {
	return fmt.Sprintf("interrupted (key 0x%02x)", e.Key)
}

// IsInterrupt returns true if the error is an InterruptError.
func IsInterrupt(err error) bool {
	var ie InterruptError
	return errors.As(err, &ie)
}

// KeyReader returns one keystroke at a time.
//
// When tty is a terminal each read switches it to raw mode so the key is
// delivered without echo or waiting for Enter. Otherwise bytes come from the
// buffered reader as-is: line terminators before a key are skipped and one
// directly after it is consumed, so scripted input can place each choice on
// its own line and follow it with a line-oriented answer.
//
// The buffered reader should be shared with any line-oriented reader on the
// same input so read-ahead is not lost.
type KeyReader struct {
	in  *bufio.Reader
	tty *os.File
}

// NewKeyReader creates a KeyReader over in. tty may be nil.
func NewKeyReader(in *bufio.Reader, tty *os.File) *KeyReader {
	if tty != nil && !IsTerminal(tty) {
		tty = nil
	}
	return &KeyReader{in: in, tty: tty}
}

// Raw reports whether keys are read in raw mode.
func (k *KeyReader) Raw() bool {
	return k.tty != nil
}

// ReadKey blocks until a key is available.
func (k *KeyReader) ReadKey() (byte, error) {
	if k.tty != nil {
		return k.readRaw()
	}
	for {
		b, err := k.in.ReadByte()
		if err != nil {
			return 0, err
		}
		if b == '\r' || b == '\n' {
			continue
		}
		k.skipLineEnd()
		return b, nil
	}
}

func (k *KeyReader) skipLineEnd() {
	for _, end := range []byte{'\r', '\n'} {
		next, err := k.in.Peek(1)
		if err != nil || next[0] != end {
			continue
		}
		k.in.ReadByte()
	}
}

func (k *KeyReader) readRaw() (byte, error) {
	var b byte
	err := withRawMode(k.tty, func() error {
		var err error
		b, err = k.in.ReadByte()
		return err
	})
	if err != nil {
		return 0, err
	}

	switch b {
	case KeyInterrupt:
		return 0, InterruptError{Key: b}
	case KeyEOF:
		return 0, io.EOF
	}
	return b, nil
}
