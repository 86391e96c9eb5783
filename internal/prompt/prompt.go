// Package prompt reads validated monetary amounts from a line-oriented
// console. Malformed and out-of-range input is reported to the user and the
// read is retried until a usable amount arrives or the input closes.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/majorcontext/teller/internal/log"
)

var (
	// ErrInvalidFormat is returned for text that is not a plain decimal number.
	ErrInvalidFormat = errors.New("invalid amount format")
	// ErrOutOfRange is returned for negative amounts and amounts above MaxAmount.
	ErrOutOfRange = errors.New("amount out of range")
	// ErrInputClosed is returned when the input stream ends before a valid amount.
	ErrInputClosed = errors.New("input closed")
	// ErrTooManyAttempts is returned when Reader.MaxAttempts is exceeded.
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// MaxAmount is the largest accepted amount: the largest integer a 96-bit
// decimal mantissa can hold.
var MaxAmount = decimal.RequireFromString("79228162514264337593543950335")

// amountPattern allows an optional sign, digits and at most one decimal point.
var amountPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// ParseAmount parses s as a non-negative amount no larger than MaxAmount.
// On ErrOutOfRange the parsed value is returned alongside the error so the
// caller can tell which bound was violated.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(s, "+-")
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}
	if neg {
		amount = amount.Neg()
	}

	if amount.IsNegative() || amount.GreaterThan(MaxAmount) {
		return amount, fmt.Errorf("%s: %w", amount, ErrOutOfRange)
	}
	return amount, nil
}

// Reader prompts for amounts on a line-oriented input.
type Reader struct {
	in  *bufio.Reader
	out io.Writer

	// MaxAttempts bounds the number of invalid entries tolerated by a single
	// ReadAmount call. Zero means unlimited.
	MaxAttempts int
}

// NewReader creates a Reader that reads lines from in and writes retry
// messages to out.
func NewReader(in *bufio.Reader, out io.Writer) *Reader {
	return &Reader{in: in, out: out}
}

// ReadAmount blocks until a valid amount is entered. It returns an error
// wrapping ErrInputClosed when the input ends, the context error when ctx is
// done, or ErrTooManyAttempts when MaxAttempts is exceeded.
func (r *Reader) ReadAmount(ctx context.Context) (decimal.Decimal, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return decimal.Zero, err
		}

		line, readErr := r.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return decimal.Zero, fmt.Errorf("reading amount: %w", readErr)
		}
		if readErr != nil && line == "" {
			return decimal.Zero, fmt.Errorf("reading amount: %w", ErrInputClosed)
		}

		amount, err := ParseAmount(line)
		if err == nil {
			return amount, nil
		}
		log.Debug("rejected amount", "input", strings.TrimSpace(line), "attempt", attempt, "error", err)
		r.explain(amount, err)

		if r.MaxAttempts > 0 && attempt >= r.MaxAttempts {
			return decimal.Zero, fmt.Errorf("after %d attempts: %w", attempt, ErrTooManyAttempts)
		}
		if readErr != nil {
			return decimal.Zero, fmt.Errorf("reading amount: %w", ErrInputClosed)
		}
	}
}

func (r *Reader) explain(amount decimal.Decimal, err error) {
	switch {
	case errors.Is(err, ErrOutOfRange) && amount.IsNegative():
		fmt.Fprintln(r.out, "\nPlease try again with a number greater than 0.0")
	case errors.Is(err, ErrOutOfRange):
		fmt.Fprintln(r.out, "\nUser entered too large or small of a number.")
		fmt.Fprintf(r.out, "Please try again with a number between 0 and %s\n", MaxAmount)
	default:
		fmt.Fprintln(r.out, "\nCould not understand the user's input.")
		fmt.Fprintln(r.out, "Please make sure only numbers and decimal points are included.")
	}
}
