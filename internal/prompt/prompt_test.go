package prompt

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"50", "50"},
		{"50.00", "50"},
		{"23.74", "23.74"},
		{" 23.74 \n", "23.74"},
		{"12.", "12"},
		{".5", "0.5"},
		{"+7", "7"},
		{"0", "0"},
		{"-0", "0"},
		{"0.001", "0.001"},
		{"79228162514264337593543950335", "79228162514264337593543950335"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.Truef(t, got.Equal(decimal.RequireFromString(tt.want)), "ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		})
	}
}

func TestParseAmountInvalidFormat(t *testing.T) {
	for _, in := range []string{"", " ", "abc", "$5", "5$", "1,000", "1.2.3", "1e5", ".", "-", "12 34", "0x10"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAmount(in)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestParseAmountOutOfRange(t *testing.T) {
	got, err := ParseAmount("-3")
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.True(t, got.IsNegative(), "negative value should be returned with the error")

	got, err = ParseAmount("79228162514264337593543950336")
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.True(t, got.GreaterThan(MaxAmount))
}

func newReader(input string) (*Reader, *bytes.Buffer) {
	var out bytes.Buffer
	return NewReader(bufio.NewReader(strings.NewReader(input)), &out), &out
}

func TestReadAmount(t *testing.T) {
	r, out := newReader("50.00\n")

	got, err := r.ReadAmount(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("50")))
	assert.Empty(t, out.String())
}

func TestReadAmountRetries(t *testing.T) {
	r, out := newReader("abc\n$5\n-3\n99999999999999999999999999999999\n12.34\n")

	got, err := r.ReadAmount(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("12.34")), "got %s", got)

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Could not understand the user's input."))
	assert.Contains(t, text, "Please try again with a number greater than 0.0")
	assert.Contains(t, text, "Please try again with a number between 0 and 79228162514264337593543950335")
}

func TestReadAmountLastLineWithoutNewline(t *testing.T) {
	r, _ := newReader("7.25")

	got, err := r.ReadAmount(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("7.25")))
}

func TestReadAmountInputClosed(t *testing.T) {
	r, _ := newReader("")
	_, err := r.ReadAmount(context.Background())
	assert.ErrorIs(t, err, ErrInputClosed)

	r, out := newReader("oops")
	_, err = r.ReadAmount(context.Background())
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, out.String(), "Could not understand the user's input.")
}

func TestReadAmountMaxAttempts(t *testing.T) {
	r, _ := newReader("a\nb\nc\n5\n")
	r.MaxAttempts = 2

	_, err := r.ReadAmount(context.Background())
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestReadAmountCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, _ := newReader("5\n")
	_, err := r.ReadAmount(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
