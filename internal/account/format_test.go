package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		balance string
		want    string
	}{
		{"386.50", "$386.50"},
		{"50.3", "$50.30"},
		{"0.37", "$0.37"},
		{"0.0", "$0.00"},
		{"521.05", "$521.05"},
		{"1000", "$1,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"999.995", "$1,000.00"},
		{"0.005", "$0.01"},
		{"0.004", "$0.00"},
		{"-12.5", "-$12.50"},
		{"-0.001", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.balance, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(d(tt.balance)))
		})
	}
}

func TestLocaleFormat(t *testing.T) {
	euro := Locale{Symbol: "€", DecimalSep: ",", GroupSep: "."}
	assert.Equal(t, "€1.234,50", euro.Format(d("1234.5")))

	plain := Locale{Symbol: "$", DecimalSep: "."}
	assert.Equal(t, "$1234567.00", plain.Format(d("1234567")))
}

func TestGroup(t *testing.T) {
	tests := map[string]string{
		"0":       "0",
		"123":     "123",
		"1234":    "1,234",
		"123456":  "123,456",
		"1234567": "1,234,567",
	}
	for in, want := range tests {
		assert.Equal(t, want, group(in, ","), "group(%q)", in)
	}
}
