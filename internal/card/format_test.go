package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDigits(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "4111 1111 1111 1111", want: "4111111111111111"},
		{input: "12/25", want: "1225"},
		{input: "abc", want: ""},
		{input: "", want: ""},
		{input: "1a2b3c", want: "123"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripDigits(tt.input))
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "full visa", input: "4111111111111111", want: "4111 1111 1111 1111"},
		{name: "already spaced", input: "4111 1111 1111 1111", want: "4111 1111 1111 1111"},
		{name: "partial entry", input: "41111", want: "4111 1"},
		{name: "single group", input: "4111", want: "4111"},
		{name: "empty", input: "", want: ""},
		{name: "non-digits dropped", input: "4111-1111-1111-1111", want: "4111 1111 1111 1111"},
		{name: "capped at nineteen digits", input: "12345678901234567890123", want: "1234 5678 9012 3456 789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.input))
		})
	}
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single digit passes through", input: "1", want: "1"},
		{name: "two digits pass through", input: "12", want: "12"},
		{name: "three digits split", input: "123", want: "12 / 3"},
		{name: "four digits split", input: "1225", want: "12 / 25"},
		{name: "truncated to four digits", input: "122534", want: "12 / 25"},
		{name: "separators ignored", input: "12/25", want: "12 / 25"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatExpiry(tt.input))
		})
	}
}

func TestFormatCVC(t *testing.T) {
	assert.Equal(t, "123", FormatCVC("1234", 3))
	assert.Equal(t, "1234", FormatCVC("12345", 4))
	assert.Equal(t, "12", FormatCVC("1x2", 3))
	assert.Equal(t, "", FormatCVC("", 3))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   Brand
	}{
		{name: "visa", number: "4111111111111111", want: BrandVisa},
		{name: "visa single digit", number: "4", want: BrandVisa},
		{name: "mastercard 51", number: "5105105105105100", want: BrandMastercard},
		{name: "mastercard 55", number: "5555555555554444", want: BrandMastercard},
		{name: "mastercard 2-series", number: "2221000000000009", want: BrandMastercard},
		{name: "mastercard 27", number: "2720990000000000", want: BrandMastercard},
		{name: "amex 34", number: "340000000000009", want: BrandAmex},
		{name: "amex 37", number: "371449635398431", want: BrandAmex},
		{name: "discover 6011", number: "6011111111111117", want: BrandDiscover},
		{name: "discover 65", number: "6500000000000002", want: BrandDiscover},
		{name: "spaces tolerated", number: "4111 1111 1111 1111", want: BrandVisa},
		{name: "56 is not mastercard", number: "5600000000000000", want: BrandUnknown},
		{name: "21 is not mastercard", number: "2100000000000000", want: BrandUnknown},
		{name: "60 alone is not discover", number: "6000000000000000", want: BrandUnknown},
		{name: "unknown prefix", number: "9999999999999999", want: BrandUnknown},
		{name: "empty", number: "", want: BrandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.number))
		})
	}
}

func TestCVCLength(t *testing.T) {
	assert.Equal(t, 4, CVCLength(BrandAmex))
	assert.Equal(t, 3, CVCLength(BrandVisa))
	assert.Equal(t, 3, CVCLength(BrandMastercard))
	assert.Equal(t, 3, CVCLength(BrandDiscover))
	assert.Equal(t, 3, CVCLength(BrandUnknown))
}
