package card

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantError string
	}{
		{name: "simple name", input: "Jane Doe", wantValid: true},
		{name: "hyphen and apostrophe", input: "Mary-Jane O'Brien", wantValid: true},
		{name: "accented letters", input: "Renée Müller", wantValid: true},
		{name: "empty", input: "", wantValid: false, wantError: "Cardholder name is required"},
		{name: "whitespace only", input: "   ", wantValid: false, wantError: "Cardholder name is required"},
		{name: "too short", input: "J", wantValid: false, wantError: "Cardholder name must be at least 2 characters"},
		{name: "too long", input: strings.Repeat("a", 51), wantValid: false, wantError: "Cardholder name must be 50 characters or fewer"},
		{name: "exactly fifty", input: strings.Repeat("a", 50), wantValid: true},
		{name: "digits rejected", input: "Jane D0e", wantValid: false, wantError: "Cardholder name contains invalid characters"},
		{name: "punctuation rejected", input: "Jane. Doe", wantValid: false, wantError: "Cardholder name contains invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateName(tt.input)
			assert.Equal(t, tt.wantValid, v.Valid)
			assert.Equal(t, tt.wantError, v.Error)
		})
	}
}

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantError string
	}{
		{name: "valid visa", input: "4111111111111111", wantValid: true},
		{name: "valid visa with display spaces", input: "4111 1111 1111 1111", wantValid: true},
		{name: "valid mastercard", input: "5105105105105100", wantValid: true},
		{name: "valid amex", input: "371449635398431", wantValid: true},
		{name: "valid 13 digit", input: "4222222222222", wantValid: true},
		{name: "empty", input: "", wantValid: false, wantError: "Card number is required"},
		{name: "letters", input: "4111abcd11111111", wantValid: false, wantError: "Card number must contain only digits"},
		{name: "too short", input: "411111111111", wantValid: false, wantError: "Card number must be between 13 and 19 digits"},
		{name: "too long", input: "41111111111111111111", wantValid: false, wantError: "Card number must be between 13 and 19 digits"},
		{name: "fails checksum", input: "4111111111111112", wantValid: false, wantError: "Card number is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateNumber(tt.input)
			assert.Equal(t, tt.wantValid, v.Valid)
			assert.Equal(t, tt.wantError, v.Error)
		})
	}
}

func TestLuhn(t *testing.T) {
	passing := []string{
		"4111111111111111",
		"5105105105105100",
		"371449635398431",
		"6011111111111117",
		"4222222222222",
	}
	for _, number := range passing {
		assert.True(t, Luhn(number), number)
	}

	failing := []string{
		"4111111111111112",
		"1234567890123456",
		"0000000000000001",
	}
	for _, number := range failing {
		assert.False(t, Luhn(number), number)
	}
}

func TestValidateExpiry(t *testing.T) {
	// Fixed reference: June 2026.
	ref := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantError string
	}{
		{name: "future year", input: "12 / 27", wantValid: true},
		{name: "current month is still valid", input: "06 / 26", wantValid: true},
		{name: "later month this year", input: "07 / 26", wantValid: true},
		{name: "compact format", input: "12/27", wantValid: true},
		{name: "empty", input: "", wantValid: false, wantError: "Expiry date is required"},
		{name: "no separator", input: "1227", wantValid: false, wantError: "Expiry date must be in MM/YY format"},
		{name: "too many parts", input: "12/27/01", wantValid: false, wantError: "Expiry date must be in MM/YY format"},
		{name: "non-numeric month", input: "ab / 27", wantValid: false, wantError: "Expiry date must be in MM/YY format"},
		{name: "month zero", input: "00 / 27", wantValid: false, wantError: "Expiry month is invalid"},
		{name: "month thirteen", input: "13 / 27", wantValid: false, wantError: "Expiry month is invalid"},
		{name: "one month in the past", input: "05 / 26", wantValid: false, wantError: "Card has expired"},
		{name: "previous year", input: "12 / 25", wantValid: false, wantError: "Card has expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateExpiry(tt.input, ref)
			assert.Equal(t, tt.wantValid, v.Valid)
			assert.Equal(t, tt.wantError, v.Error)
		})
	}
}

func TestValidateCVC(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		brand     Brand
		wantValid bool
		wantError string
	}{
		{name: "three digits for visa", input: "123", brand: BrandVisa, wantValid: true},
		{name: "four digits for amex", input: "1234", brand: BrandAmex, wantValid: true},
		{name: "three digits for unknown brand", input: "123", brand: BrandUnknown, wantValid: true},
		{name: "empty", input: "", brand: BrandVisa, wantValid: false, wantError: "Security code is required"},
		{name: "letters", input: "12a", brand: BrandVisa, wantValid: false, wantError: "Security code must contain only digits"},
		{name: "four digits for visa", input: "1234", brand: BrandVisa, wantValid: false, wantError: "Security code must be 3 digits"},
		{name: "three digits for amex", input: "123", brand: BrandAmex, wantValid: false, wantError: "Security code must be 4 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateCVC(tt.input, tt.brand)
			assert.Equal(t, tt.wantValid, v.Valid)
			assert.Equal(t, tt.wantError, v.Error)
		})
	}
}

func TestValidateCountry(t *testing.T) {
	assert.True(t, ValidateCountry("US").Valid)
	assert.False(t, ValidateCountry("").Valid)
	assert.Equal(t, "Please select a country", ValidateCountry("  ").Error)
}
