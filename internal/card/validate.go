package card

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Validation reports whether a field passed its rules. A failing field
// carries the message of the first rule it broke; rules are checked in
// a fixed order so the message is deterministic.
type Validation struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func valid() Validation {
	return Validation{Valid: true}
}

func invalid(message string) Validation {
	return Validation{Valid: false, Error: message}
}

const (
	minNameLength = 2
	maxNameLength = 50
	minCardDigits = 13
	maxCardDigits = 19
)

// ValidateName checks the cardholder name: required, 2-50 characters
// after trimming, restricted to letters, spaces, hyphens and
// apostrophes.
func ValidateName(name string) Validation {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return invalid("Cardholder name is required")
	}
	if utf8.RuneCountInString(trimmed) < minNameLength {
		return invalid("Cardholder name must be at least 2 characters")
	}
	if utf8.RuneCountInString(trimmed) > maxNameLength {
		return invalid("Cardholder name must be 50 characters or fewer")
	}
	for _, r := range trimmed {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '\'' {
			return invalid("Cardholder name contains invalid characters")
		}
	}
	return valid()
}

// ValidateNumber checks the card number: required, digits-only once
// display spaces are stripped, 13-19 digits, passing the Luhn checksum.
func ValidateNumber(number string) Validation {
	if strings.TrimSpace(number) == "" {
		return invalid("Card number is required")
	}

	cleaned := strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] < '0' || cleaned[i] > '9' {
			return invalid("Card number must contain only digits")
		}
	}

	if len(cleaned) < minCardDigits || len(cleaned) > maxCardDigits {
		return invalid("Card number must be between 13 and 19 digits")
	}

	if !Luhn(cleaned) {
		return invalid("Card number is invalid")
	}

	return valid()
}

// Luhn reports whether a digits-only string passes the Luhn mod-10
// checksum: every second digit from the right is doubled, doubled
// values above nine have nine subtracted, and the total must divide
// evenly by ten.
func Luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidateExpiry checks an "MM / YY" expiry against the reference
// time's month and year. A date equal to the current month is still
// valid; anything strictly earlier has expired.
func ValidateExpiry(expiry string, ref time.Time) Validation {
	trimmed := strings.TrimSpace(expiry)
	if trimmed == "" {
		return invalid("Expiry date is required")
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 {
		return invalid("Expiry date must be in MM/YY format")
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return invalid("Expiry date must be in MM/YY format")
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return invalid("Expiry date must be in MM/YY format")
	}

	if month < 1 || month > 12 {
		return invalid("Expiry month is invalid")
	}

	currentYear := ref.Year() % 100
	currentMonth := int(ref.Month())
	if year < currentYear || (year == currentYear && month < currentMonth) {
		return invalid("Card has expired")
	}

	return valid()
}

// ValidateCVC checks the security code against the expected length for
// the detected brand.
func ValidateCVC(cvc string, brand Brand) Validation {
	want := CVCLength(brand)

	trimmed := strings.TrimSpace(cvc)
	if trimmed == "" {
		return invalid("Security code is required")
	}

	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] < '0' || trimmed[i] > '9' {
			return invalid("Security code must contain only digits")
		}
	}

	if len(trimmed) != want {
		return invalid(fmt.Sprintf("Security code must be %d digits", want))
	}

	return valid()
}

// ValidateCountry checks that a country was selected.
func ValidateCountry(country string) Validation {
	if strings.TrimSpace(country) == "" {
		return invalid("Please select a country")
	}
	return valid()
}
