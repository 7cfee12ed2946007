// Package card formats and validates payment-card form fields. All
// functions are pure: they transform strings and report validation
// results as values, never as errors, and perform no I/O.
package card

import "strings"

// Brand identifies a card network detected from the number's IIN prefix.
type Brand string

const (
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandAmex       Brand = "amex"
	BrandDiscover   Brand = "discover"
	BrandUnknown    Brand = "unknown"
)

const maxNumberDigits = 19

// StripDigits removes every non-digit character from s.
func StripDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// FormatNumber renders raw keystrokes as a display card number: digits
// only, capped at 19, grouped in clusters of four separated by a
// single space.
func FormatNumber(raw string) string {
	digits := StripDigits(raw)
	if len(digits) > maxNumberDigits {
		digits = digits[:maxNumberDigits]
	}

	var b strings.Builder
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[i:end])
	}
	return b.String()
}

// FormatExpiry renders raw keystrokes as an expiry date. Up to two
// digits are returned as typed; three or four digits become "MM / YY"
// with the first two digits as the month.
func FormatExpiry(raw string) string {
	digits := StripDigits(raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + " / " + digits[2:]
}

// FormatCVC truncates raw keystrokes to a digits-only security code of
// at most maxLen characters.
func FormatCVC(raw string, maxLen int) string {
	digits := StripDigits(raw)
	if len(digits) > maxLen {
		digits = digits[:maxLen]
	}
	return digits
}

// Detect identifies the card brand from the number's leading digits.
// Spaces and other separators are ignored.
func Detect(number string) Brand {
	digits := StripDigits(number)
	if digits == "" {
		return BrandUnknown
	}

	switch {
	case digits[0] == '4':
		return BrandVisa
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return BrandMastercard
	case len(digits) >= 2 && digits[0] == '2' && digits[1] >= '2' && digits[1] <= '7':
		return BrandMastercard
	case strings.HasPrefix(digits, "34") || strings.HasPrefix(digits, "37"):
		return BrandAmex
	case strings.HasPrefix(digits, "6011") || strings.HasPrefix(digits, "65"):
		return BrandDiscover
	default:
		return BrandUnknown
	}
}

// CVCLength returns the expected security-code length for a brand:
// four digits for Amex, three for everything else.
func CVCLength(brand Brand) int {
	if brand == BrandAmex {
		return 4
	}
	return 3
}
