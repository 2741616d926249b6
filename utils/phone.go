package utils

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// FormatPhoneNumber normalizes a phone number for storage: digits only, with
// a leading + preserved for international numbers.
func FormatPhoneNumber(phoneNumber string) string {
	trimmed := strings.TrimSpace(phoneNumber)
	international := strings.HasPrefix(trimmed, "+")

	digits := nonDigits.ReplaceAllString(trimmed, "")
	if digits == "" {
		return ""
	}
	if international {
		return "+" + digits
	}
	return digits
}
