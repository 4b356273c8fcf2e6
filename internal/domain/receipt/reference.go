package receipt

import (
	"fmt"
	"strconv"
)

// ReferencePrefix is the constant display prefix for booking references.
const ReferencePrefix = "HB-"

const referenceWidth = 6

// FormatReference derives the stable display reference for a booking
// identifier. Non-negative integers get the fixed-width zero-padded form
// ("HB-000042"); anything else falls back to prefix plus the raw identifier
// so legacy or imported keys still render. Total: never fails.
func FormatReference(identifier string) string {
	if isDigits(identifier) {
		var n int64
		if _, err := fmt.Sscanf(identifier, "%d", &n); err == nil {
			return fmt.Sprintf("%s%0*d", ReferencePrefix, referenceWidth, n)
		}
	}
	return ReferencePrefix + identifier
}

// FormatReferenceID formats a persistence-assigned integer identifier.
// Negative identifiers fall through to the raw form like any other
// non-padding input.
func FormatReferenceID(id int64) string {
	return FormatReference(strconv.FormatInt(id, 10))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
