package reconcile

import (
	"strconv"
	"strings"

	"roster-sync/core/normalize"
)

// Match-key derivations shared by the entity reconcilers. Each returns ""
// when no key can be computed, which Collate treats as unmatchable.

// EmailKey folds an email address for matching. Matching is case-insensitive
// and whitespace-insensitive; nothing else about the address is altered.
func EmailKey(address string) string {
	return normalize.Fold(address)
}

// PhoneKey reduces a phone number to its digits. Formatting differences
// ("(555) 123-4567" vs "555-123-4567") match; digit differences do not.
func PhoneKey(number string) string {
	return normalize.Digits(number)
}

// AddressKey builds the composite street|city|postal key, case-folded.
// Matching is exact: "St" and "Street" deliberately produce different keys,
// so genuinely different addresses are never paired by an abbreviation
// accident. An address with all three components empty is unmatchable.
func AddressKey(street, city, postal string) string {
	s := normalize.Fold(street)
	c := normalize.Fold(city)
	p := normalize.Fold(postal)
	if s == "" && c == "" && p == "" {
		return ""
	}
	return s + "|" + c + "|" + p
}

// NumericKey canonicalizes a numeric identifier held as text, so the local
// "01001" pairs with the remote integer 1001. Non-numeric input is
// unmatchable.
func NumericKey(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ""
	}
	return strconv.FormatInt(n, 10)
}
