package utils

import (
	"strings"
	"unicode/utf8"
)

// NormalizeAddress trims an address and collapses internal whitespace
func NormalizeAddress(address string) string {
	return strings.Join(strings.Fields(address), " ")
}

// AddressKey is the case-insensitive form of an address, used for cache keys
func AddressKey(address string) string {
	return strings.ToLower(NormalizeAddress(address))
}

// Truncate shortens s to maxLength runes, adding an ellipsis when cut
func Truncate(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}
