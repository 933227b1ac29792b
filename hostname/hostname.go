// Package hostname normalizes hostnames before registered-domain lookups.
package hostname

import (
	"errors"
	"strings"

	"golang.org/x/net/idna"
)

var ErrEmptyHostname = errors.New("empty hostname")

// Normalize lowercases the hostname, strips surrounding whitespace and a
// single trailing dot, and converts internationalized names to their
// ASCII (punycode) form.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return "", ErrEmptyHostname
	}

	if isLowerASCII(s) {
		return s, nil
	}
	if isASCII(s) {
		return strings.ToLower(s), nil
	}

	ascii, err := idna.Lookup.ToASCII(s)
	if err != nil {
		return "", err
	}
	return strings.ToLower(ascii), nil
}

func isLowerASCII(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c >= 0x80 || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
