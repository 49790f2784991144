package http

import (
	"net/url"
	"regexp"
	"strings"
)

// Input validation constants
const (
	MaxNameLength    = 255
	MaxAddressLength = 255
	MaxEmailLength   = 255
	MaxURLLength     = 2048
	MaxMessageLength = 10000
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail checks the rough shape of an email address.
func ValidEmail(s string) bool {
	if s == "" || len(s) > MaxEmailLength {
		return false
	}
	return emailPattern.MatchString(s)
}

// ValidRedirectURL accepts absolute http(s) URLs only; anything else is
// not safe to hand to a client for navigation.
func ValidRedirectURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxURLLength {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidateLength checks if string is within bounds
func ValidateLength(s string, min, max int) bool {
	l := len(strings.TrimSpace(s))
	return l >= min && l <= max
}

// SanitizeString removes null bytes
func SanitizeString(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
