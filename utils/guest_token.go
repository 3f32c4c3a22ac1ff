package utils

import (
	"crypto/rand"
	"strings"
)

// Guest tokens are short uppercase codes printed on invitations. The
// alphabet skips 0/O and 1/I to keep them readable.
const tokenAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const tokenLength = 8

// GenerateGuestToken returns a new invitation token, already normalized.
func GenerateGuestToken() (string, error) {
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = tokenAlphabet[int(b[i])%len(tokenAlphabet)]
	}
	return string(b), nil
}

// NormalizeGuestToken makes token lookup case-insensitive. Guests type
// these by hand, so surrounding whitespace is forgiven too.
func NormalizeGuestToken(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}
