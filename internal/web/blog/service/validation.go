package service

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlRe   = regexp.MustCompile(`(?i)https?://[^\s]+`)
)

// isValidEmail checks the address against a simple pattern, the same
// coarse shape the submission form enforces.
func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// countURLs counts URL-looking substrings in text.
func countURLs(text string) int {
	return len(urlRe.FindAllString(text, -1))
}

// containsBadWord reports whether any configured disallowed substring
// appears in the text, case-insensitively.
func containsBadWord(text string, badWords []string) bool {
	lower := strings.ToLower(text)
	for _, word := range badWords {
		if word != "" && strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}

	return false
}

// HashAddress one-way hashes a network address for rate limiting so the
// raw address is never stored.
func HashAddress(addr string) string {
	sum := sha256.Sum256([]byte(addr))
	return hex.EncodeToString(sum[:])
}
