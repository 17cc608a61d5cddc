package search

import (
	"strings"
	"unicode/utf8"
)

// Matcher compares a stored key with a query key.
type Matcher struct {
	CaseSensitive bool
}

// Normalize trims the key and, unless the matcher is case sensitive, folds it to lower case.
func (m Matcher) Normalize(key string) string {
	key = strings.TrimSpace(key)
	if !m.CaseSensitive {
		key = strings.ToLower(key)
	}
	return key
}

// Match reports whether the stored key equals the query key after normalization.
// An empty stored key never matches.
func (m Matcher) Match(stored, query string) bool {
	stored = m.Normalize(stored)
	if stored == "" {
		return false
	}
	return stored == m.Normalize(query)
}

// ValidateKey trims the raw key and checks it against the minimum length.
// The length is counted in characters, not bytes.
func ValidateKey(raw string, minLength int) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", &ValidationError{Reason: KeyEmpty, MinLength: minLength}
	}
	if minLength > 0 && utf8.RuneCountInString(key) < minLength {
		return "", &ValidationError{Reason: KeyTooShort, MinLength: minLength}
	}
	return key, nil
}
