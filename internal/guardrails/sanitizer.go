package guardrails

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxQueryLength is counted in code points.
const MaxQueryLength = 200

var (
	ErrEmptyQuery   = errors.New(`Missing query parameter "q"`)
	ErrQueryTooLong = errors.New("Query too long. Maximum 200 characters.")
)

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// Sanitize trims the raw query, collapses line breaks into single spaces and
// enforces the length limit before and after normalization.
func Sanitize(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyQuery
	}
	if utf8.RuneCountInString(raw) > MaxQueryLength {
		return "", ErrQueryTooLong
	}

	sanitized := strings.TrimSpace(raw)
	sanitized = lineBreaks.ReplaceAllString(sanitized, " ")
	sanitized = truncate(sanitized, MaxQueryLength)

	if sanitized == "" {
		return "", ErrEmptyQuery
	}
	if utf8.RuneCountInString(sanitized) > MaxQueryLength {
		return "", ErrQueryTooLong
	}

	return sanitized, nil
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
