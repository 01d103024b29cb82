package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates reusable sanitization pipelines that can be stored and reused.
// Preferred over repeated Apply calls when the same transformation chain is used multiple times.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeWhitespace collapses runs of spaces, tabs and newlines into one
// space and trims the result.
func NormalizeWhitespace(s string) string {
	normalized := whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}

// Truncate returns a transform keeping at most n runes.
func Truncate(n int) func(string) string {
	return func(s string) string {
		if n < 0 {
			return s
		}
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n])
	}
}

// ComposeUnicode converts s to NFC so that a letter typed as base plus
// combining accent ("e" + U+0301) becomes the single precomposed rune.
func ComposeUnicode(s string) string {
	return norm.NFC.String(s)
}
