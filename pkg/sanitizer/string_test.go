package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/relato/pkg/sanitizer"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.Trim, strings.ToUpper, sanitizer.Truncate(3))
	assert.Equal(t, "ABC", clean("  abcdef "))
	assert.Equal(t, "X", clean("x"))
}

func TestApply(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "value", sanitizer.Apply("  value  ", sanitizer.Trim))
	assert.Equal(t, 4, sanitizer.Apply(1, func(i int) int { return i * 2 }, func(i int) int { return i * 2 }))
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Rua das Flores 10", sanitizer.NormalizeWhitespace("  Rua  das\tFlores\n10 "))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		input    string
		expected string
	}{
		{"shorter than limit", 5, "abc", "abc"},
		{"exact limit", 3, "abc", "abc"},
		{"longer than limit", 2, "abc", "ab"},
		{"runes not bytes", 2, "ção", "çã"},
		{"negative keeps input", -1, "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Truncate(tt.n)(tt.input))
		})
	}
}

func TestComposeUnicode(t *testing.T) {
	t.Parallel()

	decomposed := "Jose\u0301"
	assert.Equal(t, "Jos\u00e9", sanitizer.ComposeUnicode(decomposed))
	assert.Len(t, []rune(sanitizer.ComposeUnicode(decomposed)), 4)
	assert.Equal(t, "plain", sanitizer.ComposeUnicode("plain"))
}
