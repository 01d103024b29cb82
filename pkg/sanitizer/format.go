package sanitizer

import "strings"

const (
	cpfDigits     = 11
	phoneBRDigits = 11
)

// Digits strips everything except ASCII digits.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// FormatCPF inserts CPF punctuation progressively as digits accumulate:
// "123", "123.456", "123.456.789", "123.456.789-01".
func FormatCPF(digits string) string {
	n := len(digits)
	switch {
	case n <= 3:
		return digits
	case n <= 6:
		return digits[:3] + "." + digits[3:]
	case n <= 9:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:]
	default:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
	}
}

// FormatPhoneBR applies the Brazilian phone template matching the digit
// count: "(11", "(11) 3222", "(11) 3222-1111", "(11) 99999-8888".
// Ten digits use the landline split, eleven the mobile one.
func FormatPhoneBR(digits string) string {
	n := len(digits)
	switch {
	case n == 0:
		return ""
	case n <= 2:
		return "(" + digits
	case n <= 6:
		return "(" + digits[:2] + ") " + digits[2:]
	case n <= 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	default:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	}
}

// MaskCPF is the keystroke mask of the CPF input. The whole value is
// reformatted on each call; cursor position is not tracked.
var MaskCPF = Compose(Digits, Truncate(cpfDigits), FormatCPF)

// MaskPhoneBR is the keystroke mask of the phone input.
var MaskPhoneBR = Compose(Digits, Truncate(phoneBRDigits), FormatPhoneBR)

// MaskString preserves start/end characters for user recognition while hiding sensitive middle.
// Handles Unicode properly and prevents over-masking short strings.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visibleChars*2 {
		return strings.Repeat("*", length)
	}

	visible := visibleChars
	if visible > length/2 {
		visible = length / 2
	}

	start := string(runes[0:visible])
	end := string(runes[length-visible:])
	middle := strings.Repeat("*", length-visible*2)

	return start + middle + end
}
