// Package sanitizer provides the string transforms behind the report form's
// input masks, plus small helpers for trimming and for hiding sensitive data
// before it is logged.
//
// Transforms are plain func(string) string values that combine with Compose:
//
//	mask := sanitizer.Compose(sanitizer.Digits, sanitizer.Truncate(11), sanitizer.FormatCPF)
//	mask("123456789ab01") // "123.456.789-01"
//
// MaskCPF and MaskPhoneBR are the two keystroke masks used by the form
// engine. They reformat the entire value on every call, so feeding the
// previous output plus one new character always yields the canonical display
// form. Masks never validate; an incomplete value is formatted as far as its
// digits allow.
//
// None of the helpers returns an error and there is no global mutable state,
// so they are safe for concurrent use.
package sanitizer
