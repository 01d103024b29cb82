package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/relato/pkg/validator"
)

func TestCPF(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		message string
	}{
		{"valid formatted", "529.982.247-25", ""},
		{"valid digits only", "52998224725", ""},
		{"valid second reference", "111.444.777-35", ""},
		{"valid with zero first check digit", "123.456.789-09", ""},
		{"empty", "", "Por favor, informe um CPF"},
		{"too short", "123.456.789", "CPF deve ter 11 dígitos"},
		{"too long", "529.982.247-250", "CPF deve ter 11 dígitos"},
		{"all digits equal", "111.111.111-11", "CPF inválido"},
		{"all zeros", "00000000000", "CPF inválido"},
		{"wrong first check digit", "529.982.247-35", "CPF inválido"},
		{"wrong second check digit", "529.982.247-24", "CPF inválido"},
		{"sequential digits", "123.456.789-01", "CPF inválido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validator.CPF(tt.value)
			assert.Equal(t, tt.message == "", r.IsValid(), "CPF(%q)", tt.value)
			assert.Equal(t, tt.message, r.Message())
		})
	}
}

func TestCPF_AllRepeatedDigitsRejected(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		value := strings.Repeat(string(d), 11)
		assert.False(t, validator.CPF(value).IsValid(), value)
	}
}

// Exactly one check digit pair is correct for each 9-digit base.
func TestCPF_OnlyMatchingCheckDigitsAccepted(t *testing.T) {
	base := "529982247"
	accepted := 0
	for d1 := '0'; d1 <= '9'; d1++ {
		for d2 := '0'; d2 <= '9'; d2++ {
			value := base + string(d1) + string(d2)
			if validator.CPF(value).IsValid() {
				accepted++
				assert.Equal(t, "52998224725", value)
			}
			assert.Equal(t, validator.ValidCPFChecksum(value), validator.CPF(value).IsValid())
		}
	}
	assert.Equal(t, 1, accepted)
}

func TestValidCPFChecksum(t *testing.T) {
	assert.True(t, validator.ValidCPFChecksum("11144477735"))
	assert.False(t, validator.ValidCPFChecksum("111.444.777-35"))
	assert.False(t, validator.ValidCPFChecksum("1114447773"))
	assert.False(t, validator.ValidCPFChecksum("11144477736"))
}
