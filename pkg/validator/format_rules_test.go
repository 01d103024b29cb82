package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/relato/pkg/validator"
)

func TestPhoneBR(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		message string
	}{
		{"mobile digits", "11999998888", ""},
		{"mobile masked", "(11) 99999-8888", ""},
		{"landline digits", "1132221111", ""},
		{"landline masked", "(21) 2555-1234", ""},
		{"highest ddd", "99988887777", ""},
		{"empty", "", "Por favor, informe um telefone"},
		{"nine digits", "113222111", "Telefone inválido. Use o formato (00) 00000-0000"},
		{"twelve digits", "119999988887", "Telefone inválido. Use o formato (00) 00000-0000"},
		{"ddd zero", "00988887777", "DDD inválido"},
		{"ddd ten", "10988887777", "DDD inválido"},
		{"mobile not starting with nine", "11899998888", "Número de celular deve começar com 9"},
		{"landline starting with one", "1112221111", "Número de telefone fixo inválido"},
		{"landline starting with six", "1162221111", "Número de telefone fixo inválido"},
		{"landline starting with nine", "1192221111", "Número de telefone fixo inválido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validator.PhoneBR(tt.value)
			assert.Equal(t, tt.message == "", r.IsValid(), "PhoneBR(%q)", tt.value)
			assert.Equal(t, tt.message, r.Message())
		})
	}
}

func TestEmail(t *testing.T) {
	// 64 + 1 + 63 + 1 + 63 + 1 + 62 = 255 characters, every label within limits
	longAddress := strings.Repeat("a", 64) + "@" +
		strings.Repeat("b", 63) + "." + strings.Repeat("c", 63) + "." + strings.Repeat("d", 62)

	tests := []struct {
		name    string
		value   string
		message string
	}{
		{"simple", "user@example.com", ""},
		{"subdomain and plus", "ana.souza+relato@prefeitura.sp.gov.br", ""},
		{"empty", "", "Por favor, informe um e-mail"},
		{"double at", "user@@example.com", "E-mail inválido. Use o formato exemplo@dominio.com"},
		{"domain starts with dot", "user@.com", "E-mail inválido. Use o formato exemplo@dominio.com"},
		{"missing at", "user.example.com", "E-mail inválido. Use o formato exemplo@dominio.com"},
		{"space", "user name@example.com", "E-mail inválido. Use o formato exemplo@dominio.com"},
		{"short domain", "user@ab", "Domínio de e-mail inválido"},
		{"domain without dot", "user@localhost", "Domínio de e-mail deve conter um ponto"},
		{"consecutive dots in local part", "user..name@example.com", "E-mail contém caracteres especiais inválidos"},
		{"dot before at", "user.@example.com", "E-mail contém caracteres especiais inválidos"},
		{"255 characters", longAddress, "E-mail muito longo"},
		{"local part too long", strings.Repeat("a", 65) + "@example.com", "A parte antes do @ é muito longa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validator.Email(tt.value)
			assert.Equal(t, tt.message == "", r.IsValid(), "Email(%q)", tt.value)
			assert.Equal(t, tt.message, r.Message())
		})
	}

	assert.Len(t, longAddress, 255)
}
