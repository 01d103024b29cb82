package validator

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+" +
		`@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`,
)

const (
	maxEmailLength      = 254
	maxEmailLocalLength = 64
)

// Email validates an e-mail address structurally. Deliverability is not
// checked.
func Email(value string) Result {
	if value == "" {
		return invalid("validation.email_required", "Por favor, informe um e-mail")
	}
	if !emailRegex.MatchString(value) {
		return invalid("validation.email", "E-mail inválido. Use o formato exemplo@dominio.com")
	}

	local, domain, _ := strings.Cut(value, "@")
	if len(domain) < 3 {
		return invalid("validation.email_domain", "Domínio de e-mail inválido")
	}
	if !strings.Contains(domain, ".") {
		return invalid("validation.email_domain_dot", "Domínio de e-mail deve conter um ponto")
	}
	if strings.Contains(value, "..") || strings.Contains(value, ".@") || strings.Contains(value, "@.") {
		return invalid("validation.email_special_chars", "E-mail contém caracteres especiais inválidos")
	}
	if len(value) > maxEmailLength {
		return invalid("validation.email_too_long", "E-mail muito longo")
	}
	if len(local) > maxEmailLocalLength {
		return invalid("validation.email_local_too_long", "A parte antes do @ é muito longa")
	}
	return Valid()
}

// PhoneBR validates a Brazilian phone number: DDD in 11-99 followed by an
// 8-digit landline starting with 2-5 or a 9-digit mobile starting with 9.
func PhoneBR(value string) Result {
	if value == "" {
		return invalid("validation.phone_required", "Por favor, informe um telefone")
	}

	digits := onlyDigits(value)
	if len(digits) != 10 && len(digits) != 11 {
		return invalid("validation.phone", "Telefone inválido. Use o formato (00) 00000-0000")
	}

	ddd := int(digits[0]-'0')*10 + int(digits[1]-'0')
	if ddd < 11 || ddd > 99 {
		return invalid("validation.phone_ddd", "DDD inválido")
	}

	first := digits[2] - '0'
	if len(digits) == 11 && first != 9 {
		return invalid("validation.phone_mobile", "Número de celular deve começar com 9")
	}
	if len(digits) == 10 && (first < 2 || first > 5) {
		return invalid("validation.phone_landline", "Número de telefone fixo inválido")
	}
	return Valid()
}
