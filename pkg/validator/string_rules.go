package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// personNameRegex accepts ASCII letters, Latin-1 accented letters and whitespace.
var personNameRegex = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)

// PersonName validates a full name: required, at least minLen characters,
// letters and spaces only.
func PersonName(value string, minLen int) Result {
	if value == "" {
		return invalid("validation.name_required", "Por favor, informe seu nome")
	}
	if utf8.RuneCountInString(value) < minLen {
		return invalid("validation.name_min_length", fmt.Sprintf("O nome deve ter pelo menos %d caracteres", minLen))
	}
	if !personNameRegex.MatchString(value) {
		return invalid("validation.name_letters", "O nome deve conter apenas letras e espaços")
	}
	return Valid()
}

// Address validates the free-text location of the report.
func Address(value string, minLen int) Result {
	if value == "" {
		return invalid("validation.address_required", "Por favor, digite a localização do relato")
	}
	if utf8.RuneCountInString(value) < minLen {
		return invalid("validation.address_min_length", fmt.Sprintf("A localização deve ter pelo menos %d caracteres", minLen))
	}
	return Valid()
}

// Description validates the free-text body of the report.
func Description(value string, minLen int) Result {
	if value == "" {
		return invalid("validation.description_required", "Por favor, digite a descrição do relato")
	}
	if utf8.RuneCountInString(value) < minLen {
		return invalid("validation.description_min_length", fmt.Sprintf("A descrição deve ter pelo menos %d caracteres", minLen))
	}
	return Valid()
}
