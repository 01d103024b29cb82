package validator

// CPF validates a Brazilian taxpayer id. Formatting characters are ignored;
// the 11 remaining digits must not all be equal and must carry both mod-11
// check digits.
func CPF(value string) Result {
	if value == "" {
		return invalid("validation.cpf_required", "Por favor, informe um CPF")
	}

	digits := onlyDigits(value)
	if len(digits) != 11 {
		return invalid("validation.cpf_length", "CPF deve ter 11 dígitos")
	}
	if repeatedDigits(digits) {
		return invalid("validation.cpf", "CPF inválido")
	}
	if cpfCheckDigit(digits, 9) != int(digits[9]-'0') {
		return invalid("validation.cpf", "CPF inválido")
	}
	if cpfCheckDigit(digits, 10) != int(digits[10]-'0') {
		return invalid("validation.cpf", "CPF inválido")
	}
	return Valid()
}

// ValidCPFChecksum reports whether an 11-digit string carries correct check
// digits. Formatting must already be stripped.
func ValidCPFChecksum(digits string) bool {
	if len(digits) != 11 || onlyDigits(digits) != digits {
		return false
	}
	return cpfCheckDigit(digits, 9) == int(digits[9]-'0') &&
		cpfCheckDigit(digits, 10) == int(digits[10]-'0')
}

// cpfCheckDigit weighs the first n digits from n+1 down to 2.
func cpfCheckDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		return 0
	}
	return remainder
}

func repeatedDigits(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
