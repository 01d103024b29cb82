package validator

// Category validates that a complaint category was selected.
func Category(value string) Result {
	if value == "" {
		return invalid("validation.category_required", "Por favor, selecione uma categoria")
	}
	return Valid()
}
