// Package validator holds the field validators of the complaint ("relato")
// form together with the small Rule/ValidationErrors toolkit used to
// aggregate their failures.
//
// Every field validator is a pure function from a raw value to a Result.
// A Result is either valid or invalid with exactly one pt-BR message taken
// from the form's wording; validators never panic and never return Go
// errors.
//
// # Validators
//
//   - PersonName   – letters (including accented Latin) and whitespace
//   - CPF          – 11-digit Brazilian taxpayer id with two mod-11 check digits
//   - Birthdate    – calendar date, not in the future, age within bounds
//   - PhoneBR      – 10-digit landline or 11-digit mobile with a valid DDD
//   - Email        – structural check plus length limits
//   - Category     – a selection was made
//   - Address      – free text with a minimum length
//   - Description  – free text with a minimum length
//   - Photo        – optional image attachment, type and size limits
//
// # Aggregation
//
// Result.Rule binds a result to a field name so results can be collected
// with Apply into ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.CPF(cpf).Rule("cpf"),
//	    validator.Email(email).Rule("email"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msg := verrs.First("cpf")
//	}
//
// Time-dependent validators take the reference time explicitly so callers
// control the clock.
package validator
