package validator

import (
	"fmt"
	"time"
)

// DateLayouts lists the accepted birthdate layouts: HTML date inputs and the
// Brazilian day-first form typed by hand.
var DateLayouts = []string{"2006-01-02", "02/01/2006"}

// ParseDate parses value with the first matching layout of DateLayouts,
// at midnight in loc. Impossible dates such as 2023-02-30 are rejected.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range DateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// Age returns whole years elapsed between birthdate and now, accounting for
// leap years and birthdays not yet reached this year.
func Age(birthdate, now time.Time) int {
	age := now.Year() - birthdate.Year()

	// Adjust if birthday hasn't occurred this year
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}

	return age
}

// Birthdate validates a date of birth relative to now: it must parse, must
// not be in the future and must yield an age within [minAge, maxAge].
func Birthdate(value string, now time.Time, minAge, maxAge int) Result {
	if value == "" {
		return invalid("validation.birthdate_required", "Por favor, informe sua data de nascimento")
	}

	birth, err := ParseDate(value, now.Location())
	if err != nil {
		return invalid("validation.birthdate", "Data de nascimento inválida")
	}
	if birth.After(now) {
		return invalid("validation.birthdate_future", "Data de nascimento não pode ser futura")
	}

	age := Age(birth, now)
	if age < minAge {
		return invalid("validation.min_age", fmt.Sprintf("Você deve ter pelo menos %d anos", minAge))
	}
	if age > maxAge {
		return invalid("validation.birthdate", "Data de nascimento inválida")
	}
	return Valid()
}
