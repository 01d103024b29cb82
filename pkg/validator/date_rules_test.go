package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/relato/pkg/validator"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func TestBirthdate(t *testing.T) {
	now := time.Date(2026, time.October, 19, 15, 30, 0, 0, saoPaulo)
	day := func(d time.Time) string { return d.Format("2006-01-02") }

	tests := []struct {
		name    string
		value   string
		message string
	}{
		{"exactly eighteen years ago", day(now.AddDate(-18, 0, 0)), ""},
		{"one day short of eighteen", day(now.AddDate(-18, 0, 1)), "Você deve ter pelo menos 18 anos"},
		{"brazilian layout", now.AddDate(-30, 0, 0).Format("02/01/2006"), ""},
		{"exactly 120 years", day(now.AddDate(-120, 0, 0)), ""},
		{"older than 120", day(now.AddDate(-121, 0, 0)), "Data de nascimento inválida"},
		{"future date", day(now.AddDate(0, 0, 1)), "Data de nascimento não pode ser futura"},
		{"today", day(now), "Você deve ter pelo menos 18 anos"},
		{"empty", "", "Por favor, informe sua data de nascimento"},
		{"garbage", "ontem", "Data de nascimento inválida"},
		{"impossible calendar date", "2000-02-30", "Data de nascimento inválida"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validator.Birthdate(tt.value, now, 18, 120)
			assert.Equal(t, tt.message == "", r.IsValid(), "Birthdate(%q)", tt.value)
			assert.Equal(t, tt.message, r.Message())
		})
	}
}

func TestBirthdate_CustomMinimumAge(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	r := validator.Birthdate("2012-10-19", now, 16, 120)
	assert.Equal(t, "Você deve ter pelo menos 16 anos", r.Message())
}

func TestAge(t *testing.T) {
	tests := []struct {
		name     string
		birth    time.Time
		now      time.Time
		expected int
	}{
		{
			name:     "birthday already passed",
			birth:    time.Date(2000, time.March, 10, 0, 0, 0, 0, time.UTC),
			now:      time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
			expected: 26,
		},
		{
			name:     "birthday later this month",
			birth:    time.Date(2000, time.October, 20, 0, 0, 0, 0, time.UTC),
			now:      time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
			expected: 25,
		},
		{
			name:     "leap day before the 29th in common year",
			birth:    time.Date(2004, time.February, 29, 0, 0, 0, 0, time.UTC),
			now:      time.Date(2022, time.February, 28, 0, 0, 0, 0, time.UTC),
			expected: 17,
		},
		{
			name:     "leap day on march first",
			birth:    time.Date(2004, time.February, 29, 0, 0, 0, 0, time.UTC),
			now:      time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
			expected: 18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.Age(tt.birth, tt.now))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := validator.ParseDate("1990-05-17", saoPaulo)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, time.May, 17, 0, 0, 0, 0, saoPaulo), d)

	d, err = validator.ParseDate("17/05/1990", nil)
	require.NoError(t, err)
	assert.Equal(t, 17, d.Day())
	assert.Equal(t, time.May, d.Month())

	_, err = validator.ParseDate("1990/05/17", saoPaulo)
	assert.ErrorIs(t, err, validator.ErrInvalidDate)
}
