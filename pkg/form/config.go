package form

import (
	"errors"
	"fmt"
	"time"
	// zone database for hosts without system tzdata
	_ "time/tzdata"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/relato/pkg/validator"
)

// Config holds the tunable validation limits. Fields are loaded from
// RELATO_* environment variables through pkg/config.
type Config struct {
	// Strict turns missing bindings into construction errors instead of
	// log lines.
	Strict           bool   `env:"RELATO_STRICT" envDefault:"false"`
	MinAge           int    `env:"RELATO_MIN_AGE" envDefault:"18" validate:"gte=0"`
	MaxAge           int    `env:"RELATO_MAX_AGE" envDefault:"120" validate:"gtfield=MinAge"`
	MaxPhotoBytes    int64  `env:"RELATO_MAX_PHOTO_BYTES" envDefault:"5242880" validate:"gt=0"`
	NameMinLength    int    `env:"RELATO_NAME_MIN_LENGTH" envDefault:"3" validate:"gte=1"`
	AddressMinLength int    `env:"RELATO_ADDRESS_MIN_LENGTH" envDefault:"10" validate:"gte=1"`
	MessageMinLength int    `env:"RELATO_MESSAGE_MIN_LENGTH" envDefault:"20" validate:"gte=1"`
	Timezone         string `env:"RELATO_TIMEZONE" envDefault:"America/Sao_Paulo" validate:"required,timezone"`
}

var configValidator = playground.New(playground.WithRequiredStructEnabled())

// DefaultConfig returns the limits of the municipal form.
func DefaultConfig() Config {
	return Config{
		MinAge:           18,
		MaxAge:           120,
		MaxPhotoBytes:    validator.DefaultMaxPhotoBytes,
		NameMinLength:    3,
		AddressMinLength: 10,
		MessageMinLength: 20,
		Timezone:         "America/Sao_Paulo",
	}
}

// Validate checks the struct tags, which matters for configs built in code
// rather than loaded from the environment.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}
