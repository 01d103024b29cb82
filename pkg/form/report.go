package form

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/relato/pkg/file"
	"github.com/dmitrymomot/relato/pkg/sanitizer"
	"github.com/dmitrymomot/relato/pkg/validator"
)

// Confirmation texts shown after a successful submission.
const (
	SuccessTitle = "Relato enviado com sucesso!"
	SuccessHint  = `O seu relato encontra-se em análise, acesse a aba "Relatos" para fazer o acompanhamento.`
)

// Status classifies a submission attempt.
type Status int

const (
	StatusValidationFailure Status = iota
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusValidationFailure:
		return "validation_failure"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is the result of Submit. On failure FirstInvalid and Errors are
// set; on success Report is.
type Outcome struct {
	Status       Status
	FirstInvalid FieldName
	Errors       validator.ValidationErrors
	Report       *Report
}

func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}

// Report is the snapshot of a validated form. Nothing transmits it; hosts
// render it in the confirmation.
type Report struct {
	ID          uuid.UUID
	Protocol    string
	SubmittedAt time.Time

	Name      string
	CPF       string // digits only
	Birthdate time.Time
	Phone     string // digits only
	Email     string
	Category  string
	Address   string
	Message   string
	Photo     *file.Attachment
}

// protocol renders the short reference citizens quote when following up,
// e.g. "REL-2026-1A2B3C4D".
func protocol(id uuid.UUID, at time.Time) string {
	hex := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return fmt.Sprintf("REL-%d-%s", at.Year(), hex[:8])
}

// LogValue keeps personal data out of logs.
func (r *Report) LogValue() slog.Value {
	if r == nil {
		return slog.Value{}
	}
	attrs := []slog.Attr{
		slog.String("id", r.ID.String()),
		slog.String("protocol", r.Protocol),
		slog.String("cpf", sanitizer.MaskString(r.CPF, 2)),
		slog.String("email", sanitizer.MaskString(r.Email, 2)),
		slog.String("category", r.Category),
		slog.Bool("photo", r.Photo != nil),
	}
	return slog.GroupValue(attrs...)
}

// newReport reads normalized values; they have all passed validation.
func newReport(id uuid.UUID, now time.Time, loc *time.Location, values map[FieldName]Value) *Report {
	r := &Report{
		ID:          id,
		Protocol:    protocol(id, now),
		SubmittedAt: now,
		Name:        sanitizer.NormalizeWhitespace(values[Name].Text),
		CPF:         sanitizer.Digits(values[CPF].Text),
		Phone:       sanitizer.Digits(values[Phone].Text),
		Email:       values[Email].Text,
		Category:    values[Category].Text,
		Address:     values[Address].Text,
		Message:     values[Message].Text,
		Photo:       values[Photo].File,
	}
	if birth, err := validator.ParseDate(values[Birthdate].Text, loc); err == nil {
		r.Birthdate = birth
	}
	return r
}
