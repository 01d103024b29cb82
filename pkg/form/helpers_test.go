package form_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/relato/pkg/file"
	"github.com/dmitrymomot/relato/pkg/form"
)

var (
	brt      = time.FixedZone("-03", -3*60*60)
	fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, brt)
	fixedID  = uuid.MustParse("1a2b3c4d-0000-4000-8000-000000000001")
	photo    = &file.Attachment{Filename: "buraco.jpg", Size: 1024, MIMEType: "image/jpeg"}
)

func fixedClock() time.Time {
	return fixedNow
}

// filledForm returns in-memory controls holding a valid complaint.
func filledForm() *form.MemoryForm {
	mf := form.NewMemoryForm()
	mf.Set(form.Name, "Maria da Silva")
	mf.Set(form.CPF, "529.982.247-25")
	mf.Set(form.Birthdate, "1990-05-17")
	mf.Set(form.Phone, "(11) 99999-8888")
	mf.Set(form.Email, "maria@example.com")
	mf.Set(form.Category, "drenagem")
	mf.Set(form.Address, "Rua das Flores, 123 - Centro")
	mf.Set(form.Message, "Buraco enorme na via principal perto da escola")
	mf.Inputs[form.Photo].SetFile(photo)
	return mf
}

func newEngine(t *testing.T, mf *form.MemoryForm, opts ...form.Option) *form.Engine {
	t.Helper()
	opts = append([]form.Option{
		form.WithClock(fixedClock),
		form.WithIDGenerator(func() uuid.UUID { return fixedID }),
	}, opts...)
	eng, err := form.New(mf.Bindings(), opts...)
	require.NoError(t, err)
	return eng
}
