package form

import (
	"time"

	"github.com/dmitrymomot/relato/pkg/file"
	"github.com/dmitrymomot/relato/pkg/sanitizer"
	"github.com/dmitrymomot/relato/pkg/validator"
)

// FieldName identifies a registered form field. The values match the
// element ids of the web form.
type FieldName string

const (
	Name      FieldName = "name"
	CPF       FieldName = "cpf"
	Birthdate FieldName = "nascimento"
	Phone     FieldName = "phone"
	Email     FieldName = "email"
	Category  FieldName = "categoria"
	Address   FieldName = "endereco"
	Message   FieldName = "message"
	Photo     FieldName = "foto"
)

func (n FieldName) String() string {
	return string(n)
}

// Kind tells the engine how to read a field value.
type Kind int

const (
	// KindText fields read Value.Text, trimmed.
	KindText Kind = iota
	// KindFile fields read Value.File untouched.
	KindFile
)

// Value is a snapshot of what the host holds for a field.
type Value struct {
	Text string
	File *file.Attachment
}

// TextValue wraps s as a text field value.
func TextValue(s string) Value {
	return Value{Text: s}
}

// FileValue wraps a chosen attachment; nil means no file chosen.
func FileValue(a *file.Attachment) Value {
	return Value{File: a}
}

// Descriptor is one entry of the field registry.
type Descriptor struct {
	Name     FieldName
	Kind     Kind
	Label    string
	Validate func(Value) validator.Result
	// Mask reformats raw keystroke input; nil for unmasked fields.
	Mask func(string) string
}

func (d Descriptor) normalize(v Value) Value {
	if d.Kind == KindFile {
		return Value{File: v.File}
	}
	return Value{Text: normalizeText(v.Text)}
}

var normalizeText = sanitizer.Compose(sanitizer.Trim, sanitizer.ComposeUnicode)

type fieldSpec struct {
	name  FieldName
	kind  Kind
	label string
	mask  func(string) string
}

// registry order is the order of validation and of first-error reporting.
var registry = []fieldSpec{
	{name: Name, kind: KindText, label: "Nome completo"},
	{name: CPF, kind: KindText, label: "CPF", mask: sanitizer.MaskCPF},
	{name: Birthdate, kind: KindText, label: "Data de nascimento"},
	{name: Phone, kind: KindText, label: "Telefone", mask: sanitizer.MaskPhoneBR},
	{name: Email, kind: KindText, label: "E-mail"},
	{name: Category, kind: KindText, label: "Categoria"},
	{name: Address, kind: KindText, label: "Endereço"},
	{name: Message, kind: KindText, label: "Mensagem"},
	{name: Photo, kind: KindFile, label: "Foto"},
}

// FieldNames returns every registered field in registry order.
func FieldNames() []FieldName {
	names := make([]FieldName, len(registry))
	for i, spec := range registry {
		names[i] = spec.name
	}
	return names
}

// IsRegistered reports whether name belongs to the registry.
func IsRegistered(name FieldName) bool {
	for _, spec := range registry {
		if spec.name == name {
			return true
		}
	}
	return false
}

// Label returns the Portuguese caption of a registered field.
func Label(name FieldName) string {
	for _, spec := range registry {
		if spec.name == name {
			return spec.label
		}
	}
	return ""
}

// descriptors binds the validators to cfg. clock is consulted on every
// birthdate validation so ages are computed against the current day.
func descriptors(cfg Config, clock func() time.Time, loc *time.Location) []Descriptor {
	validators := map[FieldName]func(Value) validator.Result{
		Name: func(v Value) validator.Result {
			return validator.PersonName(v.Text, cfg.NameMinLength)
		},
		CPF: func(v Value) validator.Result {
			return validator.CPF(v.Text)
		},
		Birthdate: func(v Value) validator.Result {
			return validator.Birthdate(v.Text, clock().In(loc), cfg.MinAge, cfg.MaxAge)
		},
		Phone: func(v Value) validator.Result {
			return validator.PhoneBR(v.Text)
		},
		Email: func(v Value) validator.Result {
			return validator.Email(v.Text)
		},
		Category: func(v Value) validator.Result {
			return validator.Category(v.Text)
		},
		Address: func(v Value) validator.Result {
			return validator.Address(v.Text, cfg.AddressMinLength)
		},
		Message: func(v Value) validator.Result {
			return validator.Description(v.Text, cfg.MessageMinLength)
		},
		Photo: func(v Value) validator.Result {
			return validator.Photo(v.File, cfg.MaxPhotoBytes)
		},
	}

	out := make([]Descriptor, len(registry))
	for i, spec := range registry {
		out[i] = Descriptor{
			Name:     spec.name,
			Kind:     spec.kind,
			Label:    spec.label,
			Validate: validators[spec.name],
			Mask:     spec.mask,
		}
	}
	return out
}
