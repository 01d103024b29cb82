package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/relato/pkg/file"
	"github.com/dmitrymomot/relato/pkg/form"
)

var hints = map[form.FieldName]string{
	form.Name:      "Como consta no documento",
	form.CPF:       "000.000.000-00",
	form.Birthdate: "AAAA-MM-DD ou DD/MM/AAAA",
	form.Phone:     "(00) 00000-0000",
	form.Email:     "exemplo@dominio.com",
	form.Address:   "Rua, número e bairro",
	form.Message:   "Descreva o problema com detalhes",
	form.Photo:     "Caminho da imagem (opcional)",
}

type FormCmd struct {
	app *App
}

// NewFormCmd creates a new form command
func NewFormCmd(app *App) *FormCmd {
	return &FormCmd{app: app}
}

// Register adds the form command to the application
func (cmd *FormCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "form",
		Usage: "Fill in a report interactively",
		Description: `Opens the complaint form in the terminal. Each field is checked when
you leave it; the report is shown once every
field is valid.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *FormCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer
	ctx = WithSession(ctx)

	mf := form.NewMemoryForm()
	eng, err := cmd.app.NewEngine(mf.Bindings())
	if err != nil {
		return fmt.Errorf("create form: %w", err)
	}

	for {
		if err := cmd.buildForm(eng, mf).RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("run form: %w", err)
		}

		result := eng.Submit(ctx)
		if !result.OK() {
			printFieldStates(out, eng)
			return fmt.Errorf("%w: first invalid field %q", ErrValidationFailed, result.FirstInvalid)
		}
		printReport(out, result.Report, cmd.app.Catalog)

		again := false
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Enviar outro relato?").
				Affirmative("Sim").
				Negative("Não").
				Value(&again),
		)).WithTheme(huh.ThemeCharm()).RunWithContext(ctx)
		if ackErr := eng.Acknowledge(); ackErr != nil {
			return ackErr
		}
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("run confirmation: %w", err)
		}
		if !again {
			return nil
		}
	}
}

// buildForm wires every huh field to the engine: the Validate callback is the
// blur hook, running the mask and then the field validator.
func (cmd *FormCmd) buildForm(eng *form.Engine, mf *form.MemoryForm) *huh.Form {
	blur := func(name form.FieldName) func(string) error {
		return func(s string) error {
			eng.Input(name, s)
			if eng.Blur(name) {
				return nil
			}
			return errors.New(eng.Message(name))
		}
	}

	input := func(name form.FieldName) *huh.Input {
		value := newMaskedValue(eng, name)
		field := huh.NewInput().
			Title(form.Label(name)).
			Placeholder(hints[name]).
			Accessor(value).
			Validate(blur(name))
		if name == form.CPF || name == form.Phone {
			field = field.DescriptionFunc(value.Get, &value.text)
		}
		return field
	}

	options := make([]huh.Option[string], 0, cmd.app.Catalog.Len())
	for _, item := range cmd.app.Catalog.All() {
		options = append(options, huh.NewOption(item.Label, item.Slug))
	}

	photo := func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			mf.Inputs[form.Photo].SetFile(nil)
		} else {
			a, err := file.Stat(s)
			if err != nil {
				return errors.New("arquivo não encontrado")
			}
			mf.Inputs[form.Photo].SetFile(a)
		}
		if eng.Blur(form.Photo) {
			return nil
		}
		return errors.New(eng.Message(form.Photo))
	}

	return huh.NewForm(
		huh.NewGroup(
			input(form.Name),
			input(form.CPF),
			input(form.Birthdate),
			input(form.Phone),
			input(form.Email),
		).Title("Seus dados"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(form.Label(form.Category)).
				Options(options...).
				Validate(blur(form.Category)),
			input(form.Address),
			huh.NewText().
				Title(form.Label(form.Message)).
				Placeholder(hints[form.Message]).
				Validate(blur(form.Message)),
			huh.NewInput().
				Title(form.Label(form.Photo)).
				Placeholder(hints[form.Photo]).
				Validate(photo),
		).Title("Relato"),
	).WithTheme(huh.ThemeCharm())
}

// maskedValue is a huh accessor that feeds every keystroke through the
// engine mask, so the stored value is always the masked text.
type maskedValue struct {
	eng  *form.Engine
	name form.FieldName
	text string
}

func newMaskedValue(eng *form.Engine, name form.FieldName) *maskedValue {
	return &maskedValue{eng: eng, name: name}
}

func (v *maskedValue) Get() string {
	return v.text
}

func (v *maskedValue) Set(s string) {
	v.text = v.eng.Input(v.name, s)
}
