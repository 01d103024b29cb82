package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/relato/pkg/file"
	"github.com/dmitrymomot/relato/pkg/form"
	"github.com/dmitrymomot/relato/pkg/logger"
)

type CheckCmd struct {
	app *App

	// flags
	values    map[form.FieldName]*string
	photoPath string
}

// NewCheckCmd creates a new check command
func NewCheckCmd(app *App) *CheckCmd {
	cmd := &CheckCmd{app: app, values: make(map[form.FieldName]*string)}
	for _, name := range form.FieldNames() {
		if name != form.Photo {
			cmd.values[name] = new(string)
		}
	}
	return cmd
}

// Register adds the check command to the application
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	flags := make([]cli.Flag, 0, len(cmd.values)+1)
	for _, name := range form.FieldNames() {
		if name == form.Photo {
			continue
		}
		flags = append(flags, &cli.StringFlag{
			Name:        name.String(),
			Usage:       form.Label(name),
			Destination: cmd.values[name],
		})
	}
	flags = append(flags, &cli.StringFlag{
		Name:        form.Photo.String(),
		Usage:       "path to the photo (optional)",
		Destination: &cmd.photoPath,
	})

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Validate a report given as flags",
		UsageText: "relato check --name NAME --cpf CPF ... [--foto PATH]",
		Description: `Runs the same validation and submission flow as the web form without
any interaction. Field flags are named after the form fields; masks are
applied to --cpf and --phone as if typed.

Exits with status 1 when any field is invalid.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer
	ctx = WithSession(ctx)

	mf := form.NewMemoryForm()
	eng, err := cmd.app.NewEngine(mf.Bindings())
	if err != nil {
		return fmt.Errorf("create form: %w", err)
	}

	for name, value := range cmd.values {
		eng.Input(name, *value)
	}

	if cmd.photoPath != "" {
		a, err := file.Stat(cmd.photoPath)
		if err != nil {
			return fmt.Errorf("read photo: %w", err)
		}
		mf.Inputs[form.Photo].SetFile(a)
	}

	if slug := mf.Inputs[form.Category].Text(); slug != "" && !cmd.app.Catalog.Contains(slug) {
		cmd.app.Log.WarnContext(ctx, "category not in catalog", logger.Field(form.Category.String()), "value", slug)
	}

	result := eng.Submit(ctx)
	if !result.OK() {
		printFieldStates(out, eng)
		return fmt.Errorf("%w: first invalid field %q", ErrValidationFailed, result.FirstInvalid)
	}

	printReport(out, result.Report, cmd.app.Catalog)
	return eng.Acknowledge()
}
