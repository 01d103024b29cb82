package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/relato/pkg/sanitizer"
)

var masks = map[string]func(string) string{
	"cpf":   sanitizer.MaskCPF,
	"phone": sanitizer.MaskPhoneBR,
}

type MaskCmd struct{}

// NewMaskCmd creates a new mask command
func NewMaskCmd() *MaskCmd {
	return &MaskCmd{}
}

// Register adds the mask command to the application
func (cmd *MaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "mask",
		Usage:     "Apply the cpf or phone input mask",
		UsageText: "relato mask cpf|phone VALUE",
		Action:    cmd.run,
	})

	return app
}

func (cmd *MaskCmd) run(_ context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected a mask name and a value, got %d arguments", c.Args().Len())
	}

	kind := strings.ToLower(c.Args().Get(0))
	mask, ok := masks[kind]
	if !ok {
		return fmt.Errorf("unknown mask %q: use cpf or phone", kind)
	}

	_, err := fmt.Fprintln(c.Root().Writer, mask(c.Args().Get(1)))
	return err
}
