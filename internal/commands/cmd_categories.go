package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

type CategoriesCmd struct {
	app *App
}

// NewCategoriesCmd creates a new categories command
func NewCategoriesCmd(app *App) *CategoriesCmd {
	return &CategoriesCmd{app: app}
}

// Register adds the categories command to the application
func (cmd *CategoriesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "categories",
		Usage:  "List the complaint categories",
		Action: cmd.run,
	})

	return app
}

func (cmd *CategoriesCmd) run(_ context.Context, c *cli.Command) error {
	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SLUG\tCATEGORIA")
	for _, item := range cmd.app.Catalog.All() {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", item.Slug, item.Label)
	}
	return w.Flush()
}
