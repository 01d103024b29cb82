package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/relato/internal/commands"
)

// Populated at build-time via -ldflags.
var version = "dev"

func build() string {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				return mv
			}
		}
	}
	return version
}

func main() {
	var (
		flags = &commands.Flags{}
		app   = &commands.App{}
	)

	root := &cli.Command{
		Name:      "relato",
		Usage:     "Validate municipal complaint reports",
		UsageText: "relato [global options] command [command options]",
		Description: `relato runs the validation engine of the complaint form from the terminal.

Use 'relato form' to fill in a report interactively or 'relato check' to
validate one given as flags. Nothing is sent anywhere.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "env-file",
				Usage:       "dotenv files to load before reading the environment",
				Destination: &flags.EnvFiles,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error); overrides LOG_LEVEL",
				Destination: &flags.LogLevel,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "fail when a form field has no binding",
				Sources:     cli.EnvVars("RELATO_STRICT"),
				Destination: &flags.Strict,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := commands.Setup(app, flags, os.Stderr); err != nil {
				return ctx, fmt.Errorf("setup: %w", err)
			}
			return ctx, nil
		},
	}

	root = commands.NewCheckCmd(app).Register(root)
	root = commands.NewFormCmd(app).Register(root)
	root = commands.NewMaskCmd().Register(root)
	root = commands.NewCategoriesCmd(app).Register(root)

	if err := root.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, commands.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "relato: %v\n", err)
		}
		os.Exit(1)
	}
}
