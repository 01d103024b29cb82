package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/relato/pkg/category"
	"github.com/dmitrymomot/relato/pkg/config"
	"github.com/dmitrymomot/relato/pkg/form"
	"github.com/dmitrymomot/relato/pkg/logger"
)

// ErrValidationFailed is returned by commands that submitted a report with
// invalid fields; main turns it into exit status 1.
var ErrValidationFailed = errors.New("report has validation errors")

// Flags holds the global flags shared by every command.
type Flags struct {
	EnvFiles []string
	LogLevel string
	Strict   bool
}

// AppConfig is the process configuration read from the environment.
type AppConfig struct {
	Env            string `env:"APP_ENV" envDefault:"development" validate:"oneof=development production prod"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	CategoriesFile string `env:"RELATO_CATEGORIES_FILE" validate:"omitempty,file"`
}

// App carries the dependencies built in the root Before hook. Commands hold
// a pointer to it and read the fields when they run.
type App struct {
	Log     *slog.Logger
	Form    form.Config
	Catalog *category.Catalog
}

type sessionKey struct{}

// WithSession tags ctx with a fresh session id picked up by the logger.
func WithSession(ctx context.Context) context.Context {
	return context.WithValue(ctx, sessionKey{}, uuid.NewString())
}

// Setup loads configuration and fills app. Log records go to logOut.
func Setup(app *App, flags *Flags, logOut io.Writer) error {
	if len(flags.EnvFiles) > 0 {
		if err := config.LoadEnv(flags.EnvFiles...); err != nil {
			return fmt.Errorf("load env files: %w", err)
		}
	}

	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load app config: %w", err)
	}

	levelName := cfg.LogLevel
	if flags.LogLevel != "" {
		levelName = flags.LogLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return err
	}

	app.Log = logger.New(
		logger.WithEnvironment(cfg.Env, "relato"),
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(logOut),
		logger.WithContextValue("session_id", sessionKey{}),
	)
	logger.SetAsDefault(app.Log)

	if err := config.Load(&app.Form); err != nil {
		return fmt.Errorf("load form config: %w", err)
	}
	if flags.Strict {
		app.Form.Strict = true
	}

	if cfg.CategoriesFile != "" {
		app.Catalog, err = category.Load(cfg.CategoriesFile)
	} else {
		app.Catalog, err = category.Default()
	}
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}

	app.Log.Debug("relato configured",
		slog.String("env", cfg.Env),
		slog.Int("categories", app.Catalog.Len()),
		slog.Bool("strict", app.Form.Strict),
	)
	return nil
}

// NewEngine builds a form engine over bindings with the app configuration.
func (a *App) NewEngine(b form.Bindings) (*form.Engine, error) {
	return form.New(b, form.WithConfig(a.Form), form.WithLogger(a.Log))
}
