package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/relato/pkg/category"
	"github.com/dmitrymomot/relato/pkg/config"
	"github.com/dmitrymomot/relato/pkg/form"
	"github.com/dmitrymomot/relato/pkg/logger"
)

var validReport = []string{
	"--name", "Maria da Silva",
	"--cpf", "52998224725",
	"--nascimento", "17/05/1990",
	"--phone", "11999998888",
	"--email", "maria@example.com",
	"--categoria", "drenagem",
	"--endereco", "Rua das Flores, 123 - Centro",
	"--message", "Buraco enorme na via principal perto da escola",
}

func testApp(t *testing.T) *App {
	t.Helper()
	cat, err := category.Default()
	require.NoError(t, err)
	return &App{Log: logger.Discard(), Form: form.DefaultConfig(), Catalog: cat}
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := &cli.Command{Name: "relato", Writer: &buf}
	root = NewCheckCmd(app).Register(root)
	root = NewMaskCmd().Register(root)
	root = NewCategoriesCmd(app).Register(root)

	err := root.Run(context.Background(), append([]string{"relato"}, args...))
	return buf.String(), err
}

func TestMaskCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
		wantErr  bool
	}{
		{"cpf", []string{"mask", "cpf", "12345678901"}, "123.456.789-01\n", false},
		{"partial cpf", []string{"mask", "CPF", "1234"}, "123.4\n", false},
		{"phone", []string{"mask", "phone", "1132221111"}, "(11) 3222-1111\n", false},
		{"unknown mask", []string{"mask", "cep", "01001000"}, "", true},
		{"missing value", []string{"mask", "cpf"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, testApp(t), tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestCategoriesCmd(t *testing.T) {
	out, err := run(t, testApp(t), "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "SLUG")
	assert.Contains(t, out, "redes-eletricas")
	assert.Contains(t, out, "Redes Elétricas/Luz")
}

func TestCheckCmd(t *testing.T) {
	t.Run("valid report", func(t *testing.T) {
		out, err := run(t, testApp(t), append([]string{"check"}, validReport...)...)
		require.NoError(t, err)
		assert.Contains(t, out, form.SuccessTitle)
		assert.Contains(t, out, "REL-")
		assert.Contains(t, out, "529.982.247-25")
		assert.Contains(t, out, "(11) 99999-8888")
		assert.Contains(t, out, "17/05/1990")
		assert.Contains(t, out, "Drenagem")
		assert.Contains(t, out, "nenhuma")
	})

	t.Run("invalid fields", func(t *testing.T) {
		args := []string{"check"}
		for i := 0; i < len(validReport); i += 2 {
			switch validReport[i] {
			case "--cpf":
				args = append(args, "--cpf", "11111111111")
			case "--email":
				args = append(args, "--email", "user@.com")
			default:
				args = append(args, validReport[i], validReport[i+1])
			}
		}

		out, err := run(t, testApp(t), args...)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), `"cpf"`)
		assert.Contains(t, out, "CPF inválido")
		assert.Contains(t, out, "E-mail")
		assert.NotContains(t, out, form.SuccessTitle)
	})

	t.Run("with photo", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "poste.png")
		require.NoError(t, os.WriteFile(path, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, 0o600))

		out, err := run(t, testApp(t), append([]string{"check", "--foto", path}, validReport...)...)
		require.NoError(t, err)
		assert.Contains(t, out, "poste.png")
		assert.Contains(t, out, "image/png")
	})

	t.Run("photo that is not an image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

		out, err := run(t, testApp(t), append([]string{"check", "--foto", path}, validReport...)...)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, out, "Apenas imagens são permitidas")
	})

	t.Run("missing photo file", func(t *testing.T) {
		_, err := run(t, testApp(t), append([]string{"check", "--foto", "/nonexistent/x.png"}, validReport...)...)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidationFailed)
	})
}

func TestSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - {slug: iluminacao, label: Iluminação}\n"), 0o600))

	t.Run("reads environment and flags", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("RELATO_CATEGORIES_FILE", path)
		t.Setenv("RELATO_MIN_AGE", "16")

		app := &App{}
		require.NoError(t, Setup(app, &Flags{Strict: true, LogLevel: "debug"}, &bytes.Buffer{}))
		assert.Equal(t, 1, app.Catalog.Len())
		assert.Equal(t, 16, app.Form.MinAge)
		assert.True(t, app.Form.Strict)
		require.NotNil(t, app.Log)

		eng, err := app.NewEngine(form.NewMemoryForm().Bindings())
		require.NoError(t, err)
		assert.Len(t, eng.Fields(), 9)
	})

	t.Run("invalid log level", func(t *testing.T) {
		config.ResetCache()
		err := Setup(&App{}, &Flags{LogLevel: "loud"}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("invalid log format", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("LOG_FORMAT", "xml")
		err := Setup(&App{}, &Flags{}, &bytes.Buffer{})
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("env file", func(t *testing.T) {
		config.ResetCache()
		envPath := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envPath, []byte("RELATO_TEST_SETUP_MARKER=1\nRELATO_MAX_AGE=99\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("RELATO_TEST_SETUP_MARKER")
			os.Unsetenv("RELATO_MAX_AGE")
		})

		app := &App{}
		require.NoError(t, Setup(app, &Flags{EnvFiles: []string{envPath}}, &bytes.Buffer{}))
		assert.Equal(t, 99, app.Form.MaxAge)
	})
}

func TestMaskedValue(t *testing.T) {
	t.Parallel()

	mf := form.NewMemoryForm()
	eng, err := testApp(t).NewEngine(mf.Bindings())
	require.NoError(t, err)

	phone := newMaskedValue(eng, form.Phone)
	var typed string
	for _, r := range "11999998888" {
		typed += string(r)
		phone.Set(typed)
	}
	assert.Equal(t, "(11) 99999-8888", phone.Get())
	assert.Equal(t, "(11) 99999-8888", mf.Inputs[form.Phone].Text())

	cpf := newMaskedValue(eng, form.CPF)
	cpf.Set("529.982.24725")
	assert.Equal(t, "529.982.247-25", cpf.Get())
	assert.Equal(t, "529.982.247-25", mf.Inputs[form.CPF].Text())

	name := newMaskedValue(eng, form.Name)
	name.Set("Maria ")
	assert.Equal(t, "Maria ", name.Get())
	assert.Equal(t, "Maria ", mf.Inputs[form.Name].Text())
}
