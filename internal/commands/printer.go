package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/dmitrymomot/relato/pkg/category"
	"github.com/dmitrymomot/relato/pkg/form"
	"github.com/dmitrymomot/relato/pkg/sanitizer"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676"))
	labelStyle   = lipgloss.NewStyle().Width(20)
	successStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)
)

const (
	markOK   = "✓"
	markFail = "✗"
	markSkip = "-"
)

// printFieldStates writes one line per registered field with its state and
// message.
func printFieldStates(w io.Writer, eng *form.Engine) {
	_, _ = fmt.Fprintln(w, titleStyle.Render("Validação do relato"))
	for _, d := range eng.Fields() {
		label := labelStyle.Render(d.Label)
		switch eng.State(d.Name) {
		case form.StateValid:
			_, _ = fmt.Fprintf(w, "%s %s\n", okStyle.Render(markOK), label)
		case form.StateInvalid:
			_, _ = fmt.Fprintf(w, "%s %s %s\n", failStyle.Render(markFail), label, failStyle.Render(eng.Message(d.Name)))
		default:
			_, _ = fmt.Fprintf(w, "%s %s %s\n", mutedStyle.Render(markSkip), label, mutedStyle.Render("não verificado"))
		}
	}
}

// printReport renders the success confirmation with the report snapshot.
func printReport(w io.Writer, r *form.Report, catalog *category.Catalog) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(form.SuccessTitle))
	b.WriteString("\n")
	b.WriteString(form.SuccessHint)
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}
	row("Protocolo", r.Protocol)
	row("Nome", r.Name)
	row("CPF", sanitizer.MaskCPF(r.CPF))
	row("Nascimento", r.Birthdate.Format("02/01/2006"))
	row("Telefone", sanitizer.MaskPhoneBR(r.Phone))
	row("E-mail", r.Email)
	row("Categoria", categoryLabel(catalog, r.Category))
	row("Endereço", r.Address)
	row("Mensagem", r.Message)
	if r.Photo != nil {
		row("Foto", fmt.Sprintf("%s (%s, %s)", r.Photo.Filename, r.Photo.MIMEType, humanize.IBytes(uint64(r.Photo.Size))))
	} else {
		row("Foto", mutedStyle.Render("nenhuma"))
	}
	row("Enviado em", r.SubmittedAt.Format("02/01/2006 15:04"))

	_, _ = fmt.Fprintln(w, successStyle.Render(strings.TrimRight(b.String(), "\n")))
}

func categoryLabel(catalog *category.Catalog, slug string) string {
	if catalog != nil {
		if label := catalog.Label(slug); label != "" {
			return label
		}
	}
	return slug
}
