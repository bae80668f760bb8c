// Package render turns listing results and pagination state into HTML.
//
// Everything here is a pure function of its input: the same view always
// renders the same bytes, which the AJAX fetch endpoints rely on.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"isodate":   func(t time.Time) string { return t.UTC().Format("2006-01-02") },
	"humandate": func(t time.Time) string { return t.UTC().Format("January 2, 2006") },
	"salary":    formatSalary,
}

// Renderer holds the parsed templates and the card registry.
type Renderer struct {
	tmpl  *template.Template
	cards *Registry
}

// New parses the embedded templates and registers the built-in cards.
func New() (*Renderer, error) {
	tmpl, err := template.New("recruitpro").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r := &Renderer{tmpl: tmpl}
	r.cards = NewRegistry(r.templateCard("card_post"))
	r.cards.Register("job", r.templateCard("card_job"))
	return r, nil
}

// Cards returns the card registry so callers can add content types.
func (r *Renderer) Cards() *Registry {
	return r.cards
}

func (r *Renderer) templateCard(name string) CardRenderer {
	return CardFunc(func(w io.Writer, c *CardView) error {
		return r.tmpl.ExecuteTemplate(w, name, c)
	})
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	// #nosec G203 -- output of html/template, already escaped
	return template.HTML(buf.String()), nil
}

// PageURL returns the URL of page n of the listing at base: base itself for
// the first page and base + "/page/n" after that.
func PageURL(base string, n int) string {
	base = strings.TrimRight(base, "/")
	if n <= 1 {
		if base == "" {
			return "/"
		}
		return base
	}
	return base + "/page/" + strconv.Itoa(n)
}

func formatSalary(lo, hi int) string {
	if lo > 0 && lo != hi {
		return groupThousands(lo) + " – " + groupThousands(hi)
	}
	return groupThousands(hi)
}

var numberPrinter = message.NewPrinter(language.English)

func groupThousands(n int) string {
	return numberPrinter.Sprintf("%d", n)
}
