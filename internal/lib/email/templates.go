package email

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateContact corresponds to templates/contact.html
	TemplateContact Template = "contact"
)

// Templates are embedded so the binary does not depend on its working
// directory at runtime.
//
//go:embed templates/*.html
var templateFS embed.FS

// templates is parsed once; a missing or broken template fails at startup.
var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"linebreaks": Linebreaks,
}).ParseFS(templateFS, "templates/*.html"))

// Render executes the named template with data.
//
// Values are embedded verbatim; text/template performs no HTML escaping.
func Render(name Template, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, fmt.Sprintf("%s.html", name), data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}

// Linebreaks replaces every "\n" with "<br>".
func Linebreaks(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}
