// Package views holds the html templates of the pages and the helpers they format with.
package views

import (
	"embed"
	"html/template"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const previewLength = 120

//go:embed templates/*.html
var templates embed.FS

// Funcs are the helpers available to every template
func Funcs() template.FuncMap {
	return template.FuncMap{
		"shortDate": ShortDate,
		"longDate":  LongDate,
		"preview":   Preview,
	}
}

// Parse parses every embedded template
func Parse() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templates, "templates/*.html")
}

// Install sets the parsed templates as the html renderer of r
func Install(r *gin.Engine) error {
	t, err := Parse()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(t)
	return nil
}

// ShortDate formats the date of a note card
func ShortDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// LongDate formats the dates of the note page
func LongDate(t time.Time) string {
	return t.Format("January 2, 2006 at 03:04 PM")
}

// Preview cuts text down to what fits a note card
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= previewLength {
		return text
	}
	return string([]rune(text)[:previewLength]) + "..."
}
