// Package web holds the HTML templates for the list and add views.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page and partial. Pages are looked up by file
// name, e.g. "list.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"colspan": func(cols []string) int { return len(cols) },
	}).ParseFS(files, "templates/*.html")
}

// MustTemplates is Templates for program start-up.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
