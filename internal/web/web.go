// Package web holds the server-rendered HTML templates.
package web

import (
	"embed"
	"html/template"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
}

// Templates parses every page template. Each page is registered under its
// file name, e.g. "login.html".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}
