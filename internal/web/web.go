package web

import (
	"embed"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"datetime": func(t time.Time) string {
		return t.Format("Mon Jan 2, 2006 3:04PM MST")
	},
	"join": strings.Join,
}

// Templates parses every page. Page names are the file base names.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "templates/*.html"))
}
