// Package web embeds the browser view served at the site root.
package web

import (
	"embed"
	"html/template"
)

// IndexTemplate is the template name of the browser view
const IndexTemplate = "index.html"

//go:embed index.html
var files embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(files, IndexTemplate)
}
