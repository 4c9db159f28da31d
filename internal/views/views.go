// Package views holds the server-rendered pages.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html
var files embed.FS

// NewEngine returns a template engine backed by the embedded pages.
func NewEngine(reload bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.Reload(reload)
	engine.AddFunc("deref", func(f *float64) float64 {
		if f == nil {
			return 0
		}
		return *f
	})
	return engine
}
