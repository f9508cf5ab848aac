// Package views holds the HTML templates of both applications.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts partials news notes auth errors
var FS embed.FS

// NewEngine returns the template engine over the embedded files. Templates
// are addressed without extension, e.g. "news/home".
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.AddFunc("date", func(t interface{ Format(string) string }) string {
		return t.Format("02.01.2006 15:04")
	})
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	return engine
}
