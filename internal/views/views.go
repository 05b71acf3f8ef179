// Package views holds the HTML templates, compiled into the binary.
package views

import (
	"embed"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts/*.html pages/*.html notes/*.html users/*.html *.html
var files embed.FS

func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Local().Format("02/01/2006 15:04")
	})
	return engine
}
