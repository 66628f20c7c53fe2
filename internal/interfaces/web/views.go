package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewViewEngine arma el motor de templates con las vistas embebidas en el
// binario. Sin layout ni estilos: pantallas mínimas a propósito.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("vistas embebidas: " + err.Error())
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
