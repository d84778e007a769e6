package httpserver

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed assets/style.css
var styleCSS []byte

func serveStyle(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", styleCSS)
}
