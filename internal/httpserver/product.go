package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Francieverton/ACOLD-MKT/internal/logging"
	"github.com/Francieverton/ACOLD-MKT/internal/router"
	"github.com/Francieverton/ACOLD-MKT/internal/service"
)

// productForm binds the dashboard form. Every field is posted, so all
// pointers are set; numeric fields fall back to zero on parse failure.
func productForm(c echo.Context) service.ProductForm {
	title := c.FormValue("title")
	img := c.FormValue("img")
	desc := c.FormValue("desc")
	price := parseFloatDefault(c.FormValue("price"), 0)
	stock := parseIntDefault(c.FormValue("stock"), 0)
	preorder := c.FormValue("preorder") != ""

	return service.ProductForm{
		Title:       &title,
		ImageURL:    &img,
		Description: &desc,
		Price:       &price,
		Stock:       &stock,
		Preorder:    &preorder,
	}
}

// SaveProduct creates or updates a product from the dashboard form.
func (h *Handlers) SaveProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.save")

	editingID := c.FormValue("editing")
	_, err := h.Products.Save(ctx, productForm(c), editingID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return h.showScreen(c, h.Router.Navigate(router.ScreenDashboard), pageOpts{
				notice: service.Notice{Level: service.NoticeError, Message: "Valores inválidos no formulário."},
			})
		case errors.Is(err, service.ErrNoSuchProduct):
			l.Warn("product_save_failed", "status", 404, "reason", "unknown product")
			return c.Redirect(http.StatusSeeOther, "/screens/dashboard")
		default:
			l.Error("product_save_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot save product")
		}
	}

	msg := "Produto adicionado!"
	if editingID != "" {
		msg = "Produto atualizado!"
	}
	return h.showScreen(c, h.Router.Navigate(router.ScreenDashboard), pageOpts{
		notice: service.Notice{Level: service.NoticeSuccess, Message: msg},
	})
}

// BeginEdit marks a product for editing; the dashboard form comes back
// pre-filled with its fields.
func (h *Handlers) BeginEdit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.begin_edit")

	if _, err := h.Products.BeginEdit(c.Param("id")); err != nil {
		l.Warn("begin_edit_failed", "status", 404, "reason", "unknown product")
		return c.Redirect(http.StatusSeeOther, "/screens/dashboard")
	}
	return h.showScreen(c, h.Router.Navigate(router.ScreenDashboard), pageOpts{})
}

// DeleteProduct removes a product. The confirmation dialog lives in the
// dashboard markup, before this handler is reached.
func (h *Handlers) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	if err := h.Products.Delete(ctx, c.Param("id")); err != nil {
		l.Error("product_delete_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}
	return h.showScreen(c, h.Router.Navigate(router.ScreenDashboard), pageOpts{
		notice: service.Notice{Level: service.NoticeSuccess, Message: "Produto removido."},
	})
}
