package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Francieverton/ACOLD-MKT/internal/logging"
	"github.com/Francieverton/ACOLD-MKT/internal/router"
	"github.com/Francieverton/ACOLD-MKT/internal/service"
)

// AddToCart snapshots a product into the cart and opens the panel.
func (h *Handlers) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	res, err := h.Cart.AddToCart(ctx, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSoldOut):
			return h.showScreen(c, router.Transition{Screen: h.Router.Current()}, pageOpts{
				notice: service.Notice{Level: service.NoticeError, Message: "Produto esgotado!"},
			})
		case errors.Is(err, service.ErrNoSuchProduct):
			l.Warn("add_to_cart_failed", "status", 404, "reason", "unknown product")
			return c.Redirect(http.StatusSeeOther, "/screens/home")
		default:
			l.Error("add_to_cart_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot add to cart")
		}
	}

	return h.showScreen(c, router.Transition{Screen: h.Router.Current()}, pageOpts{
		notice:   res.Notice,
		openCart: res.OpenPanel,
	})
}

// RemoveFromCart removes one entry and re-renders.
func (h *Handlers) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	if err := h.Cart.RemoveFromCart(ctx, c.Param("id")); err != nil {
		l.Error("remove_from_cart_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot remove from cart")
	}
	return h.showScreen(c, router.Transition{Screen: h.Router.Current()}, pageOpts{openCart: true})
}

// Checkout clears the cart. Guests are sent to the login screen; an empty
// cart is a silent no-op.
func (h *Handlers) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.checkout")

	res, err := h.Cart.Checkout(ctx)
	if err != nil {
		if errors.Is(err, service.ErrLoginRequired) {
			return h.showScreen(c, h.Router.Navigate(router.ScreenLogin), pageOpts{
				notice: service.Notice{Level: service.NoticeError, Message: "Faça login para finalizar o pedido."},
			})
		}
		l.Error("checkout_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot checkout")
	}

	opts := pageOpts{}
	if res.Done {
		opts.notice = res.Notice
	} else {
		opts.openCart = true
	}
	return h.showScreen(c, router.Transition{Screen: h.Router.Current()}, opts)
}
