package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Francieverton/ACOLD-MKT/internal/logging"
	"github.com/Francieverton/ACOLD-MKT/internal/render"
	"github.com/Francieverton/ACOLD-MKT/internal/router"
	"github.com/Francieverton/ACOLD-MKT/internal/service"
)

// PurchaseProduct runs the direct-buy flow and waits for the deferred
// continuation, so the response carries the post-purchase state. After a
// purchase on the seller-profile screen that screen is re-rendered for the
// product's seller; otherwise the grid is.
func (h *Handlers) PurchaseProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "purchase")

	done, err := h.Purchase.Purchase(ctx, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLoginRequired):
			return h.showScreen(c, h.Router.Navigate(router.ScreenLogin), pageOpts{
				notice: service.Notice{Level: service.NoticeError, Message: "Faça login como Cliente para comprar."},
			})
		case errors.Is(err, service.ErrSellerCannotBuy):
			return h.showScreen(c, router.Transition{Screen: h.Router.Current()}, pageOpts{
				notice: service.Notice{
					Level:   service.NoticeError,
					Message: "Vendedoras não podem comprar produtos. Entre com uma conta de Cliente.",
				},
			})
		case errors.Is(err, service.ErrSoldOut):
			return h.showScreen(c, router.Transition{Screen: h.Router.Current()}, pageOpts{
				notice: service.Notice{Level: service.NoticeError, Message: "Produto esgotado!"},
			})
		case errors.Is(err, service.ErrPurchaseInFlight):
			return h.showScreen(c, router.Transition{Screen: h.Router.Current()}, pageOpts{
				notice: service.Notice{Level: service.NoticeError, Message: "Compra em andamento, aguarde."},
			})
		case errors.Is(err, service.ErrNoSuchProduct):
			l.Warn("purchase_failed", "status", 404, "reason", "unknown product")
			return c.Redirect(http.StatusSeeOther, "/screens/home")
		default:
			l.Error("purchase_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot purchase")
		}
	}

	out := <-done
	if out.Err != nil {
		l.Error("purchase_failed", "status", 500, "error", out.Err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot purchase")
	}

	opts := pageOpts{notice: out.Notice}
	tr := router.Transition{Screen: h.Router.Current()}
	if tr.Screen == router.ScreenSellerProfile {
		body, err := render.SellerProfile(out.Product.SellerName, h.App.ProductsBySeller(out.Product.SellerID))
		if err != nil {
			l.Error("render_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot render seller profile")
		}
		opts.body = body
	}
	return h.showScreen(c, tr, opts)
}
