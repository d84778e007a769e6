package httpserver

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Francieverton/ACOLD-MKT/internal/logging"
	"github.com/Francieverton/ACOLD-MKT/internal/models"
	"github.com/Francieverton/ACOLD-MKT/internal/render"
	"github.com/Francieverton/ACOLD-MKT/internal/router"
	"github.com/Francieverton/ACOLD-MKT/internal/service"
	"github.com/Francieverton/ACOLD-MKT/internal/state"
)

// Handlers is the HTTP face of the application: it binds form input, calls
// the mutation services, and feeds their results into the render step.
type Handlers struct {
	App       *state.App
	Router    *router.Router
	Auth      *service.AuthService
	Cart      *service.CartService
	Purchase  *service.PurchaseService
	Products  *service.ProductService
	JWTSecret []byte
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func parseFloatDefault(s string, def float64) float64 {
	if s == "" {
		return def
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return def
}

// page options threaded from handlers into the shell.
type pageOpts struct {
	notice      service.Notice
	openCart    bool
	resetScroll bool
	body        template.HTML
}

// showScreen renders a full page for the given transition. When body is
// unset the screen's default projection is used.
func (h *Handlers) showScreen(c echo.Context, tr router.Transition, opts pageOpts) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "show_screen", "screen", string(tr.Screen))

	if tr.Warning != "" && opts.notice.Message == "" {
		opts.notice = service.Notice{Level: service.NoticeError, Message: tr.Warning}
	}
	if tr.ResetScroll {
		opts.resetScroll = true
	}

	body := opts.body
	if body == "" {
		var err error
		body, err = h.defaultBody(tr.Screen)
		if err != nil {
			l.Error("render_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot render screen")
		}
	}

	cart, err := render.CartPanel(h.App.Cart(), opts.openCart)
	if err != nil {
		l.Error("render_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot render cart")
	}

	data := render.PageData{
		Theme:         h.App.Theme(),
		Screen:        string(tr.Screen),
		NoticeLevel:   opts.notice.Level,
		NoticeMessage: opts.notice.Message,
		ResetScroll:   opts.resetScroll,
		Body:          body,
		Cart:          cart,
	}
	if user := h.App.CurrentUser(); user != nil {
		data.UserName = user.Name
		data.IsSeller = user.Role == models.RoleSeller
	}

	page, err := render.Page(data)
	if err != nil {
		l.Error("render_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot render page")
	}
	return c.HTML(http.StatusOK, string(page))
}

func (h *Handlers) defaultBody(screen router.Screen) (template.HTML, error) {
	switch screen {
	case router.ScreenLogin:
		return render.LoginForm()
	case router.ScreenRegister:
		return render.RegisterForm()
	case router.ScreenDashboard:
		user := h.App.CurrentUser()
		if user == nil {
			return render.Grid(h.App.Products())
		}
		return render.Dashboard(h.App.ProductsBySeller(user.ID), h.App.EditingID())
	default:
		return render.Grid(h.App.Products())
	}
}

// Home is the landing page: the product grid.
func (h *Handlers) Home(c echo.Context) error {
	return h.showScreen(c, h.Router.Navigate(router.ScreenHome), pageOpts{})
}

// ShowScreen navigates to a named screen. The router applies the
// dashboard gate and falls back to home for unknown names.
func (h *Handlers) ShowScreen(c echo.Context) error {
	tr := h.Router.Navigate(router.Screen(c.Param("name")))
	return h.showScreen(c, tr, pageOpts{})
}

// ProductDetail renders a single product screen.
func (h *Handlers) ProductDetail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product_detail")

	product, ok := h.App.FindProduct(c.Param("id"))
	if !ok {
		l.Warn("product_detail_failed", "status", 404, "reason", "unknown product")
		return c.Redirect(http.StatusSeeOther, "/screens/home")
	}

	body, err := render.ProductDetail(product)
	if err != nil {
		l.Error("render_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot render product")
	}
	tr := h.Router.Navigate(router.ScreenProductDetail)
	return h.showScreen(c, tr, pageOpts{body: body})
}

// SellerProfile renders one seller's storefront.
func (h *Handlers) SellerProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "seller_profile")

	sellerID := c.Param("id")
	products := h.App.ProductsBySeller(sellerID)
	name := ""
	for _, u := range h.App.Users() {
		if u.ID == sellerID {
			name = u.Name
			break
		}
	}
	if name == "" && len(products) > 0 {
		name = products[0].SellerName
	}

	body, err := render.SellerProfile(name, products)
	if err != nil {
		l.Error("render_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot render seller profile")
	}
	tr := h.Router.Navigate(router.ScreenSellerProfile)
	return h.showScreen(c, tr, pageOpts{body: body})
}

// ToggleTheme flips and persists the theme preference.
func (h *Handlers) ToggleTheme(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "toggle_theme")

	next := state.ThemeDark
	if h.App.Theme() == state.ThemeDark {
		next = state.ThemeLight
	}
	if err := h.App.SetTheme(ctx, next); err != nil {
		l.Error("toggle_theme_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save theme")
	}
	return h.showScreen(c, router.Transition{Screen: h.Router.Current()}, pageOpts{})
}
