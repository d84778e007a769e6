package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Francieverton/ACOLD-MKT/internal/logging"
	"github.com/Francieverton/ACOLD-MKT/internal/router"
	"github.com/Francieverton/ACOLD-MKT/internal/service"
)

// RegisterUser handles the registration form.
func (h *Handlers) RegisterUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "register")

	user, err := h.Auth.Register(ctx,
		c.FormValue("name"),
		c.FormValue("email"),
		c.FormValue("password"),
		c.FormValue("role"),
	)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			return h.showScreen(c, h.Router.Navigate(router.ScreenRegister), pageOpts{
				notice: service.Notice{Level: service.NoticeError, Message: "Email já cadastrado."},
			})
		}
		l.Error("register_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot register")
	}

	cookie, err := mintSessionCookie(h.JWTSecret, *user)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create session")
	}
	c.SetCookie(cookie)

	return h.showScreen(c, h.Router.Navigate(router.ScreenHome), pageOpts{
		notice: service.Notice{Level: service.NoticeSuccess, Message: "Conta criada com sucesso!"},
	})
}

// Login handles the login form.
func (h *Handlers) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "login")

	user, err := h.Auth.Login(ctx, c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return h.showScreen(c, h.Router.Navigate(router.ScreenLogin), pageOpts{
				notice: service.Notice{Level: service.NoticeError, Message: "Email ou senha inválidos."},
			})
		}
		l.Error("login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot log in")
	}

	cookie, err := mintSessionCookie(h.JWTSecret, *user)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create session")
	}
	c.SetCookie(cookie)

	return h.showScreen(c, h.Router.Navigate(router.ScreenHome), pageOpts{
		notice: service.Notice{Level: service.NoticeSuccess, Message: "Bem-vindo, " + user.Name + "!"},
	})
}

// Logout clears the session and lands on the login screen.
func (h *Handlers) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "logout")

	if err := h.Auth.Logout(ctx); err != nil {
		l.Error("logout_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot log out")
	}
	c.SetCookie(deleteCookie(accessCookieName, "/"))

	return h.showScreen(c, h.Router.Navigate(router.ScreenLogin), pageOpts{
		notice: service.Notice{Level: service.NoticeSuccess, Message: "Você saiu."},
	})
}
