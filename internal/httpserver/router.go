package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Francieverton/ACOLD-MKT/internal/models"
)

// Register mounts every route. Screen navigation is GET, every mutation is
// a form POST. Seller-only routes sit behind the session cookie check.
func Register(e *echo.Echo, h *Handlers) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/static/style.css", serveStyle)

	e.GET("/", h.Home)
	e.GET("/screens/:name", h.ShowScreen)
	e.GET("/products/:id", h.ProductDetail)
	e.GET("/sellers/:id", h.SellerProfile)

	e.POST("/register", h.RegisterUser)
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout)
	e.POST("/theme", h.ToggleTheme)

	e.POST("/cart/:id", h.AddToCart)
	e.POST("/cart/:id/remove", h.RemoveFromCart)
	e.POST("/checkout", h.Checkout)
	e.POST("/purchase/:id", h.PurchaseProduct)

	seller := e.Group("/products", h.sellerOnly)
	seller.POST("", h.SaveProduct)
	seller.POST("/:id/edit", h.BeginEdit)
	seller.POST("/:id/delete", h.DeleteProduct)
}

// sellerOnly rejects requests without a valid seller token, mirroring the
// dashboard gate for the mutating routes behind it.
func (h *Handlers) sellerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(accessCookieName)
		if err != nil {
			return c.Redirect(http.StatusSeeOther, "/screens/login")
		}
		claims, err := parseSessionCookie(h.JWTSecret, cookie.Value)
		if err != nil || claims.Role != models.RoleSeller {
			return c.Redirect(http.StatusSeeOther, "/screens/home")
		}
		return next(c)
	}
}
