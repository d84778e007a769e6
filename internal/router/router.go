// Package router switches the single visible screen. It is purely display
// state: it never loads data, callers populate the target screen first.
package router

import (
	"sync"

	"github.com/Francieverton/ACOLD-MKT/internal/models"
	"github.com/Francieverton/ACOLD-MKT/internal/state"
)

type Screen string

const (
	ScreenHome          Screen = "home"
	ScreenLogin         Screen = "login"
	ScreenRegister      Screen = "register"
	ScreenDashboard     Screen = "dashboard"
	ScreenSellerProfile Screen = "seller-profile"
	ScreenProductDetail Screen = "product-detail"
)

var screens = map[Screen]bool{
	ScreenHome:          true,
	ScreenLogin:         true,
	ScreenRegister:      true,
	ScreenDashboard:     true,
	ScreenSellerProfile: true,
	ScreenProductDetail: true,
}

func Valid(s Screen) bool { return screens[s] }

// Transition is the outcome of a navigation. Warning is non-empty when an
// authorization gate redirected the request to a safe screen.
type Transition struct {
	Screen      Screen
	ResetScroll bool
	Warning     string
}

// Router tracks the current screen. The dashboard is gated on a seller
// session; every other screen is freely reachable.
type Router struct {
	app *state.App

	mu      sync.Mutex
	current Screen
}

func New(app *state.App) *Router {
	return &Router{app: app, current: ScreenHome}
}

func (r *Router) Current() Screen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate moves to the target screen. Unknown screens fall back to home.
// Entering the dashboard without a seller session redirects home with a
// warning instead of failing.
func (r *Router) Navigate(target Screen) Transition {
	if !Valid(target) {
		target = ScreenHome
	}

	t := Transition{Screen: target}

	if target == ScreenDashboard {
		user := r.app.CurrentUser()
		if user == nil || user.Role != models.RoleSeller {
			t.Screen = ScreenHome
			t.Warning = "Acesso restrito a vendedoras."
		}
	}

	if t.Screen == ScreenProductDetail {
		t.ResetScroll = true
	}

	r.mu.Lock()
	r.current = t.Screen
	r.mu.Unlock()
	return t
}
