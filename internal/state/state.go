// Package state owns the in-memory snapshot of the marketplace: users,
// products, cart, the current session and the editing marker. Every
// mutation writes through to the store under a stable key.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Francieverton/ACOLD-MKT/internal/models"
	"github.com/Francieverton/ACOLD-MKT/internal/store"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var ErrNoSuchProduct = errors.New("no such product")

// App is the single state container. Mutation services hold a reference to
// it instead of closing over globals. The mutex guards against the purchase
// continuation, which runs on its own goroutine.
type App struct {
	mu    sync.Mutex
	store store.Store
	log   *slog.Logger

	users    []models.User
	products []models.Product
	cart     []models.Product
	current  *models.User
	editing  string
	theme    string
}

func New(s store.Store, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{store: s, log: log, theme: ThemeLight}
}

// Load pulls every collection from the store. Absent keys yield empty
// collections, never errors. When the catalog is empty the fixed seed data
// set is written, so seeding only ever happens on a fresh store.
func (a *App) Load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.loadJSON(ctx, store.KeyUsers, &a.users); err != nil {
		return err
	}
	if err := a.loadJSON(ctx, store.KeyProducts, &a.products); err != nil {
		return err
	}
	if err := a.loadJSON(ctx, store.KeyCart, &a.cart); err != nil {
		return err
	}

	raw, err := a.store.Get(ctx, store.KeySession)
	if err != nil {
		return fmt.Errorf("state: load session: %w", err)
	}
	a.current = nil
	if len(raw) > 0 {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			return fmt.Errorf("state: decode session: %w", err)
		}
		a.current = &u
	}

	rawTheme, err := a.store.Get(ctx, store.KeyTheme)
	if err != nil {
		return fmt.Errorf("state: load theme: %w", err)
	}
	a.theme = ThemeLight
	if len(rawTheme) > 0 {
		var theme string
		if err := json.Unmarshal(rawTheme, &theme); err == nil && theme == ThemeDark {
			a.theme = ThemeDark
		}
	}

	if len(a.products) == 0 {
		if err := a.seed(ctx); err != nil {
			return err
		}
		a.log.Info("state_seeded", "products", len(a.products), "users", len(a.users))
	}

	return nil
}

func (a *App) loadJSON(ctx context.Context, key string, dst any) error {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("state: load %s: %w", key, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("state: decode %s: %w", key, err)
	}
	return nil
}

func (a *App) saveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("state: encode %s: %w", key, err)
	}
	if err := a.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("state: save %s: %w", key, err)
	}
	return nil
}

func (a *App) seed(ctx context.Context) error {
	a.users = seedUsers()
	a.products = seedProducts()
	if err := a.saveJSON(ctx, store.KeyUsers, a.users); err != nil {
		return err
	}
	return a.saveJSON(ctx, store.KeyProducts, a.products)
}

// Users returns a copy of the roster.
func (a *App) Users() []models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.User(nil), a.users...)
}

// Products returns a copy of the catalog, most recently created first.
func (a *App) Products() []models.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Product(nil), a.products...)
}

// Cart returns a copy of the cart in insertion order.
func (a *App) Cart() []models.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Product(nil), a.cart...)
}

// CurrentUser returns a copy of the session user, or nil for a guest.
func (a *App) CurrentUser() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return nil
	}
	u := *a.current
	return &u
}

func (a *App) EditingID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.editing
}

func (a *App) Theme() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.theme
}

func (a *App) FindProduct(id string) (models.Product, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, p := range a.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (a *App) FindUserByEmail(email string) (models.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, u := range a.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// ProductsBySeller filters the catalog, preserving catalog order.
func (a *App) ProductsBySeller(sellerID string) []models.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []models.Product
	for _, p := range a.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out
}

func (a *App) CartContains(productID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, p := range a.cart {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (a *App) CartCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.cart)
}

// AppendUser adds a user to the roster and persists it.
func (a *App) AppendUser(ctx context.Context, u models.User) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.users = append(a.users, u)
	return a.saveJSON(ctx, store.KeyUsers, a.users)
}

// SetSession persists the session under its own key.
func (a *App) SetSession(ctx context.Context, u models.User) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = &u
	return a.saveJSON(ctx, store.KeySession, u)
}

// ClearSession removes the session key, leaving the roster untouched.
func (a *App) ClearSession(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = nil
	if err := a.store.Delete(ctx, store.KeySession); err != nil {
		return fmt.Errorf("state: clear session: %w", err)
	}
	return nil
}

// PrependProduct puts a newly created product at the head of the catalog.
func (a *App) PrependProduct(ctx context.Context, p models.Product) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.products = append([]models.Product{p}, a.products...)
	return a.saveJSON(ctx, store.KeyProducts, a.products)
}

// ReplaceProduct swaps the record with the same id in place.
func (a *App) ReplaceProduct(ctx context.Context, p models.Product) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.products {
		if a.products[i].ID == p.ID {
			a.products[i] = p
			return a.saveJSON(ctx, store.KeyProducts, a.products)
		}
	}
	return ErrNoSuchProduct
}

// RemoveProduct deletes by id. Removing an unknown id is a no-op.
func (a *App) RemoveProduct(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.products[:0]
	for _, p := range a.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	a.products = kept
	return a.saveJSON(ctx, store.KeyProducts, a.products)
}

// DecrementStock applies the purchase effect. Preorder products keep their
// stock field untouched.
func (a *App) DecrementStock(ctx context.Context, id string) (models.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.products {
		if a.products[i].ID != id {
			continue
		}
		if !a.products[i].Preorder {
			a.products[i].Stock--
		}
		p := a.products[i]
		return p, a.saveJSON(ctx, store.KeyProducts, a.products)
	}
	return models.Product{}, ErrNoSuchProduct
}

// AppendCart stores a snapshot of the product, not a live reference.
func (a *App) AppendCart(ctx context.Context, p models.Product) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart = append(a.cart, p)
	return a.saveJSON(ctx, store.KeyCart, a.cart)
}

// RemoveCart deletes the cart entry with the given product id.
func (a *App) RemoveCart(ctx context.Context, productID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.cart[:0]
	for _, p := range a.cart {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	a.cart = kept
	return a.saveJSON(ctx, store.KeyCart, a.cart)
}

// ClearCart empties the cart wholesale (checkout).
func (a *App) ClearCart(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart = nil
	return a.saveJSON(ctx, store.KeyCart, []models.Product{})
}

// SetEditing marks the product being edited; empty means "create new".
// The marker is display state and is not persisted.
func (a *App) SetEditing(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.editing = id
}

// SetTheme persists the theme preference.
func (a *App) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.theme = theme
	return a.saveJSON(ctx, store.KeyTheme, theme)
}
