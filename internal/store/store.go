// Package store is the persistence substrate: a flat key to blob mapping
// with no transactions and no expiry. Values are JSON-encoded by callers.
package store

import "context"

// Keys used by the application. Session lives under its own key so it can
// be cleared without touching the user roster.
const (
	KeyUsers    = "cold_users"
	KeyProducts = "cold_products"
	KeySession  = "cold_session"
	KeyCart     = "cold_cart"
	KeyTheme    = "cold_theme"
)

// Store is a synchronous key-value blob store. Get returns nil and no
// error for an absent key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
