package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart_SnapshotsProduct(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	app := newTestApp(t)
	svc := &CartService{App: app}

	res, err := svc.AddToCart(ctx, "1")
	require.NoError(t, err)
	assert.True(t, res.Added)
	assert.True(t, res.OpenPanel)
	assert.Equal(t, 1, res.Count)

	cart := app.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "Bolsa de Crochê Azul", cart[0].Title)
}

func TestAddToCart_DuplicateIsNoOpWithNotice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	app := newTestApp(t)
	svc := &CartService{App: app}

	_, err := svc.AddToCart(ctx, "1")
	require.NoError(t, err)

	res, err := svc.AddToCart(ctx, "1")
	require.NoError(t, err)
	assert.False(t, res.Added)
	assert.False(t, res.OpenPanel)
	assert.Equal(t, NoticeError, res.Notice.Level)
	assert.Len(t, app.Cart(), 1)
}

func TestAddToCart_SoldOutRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	app := newTestApp(t)
	svc := &CartService{App: app}

	for i := 0; i < 5; i++ {
		_, err := app.DecrementStock(ctx, "1")
		require.NoError(t, err)
	}

	_, err := svc.AddToCart(ctx, "1")
	require.ErrorIs(t, err, ErrSoldOut)
	assert.Empty(t, app.Cart())
}

func TestAddToCart_PreorderIgnoresStock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	app := newTestApp(t)
	svc := &CartService{App: app}

	// Product "2" is the seeded preorder item with stock 2; even at zero
	// stock it stays orderable, so adding succeeds regardless.
	res, err := svc.AddToCart(ctx, "2")
	require.NoError(t, err)
	assert.True(t, res.Added)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	svc := &CartService{App: app}

	_, err := svc.AddToCart(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNoSuchProduct)
}

func TestCart_AddRemoveAddScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	app := newTestApp(t)
	svc := &CartService{App: app}

	_, err := svc.AddToCart(ctx, "2")
	require.NoError(t, err)
	require.NoError(t, svc.RemoveFromCart(ctx, "2"))
	_, err = svc.AddToCart(ctx, "2")
	require.NoError(t, err)

	cart := app.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "2", cart[0].ID)
	// Cart operations never touch stock.
	assert.Equal(t, 2, cart[0].Stock)
	p, _ := app.FindProduct("2")
	assert.Equal(t, 2, p.Stock)
}

func TestCheckout_EmptyCartIsSilentNoOp(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	svc := &CartService{App: app}
	loginClient(t, app)

	res, err := svc.Checkout(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Done)
	assert.Empty(t, res.Notice.Message)
	assert.Empty(t, app.Cart())
}

func TestCheckout_GuestRedirectedToLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	app := newTestApp(t)
	svc := &CartService{App: app}

	_, err := svc.AddToCart(ctx, "1")
	require.NoError(t, err)

	_, err = svc.Checkout(ctx)
	require.ErrorIs(t, err, ErrLoginRequired)
	assert.Len(t, app.Cart(), 1)
}

func TestCheckout_ClearsCartWithoutTouchingStock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	app := newTestApp(t)
	svc := &CartService{App: app}
	loginClient(t, app)

	_, err := svc.AddToCart(ctx, "1")
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "3")
	require.NoError(t, err)

	res, err := svc.Checkout(ctx)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Empty(t, app.Cart())

	// Checkout and direct purchase are independent paths: stock unchanged.
	p1, _ := app.FindProduct("1")
	p3, _ := app.FindProduct("3")
	assert.Equal(t, 5, p1.Stock)
	assert.Equal(t, 10, p3.Stock)
}
