package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francieverton/ACOLD-MKT/internal/models"
	"github.com/Francieverton/ACOLD-MKT/internal/state"
)

func newPurchaseService(app *state.App) *PurchaseService {
	return &PurchaseService{App: app, Delay: time.Millisecond}
}

func buy(t *testing.T, svc *PurchaseService, productID string) Outcome {
	t.Helper()
	done, err := svc.Purchase(context.Background(), productID)
	require.NoError(t, err)
	select {
	case out := <-done:
		return out
	case <-time.After(5 * time.Second):
		t.Fatal("purchase did not resolve")
		return Outcome{}
	}
}

func TestPurchase_DecrementsStock(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	loginClient(t, app)
	svc := newPurchaseService(app)

	out := buy(t, svc, "1")
	require.NoError(t, out.Err)
	assert.Equal(t, 4, out.Product.Stock)
	assert.Equal(t, NoticeSuccess, out.Notice.Level)

	p, _ := app.FindProduct("1")
	assert.Equal(t, 4, p.Stock)
}

func TestPurchase_LastUnitThenSoldOut(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	app := newTestApp(t)
	loginClient(t, app)
	svc := newPurchaseService(app)

	// Drain product "1" down to a single unit.
	for i := 0; i < 4; i++ {
		_, err := app.DecrementStock(ctx, "1")
		require.NoError(t, err)
	}

	out := buy(t, svc, "1")
	require.NoError(t, out.Err)
	assert.Equal(t, 0, out.Product.Stock)

	_, err := svc.Purchase(ctx, "1")
	require.ErrorIs(t, err, ErrSoldOut)
	p, _ := app.FindProduct("1")
	assert.Equal(t, 0, p.Stock)
}

func TestPurchase_PreorderNeverChangesStock(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	loginClient(t, app)
	svc := newPurchaseService(app)

	for i := 0; i < 3; i++ {
		out := buy(t, svc, "2")
		require.NoError(t, out.Err)
		assert.Equal(t, 2, out.Product.Stock)
	}
}

func TestPurchase_GuestMustLogIn(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	svc := newPurchaseService(app)

	_, err := svc.Purchase(context.Background(), "1")
	require.ErrorIs(t, err, ErrLoginRequired)
}

func TestPurchase_SellerRejected(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	loginSeller(t, app)
	svc := newPurchaseService(app)

	_, err := svc.Purchase(context.Background(), "1")
	require.ErrorIs(t, err, ErrSellerCannotBuy)

	p, _ := app.FindProduct("1")
	assert.Equal(t, 5, p.Stock)
}

func TestPurchase_ReentrancyGuard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	app := newTestApp(t)
	loginClient(t, app)
	svc := &PurchaseService{App: app, Delay: 200 * time.Millisecond}

	done, err := svc.Purchase(ctx, "1")
	require.NoError(t, err)
	assert.True(t, svc.InFlight("1"))

	_, err = svc.Purchase(ctx, "1")
	require.ErrorIs(t, err, ErrPurchaseInFlight)

	// A different product is not blocked by the guard.
	other, err := svc.Purchase(ctx, "3")
	require.NoError(t, err)

	out := <-done
	require.NoError(t, out.Err)
	assert.Equal(t, 4, out.Product.Stock)
	assert.False(t, svc.InFlight("1"))
	<-other
}

func TestPurchase_Cancellation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	loginClient(t, app)
	svc := &PurchaseService{App: app, Delay: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	done, err := svc.Purchase(ctx, "1")
	require.NoError(t, err)
	cancel()

	out := <-done
	require.ErrorIs(t, out.Err, context.Canceled)

	// Cancelled purchases leave stock untouched.
	p, _ := app.FindProduct("1")
	assert.Equal(t, 5, p.Stock)
}

func TestPurchase_RoleCheckUsesSessionRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	app := newTestApp(t)
	require.NoError(t, app.SetSession(ctx, models.User{ID: "z9", Role: models.RoleClient}))
	svc := newPurchaseService(app)

	out := buy(t, svc, "3")
	require.NoError(t, out.Err)
	assert.Equal(t, 9, out.Product.Stock)
}
