package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francieverton/ACOLD-MKT/internal/models"
	"github.com/Francieverton/ACOLD-MKT/internal/state"
	"github.com/Francieverton/ACOLD-MKT/internal/store"
)

func newApp(t *testing.T) *state.App {
	t.Helper()
	app := state.New(store.NewMemory(), nil)
	require.NoError(t, app.Load(context.Background()))
	return app
}

func TestNavigate_DefaultsToHome(t *testing.T) {
	t.Parallel()

	r := New(newApp(t))
	assert.Equal(t, ScreenHome, r.Current())

	tr := r.Navigate(Screen("no-such-screen"))
	assert.Equal(t, ScreenHome, tr.Screen)
}

func TestNavigate_DashboardGate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		session *models.User
		want    Screen
		warned  bool
	}{
		{name: "guest", session: nil, want: ScreenHome, warned: true},
		{name: "client", session: &models.User{ID: "c1", Role: models.RoleClient}, want: ScreenHome, warned: true},
		{name: "seller", session: &models.User{ID: "s1", Role: models.RoleSeller}, want: ScreenDashboard},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newApp(t)
			if tt.session != nil {
				require.NoError(t, app.SetSession(ctx, *tt.session))
			}
			r := New(app)

			tr := r.Navigate(ScreenDashboard)
			assert.Equal(t, tt.want, tr.Screen)
			assert.Equal(t, tt.want, r.Current())
			if tt.warned {
				assert.NotEmpty(t, tr.Warning)
			} else {
				assert.Empty(t, tr.Warning)
			}
		})
	}
}

func TestNavigate_ProductDetailResetsScroll(t *testing.T) {
	t.Parallel()

	r := New(newApp(t))
	tr := r.Navigate(ScreenProductDetail)
	assert.Equal(t, ScreenProductDetail, tr.Screen)
	assert.True(t, tr.ResetScroll)

	tr = r.Navigate(ScreenHome)
	assert.False(t, tr.ResetScroll)
}
