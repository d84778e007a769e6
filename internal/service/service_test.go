package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Francieverton/ACOLD-MKT/internal/models"
	"github.com/Francieverton/ACOLD-MKT/internal/state"
	"github.com/Francieverton/ACOLD-MKT/internal/store"
)

// newTestApp returns a seeded state container backed by a memory store.
func newTestApp(t *testing.T) *state.App {
	t.Helper()
	app := state.New(store.NewMemory(), nil)
	require.NoError(t, app.Load(context.Background()))
	return app
}

func loginClient(t *testing.T, app *state.App) models.User {
	t.Helper()
	u, ok := app.FindUserByEmail("joao@cold.com")
	require.True(t, ok)
	require.NoError(t, app.SetSession(context.Background(), u))
	return u
}

func loginSeller(t *testing.T, app *state.App) models.User {
	t.Helper()
	u, ok := app.FindUserByEmail("maria@cold.com")
	require.True(t, ok)
	require.NoError(t, app.SetSession(context.Background(), u))
	return u
}
