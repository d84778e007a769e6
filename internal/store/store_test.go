package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStores(t *testing.T) map[string]Store {
	t.Helper()

	dir := t.TempDir()
	gs, err := Open(context.Background(), filepath.Join(dir, "test.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = gs.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": gs,
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, s := range openTestStores(t) {
		s := s
		t.Run(name, func(t *testing.T) {
			value := []byte(`[{"id":"1","title":"Bolsa de Crochê Azul"}]`)
			require.NoError(t, s.Set(ctx, KeyProducts, value))

			got, err := s.Get(ctx, KeyProducts)
			require.NoError(t, err)
			assert.Equal(t, value, got)
		})
	}
}

func TestStore_GetAbsentKey(t *testing.T) {
	ctx := context.Background()

	for name, s := range openTestStores(t) {
		s := s
		t.Run(name, func(t *testing.T) {
			got, err := s.Get(ctx, "no_such_key")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()

	for name, s := range openTestStores(t) {
		s := s
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, KeyTheme, []byte(`"light"`)))
			require.NoError(t, s.Set(ctx, KeyTheme, []byte(`"dark"`)))

			got, err := s.Get(ctx, KeyTheme)
			require.NoError(t, err)
			assert.Equal(t, []byte(`"dark"`), got)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()

	for name, s := range openTestStores(t) {
		s := s
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, KeySession, []byte(`{"id":"c1"}`)))
			require.NoError(t, s.Delete(ctx, KeySession))

			got, err := s.Get(ctx, KeySession)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}
