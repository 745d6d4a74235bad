package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "fintrack.db"))
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Get(context.Background(), "expenses")
	require.NoError(t, err)
	assert.False(t, ok, "absent key must report ok=false, not an error")
}

func TestSetGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "balance", "42.75"))

	v, ok, err := s.Get(ctx, "balance")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "42.75", v)
}

func TestSetReplacesValue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user", `{"name":"Ada"}`))
	require.NoError(t, s.Set(ctx, "user", `{"name":"Grace"}`))

	v, ok, err := s.Get(ctx, "user")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"name":"Grace"}`, v)
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fintrack.db")
	ctx := context.Background()

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "goals", `[{"id":"g1"}]`))
	require.NoError(t, s.Close())

	s2, err := New(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get(ctx, "goals")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"g1"}]`, v)
}
