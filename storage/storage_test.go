package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.db")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestGetMissingKey(t *testing.T) {
	s, _ := openTestStore(t)

	_, ok := s.Get("cart")
	assert.False(t, ok)
}

func TestSetGetOverwrite(t *testing.T) {
	s, _ := openTestStore(t)

	require.NoError(t, s.Set("cart", `[{"productId":1}]`))
	v, ok := s.Get("cart")
	require.True(t, ok)
	assert.Equal(t, `[{"productId":1}]`, v)

	require.NoError(t, s.Set("cart", `[]`))
	v, ok = s.Get("cart")
	require.True(t, ok)
	assert.Equal(t, `[]`, v)
}

func TestDelete(t *testing.T) {
	s, _ := openTestStore(t)

	require.NoError(t, s.Set("recently_viewed", "[1,2,3]"))
	require.NoError(t, s.Delete("recently_viewed"))

	_, ok := s.Get("recently_viewed")
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	assert.NoError(t, s.Delete("recently_viewed"))
}

func TestValuesSurviveReopen(t *testing.T) {
	s, path := openTestStore(t)
	require.NoError(t, s.Set("cart", "persisted"))

	reopened, err := Open(path)
	require.NoError(t, err)

	v, ok := reopened.Get("cart")
	require.True(t, ok)
	assert.Equal(t, "persisted", v)
}

func TestKeysAreIndependent(t *testing.T) {
	s, _ := openTestStore(t)

	require.NoError(t, s.Set("cart", "a"))
	require.NoError(t, s.Set("recently_viewed", "b"))
	require.NoError(t, s.Delete("cart"))

	v, ok := s.Get("recently_viewed")
	require.True(t, ok)
	assert.Equal(t, "b", v)
}
