package persist

import (
	"path/filepath"
	"testing"

	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "state.db")
	s, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get(Key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(Key, "light"))
	require.NoError(t, s.Set(Key, "dark"))

	v, ok, err := s.Get(Key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	require.NoError(t, s.Delete(Key))
	_, ok, err = s.Get(Key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	require.Equal(t, OK, NewAdapter(s).Write(scheme.Dark))
	require.NoError(t, s.Close())

	s, err = OpenSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	mode, res := NewAdapter(s).Read()
	assert.Equal(t, OK, res)
	assert.Equal(t, scheme.Dark, mode)
}

func TestSQLiteStore_Closed(t *testing.T) {
	s, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Equal(t, Unavailable, NewAdapter(s).Write(scheme.Light))
}

func TestOpenSQLiteStore_EmptyPath(t *testing.T) {
	_, err := OpenSQLiteStore("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}
