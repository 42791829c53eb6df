package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homemanager/hmctl/session"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir())
	require.NoError(t, err)

	got, err := store.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, store.Set(session.KeyAccessToken, "token-1"))
	require.NoError(t, store.Set(session.KeyRefreshToken, "refresh-1"))

	got, err = store.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, "token-1", got)

	require.NoError(t, store.Delete(session.KeyAccessToken))
	got, err = store.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = store.Get(session.KeyRefreshToken)
	require.NoError(t, err)
	require.Equal(t, "refresh-1", got)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := session.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(session.KeyAccessToken, "token-1"))

	second, err := session.NewFileStore(dir)
	require.NoError(t, err)
	got, err := second.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, "token-1", got)
}

func TestFileStoreTreatsCorruptFileAsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.json"), []byte("not json"), 0o600))

	store, err := session.NewFileStore(dir)
	require.NoError(t, err)

	got, err := store.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFileStoreCreatesRestrictedFile(t *testing.T) {
	dir := t.TempDir()
	store, err := session.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(session.KeyAccessToken, "token-1"))

	info, err := os.Stat(filepath.Join(dir, "credentials.json"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
