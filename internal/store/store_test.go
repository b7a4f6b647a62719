package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	disk, err := NewDisk(filepath.Join(t.TempDir(), "disk"))
	require.NoError(t, err)
	db, err := NewSQLite(filepath.Join(t.TempDir(), "db", "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return map[string]Store{
		"memory": NewMemory(),
		"disk":   disk,
		"sqlite": db,
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("xmb.column")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set("xmb.column", []byte("2")))
			require.NoError(t, s.Set("xmb.row", []byte("1")))
			got, err := s.Get("xmb.column")
			require.NoError(t, err)
			assert.Equal(t, []byte("2"), got)

			require.NoError(t, s.Set("xmb.column", []byte("3")))
			got, err = s.Get("xmb.column")
			require.NoError(t, err)
			assert.Equal(t, []byte("3"), got, "last writer wins")

			keys, err := s.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{"xmb.column", "xmb.row"}, keys)

			require.NoError(t, s.Delete("xmb.row"))
			require.NoError(t, s.Delete("xmb.row"), "deleting a missing key is not an error")
			_, err = s.Get("xmb.row")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.Error(t, s.Set("", []byte("x")))
			assert.Error(t, s.Set("a/b", []byte("x")))
		})
	}
}

func TestDiskSurvivesReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	first, err := Open(BackendDisk, dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("xmb.theme", []byte(`"alternate"`)))
	require.NoError(t, first.Close())

	second, err := Open(BackendDisk, dir)
	require.NoError(t, err)
	got, err := second.Get("xmb.theme")
	require.NoError(t, err)
	assert.Equal(t, `"alternate"`, string(got))
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	first, err := Open(BackendSQLite, dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("xmb.panel", []byte(`"about"`)))
	require.NoError(t, first.Close())

	second, err := Open(BackendSQLite, dir)
	require.NoError(t, err)
	defer second.Close()
	got, err := second.Get("xmb.panel")
	require.NoError(t, err)
	assert.Equal(t, `"about"`, string(got))
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	_, err := Open(Backend("etcd"), t.TempDir())
	assert.Error(t, err)

	s, err := Open(BackendMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)
}

func TestBackendsShareStorePath(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(BackendSQLite, dir)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Set("xmb.column", []byte("2")))

	disk, err := Open(BackendDisk, dir)
	require.NoError(t, err)
	defer disk.Close()
	keys, err := disk.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys, "disk store must not list the sqlite database")

	require.NoError(t, disk.Set("xmb.theme", []byte(`"alternate"`)))
	keys, err = disk.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"xmb.theme"}, keys)

	keys, err = db.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"xmb.column"}, keys)
}
