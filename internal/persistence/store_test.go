package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/namespace"
)

func storeContract(t *testing.T, store Store) {
	t.Helper()

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", []byte("one")))
	v, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("one"), v)

	require.NoError(t, store.Set("k", []byte("two")))
	v, _, err = store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), v)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	storeContract(t, store)

	buf := []byte("abc")
	require.NoError(t, store.Set("copy", buf))
	buf[0] = 'x'
	v, _, _ := store.Get("copy")
	assert.Equal(t, []byte("abc"), v)
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "vfs")
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	storeContract(t, store)

	_, err = os.Stat(filepath.Join(dir, "k.blob"))
	assert.NoError(t, err)
}

func TestFileStoreRejectsBadKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", ".", "..", "a/b", `a\b`} {
		assert.Error(t, store.Set(key, []byte("x")), "key %q", key)
		_, _, err := store.Get(key)
		assert.Error(t, err, "key %q", key)
	}
}

func TestFileStoreSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	e := namespace.New(namespace.WithPersister(NewAdapter(store, WithCompression(CompressionGzip))))
	require.NoError(t, e.MakeDirectory("/srv"))
	require.NoError(t, e.CreateFile("/srv/app.conf", "port=8080"))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	restored := namespace.New(namespace.WithPersister(NewAdapter(reopened)))

	content, err := restored.ReadFile("/srv/app.conf")
	require.NoError(t, err)
	assert.Equal(t, "port=8080", content)
}

func TestBadgerStoreInMemory(t *testing.T) {
	store, err := OpenBadgerStore("", zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	storeContract(t, store)
}

func TestBadgerStoreOnDisk(t *testing.T) {
	dir := t.TempDir()

	store, err := OpenBadgerStore(dir, nil)
	require.NoError(t, err)
	e := namespace.New(namespace.WithPersister(NewAdapter(store, WithCompression(CompressionZstd))))
	require.NoError(t, e.WriteFile("~/todo.txt", "ship it"))
	_, err = e.ChangeDirectory("/etc")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := OpenBadgerStore(dir, nil)
	require.NoError(t, err)
	defer reopened.Close()

	restored := namespace.New(namespace.WithPersister(NewAdapter(reopened)))
	assert.Equal(t, "/etc", restored.GetCurrentDirectory())
	content, err := restored.ReadFile("~/todo.txt")
	require.NoError(t, err)
	assert.Equal(t, "ship it", content)
}
