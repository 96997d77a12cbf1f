package replacet

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestNamespacesFromDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"/locales/common.json", "/locales/dir/dir.json", "/locales/README.md"} {
		require.NoError(t, afero.WriteFile(fs, name, []byte(`{}`), 0o644))
	}

	namespaces, err := NamespacesFromDir(fs, "/locales")
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"common":  "/locales/common.json",
		"dir/dir": "/locales/dir/dir.json",
	}, namespaces)

	_, err = NamespacesFromDir(fs, "/missing")
	require.ErrorIs(t, err, ErrResourceLoad)
}

func TestCacheKeys(t *testing.T) {
	cache, _ := newTestCache(t, map[string]string{
		"common.json": `{"title": "T", "footer": {"note": "N", "links": {"home": "H"}}, "list": ["a"], "count": 1}`,
	})

	_, err := cache.Keys("common")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, cache.AddFile("common"))

	keys, err := cache.Keys("common")
	require.NoError(t, err)
	require.Equal(t, []string{"footer.links.home", "footer.note", "title"}, keys)
}
