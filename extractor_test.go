package replacet

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/wvell/replacet/syntax"
)

func TestKeysFromSourceCode(t *testing.T) {
	keys, err := KeysFromSourceCode(afero.NewOsFs(), "./testdata/extractor")
	require.NoError(t, err)

	require.Equal(t, []string{
		"home:title",
		"common:footer.copyright",
		"form:label",
		"errors:required",
	}, keys)
}

func TestKeysFromSourceCodeInvalid(t *testing.T) {
	_, err := KeysFromSourceCode(afero.NewOsFs(), "./testdata/extractor-invalid")
	require.ErrorIs(t, err, ErrInvalidTranslationKey)
}

func TestKeysFromFile(t *testing.T) {
	cases := []struct {
		name   string
		source string
		keys   []string
	}{
		{
			name:   "no hook",
			source: `t("plain"); t("ns:qualified");`,
			keys:   []string{"plain", "ns:qualified"},
		},
		{
			name: "scope ends with the block",
			source: `function a() {
  const { t } = useTranslation("inner");
  t("x");
}
t("y");`,
			keys: []string{"inner:x", "y"},
		},
		{
			name:   "dynamic keys are skipped",
			source: "t(key); t(`template`);",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := syntax.Parse("input.js", []byte(c.source))
			require.NoError(t, err)

			keys, err := KeysFromFile(f)
			require.NoError(t, err)
			require.Equal(t, c.keys, keys)
		})
	}
}

func TestSourceFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"/src/a.js", "/src/b.tsx", "/src/c.css", "/src/.cache/d.js", "/src/node_modules/e.js"} {
		require.NoError(t, afero.WriteFile(fs, name, nil, 0o644))
	}

	files, err := SourceFiles(fs, "/src")
	require.NoError(t, err)
	require.Equal(t, []string{"/src/a.js", "/src/b.tsx"}, files)
}
