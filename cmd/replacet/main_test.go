package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/wvell/replacet"
)

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	// Keep the environment of the test process out of the configuration.
	for _, env := range []string{envRoot, envBaseDir, envLocale} {
		t.Setenv(env, "")
	}

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	return fs
}

func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(fs)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

var appFiles = map[string]string{
	"/app/locales/common.json": `{"title": "Hello", "footer": {"note": "Bye"}}`,
	"/app/src/a.jsx":           "const { t } = useTranslation('common');\nexport const a = t('title');\n",
	"/app/src/b.jsx":           "const { t } = useTranslation('common');\nexport const b = t('missing');\n",
}

func TestTransformCommand(t *testing.T) {
	fs := newTestFs(t, appFiles)

	out, err := run(t, fs, "transform", "--root", "/app", "--base-dir", "locales", "/app/src/a.jsx", "/app/src/b.jsx")
	require.NoError(t, err)
	require.Equal(t, "export const a = \"Hello\";\nexport const b = t('missing');\n", out)
}

func TestTransformCommandWrite(t *testing.T) {
	fs := newTestFs(t, appFiles)

	out, err := run(t, fs, "transform", "-w", "--root", "/app", "--base-dir", "locales", "/app/src/a.jsx")
	require.NoError(t, err)
	require.Empty(t, out)

	content, err := afero.ReadFile(fs, "/app/src/a.jsx")
	require.NoError(t, err)
	require.Equal(t, "export const a = \"Hello\";\n", string(content))
}

func TestTransformCommandStrict(t *testing.T) {
	fs := newTestFs(t, appFiles)

	_, err := run(t, fs, "transform", "--strict", "--root", "/app", "--base-dir", "locales", "/app/src/b.jsx")
	require.ErrorIs(t, err, replacet.ErrKeyNotFound)

	var d replacet.Diagnostic
	require.ErrorAs(t, err, &d)
	require.Equal(t, "/app/src/b.jsx", d.File)
}

func TestTransformCommandConfiguration(t *testing.T) {
	fs := newTestFs(t, appFiles)

	_, err := run(t, fs, "transform", "/app/src/a.jsx")
	require.ErrorIs(t, err, replacet.ErrConfiguration)
}

func TestCheckCommand(t *testing.T) {
	fs := newTestFs(t, appFiles)

	out, err := run(t, fs, "check", "--root", "/app", "--base-dir", "locales", "/app/src/a.jsx", "/app/src/b.jsx")
	require.Error(t, err)
	require.Equal(t, "/app/src/b.jsx:2:20: t(\"missing\"): key not found: common:missing\n", out)
}

func TestKeysCommand(t *testing.T) {
	fs := newTestFs(t, appFiles)

	out, err := run(t, fs, "keys", "/app/src")
	require.NoError(t, err)
	require.Equal(t, "common:title\ncommon:missing\n", out)

	out, err = run(t, fs, "keys", "--missing", "--root", "/app", "--base-dir", "locales", "/app/src")
	require.NoError(t, err)
	require.Equal(t, "common:missing\n", out)

	out, err = run(t, fs, "keys", "--unused", "--root", "/app", "--base-dir", "locales", "/app/src")
	require.NoError(t, err)
	require.Equal(t, "common:footer.note\n", out)
}

func TestLoadConfig(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		defaultConfigFile: "root = \"/app\"\nbase_dir = \"locales\"\nlocale = \"en\"\n",
	})

	cases := []struct {
		name string
		env  map[string]string
		args []string
		cfg  replacet.Config
	}{
		{
			name: "file",
			cfg:  replacet.Config{Root: "/app", BaseDir: "locales", Locale: "en"},
		},
		{
			name: "environment",
			env:  map[string]string{envBaseDir: "public/locales", envLocale: "nl"},
			cfg:  replacet.Config{Root: "/app", BaseDir: "public/locales", Locale: "nl"},
		},
		{
			name: "flags",
			env:  map[string]string{envLocale: "nl"},
			args: []string{"--locale", "de", "--root", "/srv"},
			cfg:  replacet.Config{Root: "/srv", BaseDir: "locales", Locale: "de"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for env := range c.env {
				t.Setenv(env, c.env[env])
			}

			flags := newRootCmd(fs).PersistentFlags()
			require.NoError(t, flags.Parse(c.args))

			cfg, err := loadConfig(fs, flags)
			require.NoError(t, err)
			require.Equal(t, c.cfg, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	fs := newTestFs(t, nil)

	flags := newRootCmd(fs).PersistentFlags()
	require.NoError(t, flags.Parse([]string{"--config", "other.toml", "--base-dir", "locales"}))

	_, err := loadConfig(fs, flags)
	require.ErrorIs(t, err, replacet.ErrConfiguration)
}

func TestLoadConfigDotenv(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		defaultConfigFile: "root = \"/app\"\nbase_dir = \"locales\"\n",
		dotenvFile:        "REPLACET_BASE_DIR=public/locales\nREPLACET_LOCALE=nl\n",
	})
	t.Setenv(envLocale, "de")

	flags := newRootCmd(fs).PersistentFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := loadConfig(fs, flags)
	require.NoError(t, err)
	require.Equal(t, replacet.Config{Root: "/app", BaseDir: "public/locales", Locale: "de"}, cfg)
}
