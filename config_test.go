package replacet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cases := []struct {
		name  string
		input string
		cfg   Config
		err   error
	}{
		{
			name:  "base dir",
			input: `{"baseDir": "public/locales"}`,
			cfg:   Config{BaseDir: "public/locales"},
		},
		{
			name:  "locale",
			input: `{"baseDir": "locales", "locale": "en_GB"}`,
			cfg:   Config{BaseDir: "locales", Locale: "en_GB"},
		},
		{
			name:  "missing base dir",
			input: `{}`,
			err:   ErrConfiguration,
		},
		{
			name:  "blank base dir",
			input: `{"baseDir": "  "}`,
			err:   ErrConfiguration,
		},
		{
			name:  "invalid locale",
			input: `{"baseDir": "locales", "locale": "invalid"}`,
			err:   ErrConfiguration,
		},
		{
			name:  "invalid json",
			input: `{"baseDir": `,
			err:   ErrConfiguration,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(c.input))
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, c.cfg, cfg)
		})
	}
}

func TestResourceDir(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		dir  string
	}{
		{
			name: "default root",
			cfg:  Config{BaseDir: "locales"},
			dir:  "locales",
		},
		{
			name: "root",
			cfg:  Config{Root: "/app", BaseDir: "public/locales/"},
			dir:  "/app/public/locales",
		},
		{
			name: "absolute base dir",
			cfg:  Config{Root: "/app", BaseDir: "/srv/locales"},
			dir:  "/srv/locales",
		},
		{
			name: "locale",
			cfg:  Config{Root: "/app", BaseDir: "locales", Locale: "en_us"},
			dir:  "/app/locales/en-US",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.dir, c.cfg.ResourceDir())
		})
	}
}

func TestNewTransformerValidatesConfig(t *testing.T) {
	_, err := NewTransformer(Config{})
	require.ErrorIs(t, err, ErrConfiguration)
}
