package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{input: "test1", expected: `"test1"`},
		{input: "line1\nline2", expected: `"line1\nline2"`},
		{input: `say "hi"`, expected: `"say \"hi\""`},
		{input: `a\b`, expected: `"a\\b"`},
		{input: "tab\there", expected: `"tab\there"`},
		{input: "こんにちは", expected: `"こんにちは"`},
		{input: "\x01", expected: `"\x01"`},
		{input: "a b", expected: `"a b"`},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			require.Equal(t, c.expected, Quote(c.input))
		})
	}
}

func TestUnquote(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{input: `'noArgs'`, expected: "noArgs"},
		{input: `"dir/dir:foo.bar"`, expected: "dir/dir:foo.bar"},
		{input: `'it\'s'`, expected: "it's"},
		{input: `"a\nb"`, expected: "a\nb"},
		{input: `"\x41B\u{43}"`, expected: "ABC"},
		{input: `"\q"`, expected: "q"},
		{input: `"bad \u12"`, expected: `bad \u12`},
		{input: `x`, expected: `x`},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			require.Equal(t, c.expected, Unquote(c.input))
		})
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, s := range []string{"", "plain", "multi\nline\r\n", `"\`, "emoji 🎉"} {
		require.Equal(t, s, Unquote(Quote(s)))
	}
}
