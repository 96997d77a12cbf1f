package replacet

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wvell/replacet/syntax"
)

func TestDiagnosticError(t *testing.T) {
	err := fmt.Errorf("t(%q): %w", "missing", ErrKeyNotFound)

	cases := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "file and position",
			d:    Diagnostic{Err: err, Message: err.Error(), File: "app.jsx", Pos: syntax.Position{Line: 3, Column: 7}},
			want: `app.jsx:3:7: t("missing"): key not found`,
		},
		{
			name: "position",
			d:    Diagnostic{Err: err, Message: err.Error(), Pos: syntax.Position{Line: 1, Column: 1}},
			want: `1:1: t("missing"): key not found`,
		},
		{
			name: "message only",
			d:    Diagnostic{Err: err, Message: err.Error()},
			want: `t("missing"): key not found`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.d.Error())
			require.True(t, errors.Is(c.d, ErrKeyNotFound))
		})
	}
}

func TestCollector(t *testing.T) {
	var buf bytes.Buffer
	c := NewCollector(slog.New(slog.NewTextHandler(&buf, nil)))
	require.NoError(t, c.Err())

	first := Diagnostic{Err: ErrKeyNotFound, Message: "first", File: "a.js", Pos: syntax.Position{Line: 1, Column: 3}}
	c.Report(first)
	c.Report(Diagnostic{Err: ErrResourceLoad, Message: "second"})

	require.Len(t, c.Diagnostics, 2)
	require.Equal(t, first, c.Err())
	require.Contains(t, buf.String(), "level=WARN msg=first")
	require.Contains(t, buf.String(), "pos=1:3")
}

func TestPanicSink(t *testing.T) {
	d := Diagnostic{Err: ErrKeyNotFound, Message: "boom"}

	require.PanicsWithError(t, "boom", func() {
		PanicSink{}.Report(d)
	})
}
