package replacet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplateLiteral(t *testing.T) {
	cases := []struct {
		message string
		want    string
		err     error
	}{
		{message: "value: {{max}} - {{min}}", want: "`value: ${v.max} - ${v.min}`"},
		{message: "no placeholders", want: "`no placeholders`"},
		{message: "{{ spaced }}", want: "`${v.spaced}`"},
		{message: "hi {{user.name}}", want: "`hi ${v.user.name}`"},
		{message: "cost: ${{price}}", want: "`cost: $${v.price}`"},
		{message: "a `quoted` \\ ${raw}", want: "`a \\`quoted\\` \\\\ \\${raw}`"},
		{message: "{{count, number}}", err: ErrMalformedTemplate},
		{message: "{{}}", err: ErrMalformedTemplate},
	}

	for _, c := range cases {
		t.Run(c.message, func(t *testing.T) {
			got, err := templateLiteral(c.message)
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}
