package replacet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wvell/replacet/syntax"
)

var (
	// placeholderRe matches {{name}} placeholders in a message.
	placeholderRe = regexp.MustCompile(`\{\{([^{}]*)\}\}`)
	// variableRe matches the names a placeholder may reference: "count" or "user.name".
	variableRe = regexp.MustCompile(`^[A-Za-z_$][\w$]*(\.[A-Za-z_$][\w$]*)*$`)

	templateEscaper = strings.NewReplacer("\\", "\\\\", "`", "\\`", "${", "\\${")
)

// interpolationParam is the parameter of the generated wrapper function.
const interpolationParam = "v"

// interpolate returns an immediately invoked arrow function building message from values:
//
//	(v => `value: ${v.max} - ${v.min}`)({ min: 100, max: 400 })
//
// The values node is moved into the new call.
func interpolate(message string, values *syntax.Node) (*syntax.Node, error) {
	tpl, err := templateLiteral(message)
	if err != nil {
		return nil, err
	}

	wrapper, err := syntax.ParseExpression("(" + interpolationParam + " => " + tpl + ")")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTemplate, err)
	}

	return syntax.Invocation(wrapper, values), nil
}

// templateLiteral converts the placeholders of message into template literal substitutions.
func templateLiteral(message string) (string, error) {
	var b strings.Builder
	b.WriteByte('`')

	last := 0
	for _, m := range placeholderRe.FindAllStringSubmatchIndex(message, -1) {
		b.WriteString(templateEscaper.Replace(message[last:m[0]]))

		name := strings.TrimSpace(message[m[2]:m[3]])
		if !variableRe.MatchString(name) {
			return "", fmt.Errorf("%w: placeholder %q is not a variable name", ErrMalformedTemplate, name)
		}

		b.WriteString("${" + interpolationParam + "." + name + "}")
		last = m[1]
	}

	b.WriteString(templateEscaper.Replace(message[last:]))
	b.WriteByte('`')

	return b.String(), nil
}
