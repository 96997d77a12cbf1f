package syntax

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Quote returns a double-quoted JavaScript string literal for s.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')
	return b.String()
}

// Unquote decodes a single- or double-quoted JavaScript string literal.
// Malformed escapes are kept as written.
func Unquote(lit string) string {
	if len(lit) < 2 {
		return lit
	}

	q := lit[0]
	if (q != '"' && q != '\'') || lit[len(lit)-1] != q {
		return lit
	}

	body := lit[1 : len(lit)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			b.WriteByte(c)
			continue
		}

		i++
		switch e := body[i]; e {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
			// Line continuation.
		case '\r':
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
		case 'x':
			if r, ok := hexRune(body, i+1, 2); ok {
				b.WriteRune(r)
				i += 2
				continue
			}
			b.WriteString(`\x`)
		case 'u':
			if i+1 < len(body) && body[i+1] == '{' {
				end := strings.IndexByte(body[i+1:], '}')
				if end > 0 {
					if v, err := strconv.ParseUint(body[i+2:i+1+end], 16, 32); err == nil && utf8.ValidRune(rune(v)) {
						b.WriteRune(rune(v))
						i += end + 1
						continue
					}
				}
				b.WriteString(`\u`)
				continue
			}
			if r, ok := hexRune(body, i+1, 4); ok {
				b.WriteRune(r)
				i += 4
				continue
			}
			b.WriteString(`\u`)
		default:
			b.WriteByte(e)
		}
	}

	return b.String()
}

func hexRune(s string, at, n int) (rune, bool) {
	if at+n > len(s) {
		return 0, false
	}

	v, err := strconv.ParseUint(s[at:at+n], 16, 32)
	if err != nil {
		return 0, false
	}

	return rune(v), true
}
