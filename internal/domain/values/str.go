package values

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/crowbar/internal/model"
)

func decodeString(body string) (m.Value, error) {
	if len(body) < 2 || body[0] != '"' || body[len(body)-1] != '"' {
		return m.Value{}, errorf(body, "string literal has a suffix or is malformed")
	}

	s, err := unescape(body[1 : len(body)-1])
	if err != nil {
		return m.Value{}, errorf(body, "%s", err.Error())
	}

	return m.Value{Kind: m.KindString, Str: s, Style: m.Style{Quote: m.QuotePlain}}, nil
}

func decodeRawString(body string) (m.Value, error) {
	rest := strings.TrimPrefix(body, "r")
	hashes := len(rest) - len(strings.TrimLeft(rest, "#"))
	fence := strings.Repeat("#", hashes)

	inner, ok := strings.CutPrefix(rest, fence+`"`)
	if ok {
		inner, ok = strings.CutSuffix(inner, `"`+fence)
	}

	if !ok {
		return m.Value{}, errorf(body, "raw string literal has a suffix or is malformed")
	}

	return m.Value{Kind: m.KindString, Str: inner, Style: m.Style{Quote: m.QuoteRaw, Hashes: hashes}}, nil
}

// unescape decodes the escape sequences Rust allows in string literals.
//
//nolint:cyclop // one case per escape
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++

			continue
		}

		if i+1 >= len(s) {
			return "", fmt.Errorf("trailing backslash")
		}

		esc := s[i+1]
		i += 2

		switch esc {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '0':
			b.WriteByte(0)
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case 'x':
			if i+2 > len(s) {
				return "", fmt.Errorf("short \\x escape")
			}

			n, err := strconv.ParseUint(s[i:i+2], 16, 8)
			if err != nil || n > 0x7f {
				return "", fmt.Errorf("invalid \\x escape %q", s[i:i+2])
			}

			b.WriteByte(byte(n))
			i += 2
		case 'u':
			end := strings.IndexByte(s[i:], '}')
			if !strings.HasPrefix(s[i:], "{") || end < 0 {
				return "", fmt.Errorf("malformed \\u escape")
			}

			hex := strings.ReplaceAll(s[i+1:i+end], "_", "")

			n, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
				return "", fmt.Errorf("invalid \\u escape %q", s[i:i+end+1])
			}

			b.WriteRune(rune(n))
			i += end + 1
		case '\n', '\r':
			// Line continuation: skip the newline and leading whitespace.
			for i < len(s) && strings.ContainsRune(" \t\r\n", rune(s[i])) {
				i++
			}
		default:
			return "", fmt.Errorf("unknown escape \\%c", esc)
		}
	}

	return b.String(), nil
}

func encodeString(v m.Value, style m.Style) string {
	if style.Quote == m.QuoteRaw && !strings.ContainsRune(v.Str, '\r') {
		hashes := style.Hashes
		for strings.Contains(v.Str, `"`+strings.Repeat("#", hashes)) {
			hashes++
		}

		fence := strings.Repeat("#", hashes)

		return "r" + fence + `"` + v.Str + `"` + fence
	}

	return `"` + escape(v.Str) + `"`
}

func escape(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)

	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u{%x}`, r)

				continue
			}

			b.WriteRune(r)
		}
	}

	return b.String()
}

func validateString(s string) error {
	if !utf8.ValidString(s) {
		return errorf(s, "string is not valid UTF-8")
	}

	return nil
}
