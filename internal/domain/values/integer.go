package values

import (
	"go/constant"
	"go/token"
	"math/big"
	"strings"

	m "github.com/mouse-blink/crowbar/internal/model"
)

var intSuffixes = map[string]bool{
	"i8": true, "i16": true, "i32": true, "i64": true, "i128": true, "isize": true,
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true, "usize": true,
}

func decodeInt(body string, negative bool) (m.Value, error) {
	style := m.Style{Base: 10}
	digits := body

	switch {
	case strings.HasPrefix(body, "0x"):
		style.Base = 16
		digits = body[2:]
	case strings.HasPrefix(body, "0o"):
		style.Base = 8
		digits = body[2:]
	case strings.HasPrefix(body, "0b"):
		style.Base = 2
		digits = body[2:]
	}

	end := 0
	for end < len(digits) && (digits[end] == '_' || digitValue(digits[end]) < style.Base) {
		end++
	}

	digits, style.Suffix = digits[:end], digits[end:]
	if style.Suffix != "" && !intSuffixes[style.Suffix] {
		return m.Value{}, errorf(body, "invalid integer suffix %q", style.Suffix)
	}

	clean := strings.ReplaceAll(digits, "_", "")
	if clean == "" {
		return m.Value{}, errorf(body, "integer literal has no digits")
	}

	style.UpperHex = style.Base == 16 && strings.ToLower(clean) != clean

	// Go reads a leading zero as an octal prefix; Rust does not.
	lit := strings.TrimLeft(clean, "0")
	if lit == "" {
		lit = "0"
	}

	if style.Base != 10 {
		lit = body[:2] + clean
	}

	cv := constant.MakeFromLiteral(lit, token.INT, 0)
	if cv.Kind() != constant.Int {
		return m.Value{}, errorf(body, "malformed integer literal")
	}

	n := new(big.Int)

	switch x := constant.Val(cv).(type) {
	case int64:
		n.SetInt64(x)
	case *big.Int:
		n.Set(x)
	}

	if negative {
		n.Neg(n)
	}

	return m.Value{Kind: m.KindInteger, Int: n, Style: style}, nil
}

func encodeInt(v m.Value, style m.Style) string {
	base := style.Base
	if base != 2 && base != 8 && base != 16 {
		base = 10
	}

	abs := new(big.Int).Abs(v.Int)
	digits := abs.Text(base)

	if style.UpperHex {
		digits = strings.ToUpper(digits)
	}

	var b strings.Builder

	if v.Int.Sign() < 0 {
		b.WriteByte('-')
	}

	switch base {
	case 16:
		b.WriteString("0x")
	case 8:
		b.WriteString("0o")
	case 2:
		b.WriteString("0b")
	}

	b.WriteString(digits)
	b.WriteString(style.Suffix)

	return b.String()
}

// digitValue returns the numeric value of a hex digit, or 99.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 99
	}
}
