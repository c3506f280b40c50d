package values

import (
	"math/big"
	"strconv"
	"strings"

	m "github.com/mouse-blink/crowbar/internal/model"
)

// ParseInput converts text typed by a user into a value of the given kind.
// Strings written as a quoted or raw literal are decoded, any other string
// text is taken verbatim. Numbers and booleans accept literal syntax.
// The returned value carries no style.
func ParseInput(kind m.ValueKind, text string) (m.Value, error) {
	if kind == m.KindString {
		return parseStringInput(text)
	}

	text = strings.TrimSpace(text)

	switch kind {
	case m.KindBoolean:
		switch strings.ToLower(text) {
		case "true":
			return m.BoolValue(true), nil
		case "false":
			return m.BoolValue(false), nil
		}

		return m.Value{}, errorf(text, "expected true or false")
	case m.KindInteger:
		v, err := Decode(text)
		if err != nil || v.Kind != m.KindInteger {
			return m.Value{}, errorf(text, "expected an integer")
		}

		return v.WithStyle(m.Style{}), nil
	case m.KindFloat:
		if v, err := Decode(text); err == nil {
			switch v.Kind {
			case m.KindFloat:
				return v.WithStyle(m.Style{}), nil
			case m.KindInteger:
				f, _ := new(big.Float).SetInt(v.Int).Float64()

				if err := validateFloat(f); err != nil {
					return m.Value{}, err
				}

				return m.FloatValue(f), nil
			}
		}

		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return m.Value{}, errorf(text, "expected a number")
		}

		if err := validateFloat(f); err != nil {
			return m.Value{}, err
		}

		return m.FloatValue(f), nil
	default:
		return m.Value{}, errorf(text, "unknown value kind %q", kind)
	}
}

func parseStringInput(text string) (m.Value, error) {
	lit := strings.TrimSpace(text)
	if !quotedInput(lit) {
		if err := validateString(text); err != nil {
			return m.Value{}, err
		}

		return m.StringValue(text), nil
	}

	v, err := Decode(lit)
	if err != nil || v.Kind != m.KindString {
		return m.Value{}, errorf(text, "malformed string literal")
	}

	return m.StringValue(v.Str), nil
}

// quotedInput reports whether s opens like a string literal: "..., r"...
// or r#"...
func quotedInput(s string) bool {
	if strings.HasPrefix(s, `"`) {
		return true
	}

	rest, ok := strings.CutPrefix(s, "r")
	if !ok {
		return false
	}

	return strings.HasPrefix(strings.TrimLeft(rest, "#"), `"`)
}

// FormatInput renders v the way a user would type it back into ParseInput.
// Strings that would read as a literal are quoted.
func FormatInput(v m.Value) string {
	if v.Kind != m.KindString {
		return v.String()
	}

	if quotedInput(strings.TrimSpace(v.Str)) {
		return `"` + escape(v.Str) + `"`
	}

	return v.Str
}
