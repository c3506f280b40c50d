package values

import (
	"strings"

	"github.com/mouse-blink/crowbar/internal/domain/syntax"
	m "github.com/mouse-blink/crowbar/internal/model"
)

// Decode parses literal text, optionally preceded by '-', into a Value whose
// Style records how the literal was written.
func Decode(text string) (m.Value, error) {
	switch text {
	case "true", "false":
		return m.Value{Kind: m.KindBoolean, Bool: text == "true", Style: m.Style{Raw: text}}, nil
	}

	body, negative := strings.CutPrefix(text, "-")

	tokens, err := syntax.Lex([]byte(body))
	if err != nil {
		return m.Value{}, errorf(text, "malformed literal")
	}

	if len(tokens) != 1 {
		return m.Value{}, errorf(text, "not a single literal")
	}

	kind := tokens[0].Kind

	if negative && kind != syntax.TokenInt && kind != syntax.TokenFloat {
		return m.Value{}, errorf(text, "only numbers can be negated")
	}

	var v m.Value

	switch kind {
	case syntax.TokenInt:
		v, err = decodeInt(body, negative)
	case syntax.TokenFloat:
		v, err = decodeFloat(body, negative)
	case syntax.TokenString:
		v, err = decodeString(body)
	case syntax.TokenRawString:
		v, err = decodeRawString(body)
	default:
		return m.Value{}, errorf(text, "unsupported %s", kind)
	}

	if err != nil {
		return m.Value{}, err
	}

	v.Style.Raw = text

	return v, nil
}

// StyleOf returns the encoding style of a literal, or the zero style when the
// literal does not decode.
func StyleOf(text string) m.Style {
	v, err := Decode(text)
	if err != nil {
		return m.Style{}
	}

	return v.Style
}

// Encode renders v as literal text in the given style. When v equals the
// value style.Raw decodes to, the raw text is returned unchanged.
func Encode(v m.Value, style m.Style) (string, error) {
	if err := Validate(v); err != nil {
		return "", err
	}

	if style.Raw != "" {
		if orig, err := Decode(style.Raw); err == nil && orig.Equal(v) {
			return style.Raw, nil
		}
	}

	switch v.Kind {
	case m.KindInteger:
		return encodeInt(v, style), nil
	case m.KindFloat:
		return encodeFloat(v, style), nil
	case m.KindBoolean:
		return encodeBool(v), nil
	case m.KindString:
		return encodeString(v, style), nil
	default:
		return "", errorf("", "unknown value kind %q", v.Kind)
	}
}

// Validate reports whether v can be written as a literal at all.
func Validate(v m.Value) error {
	switch v.Kind {
	case m.KindInteger:
		if v.Int == nil {
			return errorf("", "integer value is missing")
		}
	case m.KindFloat:
		return validateFloat(v.Float)
	case m.KindBoolean:
	case m.KindString:
		return validateString(v.Str)
	default:
		return errorf("", "unknown value kind %q", v.Kind)
	}

	return nil
}
