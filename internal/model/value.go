package model

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// ValueKind is the scalar category of an editable literal.
type ValueKind string

const (
	// KindInteger covers integer literals of any width or base.
	KindInteger ValueKind = "integer"
	// KindFloat covers floating point literals.
	KindFloat ValueKind = "float"
	// KindBoolean covers the true and false keywords.
	KindBoolean ValueKind = "boolean"
	// KindString covers plain and raw string literals.
	KindString ValueKind = "string"
)

// QuoteStyle records how a string literal was quoted.
type QuoteStyle int

const (
	// QuotePlain is "..." with backslash escapes.
	QuotePlain QuoteStyle = iota
	// QuoteRaw is r"..." or r#"..."# with no escapes.
	QuoteRaw
)

// Style carries the information needed to re-encode a value in the style of
// the literal it was decoded from.
type Style struct {
	// Raw is the literal text exactly as written, including any sign. It is
	// empty for values that did not come from source.
	Raw string

	// Base is the integer radix (2, 8, 10 or 16).
	Base int
	// UpperHex is set when hex digits were written in upper case.
	UpperHex bool
	// Suffix is a type suffix such as "u8" or "f32".
	Suffix string

	// Exponent is set when a float was written in exponent notation.
	Exponent bool

	Quote QuoteStyle
	// Hashes is the number of '#' around a raw string.
	Hashes int
}

// Value is a tagged union over the supported scalar kinds.
type Value struct {
	Kind  ValueKind
	Int   *big.Int
	Float float64
	Bool  bool
	Str   string
	Style Style
}

// IntValue returns an integer value with default style.
func IntValue(v int64) Value {
	return Value{Kind: KindInteger, Int: big.NewInt(v), Style: Style{Base: 10}}
}

// BigIntValue returns an integer value backed by a copy of v.
func BigIntValue(v *big.Int) Value {
	return Value{Kind: KindInteger, Int: new(big.Int).Set(v), Style: Style{Base: 10}}
}

// FloatValue returns a float value with default style.
func FloatValue(v float64) Value {
	return Value{Kind: KindFloat, Float: v}
}

// BoolValue returns a boolean value.
func BoolValue(v bool) Value {
	return Value{Kind: KindBoolean, Bool: v}
}

// StringValue returns a string value with plain quoting.
func StringValue(v string) Value {
	return Value{Kind: KindString, Str: v}
}

// Equal reports whether two values have the same kind and decoded content.
// Style is ignored.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case KindInteger:
		if v.Int == nil || o.Int == nil {
			return v.Int == o.Int
		}

		return v.Int.Cmp(o.Int) == 0
	case KindFloat:
		return v.Float == o.Float && math.Signbit(v.Float) == math.Signbit(o.Float)
	case KindBoolean:
		return v.Bool == o.Bool
	case KindString:
		return v.Str == o.Str
	default:
		return false
	}
}

// WithStyle returns a copy of v carrying the given style.
func (v Value) WithStyle(s Style) Value {
	v.Style = s

	return v
}

// String formats the decoded value for display.
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		if v.Int == nil {
			return "0"
		}

		return v.Int.String()
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindString:
		return strconv.Quote(v.Str)
	default:
		return fmt.Sprintf("<%s>", v.Kind)
	}
}
