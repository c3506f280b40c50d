package values

import (
	"go/constant"
	"go/token"
	"math"
	"strconv"
	"strings"

	m "github.com/mouse-blink/crowbar/internal/model"
)

// Plain float notation is used within this magnitude range; anything else
// falls back to exponent notation.
const (
	plainMin = 1e-5
	plainMax = 1e21
)

func decodeFloat(body string, negative bool) (m.Value, error) {
	var style m.Style

	digits := body

	for _, suffix := range []string{"f32", "f64"} {
		if s, ok := strings.CutSuffix(digits, suffix); ok {
			digits, style.Suffix = strings.TrimSuffix(s, "_"), suffix

			break
		}
	}

	style.Exponent = strings.ContainsAny(digits, "eE")

	clean := strings.ReplaceAll(digits, "_", "")

	cv := constant.MakeFromLiteral(clean, token.FLOAT, 0)
	if cv.Kind() != constant.Float && cv.Kind() != constant.Int {
		return m.Value{}, errorf(body, "malformed float literal")
	}

	f, _ := constant.Float64Val(cv)
	if math.IsInf(f, 0) {
		return m.Value{}, errorf(body, "float literal out of range")
	}

	if negative {
		f = -f
	}

	return m.Value{Kind: m.KindFloat, Float: f, Style: style}, nil
}

func encodeFloat(v m.Value, style m.Style) string {
	abs := math.Abs(v.Float)

	var text string

	if style.Exponent || (abs != 0 && (abs < plainMin || abs >= plainMax)) {
		text = strconv.FormatFloat(abs, 'e', -1, 64)
		text = strings.Replace(text, "e+", "e", 1)
	} else {
		text = strconv.FormatFloat(abs, 'f', -1, 64)
		if !strings.Contains(text, ".") {
			text += ".0"
		}
	}

	if math.Signbit(v.Float) {
		text = "-" + text
	}

	return text + style.Suffix
}

func validateFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errorf(strconv.FormatFloat(f, 'g', -1, 64), "float has no literal form")
	}

	return nil
}
