package values

import (
	m "github.com/mouse-blink/crowbar/internal/model"
)

func encodeBool(v m.Value) string {
	if v.Bool {
		return "true"
	}

	return "false"
}
