// Package diff renders edit previews as unified diffs.
package diff

import (
	"bytes"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// ContextLines is the number of unchanged lines shown around each hunk.
const ContextLines = 3

// Unified produces a unified patch turning a into b, with name used in the
// ---/+++ headers. Equal inputs yield an empty patch.
func Unified(name string, a, b []byte) (string, error) {
	if bytes.Equal(a, b) {
		return "", nil
	}

	u := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(string(a)),
		B:        splitLinesKeepNL(string(b)),
		FromFile: "a/" + strings.TrimPrefix(name, "/"),
		ToFile:   "b/" + strings.TrimPrefix(name, "/"),
		Context:  ContextLines,
	}

	return difflib.GetUnifiedDiffString(u)
}

// splitLinesKeepNL splits s into lines, keeping each newline.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
