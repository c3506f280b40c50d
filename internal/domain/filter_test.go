package domain

import (
	"testing"

	m "github.com/mouse-blink/crowbar/internal/model"
	"github.com/stretchr/testify/assert"
)

func namedEntries(names ...string) []m.CatalogEntry {
	entries := make([]m.CatalogEntry, 0, len(names))
	for i, name := range names {
		entries = append(entries, m.CatalogEntry{ID: m.EntryID{Ordinal: i, Name: name}})
	}

	return entries
}

func entryNamesOf(entries []m.CatalogEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.ID.Name)
	}

	return names
}

func TestFilterCatalog(t *testing.T) {
	entries := namedEntries("max_retries", "width", "ratio", "retry_delay", "retry_limit")

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "empty pattern keeps everything", pattern: "", want: []string{"max_retries", "width", "ratio", "retry_delay", "retry_limit"}},
		{name: "fuzzy subsequence in document order", pattern: "ret", want: []string{"max_retries", "retry_delay", "retry_limit"}},
		{name: "exact name", pattern: "width", want: []string{"width"}},
		{name: "no match", pattern: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entryNamesOf(FilterCatalog(entries, tt.pattern)))
		})
	}
}
