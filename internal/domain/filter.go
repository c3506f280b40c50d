package domain

import (
	"sort"

	"github.com/sahilm/fuzzy"

	m "github.com/mouse-blink/crowbar/internal/model"
)

type entryNames []m.CatalogEntry

func (e entryNames) String(i int) string { return e[i].ID.Name }
func (e entryNames) Len() int           { return len(e) }

// FilterCatalog keeps the entries whose names fuzzy-match pattern. The
// result stays in document order. An empty pattern keeps everything.
func FilterCatalog(entries []m.CatalogEntry, pattern string) []m.CatalogEntry {
	if pattern == "" {
		return entries
	}

	matches := fuzzy.FindFrom(pattern, entryNames(entries))

	idx := make([]int, 0, len(matches))
	for _, match := range matches {
		idx = append(idx, match.Index)
	}

	sort.Ints(idx)

	out := make([]m.CatalogEntry, 0, len(idx))
	for _, i := range idx {
		out = append(out, entries[i])
	}

	return out
}
