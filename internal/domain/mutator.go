package domain

import (
	"fmt"

	"github.com/mouse-blink/crowbar/internal/domain/syntax"
	"github.com/mouse-blink/crowbar/internal/domain/values"
	"github.com/mouse-blink/crowbar/internal/log"
	m "github.com/mouse-blink/crowbar/internal/model"
)

// Mutate returns the source of tree with the initializer of entry id set to
// v. Only the bytes of the entry's span change. The tree itself is not
// modified, so on error the caller still holds the original source.
func Mutate(tree *syntax.Tree, id m.EntryID, v m.Value) ([]byte, error) {
	entries, _ := Scan(tree)

	entry, err := Resolve(entries, id)
	if err != nil {
		return nil, &MutateError{ID: id, Err: err}
	}

	if entry.Kind != v.Kind {
		return nil, &MutateError{ID: entry.ID, Err: ErrKindMismatch, Want: entry.Kind, Got: v.Kind}
	}

	if entry.Value.Equal(v) {
		return tree.Bytes(), nil
	}

	if entry.Via != "" {
		// The initializer is an identifier; write a literal in the
		// constant's style over it.
		log.Default().Debug("replacing constant reference", "entry", entry.ID.String(), "via", entry.Via)
	}

	text, err := values.Encode(v, entry.Value.Style)
	if err != nil {
		return nil, &MutateError{ID: entry.ID, Err: err}
	}

	out := replaceRange(tree.Source, entry.Span.Start, entry.Span.End, text)

	if _, err := syntax.Parse(out); err != nil {
		return nil, &MutateError{ID: entry.ID, Err: fmt.Errorf("edit produced unparsable source: %w", err)}
	}

	return out, nil
}

// Resolve finds the entry for id. An ID with a non-negative ordinal must
// match both ordinal and name; a bare name must match exactly one entry.
func Resolve(entries []m.CatalogEntry, id m.EntryID) (m.CatalogEntry, error) {
	if id.Ordinal >= 0 {
		for _, e := range entries {
			if e.ID == id {
				return e, nil
			}
		}

		return m.CatalogEntry{}, ErrEntryNotFound
	}

	var (
		found m.CatalogEntry
		count int
	)

	for _, e := range entries {
		if e.ID.Name == id.Name {
			found = e
			count++
		}
	}

	switch count {
	case 0:
		return m.CatalogEntry{}, ErrEntryNotFound
	case 1:
		return found, nil
	default:
		return m.CatalogEntry{}, fmt.Errorf("%w: %q matches %d entries", ErrAmbiguousEntry, id.Name, count)
	}
}

// ApplyEdits applies reqs to src in order, reparsing between edits so every
// request resolves against the source produced by the one before it.
func ApplyEdits(src []byte, reqs ...m.EditRequest) ([]byte, error) {
	tree, err := syntax.Parse(src)
	if err != nil {
		return nil, err
	}

	for _, req := range reqs {
		out, err := Mutate(tree, req.ID, req.Value)
		if err != nil {
			return nil, err
		}

		tree, err = syntax.Parse(out)
		if err != nil {
			return nil, err
		}
	}

	return tree.Bytes(), nil
}

// replaceRange returns a copy of content with [start, end) replaced.
func replaceRange(content []byte, start, end int, replacement string) []byte {
	if start < 0 || end < start || end > len(content) {
		return content
	}

	mutated := make([]byte, 0, len(content)-(end-start)+len(replacement))
	mutated = append(mutated, content[:start]...)
	mutated = append(mutated, replacement...)
	mutated = append(mutated, content[end:]...)

	return mutated
}
