package model

import (
	"fmt"
	"strconv"
	"strings"
)

// EntryID identifies a catalog entry by its declaration order and binding
// name. It is a value: two scans of the same text produce equal IDs.
type EntryID struct {
	Ordinal int
	Name    string
}

// String renders the ID as "ordinal:name".
func (id EntryID) String() string {
	return fmt.Sprintf("%d:%s", id.Ordinal, id.Name)
}

// ParseEntryID parses the "ordinal:name" form. A bare name yields an ID with
// Ordinal -1, which callers resolve by name.
func ParseEntryID(s string) (EntryID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EntryID{}, fmt.Errorf("empty entry id")
	}

	before, after, found := strings.Cut(s, ":")
	if !found {
		return EntryID{Ordinal: -1, Name: s}, nil
	}

	ordinal, err := strconv.Atoi(before)
	if err != nil || ordinal < 0 {
		return EntryID{}, fmt.Errorf("invalid entry id %q: bad ordinal", s)
	}

	if after == "" {
		return EntryID{}, fmt.Errorf("invalid entry id %q: missing name", s)
	}

	return EntryID{Ordinal: ordinal, Name: after}, nil
}

// DeclKind distinguishes the binding forms that produce catalog entries.
type DeclKind string

const (
	DeclLet    DeclKind = "let"
	DeclConst  DeclKind = "const"
	DeclStatic DeclKind = "static"
)

// CatalogEntry is the editable projection of a declaration.
type CatalogEntry struct {
	ID       EntryID
	Decl     DeclKind
	Mutable  bool
	TypeHint string // declared type as written, empty when omitted
	Kind     ValueKind
	Value    Value
	// Span is the byte range the mutator replaces. For wrapped strings such
	// as String::from("..") it covers only the inner literal.
	Span Span
	// Via names the constant an indirect initializer resolved through.
	Via  string
	Line int
}

// Display returns the value as it should appear in an inspector.
func (e CatalogEntry) Display() string {
	return e.Value.String()
}

// EditRequest asks for the entry with ID to take Value.
type EditRequest struct {
	ID    EntryID
	Value Value
}
