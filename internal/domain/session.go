package domain

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mouse-blink/crowbar/internal/adapter"
	"github.com/mouse-blink/crowbar/internal/domain/syntax"
	"github.com/mouse-blink/crowbar/internal/log"
	m "github.com/mouse-blink/crowbar/internal/model"
)

const defaultFileMode os.FileMode = 0o644

// Session holds the source being edited and the catalog derived from it.
// Every successful operation replaces source, tree and catalog together; a
// failed one leaves all three untouched.
type Session struct {
	fsAdapter adapter.SourceFSAdapter

	path     m.Path
	tree     *syntax.Tree
	catalog  []m.CatalogEntry
	problems []error
	dirty    bool

	// saved is the source as last loaded or saved; diskHash is its hash.
	saved    []byte
	diskHash string
}

// NewSession creates an empty session reading and writing through fsAdapter.
func NewSession(fsAdapter adapter.SourceFSAdapter) *Session {
	return &Session{fsAdapter: fsAdapter}
}

// Load reads path and makes it the session's source.
func (s *Session) Load(path m.Path) error {
	src, err := s.fsAdapter.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := s.Reload(src); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	s.path = path
	s.markSaved()

	return nil
}

// Reload replaces the source with src and rescans it.
func (s *Session) Reload(src []byte) error {
	buf := make([]byte, len(src))
	copy(buf, src)

	tree, err := syntax.Parse(buf)
	if err != nil {
		log.Default().Debug("reload rejected", "path", string(s.path), "error", err)

		return err
	}

	catalog, problems := Scan(tree)

	s.tree = tree
	s.catalog = catalog
	s.problems = problems
	s.dirty = !bytes.Equal(buf, s.saved)

	return nil
}

func (s *Session) markSaved() {
	s.saved = s.tree.Bytes()
	s.diskHash = adapter.HashContent(s.saved)
	s.dirty = false
}

// Edit applies req to the current source.
func (s *Session) Edit(req m.EditRequest) error {
	if s.tree == nil {
		return fmt.Errorf("no source loaded")
	}

	out, err := Mutate(s.tree, req.ID, req.Value)
	if err != nil {
		return err
	}

	if bytes.Equal(out, s.tree.Source) {
		return nil
	}

	return s.Reload(out)
}

// Snapshot returns a copy of the current source.
func (s *Session) Snapshot() []byte {
	if s.tree == nil {
		return nil
	}

	return s.tree.Bytes()
}

// Catalog returns the entries of the current source in document order.
func (s *Session) Catalog() []m.CatalogEntry {
	out := make([]m.CatalogEntry, len(s.catalog))
	copy(out, s.catalog)

	return out
}

// Problems returns the literals the last scan could not decode.
func (s *Session) Problems() []error {
	return s.problems
}

// Path returns the file the session was loaded from.
func (s *Session) Path() m.Path {
	return s.path
}

// Dirty reports whether the source differs from what was last loaded or
// saved.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Save writes the current source back to the loaded path, keeping the
// file's permissions. It refuses with ErrChangedOnDisk when the file no
// longer holds what the session last loaded or saved.
func (s *Session) Save() error {
	if s.path == "" {
		return fmt.Errorf("no file loaded")
	}

	if current, err := s.fsAdapter.HashFile(s.path); err != nil {
		log.Default().Debug("hash before save failed", "path", string(s.path), "error", err)
	} else if current != s.diskHash {
		return fmt.Errorf("%w: %s", ErrChangedOnDisk, s.path)
	}

	perm := defaultFileMode
	if info, err := s.fsAdapter.FileInfo(s.path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := s.fsAdapter.WriteFile(s.path, s.Snapshot(), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	s.markSaved()

	return nil
}
