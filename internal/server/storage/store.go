// Package storage maps pastes to owner-scoped filesystem paths and moves
// paste bytes in and out of those paths.
//
// Every paste lives at <root>/<owner>/<id>. Identifier and owner values must
// have passed alphabet validation at the request boundary before they reach
// this package; the path layout itself is what keeps one user out of
// another's data.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/pastekeeper/internal/server/users"
)

// MaxPasteSize caps the number of bytes saved per paste. Longer uploads are
// truncated at this limit.
const MaxPasteSize = 128 * 1024

// Store resolves and manipulates owner-scoped paste files. It owns no data
// of its own and is safe for concurrent use.
type Store struct {
	root string
}

// NewStore constructs a Store rooted at the upload directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Resolve maps an identifier and an owning username to the paste's storage
// path. An empty owner resolves into the anonymous namespace.
func (s *Store) Resolve(id, owner string) string {
	if owner == "" {
		owner = users.AnonymousUsername
	}
	return filepath.Join(s.root, owner, id)
}

// Save streams at most MaxPasteSize bytes from r into the paste file for
// (id, owner), creating or truncating it.
func (s *Store) Save(id, owner string, r io.Reader) error {
	path := s.Resolve(id, owner)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating paste file: %w", err)
	}

	if _, err := io.Copy(f, io.LimitReader(r, MaxPasteSize)); err != nil {
		f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("writing paste: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("closing paste file: %w", err)
	}

	return nil
}

// Open returns a reader over the paste's content. The caller closes it.
// A missing paste reports an error satisfying os.IsNotExist.
func (s *Store) Open(id, owner string) (*os.File, error) {
	return os.Open(s.Resolve(id, owner))
}

// Delete removes the paste file. A missing paste reports an error satisfying
// os.IsNotExist.
func (s *Store) Delete(id, owner string) error {
	return os.Remove(s.Resolve(id, owner))
}
