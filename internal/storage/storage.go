// Package storage holds documents for the codecs. The codec layer never
// touches files or databases itself; callers fetch raw document text from a
// DocumentStore, run it through a codec, and persist generated text back.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lexward/lexward/core/errors"
	"github.com/lexward/lexward/internal/fileutil"
	"github.com/lexward/lexward/internal/validation"
)

// DocumentStore supplies raw document text and persists generated text. It
// performs no interpretation of the text itself.
type DocumentStore interface {
	// Load returns the text of the named document.
	Load(name string) (string, error)
	// Save persists document text under the given name, replacing any
	// previous version atomically.
	Save(name, doc string) error
	// List returns the stored document names in sorted order.
	List() ([]string, error)
	// Delete removes the named document.
	Delete(name string) error
}

// FileStore is a DocumentStore over a single directory. Names are plain
// filenames, never paths; an .xz suffix stores the document compressed.
type FileStore struct {
	root string
}

var _ DocumentStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &FileStore{root: dir}, nil
}

// Root returns the store's directory.
func (s *FileStore) Root() string {
	return s.root
}

func (s *FileStore) path(name string) (string, error) {
	if err := validation.ValidateFilename(name); err != nil {
		return "", errors.Wrapf(err, "invalid document name %q", name)
	}
	return filepath.Join(s.root, name), nil
}

// Load returns the text of the named document, decompressing .xz files.
func (s *FileStore) Load(name string) (string, error) {
	path, err := s.path(name)
	if err != nil {
		return "", err
	}
	doc, err := fileutil.ReadDocument(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", errors.Wrapf(errors.ErrNotFound, "document %q", name)
		}
		return "", err
	}
	return doc, nil
}

// Save persists document text, compressing when the name ends in .xz.
func (s *FileStore) Save(name, doc string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	return fileutil.WriteDocument(path, doc)
}

// List returns the stored document names in sorted order.
func (s *FileStore) List() ([]string, error) {
	dirents, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.root, err)
	}
	var names []string
	for _, d := range dirents {
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		names = append(names, d.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the named document.
func (s *FileStore) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(errors.ErrNotFound, "document %q", name)
		}
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}
