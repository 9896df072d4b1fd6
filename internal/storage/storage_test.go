package storage

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lexward/lexward/core/errors"
)

const sampleDoc = `<lift version="0.13"><entry id="e1"/></lift>`

func newStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return s
}

func TestSaveLoad(t *testing.T) {
	s := newStore(t)

	if err := s.Save("dict.lift", sampleDoc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load("dict.lift")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != sampleDoc {
		t.Errorf("Load = %q, want %q", got, sampleDoc)
	}
}

func TestSaveLoadCompressed(t *testing.T) {
	s := newStore(t)

	if err := s.Save("dict.lift.xz", sampleDoc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load("dict.lift.xz")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != sampleDoc {
		t.Errorf("Load = %q, want %q", got, sampleDoc)
	}
}

func TestSaveReplaces(t *testing.T) {
	s := newStore(t)

	if err := s.Save("dict.lift", "old"); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("dict.lift", "new"); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load("dict.lift")
	if err != nil {
		t.Fatal(err)
	}
	if got != "new" {
		t.Errorf("Load = %q after replace", got)
	}
}

func TestLoadMissing(t *testing.T) {
	s := newStore(t)
	_, err := s.Load("absent.lift")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	s := newStore(t)
	for _, name := range []string{"b.lift", "a.lift", "ranges.lift-ranges"} {
		if err := s.Save(name, sampleDoc); err != nil {
			t.Fatal(err)
		}
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"a.lift", "b.lift", "ranges.lift-ranges"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("List mismatch:\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	s := newStore(t)
	if err := s.Save("dict.lift", sampleDoc); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("dict.lift"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Load("dict.lift"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("document still loadable after delete: %v", err)
	}
	if err := s.Delete("dict.lift"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("second delete should report ErrNotFound, got %v", err)
	}
}

func TestRejectsUnsafeNames(t *testing.T) {
	s := newStore(t)
	for _, name := range []string{"../escape.lift", "a/b.lift", "", ".."} {
		if err := s.Save(name, sampleDoc); err == nil {
			t.Errorf("Save(%q) should fail", name)
		}
		if _, err := s.Load(name); err == nil {
			t.Errorf("Load(%q) should fail", name)
		}
	}
}
