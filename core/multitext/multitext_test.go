package multitext

import (
	"encoding/json"
	"testing"
)

func TestSetAndGet(t *testing.T) {
	mt := New().Set("en", "cat").Set("pl", "kot")

	if got := mt.Text("en"); got != "cat" {
		t.Errorf("Text(en) = %q, want %q", got, "cat")
	}
	if got := mt.Text("pl"); got != "kot" {
		t.Errorf("Text(pl) = %q, want %q", got, "kot")
	}
	if _, ok := mt.Get("de"); ok {
		t.Error("Get(de) should report absent")
	}
}

func TestSetKeepsInsertionOrder(t *testing.T) {
	mt := New().Set("pl", "kot").Set("en", "cat").Set("seh-fonipa", "kat")
	// Overwriting must not move the tag.
	mt.Set("en", "feline")

	want := []string{"pl", "en", "seh-fonipa"}
	got := mt.Langs()
	if len(got) != len(want) {
		t.Fatalf("Langs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Langs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if mt.Text("en") != "feline" {
		t.Errorf("overwrite lost: Text(en) = %q", mt.Text("en"))
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	mt := FromMap(map[string]string{"pl": "kot", "en": "cat", "de": "Katze"})
	want := []string{"de", "en", "pl"}
	got := mt.Langs()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Langs() = %v, want %v", got, want)
		}
	}
}

func TestEqualIgnoresOrder(t *testing.T) {
	a := New().Set("en", "cat").Set("pl", "kot")
	b := New().Set("pl", "kot").Set("en", "cat")
	if !a.Equal(b) {
		t.Error("mappings with same pairs in different order should be equal")
	}

	c := New().Set("en", "cat")
	if a.Equal(c) {
		t.Error("mappings with different entries should not be equal")
	}
}

func TestEqualNilVersusEmpty(t *testing.T) {
	var absent *MultiText
	empty := New()

	if absent.Equal(empty) {
		t.Error("nil must not equal empty: absent and empty are distinct")
	}
	if !absent.Equal(nil) {
		t.Error("nil should equal nil")
	}
	if !empty.Equal(New()) {
		t.Error("empty should equal empty")
	}
}

func TestNilSafety(t *testing.T) {
	var mt *MultiText
	if !mt.IsEmpty() {
		t.Error("nil MultiText should be empty")
	}
	if mt.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", mt.Len())
	}
	if mt.Langs() != nil {
		t.Error("nil Langs() should be nil")
	}
	if mt.Text("en") != "" {
		t.Error("nil Text() should be empty")
	}
	if mt.Clone() != nil {
		t.Error("nil Clone() should be nil")
	}
}

func TestDelete(t *testing.T) {
	mt := New().Set("en", "cat").Set("pl", "kot").Set("de", "Katze")
	mt.Delete("pl")

	if mt.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", mt.Len())
	}
	if _, ok := mt.Get("pl"); ok {
		t.Error("deleted tag still present")
	}
	got := mt.Langs()
	if got[0] != "en" || got[1] != "de" {
		t.Errorf("Langs() after delete = %v", got)
	}
}

func TestClone(t *testing.T) {
	orig := New().Set("en", "cat")
	c := orig.Clone()
	c.Set("en", "dog")

	if orig.Text("en") != "cat" {
		t.Error("mutating clone changed original")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	mt := New().Set("pl", "kot").Set("en", "cat")

	data, err := json.Marshal(mt)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// Flat shape: lang maps directly to a string.
	if string(data) != `{"pl":"kot","en":"cat"}` {
		t.Errorf("Marshal = %s", data)
	}

	var back MultiText
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(mt) {
		t.Errorf("round trip mismatch: %v vs %v", back.Map(), mt.Map())
	}
}
