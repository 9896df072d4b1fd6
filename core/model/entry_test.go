package model

import (
	"encoding/json"
	"testing"

	"github.com/lexward/lexward/core/multitext"
)

func TestNewEntryGeneratesID(t *testing.T) {
	a := NewEntry("")
	b := NewEntry("")
	if a.ID == "" {
		t.Fatal("NewEntry should generate an id")
	}
	if a.ID == b.ID {
		t.Error("generated ids should be unique")
	}
	if got := NewEntry("cat_1").ID; got != "cat_1" {
		t.Errorf("explicit id overridden: %q", got)
	}
}

func TestGrammaticalInfoInheritance(t *testing.T) {
	e := NewEntry("e1")
	e.GrammaticalInfo = "Noun"

	inherited := NewSense("s1")
	own := NewSense("s2")
	own.GrammaticalInfo = "Verb"

	if got := e.GrammaticalInfoFor(inherited); got != "Noun" {
		t.Errorf("sense without grammatical info should inherit: got %q", got)
	}
	if got := e.GrammaticalInfoFor(own); got != "Verb" {
		t.Errorf("sense with its own grammatical info should win: got %q", got)
	}
	if got := e.GrammaticalInfoFor(nil); got != "Noun" {
		t.Errorf("nil sense should fall back to entry: got %q", got)
	}
}

func TestEntryMutators(t *testing.T) {
	e := NewEntry("e1")
	e.AddRelation("synonym", "dog_1")
	e.SetTrait("morph-type", "stem")
	e.SetCustomField("Etymology", multitext.New().Set("en", "from Latin"))
	e.SetNote("", multitext.New().Set("en", "general note"))

	if len(e.Relations) != 1 || e.Relations[0].Ref != "dog_1" {
		t.Errorf("Relations = %v", e.Relations)
	}
	if e.Traits["morph-type"] != "stem" {
		t.Error("SetTrait did not store the value")
	}
	if e.CustomFields["Etymology"].Text("en") != "from Latin" {
		t.Error("SetCustomField did not store the value")
	}
	if e.Notes[""].Text("en") != "general note" {
		t.Error("SetNote did not store the general note")
	}
}

func TestEntryJSONShape(t *testing.T) {
	e := NewEntry("e1")
	e.LexicalUnit = multitext.New().Set("en", "cat")
	s := NewSense("s1")
	s.Glosses = multitext.New().Set("en", "feline")
	e.AddSense(s)

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	lu, ok := m["lexical_unit"].(map[string]interface{})
	if !ok {
		t.Fatalf("lexical_unit is not a flat object: %v", m["lexical_unit"])
	}
	// Flat shape: language maps directly to a string.
	if lu["en"] != "cat" {
		t.Errorf("lexical_unit.en = %v, want cat", lu["en"])
	}
	senses, ok := m["senses"].([]interface{})
	if !ok || len(senses) != 1 {
		t.Fatalf("senses shape: %v", m["senses"])
	}
	glosses := senses[0].(map[string]interface{})["glosses"].(map[string]interface{})
	if glosses["en"] != "feline" {
		t.Errorf("glosses.en = %v, want feline", glosses["en"])
	}
}
