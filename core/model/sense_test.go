package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCoerceList_Scalar(t *testing.T) {
	// A scalar string must become a one-element list, never a list of
	// characters.
	got := CoerceList("przestarzale")
	want := StringList{"przestarzale"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CoerceList mismatch (-want +got):\n%s", diff)
	}
}

func TestCoerceList(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want StringList
	}{
		{"nil", nil, nil},
		{"empty string", "", nil},
		{"string slice", []string{"a", "b"}, StringList{"a", "b"}},
		{"string list", StringList{"x"}, StringList{"x"}},
		{"other scalar", 42, StringList{"42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceList(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CoerceList(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestCoerceListCopies(t *testing.T) {
	src := []string{"a", "b"}
	got := CoerceList(src)
	src[0] = "mutated"
	if got[0] != "a" {
		t.Error("CoerceList should copy its input")
	}
}

func TestSetUsageType(t *testing.T) {
	s := NewSense("s1")
	s.SetUsageType("przestarzale")

	if len(s.UsageType) != 1 || s.UsageType[0] != "przestarzale" {
		t.Errorf("UsageType = %v, want one-element list", s.UsageType)
	}

	s.SetUsageType([]string{"dawne", "gwarowe"})
	if len(s.UsageType) != 2 {
		t.Errorf("UsageType = %v, want two elements", s.UsageType)
	}
}

func TestSetDomainType(t *testing.T) {
	s := NewSense("s1")
	s.SetDomainType("Nature")
	if len(s.DomainType) != 1 || s.DomainType[0] != "Nature" {
		t.Errorf("DomainType = %v", s.DomainType)
	}
}

func TestNewSenseGeneratesID(t *testing.T) {
	a := NewSense("")
	b := NewSense("")
	if a.ID == "" || b.ID == "" {
		t.Fatal("NewSense should generate an id")
	}
	if a.ID == b.ID {
		t.Error("generated ids should be unique")
	}
	if got := NewSense("s1").ID; got != "s1" {
		t.Errorf("explicit id overridden: %q", got)
	}
}

func TestSenseMutators(t *testing.T) {
	s := NewSense("s1")
	s.SetTrait("CustomFldSense-Domain", "Nature.Animals")
	s.SetGrammaticalTrait("gender", "f")
	s.SetNote("usage", nil)

	if s.Traits["CustomFldSense-Domain"] != "Nature.Animals" {
		t.Error("SetTrait did not store the value")
	}
	if s.GrammaticalTraits["gender"] != "f" {
		t.Error("SetGrammaticalTrait did not store the value")
	}
	if _, ok := s.Notes["usage"]; !ok {
		t.Error("SetNote did not store the key")
	}
}
