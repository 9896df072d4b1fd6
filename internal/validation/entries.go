package validation

import (
	"fmt"

	"github.com/lexward/lexward/core/model"
)

// Issue is one finding from the entry validator. Rule names are stable
// identifiers so callers can suppress or group findings.
type Issue struct {
	EntryID string `json:"entry_id"`
	SenseID string `json:"sense_id,omitempty"`
	Rule    string `json:"rule"`
	Detail  string `json:"detail"`
}

func (i Issue) String() string {
	if i.SenseID != "" {
		return fmt.Sprintf("%s: sense %s: %s: %s", i.EntryID, i.SenseID, i.Rule, i.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", i.EntryID, i.Rule, i.Detail)
}

// EntryValidator runs semantic checks over a parsed document. It consumes
// the object graph the codec produced and never calls back into the codec;
// structurally parseable but semantically incomplete entries load fine and
// surface here as issues, not as parse errors.
type EntryValidator struct {
	// CheckLangTags enables BCP 47 checking of every language tag in the
	// document. Off by default: legacy documents carry house-style tags.
	CheckLangTags bool
}

// Validate checks all entries and returns the issues found, in document
// order. A nil or empty slice of entries yields no issues.
func (v *EntryValidator) Validate(entries []*model.Entry) []Issue {
	var issues []Issue
	ids := make(map[string]string, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		issues = append(issues, v.validateEntry(e, ids)...)
	}
	issues = append(issues, v.checkRelationTargets(entries, ids)...)
	return issues
}

func (v *EntryValidator) validateEntry(e *model.Entry, ids map[string]string) []Issue {
	var issues []Issue

	if prev, dup := ids[e.ID]; dup && prev == "entry" {
		issues = append(issues, Issue{
			EntryID: e.ID,
			Rule:    "duplicate-entry-id",
			Detail:  "entry id appears more than once in the document",
		})
	}
	ids[e.ID] = "entry"

	if e.LexicalUnit.IsEmpty() {
		issues = append(issues, Issue{
			EntryID: e.ID,
			Rule:    "entry-needs-lexical-unit",
			Detail:  "entry has no lexical unit in any language",
		})
	}
	if len(e.Senses) == 0 {
		issues = append(issues, Issue{
			EntryID: e.ID,
			Rule:    "entry-needs-sense",
			Detail:  "entry has no senses",
		})
	}
	if v.CheckLangTags {
		issues = append(issues, v.checkLangTags(e.ID, "", e.LexicalUnit.Langs())...)
	}

	seen := make(map[string]bool, len(e.Senses))
	for _, s := range e.Senses {
		if s == nil {
			continue
		}
		if seen[s.ID] {
			issues = append(issues, Issue{
				EntryID: e.ID,
				SenseID: s.ID,
				Rule:    "duplicate-sense-id",
				Detail:  "sense id appears more than once in the entry",
			})
		}
		seen[s.ID] = true
		ids[s.ID] = "sense"
		issues = append(issues, v.validateSense(e, s)...)
	}
	return issues
}

func (v *EntryValidator) validateSense(e *model.Entry, s *model.Sense) []Issue {
	var issues []Issue

	if s.Glosses.IsEmpty() && s.Definitions.IsEmpty() {
		issues = append(issues, Issue{
			EntryID: e.ID,
			SenseID: s.ID,
			Rule:    "sense-needs-gloss",
			Detail:  "sense has neither gloss nor definition",
		})
	}
	if e.GrammaticalInfoFor(s) == "" {
		issues = append(issues, Issue{
			EntryID: e.ID,
			SenseID: s.ID,
			Rule:    "sense-needs-grammatical-info",
			Detail:  "no part of speech on the sense or inherited from the entry",
		})
	}
	if v.CheckLangTags {
		issues = append(issues, v.checkLangTags(e.ID, s.ID, s.Glosses.Langs())...)
		issues = append(issues, v.checkLangTags(e.ID, s.ID, s.Definitions.Langs())...)
	}
	return issues
}

// checkRelationTargets reports relations whose ref does not resolve within
// this document. The codec round-trips such refs untouched; whether they
// matter is a policy question answered here.
func (v *EntryValidator) checkRelationTargets(entries []*model.Entry, ids map[string]string) []Issue {
	var issues []Issue
	for _, e := range entries {
		if e == nil {
			continue
		}
		for _, rel := range e.Relations {
			if rel.Ref != "" && ids[rel.Ref] == "" {
				issues = append(issues, Issue{
					EntryID: e.ID,
					Rule:    "relation-target-missing",
					Detail:  fmt.Sprintf("relation %q points at %q, not present in this document", rel.Type, rel.Ref),
				})
			}
		}
		for _, s := range e.Senses {
			if s == nil {
				continue
			}
			for _, rel := range s.Relations {
				if rel.Ref != "" && ids[rel.Ref] == "" {
					issues = append(issues, Issue{
						EntryID: e.ID,
						SenseID: s.ID,
						Rule:    "relation-target-missing",
						Detail:  fmt.Sprintf("relation %q points at %q, not present in this document", rel.Type, rel.Ref),
					})
				}
			}
		}
	}
	return issues
}

func (v *EntryValidator) checkLangTags(entryID, senseID string, tags []string) []Issue {
	var issues []Issue
	for _, tag := range tags {
		if err := ValidateLangTag(tag); err != nil {
			issues = append(issues, Issue{
				EntryID: entryID,
				SenseID: senseID,
				Rule:    "invalid-lang-tag",
				Detail:  err.Error(),
			})
		}
	}
	return issues
}
