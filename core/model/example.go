package model

import "github.com/lexward/lexward/core/multitext"

// Example is a usage example nested inside a sense.
type Example struct {
	// Form is the multilingual example text.
	Form *multitext.MultiText `json:"form,omitempty"`

	// Translations holds the per-language translations of the example.
	Translations *multitext.MultiText `json:"translations,omitempty"`

	// Source names where the example was collected (speaker, text, corpus).
	Source string `json:"source,omitempty"`

	// Note is an optional multilingual note on the example.
	Note *multitext.MultiText `json:"note,omitempty"`

	// CustomFields maps a field name to multilingual content.
	CustomFields map[string]*multitext.MultiText `json:"custom_fields,omitempty"`

	// Traits is flat name/value metadata scoped to the example.
	Traits map[string]string `json:"traits,omitempty"`
}

// SetCustomField sets a multilingual custom field.
func (ex *Example) SetCustomField(name string, text *multitext.MultiText) {
	if ex.CustomFields == nil {
		ex.CustomFields = make(map[string]*multitext.MultiText)
	}
	ex.CustomFields[name] = text
}

// SetTrait sets a flat trait value.
func (ex *Example) SetTrait(name, value string) {
	if ex.Traits == nil {
		ex.Traits = make(map[string]string)
	}
	ex.Traits[name] = value
}
