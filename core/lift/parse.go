package lift

import (
	"github.com/lexward/lexward/core/errors"
	"github.com/lexward/lexward/core/model"
	"github.com/lexward/lexward/core/multitext"
	"github.com/lexward/lexward/core/xml"
)

// Parse converts a complete LIFT document into an ordered list of entries.
// The document may or may not declare the LIFT namespace; both forms are
// handled transparently. Unknown elements and attributes are ignored, so
// documents from newer producers still load. On any error no entries are
// returned.
func (c *Codec) Parse(doc string) ([]*model.Entry, error) {
	d, err := xml.Parse([]byte(doc))
	if err != nil {
		return nil, errors.NewMalformed(formatName, err)
	}

	root := d.Root()
	if root == nil || root.Name() != "lift" {
		return nil, errors.NewMalformedReason(formatName, "root element is not lift")
	}
	if v := root.Attr("version"); v != "" && v != Version {
		return nil, errors.NewUnsupportedVersion(formatName, v, Version)
	}

	res := xml.NewResolver(root)

	var entries []*model.Entry
	idx := 0
	for _, node := range root.Children() {
		if !res.Is(node, "entry") {
			continue
		}
		entry, err := c.parseEntry(res, node, idx)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		idx++
	}
	return entries, nil
}

func (c *Codec) parseEntry(res *xml.Resolver, node *xml.Node, idx int) (*model.Entry, error) {
	id := node.Attr("id")
	if id == "" {
		return nil, errors.NewMissingField("entry", "id", idx)
	}

	entry := &model.Entry{ID: id}
	senseIdx := 0
	for _, child := range node.Children() {
		switch {
		case res.Is(child, "lexical-unit"):
			entry.LexicalUnit = c.parseForms(child)
		case res.Is(child, "pronunciation"):
			c.mergeForms(child, &entry.Pronunciations)
		case res.Is(child, "grammatical-info"):
			entry.GrammaticalInfo = child.Attr("value")
		case res.Is(child, "variant"):
			entry.Variants = append(entry.Variants, c.parseVariant(child))
		case res.Is(child, "sense"):
			sense, err := c.parseSense(res, child, id, senseIdx)
			if err != nil {
				return nil, err
			}
			entry.AddSense(sense)
			senseIdx++
		case res.Is(child, "relation"):
			entry.AddRelation(child.Attr("type"), child.Attr("ref"))
		case res.Is(child, "note"):
			entry.SetNote(child.Attr("type"), c.parseForms(child))
		case res.Is(child, "trait"):
			entry.SetTrait(child.Attr("name"), child.Attr("value"))
		case res.Is(child, "field"):
			entry.SetCustomField(child.Attr("type"), c.parseForms(child))
		case res.Is(child, "annotation"):
			if a := c.parseAnnotation(child); a != nil {
				entry.Annotations = append(entry.Annotations, a)
			}
		}
	}
	return entry, nil
}

func (c *Codec) parseSense(res *xml.Resolver, node *xml.Node, entryID string, idx int) (*model.Sense, error) {
	id := node.Attr("id")
	if id == "" {
		return nil, &errors.MissingFieldError{Element: "sense", Field: "id", Scope: entryID, Index: idx}
	}

	sense := &model.Sense{ID: id}
	for _, child := range node.Children() {
		switch {
		case res.Is(child, "gloss"):
			if lang := child.Attr("lang"); lang != "" {
				if sense.Glosses == nil {
					sense.Glosses = multitext.New()
				}
				sense.Glosses.Set(lang, c.formText(child))
			}
		case res.Is(child, "definition"):
			sense.Definitions = c.parseForms(child)
		case res.Is(child, "grammatical-info"):
			sense.GrammaticalInfo = child.Attr("value")
			for _, tr := range child.ChildrenNamed("trait") {
				sense.SetGrammaticalTrait(tr.Attr("name"), tr.Attr("value"))
			}
		case res.Is(child, "example"):
			sense.AddExample(c.parseExample(res, child))
		case res.Is(child, "relation"):
			sense.AddRelation(child.Attr("type"), child.Attr("ref"))
		case res.Is(child, "note"):
			sense.SetNote(child.Attr("type"), c.parseForms(child))
		case res.Is(child, "trait"):
			c.applySenseTrait(sense, child.Attr("name"), child.Attr("value"))
		case res.Is(child, "field"):
			c.applySenseField(sense, child.Attr("type"), c.parseForms(child))
		case res.Is(child, "illustration"):
			if href := child.Attr("href"); href != "" {
				ill := &model.Illustration{Href: href}
				if label := child.FirstChildNamed("label"); label != nil {
					ill.Label = c.parseForms(label)
				}
				sense.Illustrations = append(sense.Illustrations, ill)
			}
		case res.Is(child, "annotation"):
			if a := c.parseAnnotation(child); a != nil {
				sense.Annotations = append(sense.Annotations, a)
			}
		}
	}
	return sense, nil
}

// applySenseTrait routes a sense-level trait to its dedicated attribute.
// Repeatable classification traits accumulate as lists; anything not
// recognized as a reserved name is a generic trait, including the
// CustomFldSense-* family.
func (c *Codec) applySenseTrait(sense *model.Sense, name, value string) {
	switch name {
	case "domain-type", "domain_type":
		sense.DomainType = append(sense.DomainType, value)
	case "usage-type", "usage_type":
		sense.UsageType = append(sense.UsageType, value)
	case "academic-domain", "academic_domain":
		sense.SetAcademicDomain(value)
	default:
		sense.SetTrait(name, value)
	}
}

// applySenseField routes the FieldWorks-standard field types to their
// dedicated attributes; any other type becomes a generic custom field.
func (c *Codec) applySenseField(sense *model.Sense, fieldType string, text *multitext.MultiText) {
	switch fieldType {
	case "exemplar":
		sense.Exemplar = text
	case "scientific-name":
		sense.ScientificName = text
	case "literal-meaning":
		sense.LiteralMeaning = text
	default:
		sense.SetCustomField(fieldType, text)
	}
}

func (c *Codec) parseExample(res *xml.Resolver, node *xml.Node) *model.Example {
	ex := &model.Example{Source: node.Attr("source")}
	for _, child := range node.Children() {
		switch {
		case res.Is(child, "form"):
			if lang := child.Attr("lang"); lang != "" {
				if ex.Form == nil {
					ex.Form = multitext.New()
				}
				ex.Form.Set(lang, c.formText(child))
			}
		case res.Is(child, "translation"):
			c.mergeForms(child, &ex.Translations)
		case res.Is(child, "field"):
			if child.Attr("type") == "note" {
				ex.Note = c.parseForms(child)
			} else {
				ex.SetCustomField(child.Attr("type"), c.parseForms(child))
			}
		case res.Is(child, "trait"):
			ex.SetTrait(child.Attr("name"), child.Attr("value"))
		}
	}
	return ex
}

func (c *Codec) parseVariant(node *xml.Node) *model.Variant {
	v := &model.Variant{}
	for _, child := range node.Children() {
		switch child.Name() {
		case "form":
			if lang := child.Attr("lang"); lang != "" {
				if v.Form == nil {
					v.Form = multitext.New()
				}
				v.Form.Set(lang, c.formText(child))
			}
		case "grammatical-info":
			v.GrammaticalInfo = child.Attr("value")
			for _, tr := range child.ChildrenNamed("trait") {
				v.SetGrammaticalTrait(tr.Attr("name"), tr.Attr("value"))
			}
		}
	}
	return v
}

// parseAnnotation reads an annotation element. Annotations without a name
// are not representable and are dropped like any other unknown content.
func (c *Codec) parseAnnotation(node *xml.Node) *model.Annotation {
	name := node.Attr("name")
	if name == "" {
		return nil
	}
	a := &model.Annotation{
		Name:  name,
		Value: node.Attr("value"),
		Who:   node.Attr("who"),
		When:  node.Attr("when"),
	}
	a.Content = c.parseForms(node)
	return a
}

// parseForms collects the form children of an element into multilingual
// text. Returns nil when the element carries no forms, so absent stays
// distinct from empty.
func (c *Codec) parseForms(node *xml.Node) *multitext.MultiText {
	var text *multitext.MultiText
	for _, form := range node.ChildrenNamed("form") {
		lang := form.Attr("lang")
		if lang == "" {
			continue
		}
		if text == nil {
			text = multitext.New()
		}
		text.Set(lang, c.formText(form))
	}
	return text
}

// mergeForms adds the form children of an element into an existing mapping,
// allocating it on first use. Repeated elements (multiple pronunciation or
// translation blocks) merge into one mapping.
func (c *Codec) mergeForms(node *xml.Node, into **multitext.MultiText) {
	for _, form := range node.ChildrenNamed("form") {
		lang := form.Attr("lang")
		if lang == "" {
			continue
		}
		if *into == nil {
			*into = multitext.New()
		}
		(*into).Set(lang, c.formText(form))
	}
}

// formText extracts the text of a form or gloss element: the content of its
// text child, or the element's own text when the wrapper is omitted.
func (c *Codec) formText(node *xml.Node) string {
	if t := node.FirstChildNamed("text"); t != nil {
		return c.text(t.Text())
	}
	return c.text(node.Text())
}
