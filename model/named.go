package model

import "slices"

var namedElementFields = []string{
	"names", "alt_names", "description", "editorial_notes", "creators", "contributors",
}

// NamedElement is the permitted shape for every model-level node.
// It carries multilingual names and descriptive metadata.
type NamedElement struct {
	Identity

	names          []LangString
	altNames       []LangString
	description    []LangString
	editorialNotes []LangString
	creators       []string
	contributors   []string
}

// Name returns the text of the first name, or "" if there is none.
func (n *NamedElement) Name() string {
	if len(n.names) == 0 {
		return ""
	}
	return n.names[0].Text
}

// Names returns a copy of the element names.
func (n *NamedElement) Names() []LangString { return slices.Clone(n.names) }

// AltNames returns a copy of the alternative names.
func (n *NamedElement) AltNames() []LangString { return slices.Clone(n.altNames) }

// Description returns a copy of the description texts.
func (n *NamedElement) Description() []LangString { return slices.Clone(n.description) }

// EditorialNotes returns a copy of the editorial notes.
func (n *NamedElement) EditorialNotes() []LangString { return slices.Clone(n.editorialNotes) }

// Creators returns a copy of the creators.
func (n *NamedElement) Creators() []string { return slices.Clone(n.creators) }

// Contributors returns a copy of the contributors.
func (n *NamedElement) Contributors() []string { return slices.Clone(n.contributors) }

func (n *NamedElement) setField(field string, value any) error {
	switch field {
	case "names", "alt_names", "description", "editorial_notes":
		v, err := asLangStrings(value)
		if err != nil {
			return err
		}
		switch field {
		case "names":
			n.names = v
		case "alt_names":
			n.altNames = v
		case "description":
			n.description = v
		default:
			n.editorialNotes = v
		}
		return nil

	case "creators", "contributors":
		v, err := asStrings(value)
		if err != nil {
			return err
		}
		if field == "creators" {
			n.creators = v
		} else {
			n.contributors = v
		}
		return nil
	}
	return n.Identity.setField(field, value)
}
