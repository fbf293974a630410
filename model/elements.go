package model

import (
	"fmt"
	"strconv"

	"github.com/c360studio/ontomodel/nonempty"
	"github.com/c360studio/ontomodel/vocabulary/ontouml"
)

// ModelElement is a named element that belongs to the abstract syntax of a
// model, as opposed to its diagrams.
type ModelElement struct {
	NamedElement
}

// Package groups model elements.
type Package struct {
	ModelElement
}

// NewPackage creates a package from fields.
func NewPackage(fields Fields, opts ...Option) (*Package, error) {
	p := &Package{}
	if err := Init(p, KindPackage, fields, opts...); err != nil {
		return nil, err
	}
	return p, nil
}

var classFields = []string{
	"stereotype", "restricted_to", "is_abstract", "is_derived", "is_powertype", "order",
}

// Class is an OntoUML class. It is always restricted to at least one
// ontological nature.
type Class struct {
	ModelElement

	stereotype   ontouml.ClassStereotype
	restrictedTo *nonempty.Set[ontouml.OntologicalNature]
	isAbstract   bool
	isDerived    bool
	isPowertype  bool
	order        string
}

// NewClass creates a class from fields. Unless given, restricted_to defaults
// to functionalComplex and order to "1".
func NewClass(fields Fields, opts ...Option) (*Class, error) {
	c := &Class{
		restrictedTo: nonempty.MustNew(ontouml.NatureFunctionalComplex),
		order:        "1",
	}
	if err := Init(c, KindClass, fields, opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Stereotype returns the class stereotype, "" if unset.
func (c *Class) Stereotype() ontouml.ClassStereotype { return c.stereotype }

// RestrictedTo returns a copy of the natures the class is restricted to.
func (c *Class) RestrictedTo() *nonempty.Set[ontouml.OntologicalNature] {
	return c.restrictedTo.Clone()
}

// IsAbstract reports whether the class is abstract.
func (c *Class) IsAbstract() bool { return c.isAbstract }

// IsDerived reports whether the class is derived.
func (c *Class) IsDerived() bool { return c.isDerived }

// IsPowertype reports whether the class is a powertype.
func (c *Class) IsPowertype() bool { return c.isPowertype }

// Order returns the instantiation order: a positive integer or "*".
func (c *Class) Order() string { return c.order }

// AddNature adds n to the natures the class is restricted to.
func (c *Class) AddNature(n ontouml.OntologicalNature) error {
	if !n.Valid() {
		return &FieldError{Kind: c.Kind(), Field: "restricted_to", Err: fmt.Errorf("%w: unknown nature %q", ErrInvalidValue, n)}
	}
	c.restrictedTo.Add(n)
	return nil
}

// RemoveNature removes n. Removing the last nature fails with
// nonempty.ErrLastElement.
func (c *Class) RemoveNature(n ontouml.OntologicalNature) error {
	if err := c.restrictedTo.Remove(n); err != nil {
		return &FieldError{Kind: c.Kind(), Field: "restricted_to", Err: err}
	}
	return nil
}

func (c *Class) setField(field string, value any) error {
	switch field {
	case "stereotype":
		var st ontouml.ClassStereotype
		switch v := value.(type) {
		case nil:
		case ontouml.ClassStereotype:
			st = v
		case string:
			st = ontouml.ClassStereotype(v)
		default:
			return fmt.Errorf("%w: expected ClassStereotype, got %T", ErrInvalidType, value)
		}
		if st != "" && !st.Valid() {
			return fmt.Errorf("%w: unknown class stereotype %q", ErrInvalidValue, st)
		}
		c.stereotype = st
		return nil

	case "restricted_to":
		set, err := asNatures(value)
		if err != nil {
			return err
		}
		c.restrictedTo = set
		return nil

	case "is_abstract", "is_derived", "is_powertype":
		b, err := asBool(value)
		if err != nil {
			return err
		}
		switch field {
		case "is_abstract":
			c.isAbstract = b
		case "is_derived":
			c.isDerived = b
		default:
			c.isPowertype = b
		}
		return nil

	case "order":
		s, err := asString(value)
		if err != nil {
			return err
		}
		if s != "*" {
			if n, err := strconv.Atoi(s); err != nil || n < 1 {
				return fmt.Errorf("%w: order must be a positive integer or *, got %q", ErrInvalidValue, s)
			}
		}
		c.order = s
		return nil
	}
	return c.ModelElement.setField(field, value)
}

// asNatures accepts a *nonempty.Set, a slice of natures or strings, or a
// single nature.
func asNatures(value any) (*nonempty.Set[ontouml.OntologicalNature], error) {
	var natures []ontouml.OntologicalNature
	switch v := value.(type) {
	case *nonempty.Set[ontouml.OntologicalNature]:
		if v == nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, nonempty.ErrEmptyInput)
		}
		natures = v.Values()
	case []ontouml.OntologicalNature:
		natures = v
	case ontouml.OntologicalNature:
		natures = []ontouml.OntologicalNature{v}
	case []string:
		for _, s := range v {
			natures = append(natures, ontouml.OntologicalNature(s))
		}
	default:
		return nil, fmt.Errorf("%w: expected []OntologicalNature, got %T", ErrInvalidType, value)
	}
	for _, n := range natures {
		if !n.Valid() {
			return nil, fmt.Errorf("%w: unknown nature %q", ErrInvalidValue, n)
		}
	}
	set, err := nonempty.FromSlice(natures)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return set, nil
}

// Note is a free-text annotation in a model.
type Note struct {
	ModelElement

	text []LangString
}

// NewNote creates a note from fields.
func NewNote(fields Fields, opts ...Option) (*Note, error) {
	n := &Note{}
	if err := Init(n, KindNote, fields, opts...); err != nil {
		return nil, err
	}
	return n, nil
}

// Text returns a copy of the note text.
func (n *Note) Text() []LangString {
	out := make([]LangString, len(n.text))
	copy(out, n.text)
	return out
}

func (n *Note) setField(field string, value any) error {
	if field == "text" {
		v, err := asLangStrings(value)
		if err != nil {
			return err
		}
		n.text = v
		return nil
	}
	return n.ModelElement.setField(field, value)
}

// Link attaches a note to another model element.
type Link struct {
	ModelElement

	note    *Note
	element Node
}

// NewLink creates a link from fields.
func NewLink(fields Fields, opts ...Option) (*Link, error) {
	l := &Link{}
	if err := Init(l, KindLink, fields, opts...); err != nil {
		return nil, err
	}
	return l, nil
}

// Note returns the linked note.
func (l *Link) Note() *Note { return l.note }

// Element returns the annotated element.
func (l *Link) Element() Node { return l.element }

func (l *Link) setField(field string, value any) error {
	switch field {
	case "note":
		if value == nil {
			l.note = nil
			return nil
		}
		n, ok := value.(*Note)
		if !ok {
			return fmt.Errorf("%w: expected *Note, got %T", ErrInvalidType, value)
		}
		l.note = n
		return nil

	case "element":
		if value == nil {
			l.element = nil
			return nil
		}
		n, ok := value.(Node)
		if !ok || isNilNode(n) {
			return fmt.Errorf("%w: expected a node, got %T", ErrInvalidType, value)
		}
		if _, ok := n.(Container); ok {
			return fmt.Errorf("%w: a link cannot annotate a container", ErrInvalidType)
		}
		l.element = n
		return nil
	}
	return l.ModelElement.setField(field, value)
}

// Diagram is a named view over the elements of a model.
type Diagram struct {
	NamedElement

	owner Node
}

// NewDiagram creates a diagram from fields.
func NewDiagram(fields Fields, opts ...Option) (*Diagram, error) {
	d := &Diagram{}
	if err := Init(d, KindDiagram, fields, opts...); err != nil {
		return nil, err
	}
	return d, nil
}

// Owner returns the model element the diagram is about, nil if unset.
func (d *Diagram) Owner() Node { return d.owner }

func (d *Diagram) setField(field string, value any) error {
	if field == "owner" {
		if value == nil {
			d.owner = nil
			return nil
		}
		n, ok := value.(Node)
		if !ok || isNilNode(n) {
			return fmt.Errorf("%w: expected a node, got %T", ErrInvalidType, value)
		}
		d.owner = n
		return nil
	}
	return d.NamedElement.setField(field, value)
}
