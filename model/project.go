package model

import (
	"fmt"
	"slices"

	"github.com/c360studio/ontomodel/vocabulary/ontouml"
)

// projectListFields are the free-text list fields of a project. Entries must
// be non-empty after trimming.
var projectListFields = []string{
	"acronyms", "bibliographic_citations", "keywords", "landing_pages", "languages",
	"sources", "access_rights", "ontology_types", "themes", "contexts", "designed_for_task",
}

var projectFields = append(slices.Clone(projectListFields),
	"namespace", "license", "publisher", "root_package", "representation_style")

// Project is the container of an OntoUML model. Elements join and leave a
// project only through AddElement and RemoveElement.
type Project struct {
	NamedElement

	lists               map[string][]string
	namespace           string
	license             string
	publisher           string
	rootPackage         *Package
	representationStyle ontouml.RepresentationStyle
}

// NewProject creates a project from fields. Unless given,
// representation_style defaults to the OntoUML style.
func NewProject(fields Fields, opts ...Option) (*Project, error) {
	p := &Project{
		lists:               make(map[string][]string),
		representationStyle: ontouml.StyleOntoUML,
	}
	if err := Init(p, KindProject, fields, opts...); err != nil {
		return nil, err
	}
	return p, nil
}

// AddElement makes p an owner of e. Adding an element twice is a no-op.
// Returns ErrInvalidType if e is nil, unconstructed, a container, or bound
// to another graph.
func (p *Project) AddElement(e Node) error {
	_, err := p.graph.link(p, e)
	return err
}

// RemoveElement drops e from p. Removing an element p does not own is a
// no-op. The root package cannot be removed while it is set.
func (p *Project) RemoveElement(e Node) error {
	if pkg, ok := e.(*Package); ok && pkg != nil && pkg == p.rootPackage {
		return fmt.Errorf("%w: package %q is the root package of project %q", ErrInvalidValue, pkg.ID(), p.ID())
	}
	_, err := p.graph.unlink(p, e)
	return err
}

// Elements returns the elements of p in the order they were added.
// The slice is a copy; changing it does not change the project.
func (p *Project) Elements() []Node {
	return p.graph.elementsOf(p.node())
}

// Contains reports whether p owns e.
func (p *Project) Contains(e Node) bool {
	return p.graph.Contains(p, e)
}

// Len returns the number of elements in p.
func (p *Project) Len() int {
	return p.graph.countOf(p.node())
}

// ElementByID returns the element with the given id, or nil.
func (p *Project) ElementByID(id string) Node {
	for _, e := range p.Elements() {
		if e.ID() == id {
			return e
		}
	}
	return nil
}

// Packages returns the packages in p.
func (p *Project) Packages() []*Package { return elementsOfType[*Package](p) }

// Classes returns the classes in p.
func (p *Project) Classes() []*Class { return elementsOfType[*Class](p) }

// Notes returns the notes in p.
func (p *Project) Notes() []*Note { return elementsOfType[*Note](p) }

// Diagrams returns the diagrams in p.
func (p *Project) Diagrams() []*Diagram { return elementsOfType[*Diagram](p) }

func elementsOfType[T Node](p *Project) []T {
	var out []T
	for _, e := range p.Elements() {
		if t, ok := e.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// CreatePackage builds a package on the project's graph and adds it.
func (p *Project) CreatePackage(fields Fields) (*Package, error) {
	pkg, err := NewPackage(fields, p.options()...)
	if err != nil {
		return nil, err
	}
	return pkg, p.AddElement(pkg)
}

// CreateClass builds a class on the project's graph and adds it.
func (p *Project) CreateClass(fields Fields) (*Class, error) {
	c, err := NewClass(fields, p.options()...)
	if err != nil {
		return nil, err
	}
	return c, p.AddElement(c)
}

// CreateNote builds a note on the project's graph and adds it.
func (p *Project) CreateNote(fields Fields) (*Note, error) {
	n, err := NewNote(fields, p.options()...)
	if err != nil {
		return nil, err
	}
	return n, p.AddElement(n)
}

// List returns a copy of one of the project's list fields, such as
// "keywords" or "languages".
func (p *Project) List(field string) []string {
	return slices.Clone(p.lists[field])
}

// Namespace returns the project namespace, "" if unset.
func (p *Project) Namespace() string { return p.namespace }

// License returns the project license, "" if unset.
func (p *Project) License() string { return p.license }

// Publisher returns the project publisher, "" if unset.
func (p *Project) Publisher() string { return p.publisher }

// RootPackage returns the root package, nil if unset.
func (p *Project) RootPackage() *Package { return p.rootPackage }

// RepresentationStyle returns the representation style.
func (p *Project) RepresentationStyle() ontouml.RepresentationStyle { return p.representationStyle }

// SetRootPackage sets the root package. It must already be an element of p.
func (p *Project) SetRootPackage(pkg *Package) error {
	return p.Set("root_package", pkg)
}

func (p *Project) setField(field string, value any) error {
	if slices.Contains(projectListFields, field) {
		v, err := asStrings(value)
		if err != nil {
			return err
		}
		p.lists[field] = v
		return nil
	}

	switch field {
	case "namespace", "license", "publisher":
		v, err := asOptionalString(value)
		if err != nil {
			return err
		}
		switch field {
		case "namespace":
			p.namespace = v
		case "license":
			p.license = v
		default:
			p.publisher = v
		}
		return nil

	case "root_package":
		if value == nil {
			p.rootPackage = nil
			return nil
		}
		pkg, ok := value.(*Package)
		if !ok {
			return fmt.Errorf("%w: expected *Package, got %T", ErrInvalidType, value)
		}
		if pkg == nil {
			p.rootPackage = nil
			return nil
		}
		if !p.graph.Contains(p, pkg) {
			return fmt.Errorf("%w: package %q is not an element of the project", ErrInvalidValue, pkg.ID())
		}
		p.rootPackage = pkg
		return nil

	case "representation_style":
		style := ontouml.StyleOntoUML
		switch v := value.(type) {
		case nil:
		case ontouml.RepresentationStyle:
			style = v
		case string:
			style = ontouml.RepresentationStyle(v)
		default:
			return fmt.Errorf("%w: expected RepresentationStyle, got %T", ErrInvalidType, value)
		}
		if !style.Valid() {
			return fmt.Errorf("%w: unknown representation style %q", ErrInvalidValue, style)
		}
		p.representationStyle = style
		return nil
	}
	return p.NamedElement.setField(field, value)
}
