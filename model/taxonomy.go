package model

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/c360studio/ontomodel/nonempty"
)

// Kind names a node type in the taxonomy.
type Kind string

// Built-in kinds. Element is the universal root; NamedElement and Shape are
// the two permitted shapes every constructible kind must descend from.
const (
	KindElement          Kind = "Element"
	KindNamedElement     Kind = "NamedElement"
	KindShape            Kind = "Shape"
	KindProject          Kind = "Project"
	KindModelElement     Kind = "ModelElement"
	KindPackage          Kind = "Package"
	KindClass            Kind = "Class"
	KindNote             Kind = "Note"
	KindLink             Kind = "Link"
	KindDiagram          Kind = "Diagram"
	KindRectangularShape Kind = "RectangularShape"
	KindRectangle        Kind = "Rectangle"
	KindText             Kind = "Text"
	KindPath             Kind = "Path"
)

func (k Kind) String() string {
	return string(k)
}

// Taxonomy records the single-parent hierarchy of kinds and the fields each
// kind declares. Whether a kind passes the gate is resolved once, when the
// kind is registered, so Check is a map lookup.
type Taxonomy struct {
	mu        sync.RWMutex
	root      Kind
	permitted *nonempty.Set[Kind]
	entries   map[Kind]*kindEntry
}

type kindEntry struct {
	parent Kind
	// shape is the nearest ancestor-or-self in the permitted set, empty if none.
	shape  Kind
	fields map[string]struct{}
}

// KindInfo describes a registered kind.
type KindInfo struct {
	Kind    Kind     `json:"kind" yaml:"kind"`
	Parent  Kind     `json:"parent,omitempty" yaml:"parent,omitempty"`
	Shape   Kind     `json:"shape,omitempty" yaml:"shape,omitempty"`
	Allowed bool     `json:"allowed" yaml:"allowed"`
	Fields  []string `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// NewTaxonomy creates a taxonomy with only the root kind registered.
// rootFields are declared on every kind.
func NewTaxonomy(root Kind, permitted *nonempty.Set[Kind], rootFields ...string) *Taxonomy {
	t := &Taxonomy{
		root:      root,
		permitted: permitted.Clone(),
		entries:   make(map[Kind]*kindEntry),
	}
	entry := &kindEntry{fields: fieldSet(nil, rootFields)}
	if permitted.Contains(root) {
		entry.shape = root
	}
	t.entries[root] = entry
	return t
}

// NewStandardTaxonomy creates a taxonomy rooted at Element with the built-in
// kinds registered, gated on the given permitted shapes.
func NewStandardTaxonomy(permitted *nonempty.Set[Kind]) (*Taxonomy, error) {
	t := NewTaxonomy(KindElement, permitted, FieldID, FieldCreated, FieldModified)
	for _, b := range builtinKinds {
		if err := t.Register(b.kind, b.parent, b.fields...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// DefaultPermitted returns the standard permitted shapes.
func DefaultPermitted() *nonempty.Set[Kind] {
	return nonempty.MustNew(KindNamedElement, KindShape)
}

var builtinKinds = []struct {
	kind   Kind
	parent Kind
	fields []string
}{
	{KindNamedElement, KindElement, namedElementFields},
	{KindShape, KindElement, nil},
	{KindProject, KindNamedElement, projectFields},
	{KindModelElement, KindNamedElement, nil},
	{KindPackage, KindModelElement, nil},
	{KindClass, KindModelElement, classFields},
	{KindNote, KindModelElement, []string{"text"}},
	{KindLink, KindModelElement, []string{"note", "element"}},
	{KindDiagram, KindNamedElement, []string{"owner"}},
	{KindRectangularShape, KindShape, []string{"x", "y", "width", "height"}},
	{KindRectangle, KindRectangularShape, nil},
	{KindText, KindRectangularShape, nil},
	{KindPath, KindShape, []string{"points"}},
}

// Register adds kind as a child of parent declaring the given fields.
// The parent must already be registered.
func (t *Taxonomy) Register(kind, parent Kind, fields ...string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.entries[kind]; ok {
		return fmt.Errorf("register %q: %w", kind, ErrKindExists)
	}
	p, ok := t.entries[parent]
	if !ok {
		return fmt.Errorf("register %q: parent %q: %w", kind, parent, ErrUnknownKind)
	}

	shape := p.shape
	if shape == "" && t.permitted.Contains(kind) {
		shape = kind
	}

	t.entries[kind] = &kindEntry{
		parent: parent,
		shape:  shape,
		fields: fieldSet(p.fields, fields),
	}
	return nil
}

// Check returns a *TaxonomyError if kind is unknown or does not descend from
// a permitted shape.
func (t *Taxonomy) Check(kind Kind) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if e, ok := t.entries[kind]; ok && e.shape != "" {
		return nil
	}
	return &TaxonomyError{Kind: kind, Permitted: nonempty.Sorted(t.permitted)}
}

// Declares reports whether kind (or one of its ancestors) declares field.
func (t *Taxonomy) Declares(kind Kind, field string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[kind]
	if !ok {
		return false
	}
	_, ok = e.fields[field]
	return ok
}

// Parent returns the parent of kind. The root has no parent.
func (t *Taxonomy) Parent(kind Kind) (Kind, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[kind]
	if !ok || kind == t.root {
		return "", false
	}
	return e.parent, true
}

// Ancestors returns the chain from kind up to and including the root.
func (t *Taxonomy) Ancestors(kind Kind) []Kind {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var chain []Kind
	for k := kind; ; {
		e, ok := t.entries[k]
		if !ok {
			return chain
		}
		chain = append(chain, k)
		if k == t.root {
			return chain
		}
		k = e.parent
	}
}

// Root returns the universal root kind.
func (t *Taxonomy) Root() Kind {
	return t.root
}

// Permitted returns the permitted shapes in sorted order.
func (t *Taxonomy) Permitted() []Kind {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return nonempty.Sorted(t.permitted)
}

// Kinds describes every registered kind, sorted by name.
func (t *Taxonomy) Kinds() []KindInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()

	infos := make([]KindInfo, 0, len(t.entries))
	for _, k := range slices.Sorted(maps.Keys(t.entries)) {
		e := t.entries[k]
		info := KindInfo{
			Kind:    k,
			Shape:   e.shape,
			Allowed: e.shape != "",
			Fields:  slices.Sorted(maps.Keys(e.fields)),
		}
		if k != t.root {
			info.Parent = e.parent
		}
		infos = append(infos, info)
	}
	return infos
}

func fieldSet(inherited map[string]struct{}, own []string) map[string]struct{} {
	fields := maps.Clone(inherited)
	if fields == nil {
		fields = make(map[string]struct{}, len(own))
	}
	for _, f := range own {
		fields[f] = struct{}{}
	}
	return fields
}
